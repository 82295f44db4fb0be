package geometry

// Frame is a Cartesian coordinate frame: an origin point and a pair of
// perpendicular axis directions. Frames express geometry relative to a local
// coordinate system, and the PlaceIn/RelativeTo methods on geometric values
// convert between a frame's local coordinates and global coordinates.
//
// The fields are unexported to maintain the invariant that the axis
// directions are perpendicular; obtain frames from [FrameAt] or
// [FrameWithAngle]. Those constructors return right-handed frames;
// [Frame.FlipY] produces a left-handed (mirrored) frame.
type Frame struct {
	origin Point
	xDir   Direction
	yDir   Direction
}

// FrameAt returns the axis-aligned frame with the given origin point.
func FrameAt(origin Point) Frame {
	return Frame{origin, PosX, PosY}
}

// FrameWithAngle returns the frame with the given origin point, rotated
// counterclockwise by angle radians from the global axes.
func FrameWithAngle(origin Point, angle float64) Frame {
	xDir := DirectionFromAngle(angle)
	return Frame{origin, xDir, xDir.Perpendicular()}
}

// Origin returns the frame's origin point.
func (f Frame) Origin() Point { return f.origin }

// XDirection returns the direction of the frame's x axis.
func (f Frame) XDirection() Direction { return f.xDir }

// YDirection returns the direction of the frame's y axis.
func (f Frame) YDirection() Direction { return f.yDir }

// IsRightHanded reports whether rotating the frame's x axis counterclockwise
// by 90 degrees gives its y axis.
func (f Frame) IsRightHanded() bool {
	return f.xDir.Vec2().Cross(f.yDir.Vec2()) > 0
}

// FlipY returns a frame with the same origin and x axis and the y axis
// reversed. This flips the handedness of the frame.
func (f Frame) FlipY() Frame {
	return Frame{f.origin, f.xDir, f.yDir.Reverse()}
}

// Translate returns the frame translated by the given vector.
func (f Frame) Translate(v Vec2) Frame {
	return Frame{f.origin.Translate(v), f.xDir, f.yDir}
}

// RotateBy returns the frame rotated about its own origin by angle radians.
func (f Frame) RotateBy(angle float64) Frame {
	return Frame{f.origin, f.xDir.RotateBy(angle), f.yDir.RotateBy(angle)}
}

// PlacePoint converts a point expressed in the frame's local coordinates to
// global coordinates.
func (f Frame) PlacePoint(pt Point) Point {
	return f.origin.
		Translate(f.xDir.Vec2().Mul(pt.X)).
		Translate(f.yDir.Vec2().Mul(pt.Y))
}

// RelativePoint converts a point expressed in global coordinates to the
// frame's local coordinates.
func (f Frame) RelativePoint(pt Point) Point {
	d := pt.Sub(f.origin)
	return Point{
		X: d.Dot(f.xDir.Vec2()),
		Y: d.Dot(f.yDir.Vec2()),
	}
}

// PlaceVec converts a vector expressed in the frame's local coordinates to
// global coordinates.
func (f Frame) PlaceVec(v Vec2) Vec2 {
	return f.xDir.Vec2().Mul(v.X).Add(f.yDir.Vec2().Mul(v.Y))
}

// RelativeVec converts a vector expressed in global coordinates to the
// frame's local coordinates.
func (f Frame) RelativeVec(v Vec2) Vec2 {
	return Vec2{
		X: v.Dot(f.xDir.Vec2()),
		Y: v.Dot(f.yDir.Vec2()),
	}
}

// PlaceDirection converts a direction expressed in the frame's local
// coordinates to global coordinates.
func (f Frame) PlaceDirection(d Direction) Direction {
	dir, _ := f.PlaceVec(d.Vec2()).Direction()
	return dir
}

// RelativeDirection converts a direction expressed in global coordinates to
// the frame's local coordinates.
func (f Frame) RelativeDirection(d Direction) Direction {
	dir, _ := f.RelativeVec(d.Vec2()).Direction()
	return dir
}
