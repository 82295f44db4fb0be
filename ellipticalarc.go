package geometry

import "math"

// EllipticalArc is a portion of an ellipse with the given center and radii.
// The ellipse's own x axis is rotated counterclockwise from the global x axis
// by XRotation radians; StartAngle and SweepAngle are measured in the
// ellipse's rotated frame. All angles are in radians.
type EllipticalArc struct {
	Center     Point
	Radii      Vec2
	XRotation  float64
	StartAngle float64
	SweepAngle float64
}

var _ Curve = EllipticalArc{}

func (a EllipticalArc) IsInf() bool {
	return a.Center.IsInf() ||
		a.Radii.IsInf() ||
		math.IsInf(a.XRotation, 0) ||
		math.IsInf(a.StartAngle, 0) ||
		math.IsInf(a.SweepAngle, 0)
}

func (a EllipticalArc) IsNaN() bool {
	return a.Center.IsNaN() ||
		a.Radii.IsNaN() ||
		math.IsNaN(a.XRotation) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.SweepAngle)
}

func (a EllipticalArc) angle(t float64) float64 {
	return a.StartAngle + t*a.SweepAngle
}

// local returns the point on the ellipse at the given angle, relative to the
// center and before applying XRotation.
func (a EllipticalArc) local(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{a.Radii.X * cos, a.Radii.Y * sin}
}

func (a EllipticalArc) Eval(t float64) Point {
	return a.Center.Translate(a.local(a.angle(t)).Rotate(a.XRotation))
}

func (a EllipticalArc) FirstDerivative(t float64) Vec2 {
	sin, cos := math.Sincos(a.angle(t))
	return Vec2{-a.Radii.X * sin, a.Radii.Y * cos}.
		Rotate(a.XRotation).
		Mul(a.SweepAngle)
}

func (a EllipticalArc) Start() Point { return a.Eval(0) }
func (a EllipticalArc) End() Point   { return a.Eval(1) }

func (a EllipticalArc) derivativeMagnitude() func(t float64) float64 {
	// Rotation does not change the derivative magnitude, so it can be
	// computed in the ellipse's own frame.
	rx := math.Abs(a.Radii.X)
	ry := math.Abs(a.Radii.Y)
	th0 := a.StartAngle
	dth := a.SweepAngle
	absDth := math.Abs(dth)
	return func(t float64) float64 {
		sin, cos := math.Sincos(th0 + t*dth)
		return absDth * math.Hypot(rx*sin, ry*cos)
	}
}

func (a EllipticalArc) maxSecondDerivativeMagnitude() float64 {
	return a.SweepAngle * a.SweepAngle * max(math.Abs(a.Radii.X), math.Abs(a.Radii.Y))
}

// Elliptical arcs with a zero radius degenerate to a line segment traversed
// along one of the ellipse's axes, possibly with reversals. The tangent
// direction of those arcs is computed from the sign of the moving coordinate
// rather than from the vanishing first derivative.
type ellipticalKind int

const (
	ellipticalCurved      ellipticalKind = iota // both radii nonzero
	ellipticalAlongLocalX                       // y radius zero, moves along the ellipse's x axis
	ellipticalAlongLocalY                       // x radius zero, moves along the ellipse's y axis
)

func (a EllipticalArc) nondegenerate() (NondegenerateCurve, error) {
	rx := math.Abs(a.Radii.X)
	ry := math.Abs(a.Radii.Y)
	switch {
	case a.SweepAngle == 0 || (rx == 0 && ry == 0):
		return nil, &DegenerateCurveError{a.Start()}
	case rx == 0:
		return nondegenerateEllipticalArc{a, ellipticalAlongLocalY}, nil
	case ry == 0:
		return nondegenerateEllipticalArc{a, ellipticalAlongLocalX}, nil
	default:
		return nondegenerateEllipticalArc{a, ellipticalCurved}, nil
	}
}

type nondegenerateEllipticalArc struct {
	arc  EllipticalArc
	kind ellipticalKind
}

func (nd nondegenerateEllipticalArc) Curve() Curve { return nd.arc }

func (nd nondegenerateEllipticalArc) TangentDirection(t float64) Direction {
	a := nd.arc
	switch nd.kind {
	case ellipticalAlongLocalY:
		// The local y coordinate is ry·sin(θ), so its rate of change has the
		// sign of sweep·ry·cos(θ). Deciding the direction from that sign
		// avoids dividing by the zero x radius at reversal points.
		yDir := DirectionFromAngle(a.XRotation).Perpendicular()
		if a.SweepAngle*a.Radii.Y*math.Cos(a.angle(t)) >= 0 {
			return yDir
		}
		return yDir.Reverse()
	case ellipticalAlongLocalX:
		// The local x coordinate is rx·cos(θ); its rate of change has the
		// sign of −sweep·rx·sin(θ).
		xDir := DirectionFromAngle(a.XRotation)
		if a.SweepAngle*a.Radii.X*math.Sin(a.angle(t)) > 0 {
			return xDir.Reverse()
		}
		return xDir
	default:
		// With both radii nonzero the derivative magnitude
		// |sweep|·hypot(rx·sin θ, ry·cos θ) is bounded away from zero.
		dir, _ := a.FirstDerivative(t).Direction()
		return dir
	}
}

// BoundingBox returns an axis-aligned rectangle enclosing the arc. The result
// is conservative: it is the bounding box of the arc's full ellipse, which
// may be larger than the tight box of the swept portion.
func (a EllipticalArc) BoundingBox() Rect {
	sin, cos := math.Sincos(a.XRotation)
	rangeX := math.Hypot(a.Radii.X*cos, a.Radii.Y*sin)
	rangeY := math.Hypot(a.Radii.X*sin, a.Radii.Y*cos)
	return Rect{
		X0: a.Center.X - rangeX,
		Y0: a.Center.Y - rangeY,
		X1: a.Center.X + rangeX,
		Y1: a.Center.Y + rangeY,
	}
}

// Reverse returns the arc traversed from end to start.
func (a EllipticalArc) Reverse() EllipticalArc {
	a.StartAngle += a.SweepAngle
	a.SweepAngle = -a.SweepAngle
	return a
}

func (a EllipticalArc) Translate(v Vec2) EllipticalArc {
	a.Center = a.Center.Translate(v)
	return a
}

func (a EllipticalArc) RotateAround(center Point, angle float64) EllipticalArc {
	a.Center = a.Center.RotateAround(center, angle)
	a.XRotation += angle
	return a
}

func (a EllipticalArc) ScaleAbout(center Point, factor float64) EllipticalArc {
	a.Center = a.Center.ScaleAbout(center, factor)
	a.Radii = a.Radii.Mul(math.Abs(factor))
	if factor < 0 {
		a.XRotation += math.Pi
	}
	return a
}

// PlaceIn converts an arc expressed in the local coordinates of frame to
// global coordinates. For left-handed frames the sweep direction flips.
func (a EllipticalArc) PlaceIn(frame Frame) EllipticalArc {
	rotation := frame.XDirection().Angle()
	out := EllipticalArc{
		Center: frame.PlacePoint(a.Center),
		Radii:  a.Radii,
	}
	if frame.IsRightHanded() {
		out.XRotation = a.XRotation + rotation
		out.StartAngle = a.StartAngle
		out.SweepAngle = a.SweepAngle
	} else {
		out.XRotation = rotation - a.XRotation
		out.StartAngle = -a.StartAngle
		out.SweepAngle = -a.SweepAngle
	}
	return out
}

// RelativeTo converts an arc expressed in global coordinates to the local
// coordinates of frame. For left-handed frames the sweep direction flips.
func (a EllipticalArc) RelativeTo(frame Frame) EllipticalArc {
	rotation := frame.XDirection().Angle()
	out := EllipticalArc{
		Center: frame.RelativePoint(a.Center),
		Radii:  a.Radii,
	}
	if frame.IsRightHanded() {
		out.XRotation = a.XRotation - rotation
		out.StartAngle = a.StartAngle
		out.SweepAngle = a.SweepAngle
	} else {
		out.XRotation = rotation - a.XRotation
		out.StartAngle = -a.StartAngle
		out.SweepAngle = -a.SweepAngle
	}
	return out
}
