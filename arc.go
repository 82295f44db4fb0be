package geometry

import "math"

// Arc is a circular arc: a portion of a circle with the given center and
// radius, starting at StartAngle and sweeping by SweepAngle. Angles are in
// radians, measured counterclockwise from the positive x axis; a negative
// SweepAngle produces a clockwise arc.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

var _ Curve = Arc{}

// ArcFromEndpoints returns the arc from start to end sweeping by sweptAngle
// radians. It reports false if no such arc exists: when the two points
// coincide, or when sweptAngle is zero or a full number of turns (in which
// case the required radius is infinite).
func ArcFromEndpoints(start, end Point, sweptAngle float64) (Arc, bool) {
	chord := end.Sub(start)
	length := chord.Hypot()
	if length == 0 || math.Mod(sweptAngle, 2*math.Pi) == 0 {
		return Arc{}, false
	}
	tanHalf := math.Tan(0.5 * sweptAngle)
	// The center lies on the perpendicular bisector of the chord, offset to
	// the left of the chord for a counterclockwise sweep.
	chordDir, _ := chord.Direction()
	center := start.Midpoint(end).
		Translate(chordDir.Perpendicular().Vec2().Mul(0.5 * length / tanHalf))
	return Arc{
		Center:     center,
		Radius:     start.Distance(center),
		StartAngle: start.Sub(center).Angle(),
		SweepAngle: sweptAngle,
	}, true
}

// ArcThroughPoints returns the arc starting at p0, passing through p1, and
// ending at p2. It reports false if the three points are collinear (or not
// distinct), in which case no circle passes through all of them.
func ArcThroughPoints(p0, p1, p2 Point) (Arc, bool) {
	d := 2 * (p0.X*(p1.Y-p2.Y) + p1.X*(p2.Y-p0.Y) + p2.X*(p0.Y-p1.Y))
	if d == 0 {
		return Arc{}, false
	}
	s0 := Vec2(p0).Hypot2()
	s1 := Vec2(p1).Hypot2()
	s2 := Vec2(p2).Hypot2()
	center := Pt(
		(s0*(p1.Y-p2.Y)+s1*(p2.Y-p0.Y)+s2*(p0.Y-p1.Y))/d,
		(s0*(p2.X-p1.X)+s1*(p0.X-p2.X)+s2*(p1.X-p0.X))/d,
	)
	startAngle := p0.Sub(center).Angle()
	// Sweep counterclockwise from p0 to p2 if that passes through p1,
	// clockwise otherwise.
	mid := wrapAngle(p1.Sub(center).Angle() - startAngle)
	sweep := wrapAngle(p2.Sub(center).Angle() - startAngle)
	if mid > sweep {
		sweep -= 2 * math.Pi
	}
	return Arc{
		Center:     center,
		Radius:     p0.Distance(center),
		StartAngle: startAngle,
		SweepAngle: sweep,
	}, true
}

// wrapAngle reduces an angle to the range [0, 2π).
func wrapAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle
}

func (a Arc) IsInf() bool {
	return a.Center.IsInf() ||
		math.IsInf(a.Radius, 0) ||
		math.IsInf(a.StartAngle, 0) ||
		math.IsInf(a.SweepAngle, 0)
}

func (a Arc) IsNaN() bool {
	return a.Center.IsNaN() ||
		math.IsNaN(a.Radius) ||
		math.IsNaN(a.StartAngle) ||
		math.IsNaN(a.SweepAngle)
}

// Length returns the length of the arc, which is the radius times the
// absolute swept angle.
func (a Arc) Length() float64 {
	return math.Abs(a.Radius * a.SweepAngle)
}

// Arclen returns the length of the arc. The accuracy argument is ignored, as
// the result is exact.
func (a Arc) Arclen(accuracy float64) float64 {
	return a.Length()
}

func (a Arc) angle(t float64) float64 {
	return a.StartAngle + t*a.SweepAngle
}

func (a Arc) Eval(t float64) Point {
	sin, cos := math.Sincos(a.angle(t))
	return a.Center.Translate(Vec2{a.Radius * cos, a.Radius * sin})
}

func (a Arc) FirstDerivative(t float64) Vec2 {
	sin, cos := math.Sincos(a.angle(t))
	return Vec2{-sin, cos}.Mul(a.Radius * a.SweepAngle)
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

func (a Arc) derivativeMagnitude() func(t float64) float64 {
	d := math.Abs(a.Radius * a.SweepAngle)
	return func(t float64) float64 { return d }
}

func (a Arc) maxSecondDerivativeMagnitude() float64 {
	// Constant speed.
	return 0
}

func (a Arc) nondegenerate() (NondegenerateCurve, error) {
	if a.Radius*a.SweepAngle == 0 {
		return nil, &DegenerateCurveError{a.Start()}
	}
	return nondegenerateArc{a}, nil
}

type nondegenerateArc struct {
	arc Arc
}

func (nd nondegenerateArc) Curve() Curve { return nd.arc }

func (nd nondegenerateArc) TangentDirection(t float64) Direction {
	// The derivative magnitude is the constant nonzero value radius × sweep,
	// so normalizing never divides by zero.
	dir, _ := nd.arc.FirstDerivative(t).Direction()
	return dir
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the arc.
func (a Arc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.Start(), a.End())
	// The bounding box additionally touches the circle at each axis-aligned
	// quadrant angle the sweep passes through.
	r := math.Abs(a.Radius)
	th0 := a.StartAngle
	th1 := a.StartAngle + a.SweepAngle
	if th1 < th0 {
		th0, th1 = th1, th0
	}
	for q := math.Ceil(th0 / (0.5 * math.Pi)); q*0.5*math.Pi <= th1; q++ {
		sin, cos := math.Sincos(q * 0.5 * math.Pi)
		bbox = bbox.UnionPoint(a.Center.Translate(Vec2{r * cos, r * sin}))
	}
	return bbox
}

// Reverse returns the arc traversed from end to start.
func (a Arc) Reverse() Arc {
	return Arc{
		Center:     a.Center,
		Radius:     a.Radius,
		StartAngle: a.StartAngle + a.SweepAngle,
		SweepAngle: -a.SweepAngle,
	}
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

func (a Arc) RotateAround(center Point, angle float64) Arc {
	return Arc{
		Center:     a.Center.RotateAround(center, angle),
		Radius:     a.Radius,
		StartAngle: a.StartAngle + angle,
		SweepAngle: a.SweepAngle,
	}
}

func (a Arc) ScaleAbout(center Point, factor float64) Arc {
	out := Arc{
		Center:     a.Center.ScaleAbout(center, factor),
		Radius:     a.Radius * math.Abs(factor),
		StartAngle: a.StartAngle,
		SweepAngle: a.SweepAngle,
	}
	if factor < 0 {
		// Scaling by a negative factor is a point reflection, which shifts
		// every angle by half a turn.
		out.StartAngle += math.Pi
	}
	return out
}

// PlaceIn converts an arc expressed in the local coordinates of frame to
// global coordinates. For left-handed frames the sweep direction flips.
func (a Arc) PlaceIn(frame Frame) Arc {
	rotation := frame.XDirection().Angle()
	out := Arc{
		Center: frame.PlacePoint(a.Center),
		Radius: a.Radius,
	}
	if frame.IsRightHanded() {
		out.StartAngle = a.StartAngle + rotation
		out.SweepAngle = a.SweepAngle
	} else {
		out.StartAngle = rotation - a.StartAngle
		out.SweepAngle = -a.SweepAngle
	}
	return out
}

// RelativeTo converts an arc expressed in global coordinates to the local
// coordinates of frame. For left-handed frames the sweep direction flips.
func (a Arc) RelativeTo(frame Frame) Arc {
	rotation := frame.XDirection().Angle()
	out := Arc{
		Center: frame.RelativePoint(a.Center),
		Radius: a.Radius,
	}
	if frame.IsRightHanded() {
		out.StartAngle = a.StartAngle - rotation
		out.SweepAngle = a.SweepAngle
	} else {
		out.StartAngle = rotation - a.StartAngle
		out.SweepAngle = -a.SweepAngle
	}
	return out
}
