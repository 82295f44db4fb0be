package geometry

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Curve = Line{}
var _ Extremer = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line. The accuracy argument is ignored, as
// the result is exact.
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// FirstDerivative returns the derivative of the line with respect to t, which
// is the constant vector from the start point to the end point.
func (l Line) FirstDerivative(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) derivativeMagnitude() func(t float64) float64 {
	d := l.P1.Sub(l.P0).Hypot()
	return func(t float64) float64 { return d }
}

func (l Line) maxSecondDerivativeMagnitude() float64 {
	// Constant speed.
	return 0
}

func (l Line) nondegenerate() (NondegenerateCurve, error) {
	dir, ok := l.P1.Sub(l.P0).Direction()
	if !ok {
		return nil, &DegenerateCurveError{l.P0}
	}
	return nondegenerateLine{l, dir}, nil
}

type nondegenerateLine struct {
	line Line
	dir  Direction
}

func (nd nondegenerateLine) Curve() Curve { return nd.line }

func (nd nondegenerateLine) TangentDirection(t float64) Direction {
	return nd.dir
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) Extrema() ([MaxExtrema]float64, int) {
	return [MaxExtrema]float64{}, 0
}

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

func (l Line) Subdivide() (Line, Line) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

// Reverse returns the line traversed from end to start.
func (l Line) Reverse() Line {
	return Line{l.P1, l.P0}
}

func (l Line) Translate(v Vec2) Line {
	return Line{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

func (l Line) RotateAround(center Point, angle float64) Line {
	return Line{
		P0: l.P0.RotateAround(center, angle),
		P1: l.P1.RotateAround(center, angle),
	}
}

func (l Line) ScaleAbout(center Point, factor float64) Line {
	return Line{
		P0: l.P0.ScaleAbout(center, factor),
		P1: l.P1.ScaleAbout(center, factor),
	}
}

// PlaceIn converts a line expressed in the local coordinates of frame to
// global coordinates.
func (l Line) PlaceIn(frame Frame) Line {
	return Line{
		P0: frame.PlacePoint(l.P0),
		P1: frame.PlacePoint(l.P1),
	}
}

// RelativeTo converts a line expressed in global coordinates to the local
// coordinates of frame.
func (l Line) RelativeTo(frame Frame) Line {
	return Line{
		P0: frame.RelativePoint(l.P0),
		P1: frame.RelativePoint(l.P1),
	}
}
