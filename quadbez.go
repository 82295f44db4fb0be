package geometry

import "math"

var _ Curve = QuadBez{}
var _ Extremer = QuadBez{}

// QuadBez is a quadratic Bézier curve with control points P0, P1, and P2.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}

// Arclen returns the arclength of the quadratic Bézier segment.
//
// This computation is based on an analytical formula. Since that formula
// suffers from numerical instability when the curve is very close to a
// straight line, we detect that case and fall back to Legendre-Gauss
// quadrature.
//
// Overall accuracy should be better than 1e-13 over the entire range.
func (q QuadBez) Arclen(accuracy float64) float64 {
	d2 := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
	a := d2.Hypot2()
	d1 := q.P1.Sub(q.P0)
	c := d1.Hypot2()
	if a < 5e-4*c {
		// This case happens for nearly straight Béziers.
		//
		// Calculate arclength using Legendre-Gauss quadrature using formula from Behdad
		// in https://github.com/Pomax/BezierInfo-2/issues/77
		v0 := Vec2(q.P0).Mul(-0.492943519233745).
			Add(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.0626120363218102)).
			Hypot()
		v1 := q.P2.Sub(q.P0).Mul(0.4444444444444444).Hypot()
		v2 := Vec2(q.P0).Mul(-0.0626120363218102).
			Sub(Vec2(q.P1).Mul(0.430331482911935)).
			Add(Vec2(q.P2).Mul(0.492943519233745)).
			Hypot()
		return v0 + v1 + v2
	}
	b := 2.0 * d2.Dot(d1)

	sabc := math.Sqrt(a + b + c)
	a2 := math.Pow(a, -0.5)
	a32 := a2 * a2 * a2
	c2 := 2.0 * math.Sqrt(c)
	baC2 := b*a2 + c2

	v0 := 0.25*a2*a2*b*(2.0*sabc-c2) + sabc
	if baC2 < 1e-13 {
		// This case happens for Béziers with a sharp kink.
		return v0
	} else {
		return v0 + 0.25*a32*(4.0*c*a-b*b)*math.Log(((2.0*a+b)*a2+2.0*sabc)/baC2)
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// FirstDerivative returns the derivative of the curve with respect to t,
// which is 2·((1−t)·(P1−P0) + t·(P2−P1)).
func (q QuadBez) FirstDerivative(t float64) Vec2 {
	return q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t).Mul(2)
}

// SecondDerivative returns the second derivative of the curve with respect to
// t, which is the constant vector 2·(P2 − 2·P1 + P0).
func (q QuadBez) SecondDerivative() Vec2 {
	return q.P2.Sub(q.P1).Sub(q.P1.Sub(q.P0)).Mul(2)
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

func (q QuadBez) derivativeMagnitude() func(t float64) float64 {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return func(t float64) float64 {
		return 2 * d0.Lerp(d1, t).Hypot()
	}
}

func (q QuadBez) maxSecondDerivativeMagnitude() float64 {
	return q.SecondDerivative().Hypot()
}

func (q QuadBez) nondegenerate() (NondegenerateCurve, error) {
	if dir, ok := q.SecondDerivative().Direction(); ok {
		return nondegenerateQuadBez{q, dir, false}, nil
	}
	// With a zero second derivative the first derivative is the constant
	// 2·(P1−P0): the curve is a line segment.
	if dir, ok := q.P1.Sub(q.P0).Direction(); ok {
		return nondegenerateQuadBez{q, dir, true}, nil
	}
	return nil, &DegenerateCurveError{q.P0}
}

type nondegenerateQuadBez struct {
	quad QuadBez
	// The direction of the constant second derivative or, for linear curves,
	// of the constant first derivative.
	dir    Direction
	linear bool
}

func (nd nondegenerateQuadBez) Curve() Curve { return nd.quad }

func (nd nondegenerateQuadBez) TangentDirection(t float64) Direction {
	if nd.linear {
		return nd.dir
	}
	if fd, ok := nd.quad.FirstDerivative(t).Direction(); ok {
		return fd
	}
	// Cusp: the first derivative vanishes and the tangent is the limit along
	// the second derivative, approaching from inside the curve at t == 1 and
	// departing otherwise.
	if t == 1 {
		return nd.dir.Reverse()
	}
	return nd.dir
}

func (q QuadBez) BoundingBox() Rect {
	return boundingBox(q)
}

func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	pm := q.Eval(0.5)
	return QuadBez{q.P0, q.P0.Midpoint(q.P1), pm},
		QuadBez{pm, q.P1.Midpoint(q.P2), q.P2}
}

func (q QuadBez) Subsegment(t0 float64, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.P1.Sub(q.P0).Lerp(q.P2.Sub(q.P1), t0).Mul(t1 - t0))
	return QuadBez{p0, p1, p2}
}

func (q QuadBez) Extrema() ([MaxExtrema]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.

	var out [MaxExtrema]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		t := -d0.X / dd.X
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0 {
		t := -d0.Y / dd.Y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
			if outN == 2 && out[0] > t {
				out[0], out[1] = out[1], out[0]
			}
		}
	}
	return out, outN
}

// Reverse returns the curve traversed from end to start.
func (q QuadBez) Reverse() QuadBez {
	return QuadBez{q.P2, q.P1, q.P0}
}

func (q QuadBez) Translate(v Vec2) QuadBez {
	return QuadBez{
		P0: q.P0.Translate(v),
		P1: q.P1.Translate(v),
		P2: q.P2.Translate(v),
	}
}

func (q QuadBez) RotateAround(center Point, angle float64) QuadBez {
	return QuadBez{
		P0: q.P0.RotateAround(center, angle),
		P1: q.P1.RotateAround(center, angle),
		P2: q.P2.RotateAround(center, angle),
	}
}

func (q QuadBez) ScaleAbout(center Point, factor float64) QuadBez {
	return QuadBez{
		P0: q.P0.ScaleAbout(center, factor),
		P1: q.P1.ScaleAbout(center, factor),
		P2: q.P2.ScaleAbout(center, factor),
	}
}

// PlaceIn converts a curve expressed in the local coordinates of frame to
// global coordinates.
func (q QuadBez) PlaceIn(frame Frame) QuadBez {
	return QuadBez{
		P0: frame.PlacePoint(q.P0),
		P1: frame.PlacePoint(q.P1),
		P2: frame.PlacePoint(q.P2),
	}
}

// RelativeTo converts a curve expressed in global coordinates to the local
// coordinates of frame.
func (q QuadBez) RelativeTo(frame Frame) QuadBez {
	return QuadBez{
		P0: frame.RelativePoint(q.P0),
		P1: frame.RelativePoint(q.P1),
		P2: frame.RelativePoint(q.P2),
	}
}
