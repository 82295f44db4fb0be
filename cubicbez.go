package geometry

import (
	"math"
	"sort"
)

var _ Curve = CubicBez{}
var _ Extremer = CubicBez{}

// CubicBez is a cubic Bézier curve with control points P0, P1, P2, and P3.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Arclen returns the arclength of a cubic Bézier segment.
//
// This is an adaptive subdivision approach using Legendre-Gauss quadrature.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c CubicBez) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// It might be faster to do direct multiplies, the data dependencies would be shorter.
	// The following values don't have the factor of 3 for first deriv
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5)) // first derivative at midpoint
	dm1 := dd2.Add(dd1).Mul(0.5)                   // second derivative at midpoint
	dm2 := dd2.Sub(dd1).Mul(0.25)                  // 0.5 * (third derivative at midpoint)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// dNorm2 will be 0 as c approaches a singularity
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func arclenQuadratureCore(coeffs [][2]float64, dm Vec2, dm1 Vec2, dm2 Vec2) float64 {
	var sum float64
	for _, coeff := range coeffs {
		wi, xi := coeff[0], coeff[1]
		d := dm.Add(dm2.Mul(xi * xi))
		dpx := d.Add(dm1.Mul(xi)).Hypot()
		dmx := d.Sub(dm1.Mul(xi)).Hypot()
		sum += math.Sqrt(2.25) * wi * (dpx + dmx)
	}
	return sum
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// FirstDerivative returns the derivative of the curve with respect to t,
// which is 3·((1−t)²·(P1−P0) + 2·(1−t)·t·(P2−P1) + t²·(P3−P2)).
func (c CubicBez) FirstDerivative(t float64) Vec2 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return d0.Lerp(d1, t).Lerp(d1.Lerp(d2, t), t).Mul(3)
}

// SecondDerivative returns the second derivative of the curve with respect to
// t, which varies linearly between 6·(P2 − 2·P1 + P0) at t = 0 and
// 6·(P3 − 2·P2 + P1) at t = 1.
func (c CubicBez) SecondDerivative(t float64) Vec2 {
	dd1 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	dd2 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return dd1.Lerp(dd2, t).Mul(6)
}

// thirdDerivative returns the constant third derivative of the curve with
// respect to t.
func (c CubicBez) thirdDerivative() Vec2 {
	dd1 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	dd2 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return dd2.Sub(dd1).Mul(6)
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

func (c CubicBez) derivativeMagnitude() func(t float64) float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	return func(t float64) float64 {
		return 3 * d0.Lerp(d1, t).Lerp(d1.Lerp(d2, t), t).Hypot()
	}
}

func (c CubicBez) maxSecondDerivativeMagnitude() float64 {
	// The second derivative varies linearly, so its magnitude is maximal at
	// one of the ends.
	dd1 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	dd2 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return 6 * max(dd1.Hypot(), dd2.Hypot())
}

func (c CubicBez) nondegenerate() (NondegenerateCurve, error) {
	if dir, ok := c.thirdDerivative().Direction(); ok {
		return nondegenerateCubicBez{c, 3, dir}, nil
	}
	// With a zero third derivative the second derivative is constant.
	if dir, ok := c.SecondDerivative(0).Direction(); ok {
		return nondegenerateCubicBez{c, 2, dir}, nil
	}
	// With the second derivative zero as well, the first derivative is the
	// constant 3·(P1−P0): the curve is a line segment.
	if dir, ok := c.P1.Sub(c.P0).Direction(); ok {
		return nondegenerateCubicBez{c, 1, dir}, nil
	}
	return nil, &DegenerateCurveError{c.P0}
}

type nondegenerateCubicBez struct {
	cubic CubicBez
	// order is the lowest derivative order that is constant and nonzero: 3
	// for general cubics, 2 when the third derivative vanishes, 1 for curves
	// that degenerate to a line segment.
	order int
	// The direction of that derivative.
	dir Direction
}

func (nd nondegenerateCubicBez) Curve() Curve { return nd.cubic }

func (nd nondegenerateCubicBez) TangentDirection(t float64) Direction {
	if nd.order == 1 {
		return nd.dir
	}
	if fd, ok := nd.cubic.FirstDerivative(t).Direction(); ok {
		return fd
	}
	// Cusp: the tangent is the limit along the second derivative,
	// approaching from inside the curve at t == 1 and departing otherwise.
	if nd.order == 2 {
		if t == 1 {
			return nd.dir.Reverse()
		}
		return nd.dir
	}
	if sd, ok := nd.cubic.SecondDerivative(t).Direction(); ok {
		if t == 1 {
			return sd.Reverse()
		}
		return sd
	}
	// First and second derivatives both vanish; locally the curve behaves
	// like the cube of the parameter offset, so the tangent passes through
	// this point continuously along the third derivative.
	return nd.dir
}

func (c CubicBez) BoundingBox() Rect {
	return boundingBox(c)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.FirstDerivative(t0).Mul(scale))
	p2 := p3.Translate(c.FirstDerivative(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

func (c CubicBez) Extrema() ([MaxExtrema]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [MaxExtrema]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		cc := d0
		roots, n := SolveQuadratic(cc, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	sort.Float64s(out[:outN])
	return out, outN
}

// Reverse returns the curve traversed from end to start.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBez) Translate(v Vec2) CubicBez {
	return CubicBez{
		P0: c.P0.Translate(v),
		P1: c.P1.Translate(v),
		P2: c.P2.Translate(v),
		P3: c.P3.Translate(v),
	}
}

func (c CubicBez) RotateAround(center Point, angle float64) CubicBez {
	return CubicBez{
		P0: c.P0.RotateAround(center, angle),
		P1: c.P1.RotateAround(center, angle),
		P2: c.P2.RotateAround(center, angle),
		P3: c.P3.RotateAround(center, angle),
	}
}

func (c CubicBez) ScaleAbout(center Point, factor float64) CubicBez {
	return CubicBez{
		P0: c.P0.ScaleAbout(center, factor),
		P1: c.P1.ScaleAbout(center, factor),
		P2: c.P2.ScaleAbout(center, factor),
		P3: c.P3.ScaleAbout(center, factor),
	}
}

// PlaceIn converts a curve expressed in the local coordinates of frame to
// global coordinates.
func (c CubicBez) PlaceIn(frame Frame) CubicBez {
	return CubicBez{
		P0: frame.PlacePoint(c.P0),
		P1: frame.PlacePoint(c.P1),
		P2: frame.PlacePoint(c.P2),
		P3: frame.PlacePoint(c.P3),
	}
}

// RelativeTo converts a curve expressed in global coordinates to the local
// coordinates of frame.
func (c CubicBez) RelativeTo(frame Frame) CubicBez {
	return CubicBez{
		P0: frame.RelativePoint(c.P0),
		P1: frame.RelativePoint(c.P1),
		P2: frame.RelativePoint(c.P2),
		P3: frame.RelativePoint(c.P3),
	}
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>

var gaussLegendreCoeffs8 = [...][2]float64{
	{0.3626837833783620, -0.1834346424956498},
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, -0.5255324099163290},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, -0.7966664774136267},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, -0.9602898564975363},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs8Half = [...][2]float64{
	{0.3626837833783620, 0.1834346424956498},
	{0.3137066458778873, 0.5255324099163290},
	{0.2223810344533745, 0.7966664774136267},
	{0.1012285362903763, 0.9602898564975363},
}

var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
