package geometry

import (
	"fmt"
	"math"
)

// MaxExtrema is the maximum number of extrema that can be reported by
// [Extremer].
//
// This is 4 to support cubic Béziers.
const MaxExtrema = 4

// DefaultMaxError is a default value for methods that take a maximum error
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultMaxError = 1e-6

// Curve describes a parametric curve. Curves are evaluated at a parameter t,
// generally in the range [0, 1], and report their exact first derivative with
// respect to t.
//
// The set of curve families is fixed: [Line], [Arc], [EllipticalArc],
// [QuadBez], and [CubicBez]. Arc-length parameterization depends on
// per-family closed-form derivative magnitude bounds, so Curve cannot be
// implemented outside this package.
type Curve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// FirstDerivative returns the derivative of the curve with respect to t.
	// Its magnitude is the instantaneous speed of a point moving along the
	// curve as t varies at unit rate.
	FirstDerivative(t float64) Vec2
	Start() Point
	End() Point

	// derivativeMagnitude returns a function evaluating the magnitude of the
	// first derivative at a parameter value. The returned function closes
	// over coefficients precomputed from the curve's defining geometry.
	derivativeMagnitude() func(t float64) float64
	// maxSecondDerivativeMagnitude returns a conservative global upper bound
	// on the magnitude of the curve's second derivative over t ∈ [0, 1]. It
	// is zero for constant-speed curves, for which a single arc-length
	// segment is exact.
	maxSecondDerivativeMagnitude() float64
	// nondegenerate performs the per-family degeneracy check.
	nondegenerate() (NondegenerateCurve, error)
}

// NondegenerateCurve wraps a curve that has been verified to not collapse to
// a single point, and therefore has a well-defined tangent direction at every
// parameter value in [0, 1], including at cusps, where the direction is
// recovered from higher-order derivatives.
//
// Values are obtained from [Nondegenerate].
type NondegenerateCurve interface {
	// Curve returns the underlying curve.
	Curve() Curve
	// TangentDirection returns the tangent direction of the curve at
	// parameter t.
	//
	// At a cusp (a parameter value where the first derivative vanishes), the
	// result is the one-sided limit of the tangent direction: departing the
	// cusp for t < 1, and approaching it from inside the curve for t == 1.
	TangentDirection(t float64) Direction
}

// Nondegenerate verifies that a curve does not collapse to a single point and
// returns a wrapper supporting tangent direction queries. If the curve is a
// single point, it returns a [*DegenerateCurveError] carrying that point.
func Nondegenerate(c Curve) (NondegenerateCurve, error) {
	return c.nondegenerate()
}

// Sample returns the point and tangent direction of a nondegenerate curve at
// parameter t.
func Sample(nd NondegenerateCurve, t float64) (Point, Direction) {
	return nd.Curve().Eval(t), nd.TangentDirection(t)
}

// DegenerateCurveError is returned by [Nondegenerate] for curves with zero
// length. Point is the single point the curve collapses to.
type DegenerateCurveError struct {
	Point Point
}

func (err *DegenerateCurveError) Error() string {
	return fmt.Sprintf("degenerate curve: collapses to the single point %v", err.Point)
}

// Extremer describes parametrized curves that report their extrema.
type Extremer interface {
	// Extrema computes the extrema of the curve.
	//
	// Only extrema within the interior of the curve count.
	// At most four extrema can be reported, which is sufficient for
	// cubic Béziers.
	//
	// The extrema should be reported in increasing parameter order.
	Extrema() ([MaxExtrema]float64, int)
}

// boundingBox returns the smallest axis-aligned rectangle that encloses the
// curve in the range [0, 1].
func boundingBox(c interface {
	Extremer
	Curve
}) Rect {
	bbox := NewRectFromPoints(c.Eval(0), c.Eval(1))
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is
// nearly linear, it will return the root ignoring the quadratic term; the
// other root might be out of representable range. In the degenerate case
// where all coefficients are zero, so that all values of x satisfy the
// equation, a single 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) {
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}
