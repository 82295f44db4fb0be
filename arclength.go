package geometry

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidTolerance is returned when an arc-length tolerance is zero or
// negative.
var ErrInvalidTolerance = errors.New("tolerance must be positive")

// maxParameterizationSegments caps the number of segments used when building
// an arc-length parameterization, to bound memory use for extreme tolerances.
const maxParameterizationSegments = 1 << 21

// An ArcLengthParameterization maps between arc length along a curve and the
// curve's own parameter. It is built by integrating the derivative magnitude
// of the curve over segments of equal parameter width; the error of the
// resulting arc lengths is bounded by the tolerance passed at construction.
type ArcLengthParameterization struct {
	// cumulative[i] is the arc length from the start of the curve to
	// parameter value i/n, where n = len(cumulative)-1.
	cumulative []float64
}

// NewArcLengthParameterization builds a parameterization from a curve's
// derivative magnitude function and an upper bound on the magnitude of its
// second derivative. The number of integration segments is chosen so that the
// midpoint-rule error stays within maxError; a curve with a zero second
// derivative bound has constant speed and needs only a single segment.
func NewArcLengthParameterization(maxError float64, derivativeMagnitude func(t float64) float64, maxSecondDerivativeMagnitude float64) (*ArcLengthParameterization, error) {
	if maxError <= 0 {
		return nil, fmt.Errorf("arc-length parameterization with tolerance %v: %w", maxError, ErrInvalidTolerance)
	}
	n := 1
	for float64(n) < maxSecondDerivativeMagnitude/(8*maxError) && n < maxParameterizationSegments {
		n *= 2
	}
	cumulative := make([]float64, n+1)
	width := 1 / float64(n)
	for i := 1; i <= n; i++ {
		mid := (float64(i) - 0.5) * width
		cumulative[i] = cumulative[i-1] + width*derivativeMagnitude(mid)
	}
	return &ArcLengthParameterization{cumulative}, nil
}

// TotalArcLength returns the arc length of the entire curve.
func (p *ArcLengthParameterization) TotalArcLength() float64 {
	return p.cumulative[len(p.cumulative)-1]
}

// ParameterValue returns the curve parameter at the given arc length from the
// start of the curve. Arc lengths outside [0, TotalArcLength()] are clamped.
// An arc length of exactly 0 or TotalArcLength() maps to exactly 0 or 1.
func (p *ArcLengthParameterization) ParameterValue(s float64) float64 {
	total := p.TotalArcLength()
	if s <= 0 || total <= 0 {
		return 0
	}
	if s >= total {
		return 1
	}
	// The smallest i with cumulative[i] >= s; i >= 1 since s > cumulative[0].
	i := sort.SearchFloat64s(p.cumulative, s)
	n := len(p.cumulative) - 1
	lo := p.cumulative[i-1]
	hi := p.cumulative[i]
	if hi == lo {
		return float64(i) / float64(n)
	}
	frac := (s - lo) / (hi - lo)
	return (float64(i-1) + frac) / float64(n)
}

// ArcLengthParameterized pairs a nondegenerate curve with an arc-length
// parameterization of it, supporting evaluation by distance along the curve
// instead of by parameter value.
type ArcLengthParameterized struct {
	nd    NondegenerateCurve
	param *ArcLengthParameterization
}

// ArcLengthParameterize builds an arc-length parameterization of the given
// nondegenerate curve, accurate to within maxError.
func ArcLengthParameterize(nd NondegenerateCurve, maxError float64) (ArcLengthParameterized, error) {
	c := nd.Curve()
	param, err := NewArcLengthParameterization(maxError, c.derivativeMagnitude(), c.maxSecondDerivativeMagnitude())
	if err != nil {
		return ArcLengthParameterized{}, err
	}
	return ArcLengthParameterized{nd, param}, nil
}

// ArcLength returns the total arc length of the curve.
func (p ArcLengthParameterized) ArcLength() float64 {
	return p.param.TotalArcLength()
}

// PointAlong returns the point at the given arc length from the start of the
// curve. Arc lengths outside [0, ArcLength()] are clamped.
func (p ArcLengthParameterized) PointAlong(s float64) Point {
	return p.nd.Curve().Eval(p.param.ParameterValue(s))
}

// TangentDirectionAlong returns the tangent direction at the given arc length
// from the start of the curve. Arc lengths outside [0, ArcLength()] are
// clamped.
func (p ArcLengthParameterized) TangentDirectionAlong(s float64) Direction {
	return p.nd.TangentDirection(p.param.ParameterValue(s))
}

// SampleAlong returns the point and tangent direction at the given arc length
// from the start of the curve. Arc lengths outside [0, ArcLength()] are
// clamped.
func (p ArcLengthParameterized) SampleAlong(s float64) (Point, Direction) {
	t := p.param.ParameterValue(s)
	return p.nd.Curve().Eval(t), p.nd.TangentDirection(t)
}

// Midpoint returns the point halfway along the curve by arc length, which is
// in general different from the point at parameter value 0.5.
func (p ArcLengthParameterized) Midpoint() Point {
	return p.PointAlong(0.5 * p.ArcLength())
}

// Parameterization returns the underlying arc-length parameterization.
func (p ArcLengthParameterized) Parameterization() *ArcLengthParameterization {
	return p.param
}

// Nondegenerate returns the underlying nondegenerate curve.
func (p ArcLengthParameterized) Nondegenerate() NondegenerateCurve {
	return p.nd
}

// Curve returns the underlying curve.
func (p ArcLengthParameterized) Curve() Curve {
	return p.nd.Curve()
}

// CurveArcLength returns the arc length of any curve, accurate to within
// maxError. Unlike ArcLengthParameterize it accepts degenerate curves, whose
// arc length is zero.
func CurveArcLength(c Curve, maxError float64) (float64, error) {
	param, err := NewArcLengthParameterization(maxError, c.derivativeMagnitude(), c.maxSecondDerivativeMagnitude())
	if err != nil {
		return math.NaN(), err
	}
	return param.TotalArcLength(), nil
}
