// Package geometry provides 2D parametric curve primitives (line segments,
// circular arcs, elliptical arcs, and quadratic and cubic Bézier curves)
// together with tangent direction evaluation and arc-length parameterization.
//
// # Curves
//
// Each curve family is an immutable value type implementing [Curve]. Curves
// are evaluated at a parameter t ∈ [0, 1] with [Curve.Eval]; their exact
// first derivative with respect to t is available via
// [Curve.FirstDerivative]. The set of curve families is fixed: the package
// relies on per-family closed-form derivative bounds, so [Curve] cannot be
// implemented outside this package.
//
// # Nondegenerate curves
//
// Many operations, most importantly tangent directions, are only defined
// for curves that do not collapse to a single point. [Nondegenerate] checks a
// curve once and returns a [NondegenerateCurve] that is guaranteed to have a
// well-defined tangent direction at every parameter value, including at
// cusps, where the direction is recovered from higher-order derivatives. If
// the curve is a single point, the returned error is a
// [*DegenerateCurveError] carrying that point.
//
// # Arc-length parameterization
//
// Curves are parameterized by an arbitrary parameter t, not by distance along
// the curve: Eval(0.5) is generally not the point halfway along the curve.
// [ArcLengthParameterize] builds a lookup table mapping arc length to
// parameter values, accurate to a caller-specified maximum error, using
// adaptive midpoint-rule subdivision driven by each family's derivative
// magnitude bound. The resulting [ArcLengthParameterized] supports
// distance-based queries: [ArcLengthParameterized.PointAlong],
// [ArcLengthParameterized.TangentDirectionAlong], and
// [ArcLengthParameterized.Midpoint] (the point halfway along the curve by
// distance). Arc lengths outside [0, total length] are clamped, never
// rejected.
//
// # Coordinate frames and transformations
//
// [Frame] represents a Cartesian coordinate frame (an origin and a pair of
// perpendicular axis directions). All geometric values can be converted
// between frames with PlaceIn and RelativeTo methods, and every curve family
// supports Translate, RotateAround, ScaleAbout, and Reverse.
//
// All types in this package are pure values: construction and queries have no
// side effects, and values can be shared freely between goroutines.
package geometry
