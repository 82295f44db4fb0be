package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestEllipticalArcCircular(t *testing.T) {
	// With equal radii and no axis rotation, an elliptical arc traces the
	// same points as a circular arc.
	e := EllipticalArc{Center: Pt(1, 2), Radii: Vec(1.5, 1.5), StartAngle: 0.3, SweepAngle: 1.7}
	a := Arc{Center: Pt(1, 2), Radius: 1.5, StartAngle: 0.3, SweepAngle: 1.7}
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, a.Eval(ts), e.Eval(ts), 1e-12)
	}
}

func TestEllipticalArcEval(t *testing.T) {
	e := EllipticalArc{
		Center:     Pt(0, 0),
		Radii:      Vec(2, 1),
		XRotation:  0.5 * math.Pi,
		StartAngle: 0,
		SweepAngle: 0.5 * math.Pi,
	}
	// The ellipse's long axis points along global y.
	assertNear(t, Pt(0, 2), e.Start(), 1e-12)
	assertNear(t, Pt(-1, 0), e.End(), 1e-12)
}

func TestEllipticalArcArcLength(t *testing.T) {
	// Against the circular arc, whose length is exact.
	e := EllipticalArc{Center: Pt(0, 0), Radii: Vec(2, 2), StartAngle: 0, SweepAngle: 0.5 * math.Pi}
	got, err := CurveArcLength(e, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-math.Pi) > 1e-6 {
		t.Errorf("got %v, want %v", got, math.Pi)
	}

	// A full ellipse with a = 2, b = 1; reference circumference from
	// numerically evaluating the elliptic integral.
	e = EllipticalArc{Center: Pt(0, 0), Radii: Vec(2, 1), StartAngle: 0, SweepAngle: 2 * math.Pi}
	const want = 9.688448220547676
	got, err = CurveArcLength(e, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEllipticalArcTangentDirection(t *testing.T) {
	e := EllipticalArc{
		Center:     Pt(1, -1),
		Radii:      Vec(2, 1),
		XRotation:  0.3,
		StartAngle: 0.2,
		SweepAngle: 1.9,
	}
	nd, err := Nondegenerate(e)
	if err != nil {
		t.Fatal(err)
	}
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		want, ok := e.FirstDerivative(ts).Direction()
		if !ok {
			t.Fatalf("unexpected zero derivative at t = %g", ts)
		}
		assertDirNear(t, want, nd.TangentDirection(ts), 1e-12)
	}
}

func TestEllipticalArcZeroXRadius(t *testing.T) {
	// With a zero x radius the arc moves along the ellipse's y axis,
	// reversing where cos(θ) changes sign. The first derivative vanishes at
	// the reversal, but the tangent direction is still defined.
	e := EllipticalArc{
		Center:     Pt(0, 0),
		Radii:      Vec(0, 1),
		StartAngle: 0,
		SweepAngle: math.Pi,
	}
	nd, err := Nondegenerate(e)
	if err != nil {
		t.Fatal(err)
	}
	assertDirNear(t, PosY, nd.TangentDirection(0.25), 1e-12)
	assertDirNear(t, NegY, nd.TangentDirection(0.75), 1e-12)

	// A negative sweep from θ = 0 starts out moving down instead.
	neg := e
	neg.SweepAngle = -math.Pi
	nd, err = Nondegenerate(neg)
	if err != nil {
		t.Fatal(err)
	}
	assertDirNear(t, NegY, nd.TangentDirection(0.25), 1e-12)
	assertDirNear(t, PosY, nd.TangentDirection(0.75), 1e-12)

	// The axis rotation carries over to the tangents.
	e.XRotation = 0.5 * math.Pi
	nd, err = Nondegenerate(e)
	if err != nil {
		t.Fatal(err)
	}
	assertDirNear(t, NegX, nd.TangentDirection(0.25), 1e-12)
	assertDirNear(t, PosX, nd.TangentDirection(0.75), 1e-12)
}

func TestEllipticalArcZeroYRadius(t *testing.T) {
	// With a zero y radius the arc moves along the ellipse's x axis. Starting
	// at θ = 0 with a positive sweep, the local x coordinate rx·cos(θ)
	// decreases until θ = π.
	e := EllipticalArc{
		Center:     Pt(0, 0),
		Radii:      Vec(1, 0),
		StartAngle: 0,
		SweepAngle: 2 * math.Pi,
	}
	nd, err := Nondegenerate(e)
	if err != nil {
		t.Fatal(err)
	}
	assertDirNear(t, NegX, nd.TangentDirection(0.25), 1e-12)
	assertDirNear(t, PosX, nd.TangentDirection(0.75), 1e-12)
}

func TestEllipticalArcDegenerate(t *testing.T) {
	var degenerate *DegenerateCurveError

	e := EllipticalArc{Center: Pt(1, 2), Radii: Vec(2, 1), StartAngle: 0.5, SweepAngle: 0}
	_, err := Nondegenerate(e)
	if !errors.As(err, &degenerate) {
		t.Fatalf("got error %v, expected DegenerateCurveError", err)
	}
	diff(t, e.Eval(0), degenerate.Point)

	e = EllipticalArc{Center: Pt(1, 2), Radii: Vec(0, 0), StartAngle: 0.5, SweepAngle: 1}
	_, err = Nondegenerate(e)
	if !errors.As(err, &degenerate) {
		t.Fatalf("got error %v, expected DegenerateCurveError", err)
	}
	diff(t, Pt(1, 2), degenerate.Point)
}

func TestEllipticalArcIsFinite(t *testing.T) {
	e := EllipticalArc{Center: Pt(1, -1), Radii: Vec(2, 1), XRotation: 0.3, StartAngle: 0.2, SweepAngle: 1.9}
	if e.IsInf() || e.IsNaN() {
		t.Error("expected a finite arc")
	}
	e.Radii = Vec(2, math.Inf(-1))
	if !e.IsInf() {
		t.Error("expected IsInf for an infinite radius")
	}
	e.Radii = Vec(2, 1)
	e.XRotation = math.NaN()
	if !e.IsNaN() {
		t.Error("expected IsNaN for a NaN axis rotation")
	}
}

func TestEllipticalArcReverse(t *testing.T) {
	e := EllipticalArc{Center: Pt(1, -1), Radii: Vec(2, 1), XRotation: 0.3, StartAngle: 0.2, SweepAngle: 1.9}
	r := e.Reverse()
	const n = 10
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		assertNear(t, e.Eval(ts), r.Eval(1-ts), 1e-12)
	}
}

func TestEllipticalArcBoundingBox(t *testing.T) {
	e := EllipticalArc{Center: Pt(1, -1), Radii: Vec(2, 1), XRotation: 0.3, StartAngle: 0.2, SweepAngle: 1.9}
	bbox := e.BoundingBox()
	const n = 50
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		pt := e.Eval(ts)
		if pt.X < bbox.X0 || pt.X > bbox.X1 || pt.Y < bbox.Y0 || pt.Y > bbox.Y1 {
			t.Errorf("point %s at t = %g outside bounding box %s", pt, ts, bbox)
		}
	}
}

func TestEllipticalArcTransforms(t *testing.T) {
	e := EllipticalArc{Center: Pt(1, -1), Radii: Vec(2, 1), XRotation: 0.3, StartAngle: 0.2, SweepAngle: 1.9}
	const n = 8
	samples := func(f func(float64) Point, g func(float64) Point, epsilon float64) {
		t.Helper()
		for i := range n + 1 {
			ts := float64(i) / float64(n)
			assertNear(t, f(ts), g(ts), epsilon)
		}
	}

	v := Vec(3, -4)
	samples(func(ts float64) Point { return e.Eval(ts).Translate(v) }, e.Translate(v).Eval, 1e-12)

	center := Pt(-1, 0.5)
	samples(func(ts float64) Point { return e.Eval(ts).RotateAround(center, 0.7) }, e.RotateAround(center, 0.7).Eval, 1e-12)

	samples(func(ts float64) Point { return e.Eval(ts).ScaleAbout(center, 2.5) }, e.ScaleAbout(center, 2.5).Eval, 1e-11)
	samples(func(ts float64) Point { return e.Eval(ts).ScaleAbout(center, -2.5) }, e.ScaleAbout(center, -2.5).Eval, 1e-11)
}

func TestEllipticalArcPlaceIn(t *testing.T) {
	e := EllipticalArc{Center: Pt(1, -1), Radii: Vec(2, 1), XRotation: 0.3, StartAngle: 0.2, SweepAngle: 1.9}
	frames := []Frame{
		FrameAt(Pt(2, -1)),
		FrameWithAngle(Pt(2, -1), 0.6),
		FrameAt(Pt(2, -1)).FlipY(),
		FrameWithAngle(Pt(2, -1), 0.6).FlipY(),
	}
	const n = 8
	for _, f := range frames {
		placed := e.PlaceIn(f)
		for i := range n + 1 {
			ts := float64(i) / float64(n)
			assertNear(t, f.PlacePoint(e.Eval(ts)), placed.Eval(ts), 1e-12)
		}
		back := placed.RelativeTo(f)
		for i := range n + 1 {
			ts := float64(i) / float64(n)
			assertNear(t, e.Eval(ts), back.Eval(ts), 1e-12)
		}
	}
}
