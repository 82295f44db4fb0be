package geometry

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	diff(t, 5.0, Pt(0, 0).Distance(Pt(3, 4)))
	diff(t, 25.0, Pt(0, 0).DistanceSquared(Pt(3, 4)))
	diff(t, Pt(2, 3), Pt(1, 2).Midpoint(Pt(3, 4)))
}

func TestPointRotateAround(t *testing.T) {
	assertNear(t, Pt(0, 1), Pt(1, 0).RotateAround(Pt(0, 0), 0.5*math.Pi), 1e-12)
	assertNear(t, Pt(1, 2), Pt(3, 2).RotateAround(Pt(2, 2), math.Pi), 1e-12)
	// Rotating about itself is the identity.
	assertNear(t, Pt(3, 2), Pt(3, 2).RotateAround(Pt(3, 2), 1.234), 1e-12)
}

func TestPointScaleAbout(t *testing.T) {
	diff(t, Pt(4, 6), Pt(2, 3).ScaleAbout(Pt(0, 0), 2))
	diff(t, Pt(0, 1), Pt(2, 3).ScaleAbout(Pt(1, 2), -1))
}

func TestVec2Basics(t *testing.T) {
	diff(t, 5.0, Vec(3, 4).Hypot())
	diff(t, 25.0, Vec(3, 4).Hypot2())
	diff(t, 11.0, Vec(1, 2).Dot(Vec(3, 4)))
	diff(t, -2.0, Vec(1, 2).Cross(Vec(3, 4)))
	diff(t, Vec(2, 3), Vec(0, 1).Lerp(Vec(4, 5), 0.5))
	diff(t, Vec(1, 2), Vec(2, 4).Div(2))

	x, y := Vec(3, 4).Splat()
	diff(t, 3.0, x)
	diff(t, 4.0, y)
	px, py := Pt(5, 6).Splat()
	diff(t, 5.0, px)
	diff(t, 6.0, py)
}

func TestVecFromAngle(t *testing.T) {
	diff(t, Vec(1, 0), VecFromAngle(0))
	got := VecFromAngle(0.5 * math.Pi)
	if d := got.Sub(Vec(0, 1)).Hypot(); d > 1e-12 {
		t.Errorf("got %s, want ⟨0, 1⟩", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	got := Vec(1, 0).Rotate(0.5 * math.Pi)
	if d := got.Sub(Vec(0, 1)).Hypot(); d > 1e-12 {
		t.Errorf("got %s, want ⟨0, 1⟩", got)
	}
	got = Vec(1, 2).Rotate(math.Pi)
	if d := got.Sub(Vec(-1, -2)).Hypot(); d > 1e-12 {
		t.Errorf("got %s, want ⟨-1, -2⟩", got)
	}
}
