package geometry

import (
	"math"
	"testing"
)

func TestDirectionFromVec(t *testing.T) {
	d, ok := Vec(3, 4).Direction()
	if !ok {
		t.Fatal("expected a direction")
	}
	diff(t, Vec(0.6, 0.8), d.Vec2())

	if _, ok := Vec(0, 0).Direction(); ok {
		t.Error("expected no direction for the zero vector")
	}

	x, y := d.Splat()
	diff(t, 0.6, x)
	diff(t, 0.8, y)
	diff(t, 0.6, d.X())
	diff(t, 0.8, d.Y())
}

func TestDirectionAngle(t *testing.T) {
	for _, angle := range []float64{0, 0.25 * math.Pi, 0.5 * math.Pi, math.Pi, -0.75 * math.Pi} {
		d := DirectionFromAngle(angle)
		if got := d.Angle(); math.Abs(got-angle) > 1e-12 {
			t.Errorf("got angle %v, want %v", got, angle)
		}
	}
}

func TestDirectionPerpendicular(t *testing.T) {
	assertDirNear(t, PosY, PosX.Perpendicular(), 1e-15)
	assertDirNear(t, NegX, PosY.Perpendicular(), 1e-15)
	assertDirNear(t, NegY, NegX.Perpendicular(), 1e-15)
	assertDirNear(t, PosX, NegY.Perpendicular(), 1e-15)
}

func TestDirectionReverse(t *testing.T) {
	assertDirNear(t, NegX, PosX.Reverse(), 1e-15)
	d := DirectionFromAngle(0.3)
	assertDirNear(t, DirectionFromAngle(0.3+math.Pi), d.Reverse(), 1e-12)
}

func TestDirectionRotateBy(t *testing.T) {
	d := DirectionFromAngle(0.3)
	assertDirNear(t, DirectionFromAngle(1.0), d.RotateBy(0.7), 1e-12)
	assertDirNear(t, d.Perpendicular(), d.RotateBy(0.5*math.Pi), 1e-12)
}

func TestDirectionMirror(t *testing.T) {
	// Mirroring across the x axis negates the y component.
	d := DirectionFromAngle(0.3)
	assertDirNear(t, DirectionFromAngle(-0.3), d.Mirror(PosX), 1e-12)
	// Mirroring across the direction's own axis is the identity.
	assertDirNear(t, d, d.Mirror(d), 1e-12)
	// Mirroring across the perpendicular axis reverses.
	assertDirNear(t, d.Reverse(), d.Mirror(d.Perpendicular()), 1e-12)
}
