package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertDirNear(t *testing.T, d0 Direction, d1 Direction, epsilon float64) {
	t.Helper()
	if d := d1.Vec2().Sub(d0.Vec2()).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", d0, d1)
	}
}
