package raster

import (
	"math"
	"testing"
)

func pointsClose(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestAffineInverseRoundTrip(t *testing.T) {
	tr := Translate(12, -3).Mul(Rotate(0.7)).Mul(Scale(2.5))
	inv := tr.Inverse()

	pts := []Point{{0, 0}, {1, 0}, {0, 1}, {-5, 17}, {123.4, -56.7}}
	for _, p := range pts {
		q := inv.Apply(tr.Apply(p))
		if !pointsClose(p, q, 1e-9) {
			t.Errorf("inverse round trip moved %v to %v", p, q)
		}
	}
}

func TestAffineMulOrder(t *testing.T) {
	// Mul applies the right operand first.
	tr := Translate(10, 0).Mul(Scale(2))
	got := tr.Apply(Point{3, 0})
	want := Point{16, 0}
	if !pointsClose(got, want, 1e-12) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRotateAboutFixesCenter(t *testing.T) {
	center := Point{100, 50}
	tr := RotateAbout(1.234, center)
	if got := tr.Apply(center); !pointsClose(got, center, 1e-9) {
		t.Fatalf("center moved to %v", got)
	}
}

func TestPathRect(t *testing.T) {
	var p Path
	p.Rect(1, 2, 3, 4)
	wantVerbs := []Verb{VerbMoveTo, VerbLineTo, VerbLineTo, VerbLineTo, VerbClose}
	if len(p.Verbs) != len(wantVerbs) {
		t.Fatalf("verb count = %d, want %d", len(p.Verbs), len(wantVerbs))
	}
	for i, v := range wantVerbs {
		if p.Verbs[i] != v {
			t.Errorf("verb %d = %d, want %d", i, p.Verbs[i], v)
		}
	}
	if p.Empty() {
		t.Error("rect path reported empty")
	}
}
