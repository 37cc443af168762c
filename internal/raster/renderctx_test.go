package raster

import "testing"

func TestRenderContextFillRect(t *testing.T) {
	dst := NewPixmap(16, 16)
	rc := NewRenderContext(16, 16)
	red := Color{255, 0, 0, 255}
	rc.SetPaint(SolidPaint{Color: red})
	rc.FillRect(2, 2, 6, 6, dst)

	if got := dst.At(3, 3); got != red {
		t.Errorf("interior = %v, want %v", got, red)
	}
	if got := dst.At(5, 5); got != red {
		t.Errorf("interior corner = %v, want %v", got, red)
	}
	for _, p := range [][2]int{{1, 3}, {6, 3}, {3, 1}, {3, 6}, {15, 15}} {
		if got := dst.At(p[0], p[1]); got != (Color{}) {
			t.Errorf("outside pixel %v = %v, want transparent", p, got)
		}
	}
}

func TestRenderContextCompositesOver(t *testing.T) {
	dst := NewPixmap(16, 16)
	rc := NewRenderContext(16, 16)

	rc.SetPaint(SolidPaint{Color: Color{255, 0, 0, 255}})
	rc.FillRect(2, 2, 10, 10, dst)
	rc.SetPaint(SolidPaint{Color: Color{0, 255, 0, 255}})
	rc.FillRect(6, 2, 14, 10, dst)

	if got := dst.At(3, 5); got != (Color{255, 0, 0, 255}) {
		t.Errorf("left half = %v, want red", got)
	}
	if got := dst.At(8, 5); got != (Color{0, 255, 0, 255}) {
		t.Errorf("overlap = %v, want green on top", got)
	}
	if got := dst.At(12, 5); got != (Color{0, 255, 0, 255}) {
		t.Errorf("right half = %v, want green", got)
	}
}

func TestRenderContextFillPathTransform(t *testing.T) {
	dst := NewPixmap(32, 32)
	rc := NewRenderContext(32, 32)
	rc.SetPaint(SolidPaint{Color: Color{0, 0, 255, 255}})

	var p Path
	p.Rect(0, 0, 4, 4)
	rc.FillPath(&p, Translate(10, 10), dst)

	if got := dst.At(11, 11); got != (Color{0, 0, 255, 255}) {
		t.Errorf("translated fill = %v, want blue", got)
	}
	if got := dst.At(2, 2); got != (Color{}) {
		t.Errorf("origin = %v, want transparent", got)
	}
}

func TestRenderContextGradientFill(t *testing.T) {
	dst := NewPixmap(32, 32)
	rc := NewRenderContext(32, 32)

	g := Gradient{
		Kind:   GradientLinear,
		Extend: ExtendPad,
		Stops:  blackToWhite(),
		Start:  Point{0, 0},
		End:    Point{32, 0},
	}
	rc.SetPaint(g.Encode(Identity))
	rc.FillRect(2, 2, 30, 30, dst)

	left := dst.At(3, 16)
	right := dst.At(28, 16)
	if left[0] >= right[0] {
		t.Errorf("gradient did not ramp: left %v right %v", left, right)
	}
	if left[3] != 255 || right[3] != 255 {
		t.Errorf("gradient fill lost alpha: %v %v", left, right)
	}
}

func TestRenderContextStrokedPath(t *testing.T) {
	dst := NewPixmap(32, 32)
	rc := NewRenderContext(32, 32)
	rc.SetPaint(SolidPaint{Color: Color{255, 255, 255, 255}})

	var p Path
	p.MoveTo(4, 16)
	p.LineTo(28, 16)
	stroke := ExpandStroke(&p, 4)
	rc.FillPath(stroke, Identity, dst)

	on := dst.At(16, 16)
	if on[3] < 200 {
		t.Errorf("stroke center = %v, want near opaque", on)
	}
	off := dst.At(16, 25)
	if off[3] != 0 {
		t.Errorf("far from stroke = %v, want transparent", off)
	}
}

func TestRenderContextReset(t *testing.T) {
	rc := NewRenderContext(8, 8)
	dst := NewPixmap(8, 8)
	rc.SetPaint(SolidPaint{Color: Color{255, 0, 0, 255}})
	rc.FillRect(1, 1, 5, 5, dst)

	rc.Reset()
	dst2 := NewPixmap(8, 8)
	rc.FillRect(1, 1, 5, 5, dst2)
	if got := dst2.At(2, 2); got != (Color{0, 0, 0, 255}) {
		t.Errorf("after reset fill = %v, want default black", got)
	}
}
