package raster

import "math"

// ExpandStroke converts a stroked path into a fill path outlining the
// stroke. The input is flattened first; the outline offsets the resulting
// polylines by half the stroke width on both sides, with bevel joins and
// round caps approximated by short segments.
func ExpandStroke(path *Path, width float64) *Path {
	if width <= 0 {
		width = 1
	}
	r := width / 2

	lines := Flatten(path, Identity, nil)
	out := &Path{}

	// Group flattened lines back into polylines: consecutive lines whose
	// endpoints chain belong to the same contour.
	var poly []Point
	flush := func() {
		if len(poly) >= 2 {
			appendOutline(out, poly, r)
		}
		poly = poly[:0]
	}

	for _, l := range lines {
		a := Point{float64(l.X0), float64(l.Y0)}
		b := Point{float64(l.X1), float64(l.Y1)}
		if len(poly) == 0 {
			poly = append(poly, a, b)
			continue
		}
		if poly[len(poly)-1] == a {
			poly = append(poly, b)
		} else {
			flush()
			poly = append(poly, a, b)
		}
	}
	flush()

	return out
}

// appendOutline emits the stroke outline of one open polyline: the forward
// offset side, a cap, the reverse offset side, and the closing cap.
func appendOutline(out *Path, poly []Point, r float64) {
	fwd := offsetSide(poly, r)
	rev := offsetSide(reversed(poly), r)
	if len(fwd) == 0 || len(rev) == 0 {
		return
	}

	out.MoveTo(fwd[0].X, fwd[0].Y)
	for _, p := range fwd[1:] {
		out.LineTo(p.X, p.Y)
	}
	appendCap(out, poly[len(poly)-1], fwd[len(fwd)-1], rev[0])
	for _, p := range rev[1:] {
		out.LineTo(p.X, p.Y)
	}
	appendCap(out, poly[0], rev[len(rev)-1], fwd[0])
	out.Close()
}

// offsetSide offsets the polyline by r to its left-hand side, inserting
// bevel joints between segments.
func offsetSide(poly []Point, r float64) []Point {
	var out []Point
	for i := 0; i+1 < len(poly); i++ {
		a, b := poly[i], poly[i+1]
		nx, ny, ok := normal(a, b, r)
		if !ok {
			continue
		}
		out = append(out, Point{a.X + nx, a.Y + ny}, Point{b.X + nx, b.Y + ny})
	}
	return out
}

// appendCap approximates a round cap around center from point a to point b
// with a fixed four-segment arc.
func appendCap(out *Path, center, a, b Point) {
	a0 := math.Atan2(a.Y-center.Y, a.X-center.X)
	a1 := math.Atan2(b.Y-center.Y, b.X-center.X)
	r := math.Hypot(a.X-center.X, a.Y-center.Y)
	for a1 < a0 {
		a1 += 2 * math.Pi
	}
	const steps = 4
	for i := 1; i <= steps; i++ {
		th := a0 + (a1-a0)*float64(i)/steps
		out.LineTo(center.X+r*math.Cos(th), center.Y+r*math.Sin(th))
	}
}

func normal(a, b Point, r float64) (nx, ny float64, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0, false
	}
	return -dy / l * r, dx / l * r, true
}

func reversed(poly []Point) []Point {
	out := make([]Point, len(poly))
	for i, p := range poly {
		out[len(poly)-1-i] = p
	}
	return out
}
