package raster

import "math"

// FlattenTolerance is the maximum distance, in device pixels, between a
// curve and its line approximation.
const FlattenTolerance = 0.25

// Flatten converts path (under transform) into line segments appended to
// buf, which is returned. Curves are subdivided by an error bound derived
// from the control polygon (Wang's formula).
func Flatten(path *Path, transform Affine, buf []Line) []Line {
	var (
		start   Point
		current Point
		open    bool
	)

	emit := func(a, b Point) {
		if a == b {
			return
		}
		buf = append(buf, Line{
			X0: float32(a.X), Y0: float32(a.Y),
			X1: float32(b.X), Y1: float32(b.Y),
		})
	}

	closeSub := func() {
		if open && current != start {
			emit(current, start)
		}
		open = false
	}

	pi := 0
	for _, v := range path.Verbs {
		switch v {
		case VerbMoveTo:
			closeSub()
			start = transform.Apply(path.Points[pi])
			current = start
			open = true
			pi++
		case VerbLineTo:
			p := transform.Apply(path.Points[pi])
			emit(current, p)
			current = p
			pi++
		case VerbQuadTo:
			c := transform.Apply(path.Points[pi])
			p := transform.Apply(path.Points[pi+1])
			buf = flattenQuad(current, c, p, buf)
			current = p
			pi += 2
		case VerbCubicTo:
			c1 := transform.Apply(path.Points[pi])
			c2 := transform.Apply(path.Points[pi+1])
			p := transform.Apply(path.Points[pi+2])
			buf = flattenCubic(current, c1, c2, p, buf)
			current = p
			pi += 3
		case VerbClose:
			closeSub()
			current = start
		}
	}
	closeSub()

	return buf
}

// quadSegments bounds the segment count for a quadratic via Wang's formula:
// n >= sqrt(L / (8*tol)) where L bounds the second derivative.
func quadSegments(p0, c, p1 Point) int {
	dx := p0.X - 2*c.X + p1.X
	dy := p0.Y - 2*c.Y + p1.Y
	l := math.Hypot(dx, dy)
	n := int(math.Ceil(math.Sqrt(l / (4 * FlattenTolerance))))
	if n < 1 {
		n = 1
	}
	return n
}

func flattenQuad(p0, c, p1 Point, buf []Line) []Line {
	n := quadSegments(p0, c, p1)
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		p := Point{
			X: mt*mt*p0.X + 2*mt*t*c.X + t*t*p1.X,
			Y: mt*mt*p0.Y + 2*mt*t*c.Y + t*t*p1.Y,
		}
		if p != prev {
			buf = append(buf, Line{
				X0: float32(prev.X), Y0: float32(prev.Y),
				X1: float32(p.X), Y1: float32(p.Y),
			})
		}
		prev = p
	}
	return buf
}

func cubicSegments(p0, c1, c2, p1 Point) int {
	d1 := math.Hypot(p0.X-2*c1.X+c2.X, p0.Y-2*c1.Y+c2.Y)
	d2 := math.Hypot(c1.X-2*c2.X+p1.X, c1.Y-2*c2.Y+p1.Y)
	l := 6 * math.Max(d1, d2)
	n := int(math.Ceil(math.Sqrt(l / (8 * FlattenTolerance))))
	if n < 1 {
		n = 1
	}
	return n
}

func flattenCubic(p0, c1, c2, p1 Point, buf []Line) []Line {
	n := cubicSegments(p0, c1, c2, p1)
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		p := Point{
			X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
			Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
		}
		if p != prev {
			buf = append(buf, Line{
				X0: float32(prev.X), Y0: float32(prev.Y),
				X1: float32(p.X), Y1: float32(p.Y),
			})
		}
		prev = p
	}
	return buf
}
