package raster

import "math"

// GradientKind selects the gradient geometry.
type GradientKind uint8

const (
	GradientLinear GradientKind = iota
	GradientRadial
	GradientSweep
)

// Stop is one color stop with a non-premultiplied RGBA color.
type Stop struct {
	Offset     float64
	R, G, B, A float64
}

// Gradient describes a gradient paint before encoding.
type Gradient struct {
	Kind   GradientKind
	Extend Extend
	Stops  []Stop

	// Linear geometry.
	Start, End Point
	// Radial geometry (concentric circles).
	Center             Point
	Radius0, Radius1   float64
	// Sweep geometry (angles in radians).
	StartAngle, EndAngle float64
}

// lutSize is the color lookup resolution; 512 entries keep banding below
// the 8-bit quantization floor.
const lutSize = 512

// EncodedGradient is a gradient prepared for per-pixel evaluation: the
// stop ramp is baked into a premultiplied LUT and the geometry is inverted
// into device space.
type EncodedGradient struct {
	kind   GradientKind
	extend Extend
	lut    [lutSize]Color
	inv    Affine

	// Linear: unit projection of p-start onto end-start.
	start      Point
	dx, dy     float64
	invLenSq   float64
	// Radial.
	center     Point
	r0, deltaR float64
	// Sweep.
	a0, deltaA float64

	opaque bool
}

// Encode bakes the gradient under the given paint transform.
func (g *Gradient) Encode(transform Affine) *EncodedGradient {
	e := &EncodedGradient{
		kind:   g.Kind,
		extend: g.Extend,
		inv:    transform.Inverse(),
		start:  g.Start,
		center: g.Center,
		r0:     g.Radius0,
		deltaR: g.Radius1 - g.Radius0,
		a0:     g.StartAngle,
		deltaA: g.EndAngle - g.StartAngle,
	}

	e.dx = g.End.X - g.Start.X
	e.dy = g.End.Y - g.Start.Y
	lenSq := e.dx*e.dx + e.dy*e.dy
	if lenSq > 0 {
		e.invLenSq = 1 / lenSq
	}
	if e.deltaR == 0 {
		e.deltaR = 1
	}
	if e.deltaA == 0 {
		e.deltaA = 1
	}

	e.bakeLUT(g.Stops)
	return e
}

// bakeLUT rasterizes the stop ramp into the lookup table.
func (e *EncodedGradient) bakeLUT(stops []Stop) {
	if len(stops) == 0 {
		return
	}
	e.opaque = true

	si := 0
	for i := 0; i < lutSize; i++ {
		t := float64(i) / (lutSize - 1)
		for si+1 < len(stops) && stops[si+1].Offset < t {
			si++
		}

		var r, g, b, a float64
		switch {
		case t <= stops[0].Offset:
			s := stops[0]
			r, g, b, a = s.R, s.G, s.B, s.A
		case si+1 >= len(stops):
			s := stops[len(stops)-1]
			r, g, b, a = s.R, s.G, s.B, s.A
		default:
			s0, s1 := stops[si], stops[si+1]
			span := s1.Offset - s0.Offset
			f := 0.0
			if span > 0 {
				f = (t - s0.Offset) / span
			}
			r = s0.R + (s1.R-s0.R)*f
			g = s0.G + (s1.G-s0.G)*f
			b = s0.B + (s1.B-s0.B)*f
			a = s0.A + (s1.A-s0.A)*f
		}

		c := ColorFromRGBA(r, g, b, a)
		if c[3] != 255 {
			e.opaque = false
		}
		e.lut[i] = c
	}
}

func (e *EncodedGradient) Opaque() bool {
	return e.opaque
}

// EvalRow evaluates the gradient for one device row.
func (e *EncodedGradient) EvalRow(x, y, w int, dst []uint8) {
	for i := 0; i < w; i++ {
		p := e.inv.Apply(Point{float64(x+i) + 0.5, float64(y) + 0.5})

		var t float64
		switch e.kind {
		case GradientRadial:
			d := math.Hypot(p.X-e.center.X, p.Y-e.center.Y)
			t = (d - e.r0) / e.deltaR
		case GradientSweep:
			a := math.Atan2(p.Y-e.center.Y, p.X-e.center.X)
			t = (a - e.a0) / e.deltaA
		default:
			t = ((p.X-e.start.X)*e.dx + (p.Y-e.start.Y)*e.dy) * e.invLenSq
		}

		c := e.lut[e.lutIndex(t)]
		o := i * 4
		dst[o+0] = c[0]
		dst[o+1] = c[1]
		dst[o+2] = c[2]
		dst[o+3] = c[3]
	}
}

// lutIndex maps a parameter to a LUT slot under the extend mode.
func (e *EncodedGradient) lutIndex(t float64) int {
	switch e.extend {
	case ExtendRepeat:
		t = t - math.Floor(t)
	case ExtendReflect:
		t = math.Mod(t, 2)
		if t < 0 {
			t += 2
		}
		if t > 1 {
			t = 2 - t
		}
	default:
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
	}
	i := int(t * (lutSize - 1))
	if i < 0 {
		i = 0
	}
	if i >= lutSize {
		i = lutSize - 1
	}
	return i
}
