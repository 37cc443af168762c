package raster

// Color is a premultiplied RGBA8 color.
type Color [4]uint8

// ColorFromRGBA builds a premultiplied color from non-premultiplied float
// components in [0, 1].
func ColorFromRGBA(r, g, b, a float64) Color {
	clamp := func(v float64) float64 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	a = clamp(a)
	return Color{
		uint8(clamp(r)*a*255 + 0.5),
		uint8(clamp(g)*a*255 + 0.5),
		uint8(clamp(b)*a*255 + 0.5),
		uint8(a*255 + 0.5),
	}
}

// WithAlpha scales the color's alpha (and, being premultiplied, every
// channel) by a in [0, 1].
func (c Color) WithAlpha(a float64) Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return Color{
		uint8(float64(c[0])*a + 0.5),
		uint8(float64(c[1])*a + 0.5),
		uint8(float64(c[2])*a + 0.5),
		uint8(float64(c[3])*a + 0.5),
	}
}

// Extend controls sampling outside a paint's natural domain.
type Extend uint8

const (
	ExtendPad Extend = iota
	ExtendRepeat
	ExtendReflect
)

// Paint is a source of pixel values for the fine stage. Solid paints hit
// dedicated kernels; the others evaluate per pixel through EvalRow.
type Paint interface {
	// EvalRow writes w premultiplied pixels for device row y starting at
	// device column x into dst (len >= w*4).
	EvalRow(x, y, w int, dst []uint8)

	// Opaque reports whether every evaluated pixel is fully opaque.
	Opaque() bool
}

// SolidPaint is a single premultiplied color.
type SolidPaint struct {
	Color Color
}

func (p SolidPaint) EvalRow(x, y, w int, dst []uint8) {
	for i := 0; i < w; i++ {
		dst[i*4+0] = p.Color[0]
		dst[i*4+1] = p.Color[1]
		dst[i*4+2] = p.Color[2]
		dst[i*4+3] = p.Color[3]
	}
}

func (p SolidPaint) Opaque() bool {
	return p.Color[3] == 255
}
