package raster

import "math"

// ImageQuality selects the sampling filter for image paints.
type ImageQuality uint8

const (
	// QualityLow is nearest-neighbor sampling.
	QualityLow ImageQuality = iota
	// QualityMedium is bilinear sampling.
	QualityMedium
	// QualityHigh is bicubic (Catmull-Rom) sampling.
	QualityHigh
)

// ImagePaint describes an image paint before encoding.
type ImagePaint struct {
	Pixmap   *Pixmap
	Quality  ImageQuality
	XExtend  Extend
	YExtend  Extend
	Alpha    float64
}

// EncodedImage is an image paint prepared for per-pixel evaluation.
type EncodedImage struct {
	pm      *Pixmap
	inv     Affine
	quality ImageQuality
	xExtend Extend
	yExtend Extend
	alpha   uint32
}

// Encode inverts the paint transform for device-to-source mapping.
func (p ImagePaint) Encode(transform Affine) *EncodedImage {
	alpha := p.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	return &EncodedImage{
		pm:      p.Pixmap,
		inv:     transform.Inverse(),
		quality: p.Quality,
		xExtend: p.XExtend,
		yExtend: p.YExtend,
		alpha:   uint32(alpha*255 + 0.5),
	}
}

func (e *EncodedImage) Opaque() bool {
	// Sampling may hit the pad border, so image paints are never assumed
	// opaque.
	return false
}

// EvalRow samples the image for one device row.
func (e *EncodedImage) EvalRow(x, y, w int, dst []uint8) {
	for i := 0; i < w; i++ {
		p := e.inv.Apply(Point{float64(x+i) + 0.5, float64(y) + 0.5})

		var c Color
		switch e.quality {
		case QualityMedium:
			c = e.sampleBilinear(p.X-0.5, p.Y-0.5)
		case QualityHigh:
			c = e.sampleBicubic(p.X-0.5, p.Y-0.5)
		default:
			c = e.texel(int(math.Floor(p.X)), int(math.Floor(p.Y)))
		}

		if e.alpha != 255 {
			c = Color{
				uint8(div255(uint32(c[0]) * e.alpha)),
				uint8(div255(uint32(c[1]) * e.alpha)),
				uint8(div255(uint32(c[2]) * e.alpha)),
				uint8(div255(uint32(c[3]) * e.alpha)),
			}
		}

		o := i * 4
		dst[o+0] = c[0]
		dst[o+1] = c[1]
		dst[o+2] = c[2]
		dst[o+3] = c[3]
	}
}

// texel fetches a source pixel under the extend modes.
func (e *EncodedImage) texel(ix, iy int) Color {
	ix = extendIndex(ix, e.pm.Width, e.xExtend)
	iy = extendIndex(iy, e.pm.Height, e.yExtend)
	if ix < 0 || iy < 0 {
		return Color{}
	}
	i := (iy*e.pm.Width + ix) * 4
	return Color{e.pm.Pix[i], e.pm.Pix[i+1], e.pm.Pix[i+2], e.pm.Pix[i+3]}
}

// extendIndex maps an out-of-range index into [0, n). Pad clamps; repeat
// wraps; reflect mirrors.
func extendIndex(i, n int, ext Extend) int {
	if n <= 0 {
		return -1
	}
	switch ext {
	case ExtendRepeat:
		i %= n
		if i < 0 {
			i += n
		}
	case ExtendReflect:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
	default:
		if i < 0 {
			i = 0
		}
		if i >= n {
			i = n - 1
		}
	}
	return i
}

func (e *EncodedImage) sampleBilinear(fx, fy float64) Color {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := e.texel(x0, y0)
	c10 := e.texel(x0+1, y0)
	c01 := e.texel(x0, y0+1)
	c11 := e.texel(x0+1, y0+1)

	var out Color
	for ch := 0; ch < 4; ch++ {
		top := float64(c00[ch])*(1-tx) + float64(c10[ch])*tx
		bot := float64(c01[ch])*(1-tx) + float64(c11[ch])*tx
		out[ch] = uint8(top*(1-ty) + bot*ty + 0.5)
	}
	return out
}

// catmullRom evaluates the Catmull-Rom kernel weight at distance t.
func catmullRom(t float64) float64 {
	t = math.Abs(t)
	switch {
	case t < 1:
		return 1.5*t*t*t - 2.5*t*t + 1
	case t < 2:
		return -0.5*t*t*t + 2.5*t*t - 4*t + 2
	default:
		return 0
	}
}

func (e *EncodedImage) sampleBicubic(fx, fy float64) Color {
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	var acc [4]float64
	for j := -1; j <= 2; j++ {
		wy := catmullRom(float64(j) - ty)
		if wy == 0 {
			continue
		}
		for i := -1; i <= 2; i++ {
			wx := catmullRom(float64(i) - tx)
			if wx == 0 {
				continue
			}
			c := e.texel(x0+i, y0+j)
			w := wx * wy
			acc[0] += float64(c[0]) * w
			acc[1] += float64(c[1]) * w
			acc[2] += float64(c[2]) * w
			acc[3] += float64(c[3]) * w
		}
	}

	var out Color
	for ch := 0; ch < 4; ch++ {
		v := acc[ch]
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		out[ch] = uint8(v + 0.5)
	}
	// Premultiplied invariant: channels never exceed alpha.
	for ch := 0; ch < 3; ch++ {
		if out[ch] > out[3] {
			out[ch] = out[3]
		}
	}
	return out
}
