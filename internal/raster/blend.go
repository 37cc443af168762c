package raster

import "math"

// Mix is a separable or non-separable color mixing mode (CSS compositing
// level 1 set).
type Mix uint8

const (
	MixNormal Mix = iota
	MixMultiply
	MixScreen
	MixOverlay
	MixDarken
	MixLighten
	MixColorDodge
	MixColorBurn
	MixHardLight
	MixSoftLight
	MixDifference
	MixExclusion
	MixHue
	MixSaturation
	MixColor
	MixLuminosity
)

// Compose is a Porter-Duff compositing operator.
type Compose uint8

const (
	ComposeSrcOver Compose = iota
	ComposeSrcIn
	ComposeDestOver
	ComposeXor
)

// BlendMode pairs a mix mode with a compositing operator.
type BlendMode struct {
	Mix     Mix
	Compose Compose
}

// DefaultBlend is normal mixing with source-over compositing, the fast
// path for every kernel level.
var DefaultBlend = BlendMode{Mix: MixNormal, Compose: ComposeSrcOver}

// IsDefault reports whether the mode can take the src-over fast path.
func (b BlendMode) IsDefault() bool {
	return b.Mix == MixNormal && b.Compose == ComposeSrcOver
}

// blendSpan composites src over dst pixel by pixel under an arbitrary
// blend mode. Both spans are premultiplied RGBA8; the math runs on
// unpremultiplied floats as the mixing formulas require.
func blendSpan(dst, src []uint8, mode BlendMode) {
	n := min(len(dst), len(src))
	for i := 0; i+4 <= n; i += 4 {
		sr, sg, sb, sa := unpremul(src[i], src[i+1], src[i+2], src[i+3])
		dr, dg, db, da := unpremul(dst[i], dst[i+1], dst[i+2], dst[i+3])

		mr, mg, mb := mixColors(mode.Mix, sr, sg, sb, dr, dg, db)

		// Mixing only applies where the backdrop exists.
		cr := (1-da)*sr + da*mr
		cg := (1-da)*sg + da*mg
		cb := (1-da)*sb + da*mb

		// Porter-Duff on premultiplied terms.
		var fa, fb float64
		switch mode.Compose {
		case ComposeSrcIn:
			fa, fb = da, 0
		case ComposeDestOver:
			fa, fb = 1-da, 1
		case ComposeXor:
			fa, fb = 1-da, 1-sa
		default: // src-over
			fa, fb = 1, 1-sa
		}

		outA := sa*fa + da*fb
		outR := cr*sa*fa + dr*da*fb
		outG := cg*sa*fa + dg*da*fb
		outB := cb*sa*fa + db*da*fb

		dst[i+0] = floatToByte(outR)
		dst[i+1] = floatToByte(outG)
		dst[i+2] = floatToByte(outB)
		dst[i+3] = floatToByte(outA)
	}
}

func unpremul(r, g, b, a uint8) (fr, fg, fb, fa float64) {
	fa = float64(a) / 255
	if a == 0 {
		return 0, 0, 0, 0
	}
	fr = float64(r) / float64(a)
	fg = float64(g) / float64(a)
	fb = float64(b) / float64(a)
	return
}

func floatToByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// mixColors applies the mix mode to unpremultiplied source and backdrop
// colors.
func mixColors(m Mix, sr, sg, sb, dr, dg, db float64) (r, g, b float64) {
	switch m {
	case MixMultiply:
		return sr * dr, sg * dg, sb * db
	case MixScreen:
		return screen(sr, dr), screen(sg, dg), screen(sb, db)
	case MixOverlay:
		return hardLight(dr, sr), hardLight(dg, sg), hardLight(db, sb)
	case MixDarken:
		return math.Min(sr, dr), math.Min(sg, dg), math.Min(sb, db)
	case MixLighten:
		return math.Max(sr, dr), math.Max(sg, dg), math.Max(sb, db)
	case MixColorDodge:
		return colorDodge(sr, dr), colorDodge(sg, dg), colorDodge(sb, db)
	case MixColorBurn:
		return colorBurn(sr, dr), colorBurn(sg, dg), colorBurn(sb, db)
	case MixHardLight:
		return hardLight(sr, dr), hardLight(sg, dg), hardLight(sb, db)
	case MixSoftLight:
		return softLight(sr, dr), softLight(sg, dg), softLight(sb, db)
	case MixDifference:
		return math.Abs(sr - dr), math.Abs(sg - dg), math.Abs(sb - db)
	case MixExclusion:
		return sr + dr - 2*sr*dr, sg + dg - 2*sg*dg, sb + db - 2*sb*db
	case MixHue:
		return setLum(setSat(sr, sg, sb, sat(dr, dg, db)), lum(dr, dg, db))
	case MixSaturation:
		return setLum(setSat(dr, dg, db, sat(sr, sg, sb)), lum(dr, dg, db))
	case MixColor:
		r, g, b = setLumRGB(sr, sg, sb, lum(dr, dg, db))
		return
	case MixLuminosity:
		r, g, b = setLumRGB(dr, dg, db, lum(sr, sg, sb))
		return
	default:
		return sr, sg, sb
	}
}

func screen(s, d float64) float64 {
	return s + d - s*d
}

func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return screen(2*s-1, d)
}

func colorDodge(s, d float64) float64 {
	if d == 0 {
		return 0
	}
	if s == 1 {
		return 1
	}
	return math.Min(1, d/(1-s))
}

func colorBurn(s, d float64) float64 {
	if d == 1 {
		return 1
	}
	if s == 0 {
		return 0
	}
	return 1 - math.Min(1, (1-d)/s)
}

func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var dd float64
	if d <= 0.25 {
		dd = ((16*d-12)*d + 4) * d
	} else {
		dd = math.Sqrt(d)
	}
	return d + (2*s-1)*(dd-d)
}

// Non-separable helpers (hue/saturation/color/luminosity).

func lum(r, g, b float64) float64 {
	return 0.3*r + 0.59*g + 0.11*b
}

func sat(r, g, b float64) float64 {
	return math.Max(r, math.Max(g, b)) - math.Min(r, math.Min(g, b))
}

type rgb struct{ r, g, b float64 }

func setSat(r, g, b, s float64) rgb {
	cMax := math.Max(r, math.Max(g, b))
	cMin := math.Min(r, math.Min(g, b))

	adjust := func(c float64) float64 {
		if cMax > cMin {
			return (c - cMin) / (cMax - cMin) * s
		}
		return 0
	}
	return rgb{adjust(r), adjust(g), adjust(b)}
}

func setLum(c rgb, l float64) (r, g, b float64) {
	return setLumRGB(c.r, c.g, c.b, l)
}

func setLumRGB(r, g, b, l float64) (or, og, ob float64) {
	d := l - lum(r, g, b)
	or, og, ob = r+d, g+d, b+d
	return clipColor(or, og, ob)
}

func clipColor(r, g, b float64) (or, og, ob float64) {
	l := lum(r, g, b)
	n := math.Min(r, math.Min(g, b))
	x := math.Max(r, math.Max(g, b))

	fix := func(c float64) float64 {
		if n < 0 && l != n {
			c = l + (c-l)*l/(l-n)
		}
		if x > 1 && x != l {
			c = l + (c-l)*(1-l)/(x-l)
		}
		return c
	}
	return fix(r), fix(g), fix(b)
}
