package raster

import (
	"encoding/binary"

	"github.com/cwbudde/vellobench/internal/simd"
)

// Kernels is the per-level specialization table for the hot fine-stage
// loops. The scalar table is straight per-pixel code; the 128-bit class
// (SSE4.2, NEON, WASM SIMD128) uses 4-pixel SWAR batches; AVX2 uses
// 8-pixel batches. Each benchmark closure captures one table, so the level
// choice is resolved once, outside the measured window.
type Kernels struct {
	Level simd.Level

	// fillSolid overwrites dst (premul RGBA span) with c.
	fillSolid func(dst []uint8, c Color)
	// srcOver composites src over dst, both premultiplied.
	srcOver func(dst, src []uint8)
	// srcOverMasked composites src*mask over dst; mask holds one coverage
	// byte per pixel.
	srcOverMasked func(dst, src, mask []uint8)
}

// NewKernels selects the kernel table for a level. Unknown levels fall back
// to scalar.
func NewKernels(level simd.Level) Kernels {
	k := Kernels{Level: level}
	switch level {
	case simd.Avx2:
		k.fillSolid = fillSolidBatch8
		k.srcOver = srcOverBatch8
		k.srcOverMasked = srcOverMaskedBatch4
	case simd.Sse42, simd.Neon, simd.WasmSimd128:
		k.fillSolid = fillSolidBatch4
		k.srcOver = srcOverBatch4
		k.srcOverMasked = srcOverMaskedBatch4
	default:
		k.fillSolid = fillSolidScalar
		k.srcOver = srcOverScalar
		k.srcOverMasked = srcOverMaskedScalar
	}
	return k
}

// ----------------------------------------------------------------------------
// Scalar kernels
// ----------------------------------------------------------------------------

func fillSolidScalar(dst []uint8, c Color) {
	for i := 0; i+4 <= len(dst); i += 4 {
		dst[i+0] = c[0]
		dst[i+1] = c[1]
		dst[i+2] = c[2]
		dst[i+3] = c[3]
	}
}

// div255 computes x/255 rounded to nearest, exact for x in [0, 255*255].
// It matches the bias trick the packed kernels use, so every level produces
// identical pixels.
func div255(x uint32) uint32 {
	x += 128
	return (x + (x >> 8)) >> 8
}

func srcOverScalar(dst, src []uint8) {
	n := min(len(dst), len(src))
	for i := 0; i+4 <= n; i += 4 {
		inv := uint32(255 - src[i+3])
		dst[i+0] = src[i+0] + uint8(div255(uint32(dst[i+0])*inv))
		dst[i+1] = src[i+1] + uint8(div255(uint32(dst[i+1])*inv))
		dst[i+2] = src[i+2] + uint8(div255(uint32(dst[i+2])*inv))
		dst[i+3] = src[i+3] + uint8(div255(uint32(dst[i+3])*inv))
	}
}

func srcOverMaskedScalar(dst, src, mask []uint8) {
	n := min(len(dst), len(src))
	for i, px := 0, 0; i+4 <= n; i, px = i+4, px+1 {
		m := uint32(mask[px])
		sr := div255(uint32(src[i+0]) * m)
		sg := div255(uint32(src[i+1]) * m)
		sb := div255(uint32(src[i+2]) * m)
		sa := div255(uint32(src[i+3]) * m)
		inv := 255 - sa
		dst[i+0] = uint8(sr + div255(uint32(dst[i+0])*inv))
		dst[i+1] = uint8(sg + div255(uint32(dst[i+1])*inv))
		dst[i+2] = uint8(sb + div255(uint32(dst[i+2])*inv))
		dst[i+3] = uint8(sa + div255(uint32(dst[i+3])*inv))
	}
}

// ----------------------------------------------------------------------------
// SWAR batch kernels
//
// Pixels are packed little-endian RGBA, so a uint32 load holds one pixel
// with alpha in the top byte. The src-over term dst*(255-sa)/255 runs on
// two half-registers (rb and ag lanes) with the exact div255 bias trick.
// ----------------------------------------------------------------------------

func fillSolidBatch4(dst []uint8, c Color) {
	var pat [16]uint8
	for i := 0; i < 16; i += 4 {
		pat[i+0] = c[0]
		pat[i+1] = c[1]
		pat[i+2] = c[2]
		pat[i+3] = c[3]
	}
	i := 0
	for ; i+16 <= len(dst); i += 16 {
		copy(dst[i:i+16], pat[:])
	}
	fillSolidScalar(dst[i:], c)
}

func fillSolidBatch8(dst []uint8, c Color) {
	var pat [32]uint8
	for i := 0; i < 32; i += 4 {
		pat[i+0] = c[0]
		pat[i+1] = c[1]
		pat[i+2] = c[2]
		pat[i+3] = c[3]
	}
	i := 0
	for ; i+32 <= len(dst); i += 32 {
		copy(dst[i:i+32], pat[:])
	}
	fillSolidScalar(dst[i:], c)
}

// srcOver1 composites one packed pixel.
func srcOver1(d, s uint32) uint32 {
	inv := 255 - (s >> 24)

	rb := (d & 0x00FF00FF) * inv
	rb += 0x00800080
	rb += (rb >> 8) & 0x00FF00FF
	rb = (rb >> 8) & 0x00FF00FF

	ag := ((d >> 8) & 0x00FF00FF) * inv
	ag += 0x00800080
	ag += (ag >> 8) & 0x00FF00FF
	ag &= 0xFF00FF00

	return s + (rb | ag)
}

func srcOverBatch4(dst, src []uint8) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+16 <= n; i += 16 {
		d0 := binary.LittleEndian.Uint32(dst[i:])
		d1 := binary.LittleEndian.Uint32(dst[i+4:])
		d2 := binary.LittleEndian.Uint32(dst[i+8:])
		d3 := binary.LittleEndian.Uint32(dst[i+12:])
		s0 := binary.LittleEndian.Uint32(src[i:])
		s1 := binary.LittleEndian.Uint32(src[i+4:])
		s2 := binary.LittleEndian.Uint32(src[i+8:])
		s3 := binary.LittleEndian.Uint32(src[i+12:])
		binary.LittleEndian.PutUint32(dst[i:], srcOver1(d0, s0))
		binary.LittleEndian.PutUint32(dst[i+4:], srcOver1(d1, s1))
		binary.LittleEndian.PutUint32(dst[i+8:], srcOver1(d2, s2))
		binary.LittleEndian.PutUint32(dst[i+12:], srcOver1(d3, s3))
	}
	srcOverScalar(dst[i:n], src[i:n])
}

func srcOverBatch8(dst, src []uint8) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+32 <= n; i += 32 {
		for j := 0; j < 32; j += 4 {
			d := binary.LittleEndian.Uint32(dst[i+j:])
			s := binary.LittleEndian.Uint32(src[i+j:])
			binary.LittleEndian.PutUint32(dst[i+j:], srcOver1(d, s))
		}
	}
	srcOverScalar(dst[i:n], src[i:n])
}

// srcOverMaskedBatch4 applies the mask with SWAR lane math, then composites.
func srcOverMaskedBatch4(dst, src, mask []uint8) {
	n := min(len(dst), len(src))
	i, px := 0, 0
	for ; i+16 <= n; i, px = i+16, px+4 {
		for j := 0; j < 4; j++ {
			o := i + j*4
			s := binary.LittleEndian.Uint32(src[o:])
			s = mulAlpha(s, uint32(mask[px+j]))
			d := binary.LittleEndian.Uint32(dst[o:])
			binary.LittleEndian.PutUint32(dst[o:], srcOver1(d, s))
		}
	}
	srcOverMaskedScalar(dst[i:n], src[i:n], mask[px:])
}

// mulAlpha scales all four channels of a packed pixel by m/255.
func mulAlpha(v, m uint32) uint32 {
	rb := (v & 0x00FF00FF) * m
	rb += 0x00800080
	rb += (rb >> 8) & 0x00FF00FF
	rb = (rb >> 8) & 0x00FF00FF

	ag := ((v >> 8) & 0x00FF00FF) * m
	ag += 0x00800080
	ag += (ag >> 8) & 0x00FF00FF
	ag &= 0xFF00FF00

	return rb | ag
}
