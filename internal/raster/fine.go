package raster

import "github.com/cwbudde/vellobench/internal/simd"

// scratchSize is the wide-tile scratch buffer size in bytes.
const scratchSize = WideTileWidth * TileHeight * 4

// Fine is the fine rasterization stage: it composites paints into a
// wide-tile (256x4) premultiplied RGBA scratch buffer and packs the result
// into destination regions. One Fine instance carries the kernel table for
// a single SIMD level.
type Fine struct {
	k       Kernels
	scratch [scratchSize]uint8
	src     [scratchSize]uint8
	mask    [WideTileWidth]uint8
}

// NewFine creates a fine stage bound to the given level's kernels.
func NewFine(level simd.Level) *Fine {
	return &Fine{k: NewKernels(level)}
}

// Level returns the SIMD level this stage was built for.
func (f *Fine) Level() simd.Level {
	return f.k.Level
}

// Clear zeroes the scratch buffer.
func (f *Fine) Clear() {
	clear(f.scratch[:])
}

// Fill composites the paint over columns [x, x+width) of the wide tile.
// alphas, when non-nil, holds TileHeight coverage bytes per column
// (column-major, as produced by the strip renderer).
func (f *Fine) Fill(x, width int, p Paint, blend BlendMode, alphas []uint8) {
	if x < 0 || width <= 0 || x+width > WideTileWidth {
		return
	}

	// Solid opaque paint with default blending and full coverage
	// overwrites the span outright.
	if sp, ok := p.(SolidPaint); ok && alphas == nil && blend.IsDefault() && sp.Opaque() {
		for y := 0; y < TileHeight; y++ {
			f.k.fillSolid(f.rowSpan(y, x, width), sp.Color)
		}
		return
	}

	for y := 0; y < TileHeight; y++ {
		src := f.src[:width*4]
		p.EvalRow(x, y, width, src)
		dst := f.rowSpan(y, x, width)

		switch {
		case !blend.IsDefault():
			if alphas != nil {
				applyMaskRow(src, alphas, y, width)
			}
			blendSpan(dst, src, blend)
		case alphas != nil:
			gatherMaskRow(f.mask[:width], alphas, y, width)
			f.k.srcOverMasked(dst, src, f.mask[:width])
		default:
			f.k.srcOver(dst, src)
		}
	}
}

// rowSpan returns the scratch slice for row y, columns [x, x+width).
func (f *Fine) rowSpan(y, x, width int) []uint8 {
	base := (y*WideTileWidth + x) * 4
	return f.scratch[base : base+width*4]
}

// gatherMaskRow extracts row y's coverage byte per column from the
// column-major alpha layout.
func gatherMaskRow(dst, alphas []uint8, y, width int) {
	for i := 0; i < width; i++ {
		dst[i] = alphas[i*TileHeight+y]
	}
}

// applyMaskRow multiplies src pixels by row y's coverage in place.
func applyMaskRow(src, alphas []uint8, y, width int) {
	for i := 0; i < width; i++ {
		m := uint32(alphas[i*TileHeight+y])
		o := i * 4
		src[o+0] = uint8(div255(uint32(src[o+0]) * m))
		src[o+1] = uint8(div255(uint32(src[o+1]) * m))
		src[o+2] = uint8(div255(uint32(src[o+2]) * m))
		src[o+3] = uint8(div255(uint32(src[o+3]) * m))
	}
}

// Region is one destination window of a pack operation.
type Region struct {
	X, Y   int
	Width  int
	Height int
	// Pix is the region's row-major RGBA backing slice; Stride is in
	// bytes.
	Pix    []uint8
	Stride int
}

// Regions splits a destination buffer into wide-tile sized windows for the
// pack stage.
type Regions struct {
	Width  int
	Height int
	Buf    []uint8
}

// NewRegions wraps a row-major RGBA buffer of the given size.
func NewRegions(width, height int, buf []uint8) *Regions {
	return &Regions{Width: width, Height: height, Buf: buf}
}

// ForEach visits every wide-tile window left to right.
func (r *Regions) ForEach(fn func(*Region)) {
	stride := r.Width * 4
	for x := 0; x < r.Width; x += WideTileWidth {
		w := min(WideTileWidth, r.Width-x)
		reg := Region{
			X:      x,
			Y:      0,
			Width:  w,
			Height: min(TileHeight, r.Height),
			Pix:    r.Buf[x*4:],
			Stride: stride,
		}
		fn(&reg)
	}
}

// Pack copies the wide-tile scratch into a destination region.
func (f *Fine) Pack(r *Region) {
	for y := 0; y < r.Height; y++ {
		src := f.scratch[y*WideTileWidth*4 : y*WideTileWidth*4+r.Width*4]
		dst := r.Pix[y*r.Stride : y*r.Stride+r.Width*4]
		copy(dst, src)
	}
}

// Scratch exposes the scratch buffer for tests and opaque consumption.
func (f *Fine) Scratch() []uint8 {
	return f.scratch[:]
}
