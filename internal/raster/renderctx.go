package raster

import "github.com/cwbudde/vellobench/internal/simd"

// RenderContext composes the whole pipeline (flatten, tile, strip, fine)
// for end-to-end scenes rendered into a pixmap.
type RenderContext struct {
	width  uint16
	height uint16

	fine  *Fine
	paint Paint

	lineBuf []Line
	tiles   Tiles
	strips  []Strip
	alphas  []uint8
	srcRow  []uint8
	maskRow []uint8
}

// NewRenderContext creates a context rendering at the host's best SIMD
// level.
func NewRenderContext(width, height uint16) *RenderContext {
	return NewRenderContextAt(width, height, simd.Best())
}

// NewRenderContextAt creates a context with the kernel table for a specific
// SIMD level.
func NewRenderContextAt(width, height uint16, level simd.Level) *RenderContext {
	return &RenderContext{
		width:  width,
		height: height,
		fine:   NewFine(level),
		paint:  SolidPaint{Color: Color{0, 0, 0, 255}},
	}
}

// Reset discards accumulated state between frames. Buffers keep their
// capacity.
func (rc *RenderContext) Reset() {
	rc.paint = SolidPaint{Color: Color{0, 0, 0, 255}}
	rc.lineBuf = rc.lineBuf[:0]
	rc.strips = rc.strips[:0]
	rc.alphas = rc.alphas[:0]
}

// SetPaint sets the paint for subsequent fills.
func (rc *RenderContext) SetPaint(p Paint) {
	rc.paint = p
}

// FillRect fills an axis-aligned rectangle with the current paint.
func (rc *RenderContext) FillRect(x0, y0, x1, y1 float64, dst *Pixmap) {
	var p Path
	p.Rect(x0, y0, x1, y1)
	rc.FillPath(&p, Identity, dst)
}

// FillPath rasterizes a filled path into dst with the current paint.
func (rc *RenderContext) FillPath(path *Path, transform Affine, dst *Pixmap) {
	rc.lineBuf = Flatten(path, transform, rc.lineBuf[:0])
	rc.tiles.MakeTiles(rc.lineBuf, rc.width, rc.height)
	rc.tiles.Sort()
	rc.strips, rc.alphas = RenderStrips(&rc.tiles, rc.lineBuf, FillNonZero, rc.strips[:0], rc.alphas[:0])

	for _, s := range rc.strips {
		rc.compositeStrip(s, rc.paint, dst)
	}
}

// compositeStrip blends one coverage strip into the destination pixmap
// through the fine stage's masked kernels.
func (rc *RenderContext) compositeStrip(s Strip, paint Paint, dst *Pixmap) {
	if cap(rc.srcRow) < int(s.Width)*4 {
		rc.srcRow = make([]uint8, s.Width*4)
		rc.maskRow = make([]uint8, s.Width)
	}
	srcRow := rc.srcRow[:s.Width*4]
	maskRow := rc.maskRow[:s.Width]

	for sy := 0; sy < TileHeight; sy++ {
		y := int(s.Y)*TileHeight + sy
		if y < 0 || y >= dst.Height {
			continue
		}

		x0 := int(s.X)
		w := int(s.Width)
		if x0 < 0 {
			w += x0
			x0 = 0
		}
		if x0+w > dst.Width {
			w = dst.Width - x0
		}
		if w <= 0 {
			continue
		}

		paint.EvalRow(x0, y, w, srcRow[:w*4])
		for i := 0; i < w; i++ {
			maskRow[i] = rc.alphas[int(s.AlphaIdx)+(i+x0-int(s.X))*TileHeight+sy]
		}

		row := dst.Row(y)
		rc.fine.k.srcOverMasked(row[x0*4:(x0+w)*4], srcRow[:w*4], maskRow[:w])
	}
}
