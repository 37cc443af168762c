package raster

import "math"

// Strip is a horizontal run of covered pixels within one tile row. Alphas
// holds TileHeight coverage bytes per column, column-major, starting at
// AlphaIdx in the alpha buffer.
type Strip struct {
	X        int32
	Y        int32
	Width    int32
	AlphaIdx uint32
}

// FillRule selects the winding rule for coverage.
type FillRule uint8

const (
	FillNonZero FillRule = iota
	FillEvenOdd
)

// RenderStrips converts sorted tiles plus their source lines into coverage
// strips. Tiles bound the work: only rows and column ranges that contain
// tiles are scanned. The returned alpha buffer is indexed by Strip.AlphaIdx.
func RenderStrips(tiles *Tiles, lines []Line, rule FillRule, strips []Strip, alphas []uint8) ([]Strip, []uint8) {
	strips = strips[:0]
	alphas = alphas[:0]
	if len(tiles.Tiles) == 0 {
		return strips, alphas
	}
	if !tiles.Sorted() {
		tiles.Sort()
	}

	ts := tiles.Tiles
	for i := 0; i < len(ts); {
		row := ts[i].Y
		j := i
		minX, maxX := ts[i].X, ts[i].X
		for j < len(ts) && ts[j].Y == row {
			if ts[j].X < minX {
				minX = ts[j].X
			}
			if ts[j].X > maxX {
				maxX = ts[j].X
			}
			j++
		}

		strips, alphas = renderRow(row, minX, maxX, ts[i:j], lines, rule, strips, alphas)
		i = j
	}

	return strips, alphas
}

// renderRow rasterizes one tile row (TileHeight scanlines) and emits strips
// for runs of covered columns.
func renderRow(row, minTX, maxTX int32, rowTiles []Tile, lines []Line, rule FillRule, strips []Strip, alphas []uint8) ([]Strip, []uint8) {
	x0 := int(minTX) * TileWidth
	width := (int(maxTX) - int(minTX) + 1) * TileWidth
	y0 := float64(row) * TileHeight

	// Winding deltas per scanline, one extra column for spill.
	acc := make([]float32, TileHeight*(width+1))

	// A line may be listed once per tile it crosses; accumulate it once.
	seen := make(map[uint32]struct{}, len(rowTiles))
	for _, t := range rowTiles {
		if _, ok := seen[t.LineIdx]; ok {
			continue
		}
		seen[t.LineIdx] = struct{}{}
		accumulateLine(lines[t.LineIdx], x0, y0, width, acc)
	}

	// Prefix-sum winding along x, convert to per-pixel coverage.
	cov := make([]uint8, TileHeight*width)
	for sy := 0; sy < TileHeight; sy++ {
		var w float32
		base := sy * (width + 1)
		for sx := 0; sx < width; sx++ {
			w += acc[base+sx]
			cov[sy*width+sx] = coverageByte(w, rule)
		}
	}

	// Emit strips: maximal runs of columns with any coverage.
	for sx := 0; sx < width; {
		if columnEmpty(cov, sx, width) {
			sx++
			continue
		}
		run := sx
		for run < width && !columnEmpty(cov, run, width) {
			run++
		}

		s := Strip{
			X:        int32(x0 + sx),
			Y:        row,
			Width:    int32(run - sx),
			AlphaIdx: uint32(len(alphas)),
		}
		for cx := sx; cx < run; cx++ {
			for sy := 0; sy < TileHeight; sy++ {
				alphas = append(alphas, cov[sy*width+cx])
			}
		}
		strips = append(strips, s)
		sx = run
	}

	return strips, alphas
}

// accumulateLine adds the winding contribution of one line to the row's
// delta buffer using scanline midpoint crossings with fractional edge
// coverage at the crossing column.
func accumulateLine(l Line, x0 int, y0 float64, width int, acc []float32) {
	ly0, ly1 := float64(l.Y0), float64(l.Y1)
	dir := float32(1)
	if ly1 < ly0 {
		ly0, ly1 = ly1, ly0
		dir = -1
		l.X0, l.X1 = l.X1, l.X0
		l.Y0, l.Y1 = l.Y1, l.Y0
	}
	if ly0 == ly1 {
		return
	}

	dxdy := (float64(l.X1) - float64(l.X0)) / (ly1 - ly0)

	for sy := 0; sy < TileHeight; sy++ {
		yc := y0 + float64(sy) + 0.5
		if yc < ly0 || yc >= ly1 {
			continue
		}
		xc := float64(l.X0) + (yc-float64(l.Y0))*dxdy - float64(x0)
		if xc < 0 {
			xc = 0
		}
		if xc > float64(width) {
			xc = float64(width)
		}
		ix := int(math.Floor(xc))
		frac := float32(xc - float64(ix))
		base := sy * (width + 1)
		if ix < width {
			acc[base+ix] += dir * (1 - frac)
		}
		if ix+1 <= width {
			acc[base+ix+1] += dir * frac
		}
	}
}

func coverageByte(w float32, rule FillRule) uint8 {
	var c float32
	switch rule {
	case FillEvenOdd:
		// Fold winding into [0, 2) and mirror around 1.
		m := float64(w)
		m = math.Mod(m, 2)
		if m < 0 {
			m += 2
		}
		if m > 1 {
			m = 2 - m
		}
		c = float32(m)
	default:
		c = w
		if c < 0 {
			c = -c
		}
		if c > 1 {
			c = 1
		}
	}
	return uint8(c*255 + 0.5)
}

func columnEmpty(cov []uint8, sx, width int) bool {
	for sy := 0; sy < TileHeight; sy++ {
		if cov[sy*width+sx] != 0 {
			return false
		}
	}
	return true
}
