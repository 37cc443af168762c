package raster

import (
	"math"
	"sort"
)

// Tile records that a line crosses one 4x4 cell of the tile grid.
type Tile struct {
	X, Y    int32
	LineIdx uint32
}

// Tiles is the output of the tiling stage.
type Tiles struct {
	Tiles  []Tile
	Width  uint16
	Height uint16
	sorted bool
}

// MakeTiles enumerates, for every line, the grid cells its bounding
// traversal crosses, clipped to a width x height viewport. Traversal walks
// the grid cell by cell along the segment, so long diagonals do not inflate
// into bounding boxes.
func (t *Tiles) MakeTiles(lines []Line, width, height uint16) {
	t.Tiles = t.Tiles[:0]
	t.Width = width
	t.Height = height
	t.sorted = false

	maxTX := int32((int(width) + TileWidth - 1) / TileWidth)
	maxTY := int32((int(height) + TileHeight - 1) / TileHeight)

	for i, l := range lines {
		t.walkLine(l, uint32(i), maxTX, maxTY)
	}
}

// walkLine visits grid cells along a segment (Amanatides-Woo style).
func (t *Tiles) walkLine(l Line, idx uint32, maxTX, maxTY int32) {
	x0 := float64(l.X0) / TileWidth
	y0 := float64(l.Y0) / TileHeight
	x1 := float64(l.X1) / TileWidth
	y1 := float64(l.Y1) / TileHeight

	cx := int32(math.Floor(x0))
	cy := int32(math.Floor(y0))
	ex := int32(math.Floor(x1))
	ey := int32(math.Floor(y1))

	stepX := int32(1)
	if x1 < x0 {
		stepX = -1
	}
	stepY := int32(1)
	if y1 < y0 {
		stepY = -1
	}

	dx := math.Abs(x1 - x0)
	dy := math.Abs(y1 - y0)

	var tMaxX, tDeltaX float64
	if dx == 0 {
		tMaxX = math.Inf(1)
		tDeltaX = math.Inf(1)
	} else {
		if stepX > 0 {
			tMaxX = (math.Floor(x0) + 1 - x0) / dx
		} else {
			tMaxX = (x0 - math.Floor(x0)) / dx
		}
		tDeltaX = 1 / dx
	}

	var tMaxY, tDeltaY float64
	if dy == 0 {
		tMaxY = math.Inf(1)
		tDeltaY = math.Inf(1)
	} else {
		if stepY > 0 {
			tMaxY = (math.Floor(y0) + 1 - y0) / dy
		} else {
			tMaxY = (y0 - math.Floor(y0)) / dy
		}
		tDeltaY = 1 / dy
	}

	for {
		if cx >= 0 && cy >= 0 && cx < maxTX && cy < maxTY {
			t.Tiles = append(t.Tiles, Tile{X: cx, Y: cy, LineIdx: idx})
		}
		if cx == ex && cy == ey {
			return
		}
		if tMaxX < tMaxY {
			tMaxX += tDeltaX
			cx += stepX
		} else {
			tMaxY += tDeltaY
			cy += stepY
		}
		// Numerical safety: never walk past the end cell.
		if (stepX > 0 && cx > ex && tDeltaY == math.Inf(1)) ||
			(stepX < 0 && cx < ex && tDeltaY == math.Inf(1)) ||
			(stepY > 0 && cy > ey && tDeltaX == math.Inf(1)) ||
			(stepY < 0 && cy < ey && tDeltaX == math.Inf(1)) {
			return
		}
	}
}

// Sort orders tiles by row, then column, then line index, the order the
// strip renderer consumes.
func (t *Tiles) Sort() {
	sort.Slice(t.Tiles, func(i, j int) bool {
		a, b := t.Tiles[i], t.Tiles[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.LineIdx < b.LineIdx
	})
	t.sorted = true
}

// Sorted reports whether Sort has run since the last MakeTiles.
func (t *Tiles) Sorted() bool {
	return t.sorted
}
