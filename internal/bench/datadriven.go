package bench

import (
	"fmt"

	"github.com/cwbudde/vellobench/internal/assets"
	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

// assetNames enumerates the data-driven benchmark names, one per embedded
// asset.
func assetNames() []string {
	items := assets.Items()
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

func assetItem(category, name string) *assets.Item {
	for _, it := range assets.Items() {
		if it.Name == name {
			return it
		}
	}
	panic(fmt.Sprintf("unknown %s benchmark: %s", category, name))
}

// buildTile measures the tiling stage: line buffer to tile footprint.
func buildTile(name string, _ simd.Level) func() {
	item := assetItem("tile", name)
	lines := item.Lines()

	return func() {
		var tiles raster.Tiles
		tiles.MakeTiles(lines, item.Width, item.Height)
		sinkInt(len(tiles.Tiles))
	}
}

// buildFlatten measures curve flattening over every fill and pre-expanded
// stroke of the asset, collected into one line buffer.
func buildFlatten(name string, _ simd.Level) func() {
	item := assetItem("flatten", name)
	expanded := item.ExpandedStrokes()

	return func() {
		var lineBuf []raster.Line
		for _, f := range item.Fills {
			lineBuf = raster.Flatten(f.Path, f.Transform, lineBuf)
		}
		for _, p := range expanded {
			lineBuf = raster.Flatten(p, raster.Identity, lineBuf)
		}
		sinkInt(len(lineBuf))
	}
}

// buildStrokes measures stroke expansion alone.
func buildStrokes(name string, _ simd.Level) func() {
	item := assetItem("strokes", name)

	return func() {
		n := 0
		for _, s := range item.Strokes {
			out := raster.ExpandStroke(s.Path, s.Width)
			n += len(out.Verbs)
		}
		sinkInt(n)
	}
}

// buildRenderStrips measures coverage strip generation from the memoized
// sorted tiles.
func buildRenderStrips(name string, _ simd.Level) func() {
	item := assetItem("render_strips", name)
	lines := item.Lines()
	tiles := item.SortedTiles()

	return func() {
		strips, alphas := raster.RenderStrips(tiles, lines, raster.FillNonZero, nil, nil)
		sinkInt(len(strips))
		sinkBytes(alphas)
	}
}
