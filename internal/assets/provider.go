// Package assets provides the embedded vector test data the data-driven
// benchmarks run against. Decoding happens once per process; the derived
// views (flattened lines, sorted tiles, expanded strokes) are memoized per
// item and shared read-only across benchmarks.
package assets

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cwbudde/vellobench/internal/raster"
)

//go:embed data
var dataFS embed.FS

// itemFiles fixes the enumeration order of Items.
var itemFiles = []string{
	"data/ghost_tiger.json",
	"data/coat_of_arms.json",
	"data/paris_30k.json",
}

// Fill is one filled path of an asset.
type Fill struct {
	Path      *raster.Path
	Transform raster.Affine
}

// Stroke is one stroked path of an asset.
type Stroke struct {
	Path      *raster.Path
	Transform raster.Affine
	Width     float64
}

// Item is one decoded vector asset. The derived views are computed lazily
// and cached; callers borrow the returned slices and must not mutate them.
type Item struct {
	Name    string
	Width   uint16
	Height  uint16
	Fills   []Fill
	Strokes []Stroke

	linesOnce   sync.Once
	lines       []raster.Line
	tilesOnce   sync.Once
	tiles       *raster.Tiles
	strokesOnce sync.Once
	expanded    []*raster.Path
}

// Lines returns the flattened line buffer of every fill plus every expanded
// stroke, in asset order.
func (it *Item) Lines() []raster.Line {
	it.linesOnce.Do(func() {
		var buf []raster.Line
		for _, f := range it.Fills {
			buf = raster.Flatten(f.Path, f.Transform, buf)
		}
		for i, s := range it.Strokes {
			buf = raster.Flatten(it.ExpandedStrokes()[i], s.Transform, buf)
		}
		it.lines = buf
	})
	return it.lines
}

// SortedTiles returns the sorted tile footprint of Lines over the asset's
// viewport.
func (it *Item) SortedTiles() *raster.Tiles {
	it.tilesOnce.Do(func() {
		t := &raster.Tiles{}
		t.MakeTiles(it.Lines(), it.Width, it.Height)
		t.Sort()
		it.tiles = t
	})
	return it.tiles
}

// ExpandedStrokes returns the stroke outlines as fill paths, one per stroke.
func (it *Item) ExpandedStrokes() []*raster.Path {
	it.strokesOnce.Do(func() {
		out := make([]*raster.Path, len(it.Strokes))
		for i, s := range it.Strokes {
			out[i] = raster.ExpandStroke(s.Path, s.Width)
		}
		it.expanded = out
	})
	return it.expanded
}

// itemFile is the on-disk JSON layout.
type itemFile struct {
	Name    string       `json:"name"`
	Width   uint16       `json:"width"`
	Height  uint16       `json:"height"`
	Fills   []pathEntry  `json:"fills"`
	Strokes []pathEntry  `json:"strokes"`
}

type pathEntry struct {
	Path        string     `json:"path"`
	Transform   [6]float64 `json:"transform"`
	StrokeWidth float64    `json:"stroke_width,omitempty"`
}

var (
	itemsOnce sync.Once
	items     []*Item
)

// Items returns the fixed, ordered asset list. The first call decodes the
// embedded files; a decode failure panics, since it means the build embeds
// corrupted data.
func Items() []*Item {
	itemsOnce.Do(func() {
		items = make([]*Item, 0, len(itemFiles))
		for _, name := range itemFiles {
			item, err := decodeItem(name)
			if err != nil {
				panic(fmt.Sprintf("assets: %v", err))
			}
			items = append(items, item)
		}
	})
	return items
}

func decodeItem(name string) (*Item, error) {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded asset %s: %w", name, err)
	}
	var f itemFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode asset %s: %w", name, err)
	}

	item := &Item{
		Name:   f.Name,
		Width:  f.Width,
		Height: f.Height,
	}
	for _, e := range f.Fills {
		p, err := parsePath(e.Path)
		if err != nil {
			return nil, fmt.Errorf("asset %s: bad fill path: %w", name, err)
		}
		item.Fills = append(item.Fills, Fill{Path: p, Transform: raster.Affine(e.Transform)})
	}
	for _, e := range f.Strokes {
		p, err := parsePath(e.Path)
		if err != nil {
			return nil, fmt.Errorf("asset %s: bad stroke path: %w", name, err)
		}
		item.Strokes = append(item.Strokes, Stroke{
			Path:      p,
			Transform: raster.Affine(e.Transform),
			Width:     e.StrokeWidth,
		})
	}
	return item, nil
}

var (
	bigColrOnce sync.Once
	bigColr     *raster.Pixmap
	rgb2x2Once  sync.Once
	rgb2x2      *raster.Pixmap
)

// BigColr returns the large embedded test image.
func BigColr() *raster.Pixmap {
	bigColrOnce.Do(func() {
		bigColr = mustDecodePNG("data/big_colr.png")
	})
	return bigColr
}

// RGBImage2x2 returns the tiny four-texel test image.
func RGBImage2x2() *raster.Pixmap {
	rgb2x2Once.Do(func() {
		rgb2x2 = mustDecodePNG("data/rgb_image_2x2.png")
	})
	return rgb2x2
}

func mustDecodePNG(name string) *raster.Pixmap {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("assets: failed to read embedded image %s: %v", name, err))
	}
	pm, err := raster.DecodePixmap(raw)
	if err != nil {
		panic(fmt.Sprintf("assets: failed to decode embedded image %s: %v", name, err))
	}
	return pm
}
