// Package bench holds the benchmark catalogue: every benchmark the
// rasterizer exposes, keyed by a stable "{category}/{name}" identifier, with
// a recipe that builds the measured closure for a given SIMD level. The
// dispatcher in dispatch.go runs one entry under the timing engine.
package bench

import (
	"github.com/cwbudde/vellobench/internal/simd"
)

// Info identifies one benchmark.
type Info struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// category couples a category path with its name enumeration and its recipe
// builder. build panics on a name that is not in names; the dispatcher
// checks membership first, so such a panic means the catalogue and the
// recipe drifted apart.
type category struct {
	name  string
	names func() []string
	build func(name string, level simd.Level) func()
}

// categories fixes the catalogue order: fine-stage synthetic cases first,
// then the data-driven stages, then glyphs and integration scenes.
var categories = []category{
	{"fine/fill", fixedNames(fineFillNames), buildFineFill},
	{"fine/strip", fixedNames(fineStripNames), buildFineStrip},
	{"fine/pack", fixedNames(finePackNames), buildFinePack},
	{"fine/gradient", fixedNames(fineGradientNames), buildFineGradient},
	{"fine/image", fixedNames(fineImageNames), buildFineImage},
	{"fine/rounded_blurred_rect", fixedNames(fineBlurNames), buildFineBlur},
	{"fine/blend", fixedNames(fineBlendNames), buildFineBlend},
	{"tile", assetNames, buildTile},
	{"flatten", assetNames, buildFlatten},
	{"strokes", assetNames, buildStrokes},
	{"render_strips", assetNames, buildRenderStrips},
	{"glyph", fixedNames(glyphNames), buildGlyph},
	{"integration", fixedNames(integrationNames), buildIntegration},
}

func fixedNames(names []string) func() []string {
	return func() []string { return names }
}

// List enumerates every benchmark in catalogue order. The set is fixed per
// host; data-driven categories expand once per embedded asset.
func List() []Info {
	var out []Info
	for _, c := range categories {
		for _, n := range c.names() {
			out = append(out, Info{
				ID:       c.name + "/" + n,
				Category: c.name,
				Name:     n,
			})
		}
	}
	return out
}
