package bench

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/cwbudde/vellobench/internal/simd"
)

// Glyph outline loading. "cached" reuses one parse buffer across all glyph
// loads; "uncached" pays for a fresh buffer per glyph. "hinted" loads at a
// whole-pixel size, "unhinted" at a fractional size that defeats any
// size-aligned fast paths.
var glyphNames = []string{
	"cached_hinted",
	"cached_unhinted",
	"uncached_hinted",
	"uncached_unhinted",
	"maintain",
}

const glyphText = "The quick brown fox jumps over the lazy dog; 0123456789!"

var (
	glyphOnce    sync.Once
	glyphFont    *sfnt.Font
	glyphIndices []sfnt.GlyphIndex
)

// loadGlyphFont parses the embedded face and resolves the benchmark text to
// glyph indices once per process.
func loadGlyphFont() (*sfnt.Font, []sfnt.GlyphIndex) {
	glyphOnce.Do(func() {
		f, err := sfnt.Parse(goregular.TTF)
		if err != nil {
			panic(fmt.Sprintf("failed to parse embedded font: %v", err))
		}
		var b sfnt.Buffer
		for _, r := range glyphText {
			gi, err := f.GlyphIndex(&b, r)
			if err != nil {
				panic(fmt.Sprintf("failed to resolve glyph for %q: %v", r, err))
			}
			glyphIndices = append(glyphIndices, gi)
		}
		glyphFont = f
	})
	return glyphFont, glyphIndices
}

func loadAll(f *sfnt.Font, b *sfnt.Buffer, indices []sfnt.GlyphIndex, ppem fixed.Int26_6) int {
	n := 0
	for _, gi := range indices {
		segs, err := f.LoadGlyph(b, gi, ppem, nil)
		if err != nil {
			panic(fmt.Sprintf("failed to load glyph %d: %v", gi, err))
		}
		n += len(segs)
	}
	return n
}

func buildGlyph(name string, _ simd.Level) func() {
	f, indices := loadGlyphFont()

	hinted := fixed.I(16)
	unhinted := fixed.I(16) + 32 // 16.5 px

	switch name {
	case "cached_hinted", "cached_unhinted":
		ppem := hinted
		if name == "cached_unhinted" {
			ppem = unhinted
		}
		var b sfnt.Buffer
		return func() {
			sinkInt(loadAll(f, &b, indices, ppem))
		}
	case "uncached_hinted", "uncached_unhinted":
		ppem := hinted
		if name == "uncached_unhinted" {
			ppem = unhinted
		}
		return func() {
			n := 0
			for _, gi := range indices {
				var b sfnt.Buffer
				segs, err := f.LoadGlyph(&b, gi, ppem, nil)
				if err != nil {
					panic(fmt.Sprintf("failed to load glyph %d: %v", gi, err))
				}
				n += len(segs)
			}
			sinkInt(n)
		}
	case "maintain":
		// Build layouts at ten sizes, the cost of keeping a multi-scale
		// glyph cache warm.
		var b sfnt.Buffer
		return func() {
			n := 0
			for ppem := fixed.I(8); ppem <= fixed.I(26); ppem += fixed.I(2) {
				n += loadAll(f, &b, indices, ppem)
			}
			sinkInt(n)
		}
	default:
		panic(fmt.Sprintf("unknown glyph benchmark: %s", name))
	}
}
