package assets

import (
	"testing"

	"github.com/cwbudde/vellobench/internal/raster"
)

func TestItemsStableEnumeration(t *testing.T) {
	first := Items()
	if len(first) != 3 {
		t.Fatalf("got %d items, want 3", len(first))
	}
	wantNames := []string{"ghost_tiger", "coat_of_arms", "paris_30k"}
	for i, it := range first {
		if it.Name != wantNames[i] {
			t.Errorf("item %d name = %q, want %q", i, it.Name, wantNames[i])
		}
		if it.Width == 0 || it.Height == 0 {
			t.Errorf("item %q has zero viewport", it.Name)
		}
		if len(it.Fills) == 0 {
			t.Errorf("item %q has no fills", it.Name)
		}
		if len(it.Strokes) == 0 {
			t.Errorf("item %q has no strokes", it.Name)
		}
	}

	second := Items()
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("Items is not stable across calls")
		}
	}
}

func TestItemDerivedViewsMemoized(t *testing.T) {
	it := Items()[0]

	lines := it.Lines()
	if len(lines) == 0 {
		t.Fatal("no flattened lines")
	}
	if &lines[0] != &it.Lines()[0] {
		t.Error("Lines not memoized")
	}

	tiles := it.SortedTiles()
	if tiles != it.SortedTiles() {
		t.Error("SortedTiles not memoized")
	}
	if len(tiles.Tiles) == 0 {
		t.Error("no tiles for a non-trivial asset")
	}
	if !tiles.Sorted() {
		t.Error("SortedTiles returned unsorted tiles")
	}

	exp := it.ExpandedStrokes()
	if len(exp) != len(it.Strokes) {
		t.Fatalf("expanded %d strokes, want %d", len(exp), len(it.Strokes))
	}
	for i, p := range exp {
		if p.Empty() {
			t.Errorf("stroke %d expanded to an empty path", i)
		}
	}
	if exp[0] != it.ExpandedStrokes()[0] {
		t.Error("ExpandedStrokes not memoized")
	}
}

func TestLinesIncludeStrokes(t *testing.T) {
	it := Items()[0]

	var fillsOnly []raster.Line
	for _, f := range it.Fills {
		fillsOnly = raster.Flatten(f.Path, f.Transform, fillsOnly)
	}
	if len(it.Lines()) <= len(fillsOnly) {
		t.Fatalf("Lines() = %d segments, want more than the %d fill segments",
			len(it.Lines()), len(fillsOnly))
	}
}

func TestParsePath(t *testing.T) {
	p, err := parsePath("M0 0L10 0Q15 5 10 10C8 12 2 12 0 10Z")
	if err != nil {
		t.Fatal(err)
	}
	want := []raster.Verb{
		raster.VerbMoveTo, raster.VerbLineTo, raster.VerbQuadTo,
		raster.VerbCubicTo, raster.VerbClose,
	}
	if len(p.Verbs) != len(want) {
		t.Fatalf("got %d verbs, want %d", len(p.Verbs), len(want))
	}
	for i, v := range want {
		if p.Verbs[i] != v {
			t.Errorf("verb %d = %d, want %d", i, p.Verbs[i], v)
		}
	}
	if p.Points[0] != (raster.Point{X: 0, Y: 0}) || p.Points[1] != (raster.Point{X: 10, Y: 0}) {
		t.Errorf("unexpected points: %v", p.Points)
	}
}

func TestParsePathNegativeAndCommas(t *testing.T) {
	p, err := parsePath("M-1.5,2.25 L3,-4")
	if err != nil {
		t.Fatal(err)
	}
	if p.Points[0] != (raster.Point{X: -1.5, Y: 2.25}) {
		t.Errorf("point 0 = %v", p.Points[0])
	}
	if p.Points[1] != (raster.Point{X: 3, Y: -4}) {
		t.Errorf("point 1 = %v", p.Points[1])
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{"X1 2", "M1", "Q1 2 3"} {
		if _, err := parsePath(d); err == nil {
			t.Errorf("parsePath(%q) succeeded, want error", d)
		}
	}
}

func TestEmbeddedImages(t *testing.T) {
	big := BigColr()
	if big.Width != 256 || big.Height != 256 {
		t.Errorf("big_colr is %dx%d, want 256x256", big.Width, big.Height)
	}
	if big != BigColr() {
		t.Error("BigColr not memoized")
	}

	small := RGBImage2x2()
	if small.Width != 2 || small.Height != 2 {
		t.Fatalf("rgb_image_2x2 is %dx%d, want 2x2", small.Width, small.Height)
	}
	if got := small.At(0, 0); got != (raster.Color{255, 0, 0, 255}) {
		t.Errorf("texel (0,0) = %v, want red", got)
	}
	if got := small.At(1, 1); got != (raster.Color{255, 255, 255, 255}) {
		t.Errorf("texel (1,1) = %v, want white", got)
	}
}
