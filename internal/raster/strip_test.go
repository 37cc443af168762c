package raster

import "testing"

// coverageAt reads the rendered coverage for a device pixel out of the strip
// and alpha buffers, zero when no strip covers it.
func coverageAt(strips []Strip, alphas []uint8, x, y int) uint8 {
	for _, s := range strips {
		if int(s.Y) != y/TileHeight {
			continue
		}
		if x < int(s.X) || x >= int(s.X)+int(s.Width) {
			continue
		}
		return alphas[int(s.AlphaIdx)+(x-int(s.X))*TileHeight+y%TileHeight]
	}
	return 0
}

func renderRect(t *testing.T, x0, y0, x1, y1 float64, rule FillRule) ([]Strip, []uint8) {
	t.Helper()
	var p Path
	p.Rect(x0, y0, x1, y1)
	lines := Flatten(&p, Identity, nil)

	var tiles Tiles
	tiles.MakeTiles(lines, 32, 32)
	tiles.Sort()

	strips, alphas := RenderStrips(&tiles, lines, rule, nil, nil)
	return strips, alphas
}

func TestRenderStripsRectCoverage(t *testing.T) {
	strips, alphas := renderRect(t, 2, 2, 6, 6, FillNonZero)
	if len(strips) == 0 {
		t.Fatal("no strips emitted")
	}

	inside := [][2]int{{2, 2}, {3, 3}, {5, 5}, {2, 5}, {5, 2}}
	for _, p := range inside {
		if c := coverageAt(strips, alphas, p[0], p[1]); c != 255 {
			t.Errorf("pixel %v coverage = %d, want 255", p, c)
		}
	}
	outside := [][2]int{{1, 3}, {6, 3}, {3, 1}, {3, 6}, {0, 0}, {9, 9}}
	for _, p := range outside {
		if c := coverageAt(strips, alphas, p[0], p[1]); c != 0 {
			t.Errorf("pixel %v coverage = %d, want 0", p, c)
		}
	}
}

func TestRenderStripsFractionalEdge(t *testing.T) {
	strips, alphas := renderRect(t, 2.5, 2, 6.5, 6, FillNonZero)

	left := coverageAt(strips, alphas, 2, 3)
	if left < 120 || left > 136 {
		t.Errorf("half-covered left column = %d, want about 128", left)
	}
	if c := coverageAt(strips, alphas, 4, 3); c != 255 {
		t.Errorf("interior = %d, want 255", c)
	}
	right := coverageAt(strips, alphas, 6, 3)
	if right < 120 || right > 136 {
		t.Errorf("half-covered right column = %d, want about 128", right)
	}
}

func TestRenderStripsEvenOddHole(t *testing.T) {
	var p Path
	p.Rect(2, 2, 14, 14)
	p.Rect(4, 4, 10, 10)
	lines := Flatten(&p, Identity, nil)

	var tiles Tiles
	tiles.MakeTiles(lines, 32, 32)
	tiles.Sort()

	nzStrips, nzAlphas := RenderStrips(&tiles, lines, FillNonZero, nil, nil)
	eoStrips, eoAlphas := RenderStrips(&tiles, lines, FillEvenOdd, nil, nil)

	// Between the rects both rules fill.
	if c := coverageAt(nzStrips, nzAlphas, 3, 7); c != 255 {
		t.Errorf("non-zero ring = %d, want 255", c)
	}
	if c := coverageAt(eoStrips, eoAlphas, 3, 7); c != 255 {
		t.Errorf("even-odd ring = %d, want 255", c)
	}

	// Inside the inner rect the winding is doubled: non-zero stays filled,
	// even-odd punches a hole.
	if c := coverageAt(nzStrips, nzAlphas, 7, 7); c != 255 {
		t.Errorf("non-zero center = %d, want 255", c)
	}
	if c := coverageAt(eoStrips, eoAlphas, 7, 7); c != 0 {
		t.Errorf("even-odd center = %d, want 0", c)
	}
}

func TestRenderStripsAlphaLayout(t *testing.T) {
	strips, alphas := renderRect(t, 2, 2, 6, 6, FillNonZero)

	total := 0
	for _, s := range strips {
		if int(s.AlphaIdx) != total {
			t.Errorf("strip %+v alpha index = %d, want %d", s, s.AlphaIdx, total)
		}
		total += int(s.Width) * TileHeight
	}
	if total != len(alphas) {
		t.Fatalf("alpha buffer length = %d, want %d", len(alphas), total)
	}
}

func TestRenderStripsEmpty(t *testing.T) {
	var tiles Tiles
	tiles.MakeTiles(nil, 32, 32)
	strips, alphas := RenderStrips(&tiles, nil, FillNonZero, nil, nil)
	if len(strips) != 0 || len(alphas) != 0 {
		t.Fatalf("empty input produced %d strips, %d alphas", len(strips), len(alphas))
	}
}
