package bench

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

var fineStripNames = []string{
	"solid_short",
	"solid_long",
}

// benchSeed fixes the random streams the synthetic benchmarks draw from, so
// every run measures the same workload.
const benchSeed = 0

// stripAlphas is a full wide tile of random coverage, column-major.
func stripAlphas() []uint8 {
	rng := rand.New(rand.NewSource(benchSeed))
	alphas := make([]uint8, raster.WideTileWidth*raster.TileHeight)
	for i := range alphas {
		alphas[i] = uint8(rng.Intn(256))
	}
	return alphas
}

func buildFineStrip(name string, level simd.Level) func() {
	var width int
	switch name {
	case "solid_short":
		width = 8
	case "solid_long":
		width = 64
	default:
		panic(fmt.Sprintf("unknown fine/strip benchmark: %s", name))
	}

	fine := raster.NewFine(level)
	paint := raster.SolidPaint{Color: royalBlue(1)}
	alphas := stripAlphas()

	return func() {
		fine.Fill(0, width, paint, raster.DefaultBlend, alphas)
		sinkBytes(fine.Scratch())
	}
}
