package bench

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

var fineGradientNames = []string{
	"linear_opaque",
	"radial_opaque",
	"sweep_opaque",
	"many_stops",
	"transparent",
}

// fourStops is blue -> green -> red -> yellow; alphas come from the caller
// so the transparent case can fade two of them.
func fourStops(greenA, yellowA float64) []raster.Stop {
	return []raster.Stop{
		{Offset: 0, B: 1, A: 1},
		{Offset: 0.33, G: 0.5, A: greenA},
		{Offset: 0.66, R: 1, A: 1},
		{Offset: 1, R: 1, G: 1, A: yellowA},
	}
}

func manyStops() []raster.Stop {
	rng := rand.New(rand.NewSource(benchSeed))
	stops := make([]raster.Stop, 0, 121)
	for i := 0; i <= 120; i++ {
		stops = append(stops, raster.Stop{
			Offset: float64(i) / 120,
			R:      rng.Float64(),
			G:      rng.Float64(),
			B:      rng.Float64(),
			A:      rng.Float64(),
		})
	}
	return stops
}

func buildFineGradient(name string, level simd.Level) func() {
	center := raster.Point{X: raster.WideTileWidth / 2, Y: raster.TileHeight / 2}

	g := raster.Gradient{
		Kind:   raster.GradientLinear,
		Extend: raster.ExtendPad,
		Stops:  fourStops(1, 1),
		Start:  raster.Point{X: 128, Y: 128},
		End:    raster.Point{X: 134, Y: 134},
	}

	switch name {
	case "linear_opaque":
	case "radial_opaque":
		g.Kind = raster.GradientRadial
		g.Center = center
		g.Radius0 = 25
		g.Radius1 = 75
	case "sweep_opaque":
		g.Kind = raster.GradientSweep
		g.Center = center
		g.StartAngle = 70 * math.Pi / 180
		g.EndAngle = 250 * math.Pi / 180
	case "many_stops":
		g.Stops = manyStops()
		g.Extend = raster.ExtendRepeat
	case "transparent":
		g.Stops = fourStops(0.5, 0.7)
	default:
		panic(fmt.Sprintf("unknown fine/gradient benchmark: %s", name))
	}

	fine := raster.NewFine(level)
	paint := g.Encode(raster.Identity)

	return func() {
		fine.Fill(0, raster.WideTileWidth, paint, raster.DefaultBlend, nil)
		sinkBytes(fine.Scratch())
	}
}
