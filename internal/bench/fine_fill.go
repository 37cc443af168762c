package bench

import (
	"fmt"

	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

var fineFillNames = []string{
	"opaque_short",
	"opaque_long",
	"transparent_short",
	"transparent_long",
}

// royalBlue returns the standard fill color at the given alpha.
func royalBlue(alpha float64) raster.Color {
	return raster.ColorFromRGBA(65.0/255, 105.0/255, 225.0/255, alpha)
}

func buildFineFill(name string, level simd.Level) func() {
	var (
		width int
		alpha float64
	)
	switch name {
	case "opaque_short":
		width, alpha = 32, 1
	case "opaque_long":
		width, alpha = 256, 1
	case "transparent_short":
		width, alpha = 32, 0.3
	case "transparent_long":
		width, alpha = 256, 0.3
	default:
		panic(fmt.Sprintf("unknown fine/fill benchmark: %s", name))
	}

	fine := raster.NewFine(level)
	paint := raster.SolidPaint{Color: royalBlue(alpha)}

	return func() {
		fine.Fill(0, width, paint, raster.DefaultBlend, nil)
		sinkBytes(fine.Scratch())
	}
}
