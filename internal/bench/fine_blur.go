package bench

import (
	"fmt"

	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

var fineBlurNames = []string{
	"no_transform",
	"with_transform",
}

func buildFineBlur(name string, level simd.Level) func() {
	rect := raster.BlurredRoundedRect{
		X0: 64, Y0: -30, X1: 192, Y1: 30,
		Radius: 10,
		StdDev: 5,
		R:      65.0 / 255,
		G:      105.0 / 255,
		B:      225.0 / 255,
		A:      1,
	}

	transform := raster.Identity
	switch name {
	case "no_transform":
	case "with_transform":
		transform = raster.RotateAbout(1, raster.Point{
			X: raster.WideTileWidth / 2,
			Y: raster.TileHeight / 2,
		})
	default:
		panic(fmt.Sprintf("unknown fine/rounded_blurred_rect benchmark: %s", name))
	}

	fine := raster.NewFine(level)
	paint := rect.Encode(transform)

	return func() {
		fine.Fill(0, raster.WideTileWidth, paint, raster.DefaultBlend, nil)
		sinkBytes(fine.Scratch())
	}
}
