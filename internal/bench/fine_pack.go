package bench

import (
	"fmt"

	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

var finePackNames = []string{
	"block",
	"regular",
}

func buildFinePack(name string, level simd.Level) func() {
	var width int
	switch name {
	case "block":
		width = raster.WideTileWidth
	case "regular":
		// One column short of a full wide tile forces the unaligned path.
		width = raster.WideTileWidth - 1
	default:
		panic(fmt.Sprintf("unknown fine/pack benchmark: %s", name))
	}

	fine := raster.NewFine(level)
	fine.Fill(0, raster.WideTileWidth, raster.SolidPaint{Color: royalBlue(1)}, raster.DefaultBlend, nil)

	bufLen := width * raster.TileHeight * 4

	return func() {
		buf := make([]uint8, bufLen)
		regions := raster.NewRegions(width, raster.TileHeight, buf)
		regions.ForEach(func(r *raster.Region) {
			fine.Pack(r)
		})
		sinkBytes(buf)
	}
}
