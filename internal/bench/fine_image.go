package bench

import (
	"fmt"

	"github.com/cwbudde/vellobench/internal/assets"
	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

var fineImageNames = []string{
	"no_transform",
	"scale",
	"rotate",
	"quality_low",
	"quality_medium",
	"quality_high",
	"extend_pad",
	"extend_repeat",
	"extend_reflect",
}

func buildFineImage(name string, level simd.Level) func() {
	tileCenter := raster.Point{X: raster.WideTileWidth / 2, Y: raster.TileHeight / 2}
	smallShift := raster.Translate(raster.WideTileWidth/2, 0)

	var (
		quality   raster.ImageQuality
		extend    raster.Extend
		pm        *raster.Pixmap
		transform raster.Affine
	)
	switch name {
	case "no_transform":
		quality, extend, pm, transform = raster.QualityLow, raster.ExtendPad, assets.BigColr(), raster.Identity
	case "scale":
		quality, extend, pm, transform = raster.QualityLow, raster.ExtendPad, assets.BigColr(), raster.Scale(3)
	case "rotate":
		quality, extend, pm, transform = raster.QualityLow, raster.ExtendPad, assets.BigColr(), raster.RotateAbout(1, tileCenter)
	case "quality_low":
		quality, extend, pm, transform = raster.QualityLow, raster.ExtendPad, assets.BigColr(), raster.Scale(3)
	case "quality_medium":
		quality, extend, pm, transform = raster.QualityMedium, raster.ExtendPad, assets.BigColr(), raster.Scale(3)
	case "quality_high":
		quality, extend, pm, transform = raster.QualityHigh, raster.ExtendPad, assets.BigColr(), raster.Scale(3)
	case "extend_pad":
		quality, extend, pm, transform = raster.QualityLow, raster.ExtendPad, assets.RGBImage2x2(), smallShift
	case "extend_repeat":
		quality, extend, pm, transform = raster.QualityLow, raster.ExtendRepeat, assets.RGBImage2x2(), smallShift
	case "extend_reflect":
		quality, extend, pm, transform = raster.QualityLow, raster.ExtendReflect, assets.RGBImage2x2(), smallShift
	default:
		panic(fmt.Sprintf("unknown fine/image benchmark: %s", name))
	}

	fine := raster.NewFine(level)
	paint := raster.ImagePaint{
		Pixmap:  pm,
		Quality: quality,
		XExtend: extend,
		YExtend: extend,
		Alpha:   1,
	}.Encode(transform)

	return func() {
		fine.Fill(0, raster.WideTileWidth, paint, raster.DefaultBlend, nil)
		sinkBytes(fine.Scratch())
	}
}
