package bench

import (
	"fmt"

	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

// One case per mix mode, then one per compose operator.
var fineBlendNames = []string{
	"normal",
	"multiply",
	"screen",
	"overlay",
	"darken",
	"lighten",
	"color_dodge",
	"color_burn",
	"hard_light",
	"soft_light",
	"difference",
	"exclusion",
	"hue",
	"saturation",
	"color",
	"luminosity",
	"src_over",
	"src_in",
	"dest_over",
	"xor",
}

var blendModes = map[string]raster.BlendMode{
	"normal":      {Mix: raster.MixNormal, Compose: raster.ComposeSrcOver},
	"multiply":    {Mix: raster.MixMultiply, Compose: raster.ComposeSrcOver},
	"screen":      {Mix: raster.MixScreen, Compose: raster.ComposeSrcOver},
	"overlay":     {Mix: raster.MixOverlay, Compose: raster.ComposeSrcOver},
	"darken":      {Mix: raster.MixDarken, Compose: raster.ComposeSrcOver},
	"lighten":     {Mix: raster.MixLighten, Compose: raster.ComposeSrcOver},
	"color_dodge": {Mix: raster.MixColorDodge, Compose: raster.ComposeSrcOver},
	"color_burn":  {Mix: raster.MixColorBurn, Compose: raster.ComposeSrcOver},
	"hard_light":  {Mix: raster.MixHardLight, Compose: raster.ComposeSrcOver},
	"soft_light":  {Mix: raster.MixSoftLight, Compose: raster.ComposeSrcOver},
	"difference":  {Mix: raster.MixDifference, Compose: raster.ComposeSrcOver},
	"exclusion":   {Mix: raster.MixExclusion, Compose: raster.ComposeSrcOver},
	"hue":         {Mix: raster.MixHue, Compose: raster.ComposeSrcOver},
	"saturation":  {Mix: raster.MixSaturation, Compose: raster.ComposeSrcOver},
	"color":       {Mix: raster.MixColor, Compose: raster.ComposeSrcOver},
	"luminosity":  {Mix: raster.MixLuminosity, Compose: raster.ComposeSrcOver},
	"src_over":    {Mix: raster.MixNormal, Compose: raster.ComposeSrcOver},
	"src_in":      {Mix: raster.MixNormal, Compose: raster.ComposeSrcIn},
	"dest_over":   {Mix: raster.MixNormal, Compose: raster.ComposeDestOver},
	"xor":         {Mix: raster.MixNormal, Compose: raster.ComposeXor},
}

func buildFineBlend(name string, level simd.Level) func() {
	mode, ok := blendModes[name]
	if !ok {
		panic(fmt.Sprintf("unknown fine/blend benchmark: %s", name))
	}

	fine := raster.NewFine(level)
	// A backdrop to blend against; the measured fill is translucent so every
	// mode exercises its full formula.
	fine.Fill(0, raster.WideTileWidth, raster.SolidPaint{Color: royalBlue(1)}, raster.DefaultBlend, nil)
	paint := raster.SolidPaint{Color: raster.ColorFromRGBA(0.9, 0.4, 0.1, 0.8)}

	return func() {
		fine.Fill(0, raster.WideTileWidth, paint, mode, nil)
		sinkBytes(fine.Scratch())
	}
}
