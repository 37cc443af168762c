package bench

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/vellobench/internal/assets"
	"github.com/cwbudde/vellobench/internal/raster"
	"github.com/cwbudde/vellobench/internal/simd"
)

// Integration scenes run the full pipeline end to end instead of a single
// stage.
var integrationNames = []string{
	"images_overlapping",
	"many_small_fills",
}

func buildIntegration(name string, level simd.Level) func() {
	switch name {
	case "images_overlapping":
		return buildImagesOverlapping(level)
	case "many_small_fills":
		return buildManySmallFills(level)
	default:
		panic(fmt.Sprintf("unknown integration benchmark: %s", name))
	}
}

// buildImagesOverlapping draws a grid of scaled copies of the large test
// image back to front into a 1280x960 target.
func buildImagesOverlapping(level simd.Level) func() {
	const width, height = 1280, 960

	img := assets.BigColr()
	rng := rand.New(rand.NewSource(benchSeed))

	type placed struct {
		paint          raster.Paint
		x0, y0, x1, y1 float64
	}
	var scene []placed
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			x := float64(col)*300 + rng.Float64()*60
			y := float64(row)*280 + rng.Float64()*60
			scale := 1.2 + rng.Float64()
			size := float64(img.Width) * scale

			transform := raster.Translate(x, y).Mul(raster.Scale(scale))
			scene = append(scene, placed{
				paint: raster.ImagePaint{
					Pixmap:  img,
					Quality: raster.QualityLow,
					Alpha:   1,
				}.Encode(transform),
				x0: x,
				y0: y,
				x1: x + size,
				y1: y + size,
			})
		}
	}

	ctx := raster.NewRenderContextAt(width, height, level)
	dst := raster.NewPixmap(width, height)

	return func() {
		for _, p := range scene {
			ctx.SetPaint(p.paint)
			ctx.FillRect(p.x0, p.y0, p.x1, p.y1, dst)
		}
		sinkBytes(dst.Pix)
	}
}

// buildManySmallFills covers a 512x512 target with hundreds of small solid
// rectangles, the shape of a UI-heavy frame.
func buildManySmallFills(level simd.Level) func() {
	const width, height = 512, 512

	rng := rand.New(rand.NewSource(benchSeed))

	type smallRect struct {
		color          raster.Color
		x0, y0, x1, y1 float64
	}
	rects := make([]smallRect, 400)
	for i := range rects {
		x := rng.Float64() * (width - 20)
		y := rng.Float64() * (height - 20)
		w := 4 + rng.Float64()*12
		h := 4 + rng.Float64()*12
		rects[i] = smallRect{
			color: raster.ColorFromRGBA(rng.Float64(), rng.Float64(), rng.Float64(), 1),
			x0:    x,
			y0:    y,
			x1:    x + w,
			y1:    y + h,
		}
	}

	ctx := raster.NewRenderContextAt(width, height, level)
	dst := raster.NewPixmap(width, height)

	return func() {
		for _, r := range rects {
			ctx.SetPaint(raster.SolidPaint{Color: r.color})
			ctx.FillRect(r.x0, r.y0, r.x1, r.y1, dst)
		}
		sinkBytes(dst.Pix)
	}
}
