package raster

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
)

// Pixmap is a premultiplied RGBA8 image, row-major.
type Pixmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixmap returns a transparent pixmap.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// DecodePixmap decodes PNG bytes into a premultiplied pixmap.
func DecodePixmap(data []byte) (*Pixmap, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	b := img.Bounds()
	pm := NewPixmap(b.Dx(), b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			// RGBA() is 16-bit premultiplied already.
			pm.Pix[i+0] = uint8(r >> 8)
			pm.Pix[i+1] = uint8(g >> 8)
			pm.Pix[i+2] = uint8(bl >> 8)
			pm.Pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return pm, nil
}

// Row returns the pixel row at y.
func (p *Pixmap) Row(y int) []uint8 {
	return p.Pix[y*p.Width*4 : (y+1)*p.Width*4]
}

// At returns the premultiplied pixel at (x, y), or transparent outside the
// bounds.
func (p *Pixmap) At(x, y int) Color {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return Color{}
	}
	i := (y*p.Width + x) * 4
	return Color{p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]}
}
