package render

import (
	"image"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// FillRGBA writes one RGBA pixel per cell of g into buf, row-major. It does
// nothing if buf is shorter than 4*width*height.
func FillRGBA(buf []byte, g grid.Reader, s Scheme) {
	w, h := g.Width(), g.Height()
	if len(buf) < 4*w*h {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := Color(s, g.Value(x, y))
			base := (y*w + x) * 4
			buf[base+0] = c.R
			buf[base+1] = c.G
			buf[base+2] = c.B
			buf[base+3] = c.A
		}
	}
}

// Image renders g into a new RGBA image with one pixel per cell.
func Image(g grid.Reader, s Scheme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	FillRGBA(img.Pix, g, s)
	return img
}
