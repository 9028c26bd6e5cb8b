//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// Painter keeps one ebiten image the size of a grid and repaints it.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a w×h grid.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Update uploads g coloured by s. Grids of another size are ignored.
func (p *Painter) Update(g grid.Reader, s Scheme) {
	if g.Width() != p.w || g.Height() != p.h {
		return
	}
	FillRGBA(p.buf, g, s)
	p.img.WritePixels(p.buf)
}

// Draw blits the current image onto dst scaled by scale.
func (p *Painter) Draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
