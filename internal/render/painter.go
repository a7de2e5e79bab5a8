//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads an RGBA buffer into an ebiten image and draws it
// scaled.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for an image of size w*h.
func NewFramePainter(w, h int) *FramePainter {
	return &FramePainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Buffer returns the RGBA staging buffer to fill before Blit.
func (fp *FramePainter) Buffer() []byte { return fp.buf }

// Blit uploads the staging buffer and draws it at (x, y) with the given scale.
func (fp *FramePainter) Blit(dst *ebiten.Image, x, y float64, scale float64) {
	fp.img.WritePixels(fp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
