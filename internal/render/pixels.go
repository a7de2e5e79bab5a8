// Package render converts panel frames and grid tags into RGBA pixel buffers
// for the GUI.
package render

import (
	"image/color"

	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"
)

// TagPalette colours raw grid tags for the debug view.
var TagPalette = []color.RGBA{
	core.TagEmpty:   {A: 255},
	core.TagWall:    {R: 200, G: 200, B: 200, A: 255},
	core.TagFilled:  {R: 40, G: 120, B: 220, A: 255},
	core.TagSeed:    {R: 255, A: 255},
	4:               {R: 255, G: 0, B: 255, A: 255},
	core.TagPassage: {R: 120, G: 120, B: 120, A: 255},
	6:               {R: 0, G: 200, B: 200, A: 255},
	7:               {R: 200, G: 200, B: 0, A: 255},
	8:               {R: 255, G: 128, A: 255},
	9:               {R: 255, G: 255, B: 255, A: 255},
}

// LogicalRGBA reads the physical frame back through remap and writes the
// logical image into buf, which must hold 4*W*H bytes of the logical size.
func LogicalRGBA(buf []byte, frame *panel.Frame, remap panel.Remapper) {
	size := remap.Logical()
	img := frame.Image()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			base := (y*size.W + x) * 4
			px, py := remap.Remap(x, y)
			if px < 0 || px >= img.Rect.Dx() || py < 0 || py >= img.Rect.Dy() {
				buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 255
				continue
			}
			copy(buf[base:base+4], img.Pix[img.PixOffset(px, py):])
		}
	}
}

// TagRGBA converts cell tags into RGBA pixels using a palette. Tags past the
// end of the palette use its last entry; an empty palette clears the buffer
// to transparent black.
func TagRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
