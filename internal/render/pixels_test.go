package render

import (
	"image/color"
	"slices"
	"testing"

	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"
)

func TestLogicalRGBAUndoesRemap(t *testing.T) {
	remap := panel.Chain128()
	frame := panel.NewFrame(512, 32)
	d := panel.NewDisplay(frame, remap)
	d.Set(0, 0, core.Red)
	d.Set(127, 127, color.RGBA{G: 255, A: 255})
	d.Set(70, 10, color.RGBA{B: 9, A: 255})

	buf := make([]byte, 4*128*128)
	LogicalRGBA(buf, frame, remap)

	at := func(x, y int) []byte {
		i := (y*128 + x) * 4
		return buf[i : i+4]
	}
	if !slices.Equal(at(0, 0), []byte{255, 0, 0, 255}) {
		t.Fatalf("(0,0) = %v", at(0, 0))
	}
	if !slices.Equal(at(127, 127), []byte{0, 255, 0, 255}) {
		t.Fatalf("(127,127) = %v", at(127, 127))
	}
	if !slices.Equal(at(70, 10), []byte{0, 0, 9, 255}) {
		t.Fatalf("(70,10) = %v", at(70, 10))
	}
	if !slices.Equal(at(5, 5), []byte{0, 0, 0, 255}) {
		t.Fatalf("(5,5) should be black, got %v", at(5, 5))
	}
}

func TestTagRGBA(t *testing.T) {
	cells := []uint8{core.TagEmpty, core.TagSeed, 200}
	buf := make([]byte, 4*len(cells))
	TagRGBA(buf, cells, TagPalette)
	if !slices.Equal(buf[4:8], []byte{255, 0, 0, 255}) {
		t.Fatalf("seed tag colour = %v", buf[4:8])
	}
	last := TagPalette[len(TagPalette)-1]
	if !slices.Equal(buf[8:12], []byte{last.R, last.G, last.B, last.A}) {
		t.Fatalf("out-of-range tag should use the last entry, got %v", buf[8:12])
	}

	TagRGBA(buf, cells, nil)
	if !slices.Equal(buf, make([]byte, len(buf))) {
		t.Fatalf("empty palette should clear the buffer")
	}
}
