package panel

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"testing"

	"hub75-ca/internal/core"
)

type fakeDrawer struct {
	img    *image.RGBA
	rects  []image.Rectangle
	halted bool
	fail   error
}

func newFakeDrawer(w, h int) *fakeDrawer {
	return &fakeDrawer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (f *fakeDrawer) String() string          { return "fake" }
func (f *fakeDrawer) Halt() error             { f.halted = true; return nil }
func (f *fakeDrawer) ColorModel() color.Model { return color.RGBAModel }
func (f *fakeDrawer) Bounds() image.Rectangle { return f.img.Bounds() }

func (f *fakeDrawer) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if f.fail != nil {
		return f.fail
	}
	f.rects = append(f.rects, r)
	draw.Draw(f.img, r, src, sp, draw.Src)
	return nil
}

func TestDrawerSinkDrawsDirtyRegion(t *testing.T) {
	dev := newFakeDrawer(64, 64)
	sink := NewDrawerSink(dev)
	d := NewDisplay(sink, Identity{W: 64, H: 64})
	if err := d.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	d.Set(3, 4, core.Red)
	d.Set(10, 6, core.White)
	if err := d.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if len(dev.rects) != 1 {
		t.Fatalf("expected one draw call, got %d", len(dev.rects))
	}
	if want := image.Rect(3, 4, 11, 7); dev.rects[0] != want {
		t.Fatalf("expected dirty rect %v, got %v", want, dev.rects[0])
	}
	if dev.img.RGBAAt(10, 6) != core.White || dev.img.RGBAAt(3, 4) != core.Red {
		t.Fatal("device did not receive the pixels")
	}

	if err := d.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}
	if len(dev.rects) != 1 {
		t.Fatal("flush without writes should not draw")
	}

	if err := d.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if !dev.halted {
		t.Fatal("Stop should halt the device")
	}
}

func TestDrawerSinkWrapsDrawErrors(t *testing.T) {
	boom := errors.New("bus error")
	dev := newFakeDrawer(8, 8)
	dev.fail = boom
	sink := NewDrawerSink(dev)

	sink.SetPixel(1, 1, core.Red)
	if err := sink.Flush(); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped bus error, got %v", err)
	}
}
