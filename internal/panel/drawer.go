package panel

import (
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
)

// DrawerSink forwards frames to a periph.io display.Drawer. Pixels are
// collected in a physical Frame and the smallest rectangle covering the
// writes since the previous flush is drawn on Flush.
//
// It is the hardware seam for programs that own a display.Drawer, such as a
// HUB75 or SPI panel driver; wrap it in a Display to run any sim on it.
type DrawerSink struct {
	dev   display.Drawer
	frame *Frame
	dirty image.Rectangle
}

// NewDrawerSink wraps dev. The device bounds define the physical size.
func NewDrawerSink(dev display.Drawer) *DrawerSink {
	b := dev.Bounds()
	return &DrawerSink{dev: dev, frame: NewFrame(b.Dx(), b.Dy())}
}

// Start begins accepting pixels.
func (s *DrawerSink) Start() error { return s.frame.Start() }

// Stop halts the device.
func (s *DrawerSink) Stop() error {
	s.frame.Stop()
	if err := s.dev.Halt(); err != nil {
		return fmt.Errorf("drawer sink: halt %s: %w", s.dev, err)
	}
	return nil
}

// Clear blanks the frame; the whole device is redrawn on the next flush.
func (s *DrawerSink) Clear() error {
	s.frame.Clear()
	s.dirty = s.frame.Image().Bounds()
	return nil
}

// SetPixel records one physical pixel.
func (s *DrawerSink) SetPixel(x, y int, c color.RGBA) {
	before := s.frame.Writes()
	s.frame.SetPixel(x, y, c)
	if s.frame.Writes() == before {
		return
	}
	s.dirty = s.dirty.Union(image.Rect(x, y, x+1, y+1))
}

// Flush draws the dirty region.
func (s *DrawerSink) Flush() error {
	if s.dirty.Empty() {
		return nil
	}
	r := s.dirty.Add(s.dev.Bounds().Min)
	if err := s.dev.Draw(r, s.frame.Image(), s.dirty.Min); err != nil {
		return fmt.Errorf("drawer sink: draw %v: %w", r, err)
	}
	s.dirty = image.Rectangle{}
	return nil
}
