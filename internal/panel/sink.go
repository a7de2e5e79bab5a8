package panel

import (
	"image"
	"image/color"
	"image/draw"
)

// Sink is a physical frame sink such as the HUB75 driver. SetPixel receives
// coordinates that were already remapped.
type Sink interface {
	Start() error
	Clear() error
	SetPixel(x, y int, c color.RGBA)
	Stop() error
}

// Flusher is implemented by sinks that buffer writes until the end of a frame.
type Flusher interface {
	Flush() error
}

// Frame is an in-memory physical frame buffer. It is the sink used in tests
// and the backing store of the GUI and terminal views.
type Frame struct {
	img     *image.RGBA
	running bool
	writes  int
}

// NewFrame allocates a black frame of the given physical size.
func NewFrame(w, h int) *Frame {
	f := &Frame{img: image.NewRGBA(image.Rect(0, 0, w, h))}
	f.fill()
	return f
}

func (f *Frame) fill() {
	draw.Draw(f.img, f.img.Bounds(), image.NewUniform(color.RGBA{A: 255}), image.Point{}, draw.Src)
}

// Start marks the frame as refreshing.
func (f *Frame) Start() error {
	f.running = true
	return nil
}

// Stop marks the frame as halted.
func (f *Frame) Stop() error {
	f.running = false
	return nil
}

// Running reports whether Start was called without a matching Stop.
func (f *Frame) Running() bool { return f.running }

// Clear blanks the frame to black.
func (f *Frame) Clear() error {
	f.fill()
	return nil
}

// SetPixel writes one physical pixel. Out-of-range writes are ignored.
func (f *Frame) SetPixel(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return
	}
	f.img.SetRGBA(x, y, c)
	f.writes++
}

// At returns the physical pixel at (x, y).
func (f *Frame) At(x, y int) color.RGBA { return f.img.RGBAAt(x, y) }

// Image exposes the backing image.
func (f *Frame) Image() *image.RGBA { return f.img }

// Writes returns the number of accepted SetPixel calls.
func (f *Frame) Writes() int { return f.writes }
