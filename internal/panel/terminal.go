package panel

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Terminal emulates a wired panel on a tcell screen. Physical writes land in
// a Frame; Flush reads the frame back through the layout so the terminal shows
// the picture a viewer would see on the assembled panel. Each terminal cell
// holds two logical rows using an upper half block.
type Terminal struct {
	screen tcell.Screen
	frame  *Frame
	remap  Remapper
	dirty  bool
}

// NewTerminal creates a terminal sink for the given layout. The screen must
// not be initialised yet; Start does that.
func NewTerminal(screen tcell.Screen, remap Remapper) *Terminal {
	p := remap.Physical()
	return &Terminal{screen: screen, frame: NewFrame(p.W, p.H), remap: remap}
}

// Start initialises the screen.
func (t *Terminal) Start() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal sink: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.frame.Start()
	return nil
}

// Stop restores the terminal.
func (t *Terminal) Stop() error {
	t.frame.Stop()
	t.screen.Fini()
	return nil
}

// Clear blanks the frame and the screen.
func (t *Terminal) Clear() error {
	t.frame.Clear()
	t.screen.Clear()
	t.dirty = true
	return nil
}

// SetPixel records one physical pixel.
func (t *Terminal) SetPixel(x, y int, c color.RGBA) {
	t.frame.SetPixel(x, y, c)
	t.dirty = true
}

// Flush redraws the screen if anything changed since the last flush.
func (t *Terminal) Flush() error {
	if !t.dirty {
		return nil
	}
	size := t.remap.Logical()
	for y := 0; y < size.H; y += 2 {
		for x := 0; x < size.W; x++ {
			top := t.logical(x, y)
			bottom := color.RGBA{A: 255}
			if y+1 < size.H {
				bottom = t.logical(x, y+1)
			}
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			t.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
	t.screen.Show()
	t.dirty = false
	return nil
}

// Screen exposes the underlying tcell screen, e.g. for event polling.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

func (t *Terminal) logical(x, y int) color.RGBA {
	px, py := t.remap.Remap(x, y)
	return t.frame.At(px, py)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
