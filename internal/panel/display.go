package panel

import (
	"image/color"

	"hub75-ca/internal/core"
)

// Stats counts pixel traffic through a Display.
type Stats struct {
	Written int // writes forwarded to the sink
	Skipped int // writes that would not change the panel
	Dropped int // writes outside the logical or physical bounds
}

// Display paints logical pixels onto a physical Sink. It implements
// core.Painter.
//
// The panel bus is slow, so Display remembers the last colour sent to every
// physical pixel and skips writes that repeat it. The sink is owned by a
// single render loop; Display is not safe for concurrent use.
type Display struct {
	sink     Sink
	remap    Remapper
	logical  core.Size
	physical core.Size
	shadow   []color.RGBA
	stats    Stats
}

// NewDisplay wraps sink with the given layout.
func NewDisplay(sink Sink, remap Remapper) *Display {
	p := remap.Physical()
	return &Display{
		sink:     sink,
		remap:    remap,
		logical:  remap.Logical(),
		physical: p,
		shadow:   make([]color.RGBA, p.W*p.H),
	}
}

// Size returns the logical size of the display.
func (d *Display) Size() core.Size { return d.logical }

// Remapper returns the layout in use.
func (d *Display) Remapper() Remapper { return d.remap }

// Set paints logical pixel (x, y). Coordinates outside the logical image, or
// whose physical address falls outside the strip, are dropped silently.
func (d *Display) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= d.logical.W || y < 0 || y >= d.logical.H {
		d.stats.Dropped++
		return
	}
	px, py := d.remap.Remap(x, y)
	if px < 0 || px >= d.physical.W || py < 0 || py >= d.physical.H {
		d.stats.Dropped++
		return
	}
	idx := py*d.physical.W + px
	if d.shadow[idx] == c {
		d.stats.Skipped++
		return
	}
	d.shadow[idx] = c
	d.sink.SetPixel(px, py, c)
	d.stats.Written++
}

// Start begins panel refresh.
func (d *Display) Start() error { return d.sink.Start() }

// Stop halts panel refresh.
func (d *Display) Stop() error { return d.sink.Stop() }

// Clear blanks the panel. Afterwards every pixel is known to be black.
func (d *Display) Clear() error {
	for i := range d.shadow {
		d.shadow[i] = core.Black
	}
	return d.sink.Clear()
}

// Flush pushes buffered writes if the sink buffers them.
func (d *Display) Flush() error {
	if f, ok := d.sink.(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// Stats returns the traffic counters.
func (d *Display) Stats() Stats { return d.stats }

// ResetStats zeroes the traffic counters.
func (d *Display) ResetStats() { d.stats = Stats{} }
