// Package fire renders a flickering fire: heat rises from a burning bottom
// row, cooling at random, and the source goes out after a fixed number of
// rounds.
package fire

import (
	"image/color"

	"hub75-ca/internal/core"
)

// Palette maps heat levels to colours, from cold to hottest.
var Palette = [...]color.RGBA{
	{A: 255},
	{R: 32, A: 255},
	{R: 64, A: 255},
	{R: 128, G: 32, A: 255},
	{R: 192, G: 64, B: 32, A: 255},
	{R: 255, G: 64, A: 255},
	{R: 255, G: 160, A: 255},
	{R: 255, G: 255, A: 255},
	{R: 255, G: 255, B: 128, A: 255},
	{R: 192, G: 192, B: 255, A: 255},
}

// MaxHeat is the hottest palette index.
const MaxHeat = uint8(len(Palette) - 1)

// Fire holds the heat grid and the shuffled update order.
type Fire struct {
	heat   *core.ByteGrid
	order  []int
	rng    *core.RNG
	rounds int

	maxRounds  int
	fadeRounds int
	offsetY    int
}

// NewFire returns a burning fire of w×h cells painted offsetY rows down.
func NewFire(w, h int, rng *core.RNG, maxRounds, fadeRounds, offsetY int) *Fire {
	f := &Fire{
		heat:       core.NewByteGrid(w, h),
		rng:        rng,
		maxRounds:  maxRounds,
		fadeRounds: fadeRounds,
		offsetY:    offsetY,
	}
	f.order = make([]int, 0, w*(h-1))
	for i := w; i < w*h; i++ {
		f.order = append(f.order, i)
	}
	f.setBottom(MaxHeat, core.Discard)
	return f
}

// Heat exposes the heat grid.
func (f *Fire) Heat() *core.ByteGrid { return f.heat }

// Rounds returns the number of ticks so far.
func (f *Fire) Rounds() int { return f.rounds }

// GoingOut reports whether the heat source has been extinguished.
func (f *Fire) GoingOut() bool { return f.rounds >= f.maxRounds-f.fadeRounds }

// Burning reports whether the fire still has rounds to run.
func (f *Fire) Burning() bool { return f.rounds < f.maxRounds }

// Paint draws the whole heat grid.
func (f *Fire) Paint(out core.Painter) {
	for y := 0; y < f.heat.H; y++ {
		for x := 0; x < f.heat.W; x++ {
			out.Set(x, y+f.offsetY, Palette[f.heat.Get(x, y)])
		}
	}
}

// Tick spreads heat once from every cell above the bottom row, in a freshly
// shuffled order. Each source pushes its heat to the cell above, above-left
// or above-right, losing one level when it rises straight up. Only cells whose heat
// changes are painted.
func (f *Fire) Tick(out core.Painter) {
	if out == nil {
		out = core.Discard
	}
	w, cells := f.heat.W, f.heat.Cells()
	src := f.rng.Source()
	core.Shuffle(src, f.order)
	for _, i := range f.order {
		r := src.IntN(3)
		dst := i - w + r - 1
		if dst < 0 || dst >= len(cells) {
			continue
		}
		v := cells[i]
		if r&1 == 1 && v > 0 {
			v--
		}
		if cells[dst] == v {
			continue
		}
		cells[dst] = v
		out.Set(dst%w, dst/w+f.offsetY, Palette[v])
	}
	f.rounds++
	if f.GoingOut() {
		f.setBottom(0, out)
	}
}

func (f *Fire) setBottom(v uint8, out core.Painter) {
	y := f.heat.H - 1
	for x := 0; x < f.heat.W; x++ {
		if f.heat.Get(x, y) == v {
			continue
		}
		f.heat.Set(x, y, v)
		out.Set(x, y+f.offsetY, Palette[v])
	}
}
