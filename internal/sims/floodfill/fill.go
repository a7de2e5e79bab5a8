package floodfill

import (
	"image/color"

	"hub75-ca/internal/core"
)

// Paint chooses the colour of the step-th filled cell out of a budget.
type Paint func(step, budget int) color.RGBA

// Solid paints every cell the same colour.
func Solid(c color.RGBA) Paint {
	return func(int, int) color.RGBA { return c }
}

// Gradient sweeps the hue from 0 to 360 degrees across the budget.
func Gradient(step, budget int) color.RGBA {
	if budget <= 0 {
		return core.Hue(0)
	}
	return core.Hue(360 * float64(step) / float64(budget))
}

// Filler is a breadth-first flood fill that can be advanced a few cells per
// frame. A cell is eligible when it is empty or the seed marker; walls and
// already filled cells stop the expansion.
type Filler struct {
	grid   *core.ByteGrid
	paint  Paint
	budget int

	queue []core.Point
	head  int
	steps int
	seed  core.Point
}

// NewFiller prepares a fill over grid with a total budget of maxSteps cells.
func NewFiller(grid *core.ByteGrid, maxSteps int, paint Paint) *Filler {
	if paint == nil {
		paint = Gradient
	}
	return &Filler{grid: grid, paint: paint, budget: maxSteps}
}

// Start resets the queue to hold only seed. Out-of-range seeds leave the
// filler idle.
func (f *Filler) Start(seed core.Point) {
	f.queue = f.queue[:0]
	f.head = 0
	f.steps = 0
	f.seed = seed
	if f.grid.InBounds(seed.X, seed.Y) {
		f.queue = append(f.queue, seed)
	}
}

// Steps returns the number of cells filled since Start.
func (f *Filler) Steps() int { return f.steps }

// Budget returns the total step budget.
func (f *Filler) Budget() int { return f.budget }

// Advance fills up to n more cells without exceeding the budget, painting
// them on out. It reports whether eligible work is still queued.
func (f *Filler) Advance(n int, out core.Painter) bool {
	if out == nil {
		out = core.Discard
	}
	limit := f.steps + n
	if limit > f.budget {
		limit = f.budget
	}
	for f.head < len(f.queue) && f.steps < limit {
		p := f.queue[f.head]
		f.head++

		tag := f.grid.Get(p.X, p.Y)
		if !f.eligible(p, tag) {
			continue
		}
		f.grid.Set(p.X, p.Y, core.TagFilled)
		if tag != core.TagSeed {
			out.Set(p.X, p.Y, f.paint(f.steps, f.budget))
		}
		f.steps++

		f.push(p.X+1, p.Y)
		f.push(p.X-1, p.Y)
		f.push(p.X, p.Y+1)
		f.push(p.X, p.Y-1)
	}
	f.compact()
	return f.Exhausted()
}

// Exhausted reports whether an eligible cell is still waiting in the queue.
func (f *Filler) Exhausted() bool {
	for _, p := range f.queue[f.head:] {
		if f.eligible(p, f.grid.Get(p.X, p.Y)) {
			return true
		}
	}
	return false
}

// Done reports whether the fill can make no further progress, either because
// the region is complete or the budget is spent.
func (f *Filler) Done() bool {
	return f.steps >= f.budget || !f.Exhausted()
}

// The seed is filled whatever its tag unless it is already filled; every
// other cell must be empty or a seed marker.
func (f *Filler) eligible(p core.Point, tag uint8) bool {
	if p == f.seed && f.steps == 0 && tag != core.TagFilled {
		return true
	}
	return tag == core.TagEmpty || tag == core.TagSeed
}

func (f *Filler) push(x, y int) {
	if !f.grid.InBounds(x, y) {
		return
	}
	if tag := f.grid.Get(x, y); tag != core.TagEmpty && tag != core.TagSeed {
		return
	}
	f.queue = append(f.queue, core.Point{X: x, Y: y})
}

func (f *Filler) compact() {
	if f.head == 0 || f.head < len(f.queue)/2 {
		return
	}
	n := copy(f.queue, f.queue[f.head:])
	f.queue = f.queue[:n]
	f.head = 0
}

// Fill runs a complete breadth-first fill from seed, filling at most maxSteps
// cells. It reports whether eligible cells remained when the budget ran out;
// running out is an expected outcome, not a failure.
func Fill(grid *core.ByteGrid, seed core.Point, maxSteps int, paint Paint, out core.Painter) bool {
	f := NewFiller(grid, maxSteps, paint)
	f.Start(seed)
	return f.Advance(maxSteps, out)
}
