// Package maze carves wide-corridor mazes with a randomized depth-first
// backtracker and animates a flood fill inside one of the walled cells.
package maze

import (
	"github.com/zyedidia/generic/mapset"

	"hub75-ca/internal/core"
)

// Result describes a carved maze.
type Result struct {
	Start     core.Point
	Seed      core.Point
	SeedFound bool
	Carved    int
}

// Carver carves corridors of the given width into a grid.
type Carver struct {
	Border      int
	Corridor    int
	SeedRetries int
}

// Carve runs the recursive backtracker on g and picks an empty seed cell for
// the fill. Corridor cells between stack entries are tagged as walls, the
// stack entries themselves as passages; both block the fill.
func (c Carver) Carve(g *core.ByteGrid, rng *core.RNG, out core.Painter) Result {
	if out == nil {
		out = core.Discard
	}
	step := c.Corridor
	if step < 2 {
		step = 2
	}

	start := core.Point{
		X: clamp(rng.Between(c.Border/2, g.W-c.Border/2), 1, g.W-1),
		Y: clamp(rng.Between(c.Border/2, g.H-c.Border/2), 1, g.H-1),
	}
	res := Result{Start: start}

	visited := mapset.New[core.Point]()
	visited.Put(start)
	stack := []core.Point{start}
	mark(g, out, start, core.TagPassage)
	res.Carved++

	dirs := []core.Point{{X: 0, Y: step}, {X: 0, Y: -step}, {X: step, Y: 0}, {X: -step, Y: 0}}
	src := rng.Source()

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		core.Shuffle(src, dirs)

		moved := false
		for _, d := range dirs {
			next := core.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if next.X <= 0 || next.X >= g.W || next.Y <= 0 || next.Y >= g.H || visited.Has(next) {
				continue
			}
			ux, uy := sign(d.X), sign(d.Y)
			for i := 1; i < step; i++ {
				mark(g, out, core.Point{X: cur.X + ux*i, Y: cur.Y + uy*i}, core.TagWall)
				res.Carved++
			}
			visited.Put(next)
			stack = append(stack, next)
			mark(g, out, next, core.TagPassage)
			res.Carved++
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}

	res.Seed, res.SeedFound = c.pickSeed(g, rng)
	return res
}

// pickSeed draws random cells inside the border until it finds an empty one.
// After SeedRetries misses it scans the border window, then the whole grid,
// in row-major order.
func (c Carver) pickSeed(g *core.ByteGrid, rng *core.RNG) (core.Point, bool) {
	lo, hiX, hiY := c.Border, g.W-c.Border-1, g.H-c.Border-1
	if hiX < lo || hiY < lo {
		lo, hiX, hiY = 0, g.W-1, g.H-1
	}
	for i := 0; i < c.SeedRetries; i++ {
		x, y := rng.Between(lo, hiX), rng.Between(lo, hiY)
		if g.Get(x, y) == core.TagEmpty {
			return core.Point{X: x, Y: y}, true
		}
	}
	if p, ok := scanEmpty(g, lo, lo, hiX, hiY); ok {
		return p, true
	}
	return scanEmpty(g, 0, 0, g.W-1, g.H-1)
}

func scanEmpty(g *core.ByteGrid, x0, y0, x1, y1 int) (core.Point, bool) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if g.Get(x, y) == core.TagEmpty {
				return core.Point{X: x, Y: y}, true
			}
		}
	}
	return core.Point{}, false
}

func mark(g *core.ByteGrid, out core.Painter, p core.Point, tag uint8) {
	g.Set(p.X, p.Y, tag)
	out.Set(p.X, p.Y, core.White)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
