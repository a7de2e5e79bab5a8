// Package ants runs Langton-style ants over a Game of Life board. Each ant
// flips the cell it stands on, moves, and then triggers a local Life update
// around its new position.
package ants

import (
	"hub75-ca/internal/core"
	"hub75-ca/internal/sims/life"
)

// Headings in clockwise order; turning right adds one.
const (
	North = iota
	East
	South
	West
)

var directions = [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Cell values. Plain Life births store Alive; cells lit by an ant in
// multicolour mode store Colored+paletteIndex.
const (
	Dead    uint8 = 0
	Alive   uint8 = 1
	Colored uint8 = 2
)

// Ant is one agent. Life counts the remaining ticks when the colony has a
// lifespan; it is ignored otherwise.
type Ant struct {
	Pos     core.Point
	Heading int
	Color   int
	Life    int
}

// Change records a cell whose value was written during a tick.
type Change struct {
	X, Y  int
	Value uint8
}

// Colony advances a set of ants over a shared grid.
type Colony struct {
	grid       *core.ByteGrid
	ants       []Ant
	rng        *core.RNG
	lifespan   int
	multicolor bool
	randomTurn float64

	changes []Change
	prev    []core.Point
}

// NewColony wraps grid and ants. lifespan 0 makes the ants immortal.
func NewColony(grid *core.ByteGrid, ants []Ant, rng *core.RNG, lifespan int, multicolor bool) *Colony {
	return &Colony{grid: grid, ants: ants, rng: rng, lifespan: lifespan, multicolor: multicolor, randomTurn: 0.25}
}

// SetRandomTurn sets the chance of a random heading on dead cells.
func (c *Colony) SetRandomTurn(p float64) { c.randomTurn = p }

// Ants returns the agents in update order.
func (c *Colony) Ants() []Ant { return c.ants }

// Grid returns the board.
func (c *Colony) Grid() *core.ByteGrid { return c.grid }

// Spawn places an ant at a random cell with a random heading.
func (c *Colony) Spawn(color int) Ant {
	return Ant{
		Pos:     core.Point{X: c.rng.Between(0, c.grid.W-1), Y: c.rng.Between(0, c.grid.H-1)},
		Heading: c.rng.Between(0, 3),
		Color:   color,
		Life:    c.lifespan,
	}
}

// Tick moves every ant once, in index order. It returns the cells written
// during the tick and the positions the ants left; both slices are reused by
// the next call.
func (c *Colony) Tick() ([]Change, []core.Point) {
	c.changes = c.changes[:0]
	c.prev = c.prev[:0]
	for i := range c.ants {
		a := &c.ants[i]
		c.prev = append(c.prev, a.Pos)

		if c.grid.Get(a.Pos.X, a.Pos.Y) == Dead {
			if c.rng.Source().Float64() < c.randomTurn {
				a.Heading = c.rng.Between(0, 3)
			} else {
				a.Heading = (a.Heading + 3) % 4
			}
			v := Alive
			if c.multicolor {
				v = Colored + uint8(a.Color)
			}
			c.write(a.Pos.X, a.Pos.Y, v)
		} else {
			a.Heading = (a.Heading + 1) % 4
			c.write(a.Pos.X, a.Pos.Y, Dead)
		}

		d := directions[a.Heading]
		nx, ny := c.grid.Wrap(a.Pos.X+d.X, a.Pos.Y+d.Y)
		a.Pos = core.Point{X: nx, Y: ny}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := c.grid.Wrap(nx+dx, ny+dy)
				c.relax(x, y)
			}
		}

		if c.lifespan > 0 {
			a.Life--
			if a.Life <= 0 {
				*a = c.Spawn(a.Color)
			}
		}
	}
	return c.changes, c.prev
}

// relax applies the Life rule to one cell in place, so later cells in the
// same window already see the update.
func (c *Colony) relax(x, y int) {
	cur := c.grid.Get(x, y)
	next := life.Rule(cur != Dead, life.Neighbors(c.grid, x, y))
	switch {
	case cur != Dead && !next:
		c.write(x, y, Dead)
	case cur == Dead && next:
		c.write(x, y, Alive)
	}
}

func (c *Colony) write(x, y int, v uint8) {
	c.grid.Set(x, y, v)
	c.changes = append(c.changes, Change{X: x, Y: y, Value: v})
}
