package floodfill

import "hub75-ca/internal/core"

// drawWall draws a three-segment wall line: down from the top edge, left, and
// down again to the bottom edge. The line splits the panel into two regions.
func drawWall(g *core.ByteGrid, border int, rng *core.RNG, out core.Painter) {
	w, h := g.W, g.H

	sx := rng.Between(border+1, w-border-1)
	down := rng.Between(1, h-15)
	for i := 0; i < down; i++ {
		wall(g, out, sx, i)
	}

	left := rng.Between(1, sx-border)
	for i := 0; i < left; i++ {
		wall(g, out, sx-i, down)
	}

	for y := down; y < h; y++ {
		wall(g, out, sx-left, y)
	}
}

func wall(g *core.ByteGrid, out core.Painter, x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.Set(x, y, core.TagWall)
	out.Set(x, y, core.White)
}

// pickSeed draws random cells inside the border until one is off the wall.
// After retries attempts it takes the first empty cell in row-major order.
func pickSeed(g *core.ByteGrid, border, retries int, rng *core.RNG) (core.Point, bool) {
	for i := 0; i < retries; i++ {
		x := rng.Between(border, g.W-border-1)
		y := rng.Between(border, g.H-border-1)
		if g.Get(x, y) == core.TagEmpty {
			return core.Point{X: x, Y: y}, true
		}
	}
	return firstEmpty(g, border)
}

func firstEmpty(g *core.ByteGrid, border int) (core.Point, bool) {
	for y := border; y < g.H-border; y++ {
		for x := border; x < g.W-border; x++ {
			if g.Get(x, y) == core.TagEmpty {
				return core.Point{X: x, Y: y}, true
			}
		}
	}
	return core.Point{}, false
}
