// Package life implements Conway's Game of Life (B3/S23) on a torus, as a
// dense double-buffered grid and as a sparse live-cell set.
package life

import "hub75-ca/internal/core"

// Neighbors counts the live cells around (x, y) with toroidal wrapping. Any
// non-zero cell counts as alive.
func Neighbors(g *core.ByteGrid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := g.Wrap(x+dx, y+dy)
			if g.Get(nx, ny) != 0 {
				n++
			}
		}
	}
	return n
}

// Rule reports whether a cell is alive in the next generation.
func Rule(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step computes the next generation of cur into nxt. cur is only read and nxt
// only written, so every cell sees generation N while N+1 is built. Both
// grids must share dimensions.
func Step(cur, nxt *core.ByteGrid) {
	for y := 0; y < cur.H; y++ {
		for x := 0; x < cur.W; x++ {
			var v uint8
			if Rule(cur.Get(x, y) != 0, Neighbors(cur, x, y)) {
				v = 1
			}
			nxt.Set(x, y, v)
		}
	}
}
