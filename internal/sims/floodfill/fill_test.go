package floodfill

import (
	"image/color"
	"slices"
	"testing"

	"hub75-ca/internal/core"
)

type recorder map[core.Point]color.RGBA

func (r recorder) Set(x, y int, c color.RGBA) { r[core.Point{X: x, Y: y}] = c }

// walledGrid returns a w*h grid whose outer ring is wall.
func walledGrid(w, h int) *core.ByteGrid {
	g := core.NewByteGrid(w, h)
	for x := 0; x < w; x++ {
		g.Set(x, 0, core.TagWall)
		g.Set(x, h-1, core.TagWall)
	}
	for y := 0; y < h; y++ {
		g.Set(0, y, core.TagWall)
		g.Set(w-1, y, core.TagWall)
	}
	return g
}

func TestFillWalledTenByTen(t *testing.T) {
	g := walledGrid(10, 10)
	g.Set(5, 5, core.TagSeed)

	exhausted := Fill(g, core.Point{X: 5, Y: 5}, 200, Gradient, nil)

	if exhausted {
		t.Fatal("fill of a 64-cell room with a 200 budget should not be exhausted")
	}
	if got := g.Count(core.TagFilled); got != 64 {
		t.Fatalf("expected 64 filled cells, got %d", got)
	}
	if got := g.Count(core.TagWall); got != 36 {
		t.Fatalf("walls were overwritten: %d left, expected 36", got)
	}
	if g.Count(core.TagEmpty) != 0 {
		t.Fatal("interior cells left empty")
	}
}

func TestFillExactBudgetIsNotExhausted(t *testing.T) {
	g := walledGrid(10, 10)
	if Fill(g, core.Point{X: 1, Y: 1}, 64, nil, nil) {
		t.Fatal("a budget equal to the region size should report no remaining work")
	}
	if got := g.Count(core.TagFilled); got != 64 {
		t.Fatalf("expected 64 filled cells, got %d", got)
	}
}

func TestFillBudgetTruncation(t *testing.T) {
	g := walledGrid(10, 10)
	out := recorder{}

	if !Fill(g, core.Point{X: 4, Y: 4}, 10, Solid(core.White), out) {
		t.Fatal("expected exhausted=true when the budget is smaller than the region")
	}
	if got := g.Count(core.TagFilled); got != 10 {
		t.Fatalf("expected exactly 10 filled cells, got %d", got)
	}
	if len(out) != 10 {
		t.Fatalf("expected 10 painted cells, got %d", len(out))
	}
}

func TestFillRespectsInteriorWall(t *testing.T) {
	g := walledGrid(12, 12)
	for y := 1; y < 11; y++ {
		g.Set(6, y, core.TagWall)
	}
	before := g.Count(core.TagWall)

	Fill(g, core.Point{X: 2, Y: 2}, 1000, nil, nil)

	if g.Count(core.TagWall) != before {
		t.Fatal("fill overwrote wall cells")
	}
	for y := 1; y < 11; y++ {
		for x := 7; x < 11; x++ {
			if g.Get(x, y) != core.TagEmpty {
				t.Fatalf("fill leaked through the wall at (%d,%d)", x, y)
			}
		}
	}
	if got := g.Count(core.TagFilled); got != 5*10 {
		t.Fatalf("expected 50 filled cells on the left, got %d", got)
	}
}

func TestRefillIsNoOp(t *testing.T) {
	g := walledGrid(8, 8)
	Fill(g, core.Point{X: 3, Y: 3}, 100, nil, nil)
	snapshot := append([]uint8(nil), g.Cells()...)
	out := recorder{}

	f := NewFiller(g, 100, nil)
	f.Start(core.Point{X: 3, Y: 3})
	if f.Advance(100, out) {
		t.Fatal("refill reported remaining work")
	}
	if f.Steps() != 0 {
		t.Fatalf("refill used %d steps of the budget", f.Steps())
	}
	if len(out) != 0 {
		t.Fatalf("refill painted %d cells", len(out))
	}
	if !f.Done() {
		t.Fatal("refill should be done immediately")
	}
	if !slices.Equal(snapshot, g.Cells()) {
		t.Fatal("refill changed the grid")
	}
}

func TestSeedMarkerIsNotRepainted(t *testing.T) {
	g := walledGrid(6, 6)
	g.Set(2, 2, core.TagSeed)
	out := recorder{}

	Fill(g, core.Point{X: 2, Y: 2}, 100, Solid(core.White), out)

	if _, painted := out[core.Point{X: 2, Y: 2}]; painted {
		t.Fatal("seed marker should keep its own colour")
	}
	if g.Get(2, 2) != core.TagFilled {
		t.Fatal("seed should be consumed by the fill")
	}
	if len(out) != 15 {
		t.Fatalf("expected 15 painted cells, got %d", len(out))
	}
}

func TestSeedBypassesEligibility(t *testing.T) {
	g := core.NewByteGrid(5, 1)
	g.Set(2, 0, core.TagWall)

	Fill(g, core.Point{X: 2, Y: 0}, 10, nil, nil)

	if g.Count(core.TagFilled) != 5 {
		t.Fatalf("a wall seed is always filled and expands, got %d filled", g.Count(core.TagFilled))
	}
}

func TestOutOfBoundsSeedDoesNothing(t *testing.T) {
	g := core.NewByteGrid(4, 4)
	if Fill(g, core.Point{X: 4, Y: 0}, 10, nil, nil) {
		t.Fatal("out of range seed reported work")
	}
	if g.Alive() != 0 {
		t.Fatal("out of range seed changed the grid")
	}
}

func TestGradientSweepsHue(t *testing.T) {
	if Gradient(0, 100) != core.Hue(0) {
		t.Fatal("gradient should start at hue 0")
	}
	if Gradient(50, 100) != core.Hue(180) {
		t.Fatal("gradient midpoint should be hue 180")
	}
	if Gradient(3, 0) != core.Hue(0) {
		t.Fatal("zero budget should not divide by zero")
	}
}

func TestAdvanceInBatchesMatchesSingleFill(t *testing.T) {
	a := walledGrid(20, 20)
	b := walledGrid(20, 20)
	outA, outB := recorder{}, recorder{}

	Fill(a, core.Point{X: 7, Y: 9}, 300, Gradient, outA)

	f := NewFiller(b, 300, Gradient)
	f.Start(core.Point{X: 7, Y: 9})
	for i := 0; i < 100 && f.Advance(7, outB); i++ {
	}

	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("batched fill produced a different grid")
	}
	if len(outA) != len(outB) {
		t.Fatalf("painted %d cells in batches, %d at once", len(outB), len(outA))
	}
	for p, c := range outA {
		if outB[p] != c {
			t.Fatalf("colour mismatch at %v", p)
		}
	}
	if f.Steps() != 300 || !f.Done() {
		t.Fatalf("expected the 300-step budget to be spent, got %d", f.Steps())
	}
}
