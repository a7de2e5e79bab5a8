package core

import (
	"slices"
	"testing"
)

func TestResetIsIdempotent(t *testing.T) {
	g := NewByteGrid(7, 5)
	for i := range g.Cells() {
		g.Cells()[i] = uint8(i % 6)
	}

	g.Reset()
	first := append([]uint8(nil), g.Cells()...)
	g.Reset()
	second := append([]uint8(nil), g.Cells()...)

	if !slices.Equal(first, second) {
		t.Fatal("two consecutive resets produced different grids")
	}
	if g.Alive() != 0 {
		t.Fatalf("expected empty grid after reset, %d cells alive", g.Alive())
	}
	if len(second) != 35 {
		t.Fatalf("reset changed backing size to %d", len(second))
	}
}

func TestGetSetRowMajor(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, TagWall)
	g.Set(1, 0, TagSeed)

	if got := g.Cells()[2*4+3]; got != TagWall {
		t.Fatalf("row-major index mismatch, got %d", got)
	}
	if g.Get(1, 0) != TagSeed {
		t.Fatal("Get did not return the stored tag")
	}
	if g.Count(TagWall) != 1 || g.Count(TagSeed) != 1 {
		t.Fatal("Count mismatch")
	}
}

func TestInBoundsAndWrap(t *testing.T) {
	g := NewByteGrid(5, 5)
	cases := []struct {
		x, y int
		in   bool
	}{
		{0, 0, true}, {4, 4, true}, {-1, 0, false}, {0, 5, false}, {5, 2, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.in {
			t.Fatalf("InBounds(%d,%d)=%v, expected %v", c.x, c.y, got, c.in)
		}
	}
	if x, y := g.Wrap(-1, 5); x != 4 || y != 0 {
		t.Fatalf("Wrap(-1,5)=(%d,%d), expected (4,0)", x, y)
	}
}

func TestWrapFoldsIntoRange(t *testing.T) {
	cases := []struct{ v, n, want int }{
		{0, 7, 0}, {6, 7, 6}, {7, 7, 0}, {-1, 7, 6}, {-15, 7, 6}, {22, 7, 1},
	}
	for _, c := range cases {
		if got := Wrap(c.v, c.n); got != c.want {
			t.Fatalf("Wrap(%d,%d)=%d, expected %d", c.v, c.n, got, c.want)
		}
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d", g.W, g.H)
	}
}
