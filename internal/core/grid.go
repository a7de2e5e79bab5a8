package core

// Cell tags shared by the flood fill and maze simulations.
const (
	TagEmpty   uint8 = 0
	TagWall    uint8 = 1
	TagFilled  uint8 = 2
	TagSeed    uint8 = 3
	TagPassage uint8 = 5
)

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
//
// Get and Set do not check bounds. Callers keep coordinates inside the grid,
// either with InBounds or, for toroidal automata, with Wrap.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *ByteGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
// The slice is only valid until the next Reset.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Get returns the tag stored at (x, y).
func (g *ByteGrid) Get(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores tag at (x, y).
func (g *ByteGrid) Set(x, y int, tag uint8) { g.data[y*g.W+x] = tag }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	return Wrap(x, g.W), Wrap(y, g.H)
}

// Wrap folds v into [0, n). n must be positive.
func Wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Reset zero-fills the grid. Slices previously returned by Cells observe the
// cleared state, but callers must not rely on holding them across a Reset.
func (g *ByteGrid) Reset() {
	clear(g.data)
}

// Count returns how many cells carry tag.
func (g *ByteGrid) Count(tag uint8) int {
	n := 0
	for _, v := range g.data {
		if v == tag {
			n++
		}
	}
	return n
}

// Alive returns how many cells are non-zero.
func (g *ByteGrid) Alive() int {
	return len(g.data) - g.Count(0)
}
