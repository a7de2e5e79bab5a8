package life

import (
	"image/color"
	"slices"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"hub75-ca/internal/core"
)

func gridWith(w, h int, pts ...core.Point) *core.ByteGrid {
	g := core.NewByteGrid(w, h)
	for _, p := range pts {
		g.Set(p.X, p.Y, 1)
	}
	return g
}

func expectAlive(t *testing.T, g *core.ByteGrid, want ...core.Point) {
	t.Helper()
	expects := make(map[core.Point]bool, len(want))
	for _, p := range want {
		expects[p] = true
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			alive := g.Get(x, y) != 0
			if expects[core.Point{X: x, Y: y}] != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, !alive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := []core.Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}
	horizontal := []core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}

	cur := gridWith(5, 5, vertical...)
	nxt := core.NewByteGrid(5, 5)
	before := slices.Clone(cur.Cells())

	Step(cur, nxt)
	if !slices.Equal(before, cur.Cells()) {
		t.Fatalf("step modified the current generation")
	}
	expectAlive(t, nxt, horizontal...)

	Step(nxt, cur)
	expectAlive(t, cur, vertical...)
}

func TestNeighborsWrap(t *testing.T) {
	g := gridWith(4, 4, core.Point{X: 3, Y: 3}, core.Point{X: 0, Y: 3}, core.Point{X: 3, Y: 0})
	if n := Neighbors(g, 0, 0); n != 3 {
		t.Fatalf("expected 3 wrapped neighbours, got %d", n)
	}
}

func TestNonZeroCountsAsAlive(t *testing.T) {
	g := core.NewByteGrid(5, 5)
	g.Set(1, 0, 4)
	g.Set(1, 1, 7)
	g.Set(1, 2, 1)
	nxt := core.NewByteGrid(5, 5)
	Step(g, nxt)
	expectAlive(t, nxt, core.Point{X: 0, Y: 1}, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1})
}

func TestSparseMatchesDense(t *testing.T) {
	const w, h = 24, 16
	cur := core.NewByteGrid(w, h)
	core.FillBinary(core.NewRNG(11).Source(), cur.Cells())
	nxt := core.NewByteGrid(w, h)

	live := mapset.New[core.Point]()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if cur.Get(x, y) != 0 {
				live.Put(core.Point{X: x, Y: y})
			}
		}
	}

	for gen := 0; gen < 20; gen++ {
		Step(cur, nxt)
		cur, nxt = nxt, cur
		live = StepSparse(live, w, h)

		if live.Size() != cur.Alive() {
			t.Fatalf("generation %d: sparse has %d cells, dense %d", gen, live.Size(), cur.Alive())
		}
		live.Each(func(p core.Point) {
			if cur.Get(p.X, p.Y) == 0 {
				t.Fatalf("generation %d: sparse cell %v is dead in dense grid", gen, p)
			}
		})
	}
}

func TestSparseInputUntouched(t *testing.T) {
	live := mapset.New[core.Point]()
	live.Put(core.Point{X: 2, Y: 2})
	next := StepSparse(live, 5, 5)
	if next.Size() != 0 {
		t.Fatalf("lonely cell should die, got %d cells", next.Size())
	}
	if !live.Has(core.Point{X: 2, Y: 2}) || live.Size() != 1 {
		t.Fatalf("input set was modified")
	}
}

func TestDenseResetKeepsBorderClear(t *testing.T) {
	sim := NewDense(DefaultConfig())
	sim.Reset(3, nil)
	g := sim.Grid()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			inside := x >= 16 && x < 48 && y >= 16 && y < 48
			if !inside && g.Get(x, y) != 0 {
				t.Fatalf("cell (%d,%d) outside the border is alive", x, y)
			}
		}
	}
	if g.Alive() == 0 {
		t.Fatalf("expected a seeded interior")
	}

	other := NewDense(DefaultConfig())
	other.Reset(3, nil)
	if !slices.Equal(g.Cells(), other.Cells()) {
		t.Fatalf("reset is not deterministic")
	}
}

func TestDensePaintsOnlyChanges(t *testing.T) {
	sim := NewDense(DefaultConfig())
	sim.Reset(5, nil)
	before := slices.Clone(sim.Cells())

	painted := 0
	sim.Step(core.PainterFunc(func(x, y int, c color.RGBA) {
		painted++
		if (sim.nxt.Get(x, y) != 0) == (c == core.White) {
			return
		}
		t.Fatalf("cell (%d,%d) painted %v", x, y, c)
	}))

	diff := 0
	for i, v := range sim.Cells() {
		if v != before[i] {
			diff++
		}
	}
	if painted != diff {
		t.Fatalf("painted %d cells, %d changed", painted, diff)
	}
}

func TestSparseSimTracksMirror(t *testing.T) {
	sim := NewSparse(DefaultSparseConfig())
	sim.Reset(8, nil)
	if sim.Live().Size() == 0 {
		t.Fatalf("expected live cells after reset")
	}
	for i := 0; i < 10; i++ {
		sim.Step(nil)
		if sim.Live().Size() != sim.mirror.Alive() {
			t.Fatalf("step %d: live set %d, mirror %d", i, sim.Live().Size(), sim.mirror.Alive())
		}
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(DefaultSparseConfig(), map[string]string{"density": "25", "border": "-1", "max_generations": "50"})
	if cfg.Density != 25 || cfg.MaxGenerations != 50 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Border != 48 {
		t.Fatalf("negative border should be ignored, got %d", cfg.Border)
	}
}
