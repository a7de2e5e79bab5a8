package life

import (
	"image/color"

	"hub75-ca/internal/core"
)

// Dense is the double-buffered Life scenario.
type Dense struct {
	cfg        Config
	cur, nxt   *core.ByteGrid
	generation int
	changed    int
}

// NewDense returns a dense Life simulation.
func NewDense(cfg Config) *Dense {
	return &Dense{
		cfg: cfg,
		cur: core.NewByteGrid(cfg.Width, cfg.Height),
		nxt: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (d *Dense) Name() string { return "life" }

// Size returns the grid dimensions.
func (d *Dense) Size() core.Size { return d.cur.Size() }

// Cells exposes the current generation.
func (d *Dense) Cells() []uint8 { return d.cur.Cells() }

// Grid returns the current generation.
func (d *Dense) Grid() *core.ByteGrid { return d.cur }

// Generation returns the number of steps since Reset.
func (d *Dense) Generation() int { return d.generation }

// Reset seeds the interior randomly and paints the whole board.
func (d *Dense) Reset(seed int64, p core.Painter) {
	if p == nil {
		p = core.Discard
	}
	src := core.NewRNG(seed).Source()
	d.cur.Reset()
	d.nxt.Reset()
	d.generation, d.changed = 0, 0

	x0, y0, x1, y1 := d.cfg.interior()
	cells := d.cur.Cells()
	for y := y0; y < y1; y++ {
		row := cells[y*d.cur.W+x0 : y*d.cur.W+x1]
		if d.cfg.Density == 50 {
			core.FillBinary(src, row)
			continue
		}
		for i := range row {
			if src.IntN(100) < d.cfg.Density {
				row[i] = 1
			}
		}
	}
	for y := 0; y < d.cur.H; y++ {
		for x := 0; x < d.cur.W; x++ {
			p.Set(x, y, cellColor(d.cur.Get(x, y)))
		}
	}
}

// Step advances one generation and repaints only the cells that changed. It
// returns false once the board is static or the generation limit is reached.
func (d *Dense) Step(p core.Painter) bool {
	if p == nil {
		p = core.Discard
	}
	Step(d.cur, d.nxt)
	d.changed = 0
	cur, nxt := d.cur.Cells(), d.nxt.Cells()
	for i := range cur {
		if cur[i] != nxt[i] {
			d.changed++
			p.Set(i%d.cur.W, i/d.cur.W, cellColor(nxt[i]))
		}
	}
	d.cur, d.nxt = d.nxt, d.cur
	d.generation++
	if d.cfg.MaxGenerations > 0 && d.generation >= d.cfg.MaxGenerations {
		return false
	}
	return d.changed > 0
}

// Parameters reports the scenario state.
func (d *Dense) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Life",
		Params: []core.Parameter{
			core.IntParam("generation", "Generation", d.generation),
			core.IntParam("alive", "Alive", d.cur.Alive()),
			core.FloatParam("coverage", "Coverage %", coverage(d.cur.Alive(), d.cur.W*d.cur.H)),
			core.IntParam("changed", "Changed", d.changed),
			core.IntParam("density", "Density %", d.cfg.Density),
		},
	}}}
}

func coverage(alive, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(alive) / float64(total)
}

func cellColor(v uint8) color.RGBA {
	if v != 0 {
		return core.White
	}
	return core.Black
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewDense(FromMap(DefaultConfig(), cfg))
	})
}
