package ants

import (
	"image/color"

	"hub75-ca/internal/core"
)

// Palette colours ants in multicolour mode.
var Palette = []color.RGBA{
	{R: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 255, G: 255, A: 255},
	{G: 255, B: 255, A: 255},
	{R: 255, B: 255, A: 255},
}

// AliveColor is the colour of plain live cells.
var AliveColor = core.Gray(155)

// Sim is the ant scenario.
type Sim struct {
	cfg    Config
	grid   *core.ByteGrid
	colony *Colony
	ticks  int
}

// New returns an ant scenario with the provided configuration.
func New(cfg Config) *Sim {
	return &Sim{cfg: cfg, grid: core.NewByteGrid(cfg.Width, cfg.Height)}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "ants" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.grid.Size() }

// Cells exposes the board.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Colony returns the running colony.
func (s *Sim) Colony() *Colony { return s.colony }

// Reset seeds the board and spawns fresh ants.
func (s *Sim) Reset(seed int64, p core.Painter) {
	if p == nil {
		p = core.Discard
	}
	rng := core.NewRNG(seed)
	s.grid.Reset()
	s.ticks = 0
	if s.cfg.OneIn > 0 {
		cells := s.grid.Cells()
		for i := range cells {
			if rng.Between(0, s.cfg.OneIn-1) == 0 {
				cells[i] = Alive
			}
		}
	}

	s.colony = NewColony(s.grid, make([]Ant, 0, s.cfg.Ants), rng, s.cfg.Lifespan, s.cfg.Multicolor)
	s.colony.SetRandomTurn(s.cfg.RandomTurn)
	for i := 0; i < s.cfg.Ants; i++ {
		s.colony.ants = append(s.colony.ants, s.colony.Spawn(i%len(Palette)))
	}

	for y := 0; y < s.grid.H; y++ {
		for x := 0; x < s.grid.W; x++ {
			p.Set(x, y, s.cellColor(s.grid.Get(x, y)))
		}
	}
	s.paintAnts(p)
}

// Step runs one colony tick and repaints the cells it touched.
func (s *Sim) Step(p core.Painter) bool {
	if p == nil {
		p = core.Discard
	}
	changes, prev := s.colony.Tick()
	for _, pt := range prev {
		p.Set(pt.X, pt.Y, s.cellColor(s.grid.Get(pt.X, pt.Y)))
	}
	for _, ch := range changes {
		p.Set(ch.X, ch.Y, s.cellColor(ch.Value))
	}
	s.paintAnts(p)
	s.ticks++
	return s.cfg.MaxTicks == 0 || s.ticks < s.cfg.MaxTicks
}

func (s *Sim) paintAnts(p core.Painter) {
	for _, a := range s.colony.ants {
		c := core.Red
		if s.cfg.Multicolor {
			c = Palette[a.Color%len(Palette)]
		}
		p.Set(a.Pos.X, a.Pos.Y, c)
	}
}

// Cells lit by an ant keep a dimmed version of its colour.
func (s *Sim) cellColor(v uint8) color.RGBA {
	switch {
	case v == Dead:
		return core.Black
	case v >= Colored:
		c := Palette[int(v-Colored)%len(Palette)]
		return color.RGBA{R: dim(c.R), G: dim(c.G), B: dim(c.B), A: 255}
	}
	return AliveColor
}

func dim(v uint8) uint8 { return uint8(uint16(v) * 155 / 255) }

// Parameters reports the scenario state.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Ants",
		Params: []core.Parameter{
			core.IntParam("ants", "Ants", s.cfg.Ants),
			core.IntParam("lifespan", "Lifespan", s.cfg.Lifespan),
			core.BoolParam("multicolor", "Multicolour", s.cfg.Multicolor),
			core.FloatParam("random_turn", "Random turn", s.cfg.RandomTurn),
			core.IntParam("ticks", "Ticks", s.ticks),
			core.IntParam("alive", "Alive", s.grid.Alive()),
		},
	}}}
}

func init() {
	core.Register("ants", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
