package maze

import (
	"hub75-ca/internal/core"
	"hub75-ca/internal/sims/floodfill"
)

// Sim carves a maze, marks a seed in one of the enclosed cells and animates
// a rainbow flood fill from it.
type Sim struct {
	cfg    Config
	grid   *core.ByteGrid
	filler *floodfill.Filler
	last   Result
	seed   int64
}

// New returns a maze scenario with the provided configuration.
func New(cfg Config) *Sim {
	grid := core.NewByteGrid(cfg.Width, cfg.Height)
	return &Sim{cfg: cfg, grid: grid, filler: floodfill.NewFiller(grid, cfg.MaxSteps, floodfill.Gradient)}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "maze" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.grid.Size() }

// Cells exposes the grid tags.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Result returns the outcome of the last carve.
func (s *Sim) Result() Result { return s.last }

// Reset carves a new maze and starts the fill.
func (s *Sim) Reset(seed int64, p core.Painter) {
	rng := core.NewRNG(seed)
	s.seed = seed
	s.grid.Reset()
	carver := Carver{Border: s.cfg.Border, Corridor: s.cfg.Corridor, SeedRetries: s.cfg.SeedRetries}
	s.last = carver.Carve(s.grid, rng, p)
	if !s.last.SeedFound {
		s.filler.Start(core.Point{X: -1, Y: -1})
		return
	}
	s.grid.Set(s.last.Seed.X, s.last.Seed.Y, core.TagSeed)
	s.filler.Start(s.last.Seed)
}

// Step fills the next batch of cells.
func (s *Sim) Step(p core.Painter) bool {
	if s.filler.Done() {
		return false
	}
	s.filler.Advance(s.cfg.FillPerStep, p)
	return !s.filler.Done()
}

// Parameters reports the scenario configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Maze",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", s.seed),
				core.IntParam("w", "Width", s.cfg.Width),
				core.IntParam("h", "Height", s.cfg.Height),
				core.IntParam("border", "Border", s.cfg.Border),
				core.IntParam("corridor", "Corridor", s.cfg.Corridor),
				core.IntParam("carved", "Carved", s.last.Carved),
			},
		},
		{
			Name: "Fill",
			Params: []core.Parameter{
				core.IntParam("max_steps", "Step budget", s.filler.Budget()),
				core.IntParam("fill_per_step", "Cells per tick", s.cfg.FillPerStep),
				core.IntParam("filled", "Filled", s.filler.Steps()),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "corridor", Label: "Corridor", Type: core.ParamTypeInt, Step: 1, Min: 2, HasMin: true, Max: 32, HasMax: true},
		{Key: "fill_per_step", Label: "Cells per tick", Type: core.ParamTypeInt, Step: 32, Min: 1, HasMin: true, Max: 4096, HasMax: true},
	}
}

// SetIntParameter updates integer parameters from the HUD. Corridor changes
// apply on the next reset.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "corridor":
		if value < 2 {
			return false
		}
		s.cfg.Corridor = value
		return true
	case "fill_per_step":
		if value <= 0 {
			return false
		}
		s.cfg.FillPerStep = value
		return true
	}
	return false
}

func init() {
	core.Register("maze", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
