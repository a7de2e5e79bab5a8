// Package floodfill implements the breadth-first flood fill engine and the
// wall-line fill scenario from the 64x64 panel.
package floodfill

import "hub75-ca/internal/core"

// Sim draws a random wall line, drops a seed on one side and animates a
// bounded flood fill from it.
type Sim struct {
	cfg    Config
	grid   *core.ByteGrid
	filler *Filler
	seed   core.Point
}

// New returns a line fill scenario with the provided configuration.
func New(cfg Config) *Sim {
	grid := core.NewByteGrid(cfg.Width, cfg.Height)
	paint := Solid(cfg.Color)
	if cfg.Gradient {
		paint = Gradient
	}
	return &Sim{cfg: cfg, grid: grid, filler: NewFiller(grid, cfg.MaxSteps, paint)}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "floodfill" }

// Size returns the grid dimensions.
func (s *Sim) Size() core.Size { return s.grid.Size() }

// Cells exposes the grid tags.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Seed returns the seed cell chosen by the last Reset.
func (s *Sim) Seed() core.Point { return s.seed }

// Reset clears the grid, draws a new wall and places the seed.
func (s *Sim) Reset(seed int64, p core.Painter) {
	if p == nil {
		p = core.Discard
	}
	rng := core.NewRNG(seed)
	s.grid.Reset()
	drawWall(s.grid, s.cfg.Border, rng, p)

	pt, ok := pickSeed(s.grid, s.cfg.Border, s.cfg.SeedRetries, rng)
	if !ok {
		s.filler.Start(core.Point{X: -1, Y: -1})
		return
	}
	s.seed = pt
	s.grid.Set(pt.X, pt.Y, core.TagSeed)
	p.Set(pt.X, pt.Y, core.Red)
	s.filler.Start(pt)
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
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Fill",
		Params: []core.Parameter{
			core.IntParam("w", "Width", s.cfg.Width),
			core.IntParam("h", "Height", s.cfg.Height),
			core.IntParam("max_steps", "Step budget", s.filler.Budget()),
			core.IntParam("fill_per_step", "Cells per tick", s.cfg.FillPerStep),
			core.IntParam("filled", "Filled", s.filler.Steps()),
		},
	}}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fill_per_step", Label: "Cells per tick", Type: core.ParamTypeInt, Step: 16, Min: 1, HasMin: true, Max: 4096, HasMax: true},
	}
}

// SetIntParameter updates integer parameters from the HUD.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
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
	core.Register("floodfill", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
