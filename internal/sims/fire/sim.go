package fire

import "hub75-ca/internal/core"

// Sim is the fire scenario.
type Sim struct {
	cfg  Config
	fire *Fire
	seed int64
}

// New returns a fire scenario with the provided configuration.
func New(cfg Config) *Sim {
	s := &Sim{cfg: cfg}
	s.fire = NewFire(cfg.Width, cfg.Height, core.NewRNG(0), cfg.MaxRounds, cfg.FadeRounds, s.offset())
	return s
}

func (s *Sim) offset() int { return s.cfg.PanelHeight - s.cfg.Height }

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "fire" }

// Size returns the logical panel size the fire is drawn into.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.PanelHeight} }

// Cells exposes the heat grid.
func (s *Sim) Cells() []uint8 { return s.fire.Heat().Cells() }

// Fire returns the running fire.
func (s *Sim) Fire() *Fire { return s.fire }

// Reset lights a new fire.
func (s *Sim) Reset(seed int64, p core.Painter) {
	if p == nil {
		p = core.Discard
	}
	s.seed = seed
	s.fire = NewFire(s.cfg.Width, s.cfg.Height, core.NewRNG(seed), s.cfg.MaxRounds, s.cfg.FadeRounds, s.offset())
	s.fire.Paint(p)
}

// Step runs one fire round. It returns false once MaxRounds have passed.
func (s *Sim) Step(p core.Painter) bool {
	if !s.fire.Burning() {
		return false
	}
	s.fire.Tick(p)
	return s.fire.Burning()
}

// Parameters reports the scenario state.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Fire",
		Params: []core.Parameter{
			core.Int64Param("seed", "Seed", s.seed),
			core.IntParam("rounds", "Rounds", s.fire.Rounds()),
			core.IntParam("max_rounds", "Max rounds", s.cfg.MaxRounds),
			core.IntParam("fade_rounds", "Fade rounds", s.cfg.FadeRounds),
			core.BoolParam("going_out", "Going out", s.fire.GoingOut()),
		},
	}}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "max_rounds", Label: "Max rounds", Type: core.ParamTypeInt, Step: 10, Min: 10, HasMin: true, Max: 5000, HasMax: true},
		{Key: "fade_rounds", Label: "Fade rounds", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true, Max: 1000, HasMax: true},
	}
}

// SetIntParameter updates integer parameters from the HUD; they take effect
// on the next reset.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "max_rounds":
		if value <= 0 {
			return false
		}
		s.cfg.MaxRounds = value
		return true
	case "fade_rounds":
		if value < 0 {
			return false
		}
		s.cfg.FadeRounds = value
		return true
	}
	return false
}

func init() {
	core.Register("fire", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
