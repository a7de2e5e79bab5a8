package fire

import "hub75-ca/internal/core"

// Config holds parameters for the fire scenario.
type Config struct {
	Width  int
	Height int
	// PanelHeight is the logical height the fire is drawn into; the fire
	// sits on its bottom edge.
	PanelHeight int
	MaxRounds   int
	FadeRounds  int
}

// DefaultConfig returns the 128×32 strip at the bottom of the 128×128 panel.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 32, PanelHeight: 128, MaxRounds: 200, FadeRounds: 45}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntOption(cfg, "w", &c.Width, core.Positive)
	core.IntOption(cfg, "h", &c.Height, func(v int) bool { return v >= 2 })
	core.IntOption(cfg, "panel_h", &c.PanelHeight, core.Positive)
	core.IntOption(cfg, "max_rounds", &c.MaxRounds, core.Positive)
	core.IntOption(cfg, "fade_rounds", &c.FadeRounds, core.NonNegative)
	if c.PanelHeight < c.Height {
		c.PanelHeight = c.Height
	}
	return c
}
