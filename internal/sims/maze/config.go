package maze

import "hub75-ca/internal/core"

// Config holds parameters for the maze fill scenario.
type Config struct {
	Width       int
	Height      int
	Border      int
	Corridor    int
	MaxSteps    int
	FillPerStep int
	SeedRetries int
}

// DefaultConfig returns the 128x128 panel setup.
func DefaultConfig() Config {
	return Config{
		Width:       128,
		Height:      128,
		Border:      48,
		Corridor:    8,
		MaxSteps:    16000,
		FillPerStep: 128,
		SeedRetries: 64,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntOption(cfg, "w", &c.Width, func(v int) bool { return v >= 8 })
	core.IntOption(cfg, "h", &c.Height, func(v int) bool { return v >= 8 })
	core.IntOption(cfg, "border", &c.Border, core.NonNegative)
	core.IntOption(cfg, "corridor", &c.Corridor, func(v int) bool { return v >= 2 })
	core.IntOption(cfg, "max_steps", &c.MaxSteps, core.NonNegative)
	core.IntOption(cfg, "fill_per_step", &c.FillPerStep, core.Positive)
	core.IntOption(cfg, "seed_retries", &c.SeedRetries, core.NonNegative)
	return c
}
