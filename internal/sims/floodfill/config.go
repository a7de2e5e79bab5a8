package floodfill

import (
	"image/color"

	"hub75-ca/internal/core"
)

// Config holds parameters for the wall-line flood fill scenario.
type Config struct {
	Width       int
	Height      int
	Border      int
	MaxSteps    int
	FillPerStep int
	SeedRetries int
	Color       color.RGBA
	Gradient    bool
}

// DefaultConfig returns the 64x64 panel setup.
func DefaultConfig() Config {
	return Config{
		Width:       64,
		Height:      64,
		Border:      0,
		MaxSteps:    8000,
		FillPerStep: 64,
		SeedRetries: 10,
		Color:       color.RGBA{R: 140, G: 100, B: 5, A: 255},
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntOption(cfg, "w", &c.Width, func(v int) bool { return v >= 16 })
	core.IntOption(cfg, "h", &c.Height, func(v int) bool { return v >= 16 })
	core.IntOption(cfg, "border", &c.Border, core.NonNegative)
	core.IntOption(cfg, "max_steps", &c.MaxSteps, core.NonNegative)
	core.IntOption(cfg, "fill_per_step", &c.FillPerStep, core.Positive)
	core.IntOption(cfg, "seed_retries", &c.SeedRetries, core.NonNegative)
	core.BoolOption(cfg, "gradient", &c.Gradient)
	if 2*c.Border+2 > c.Width {
		c.Border = 0
	}
	return c
}
