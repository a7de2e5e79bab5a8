package life

import "hub75-ca/internal/core"

// Config holds parameters for the dense and sparse Life scenarios.
type Config struct {
	Width  int
	Height int
	// Border keeps the initial population away from the edges.
	Border int
	// Density is the share of interior cells seeded alive, in percent.
	Density int
	// MaxGenerations ends a round; 0 runs until the board stops changing.
	MaxGenerations int
}

// DefaultConfig returns the 64×64 dense setup.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Border: 16, Density: 50}
}

// DefaultSparseConfig returns the 128×128 sparse setup.
func DefaultSparseConfig() Config {
	return Config{Width: 128, Height: 128, Border: 48, Density: 10}
}

// FromMap populates a Config from a string map on top of base.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	core.IntOption(cfg, "w", &c.Width, core.Positive)
	core.IntOption(cfg, "h", &c.Height, core.Positive)
	core.IntOption(cfg, "border", &c.Border, core.NonNegative)
	core.IntOption(cfg, "density", &c.Density, func(v int) bool { return v >= 0 && v <= 100 })
	core.IntOption(cfg, "max_generations", &c.MaxGenerations, core.NonNegative)
	return c
}

func (c Config) interior() (x0, y0, x1, y1 int) {
	x0, y0, x1, y1 = c.Border, c.Border, c.Width-c.Border, c.Height-c.Border
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, c.Width, c.Height
	}
	return x0, y0, x1, y1
}
