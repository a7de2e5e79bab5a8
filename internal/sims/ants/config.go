package ants

import "hub75-ca/internal/core"

// Config holds parameters for the ant scenario.
type Config struct {
	Width  int
	Height int
	Ants   int
	// OneIn seeds each cell alive with probability 1/OneIn.
	OneIn      int
	Lifespan   int
	Multicolor bool
	// RandomTurn is the chance that an ant on a dead cell picks a random
	// heading instead of turning left.
	RandomTurn float64
	// MaxTicks ends a round; 0 runs forever.
	MaxTicks int
}

// DefaultConfig returns the 128×128 panel setup.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Ants: 8, OneIn: 8, RandomTurn: 0.25}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	core.IntOption(cfg, "w", &c.Width, core.Positive)
	core.IntOption(cfg, "h", &c.Height, core.Positive)
	core.IntOption(cfg, "ants", &c.Ants, core.NonNegative)
	core.IntOption(cfg, "one_in", &c.OneIn, core.NonNegative)
	core.IntOption(cfg, "lifespan", &c.Lifespan, core.NonNegative)
	core.IntOption(cfg, "max_ticks", &c.MaxTicks, core.NonNegative)
	core.FloatOption(cfg, "random_turn", &c.RandomTurn, func(v float64) bool { return v >= 0 && v <= 1 })
	core.BoolOption(cfg, "multicolor", &c.Multicolor)
	return c
}
