package app

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs win.
func (l KVList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim      string
	Panel    string
	Scale    int
	TPS      int
	Seed     int64
	Rounds   int
	MaxTicks int
	Pause    time.Duration
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "maze", Scale: 4, TPS: 60, Seed: 42, Pause: 2 * time.Second}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run ("+strings.Join(core.Names(), ", ")+")")
	fs.StringVar(&c.Panel, "panel", c.Panel, "panel layout: chain128, direct64, direct128 (default picks by sim size)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (0 runs unthrottled)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed of the first round; later rounds add the round index")
	fs.IntVar(&c.Rounds, "rounds", c.Rounds, "number of rounds to run (0 runs forever)")
	fs.IntVar(&c.MaxTicks, "ticks", c.MaxTicks, "tick limit per round (0 runs until the sim finishes)")
	fs.DurationVar(&c.Pause, "pause", c.Pause, "pause between rounds")
	fs.Var(&c.Set, "set", "simulation option in key=value form (repeatable)")
}

// Build instantiates the configured simulation and the panel layout it is
// drawn through.
func (c *Config) Build() (core.Sim, panel.Remapper, error) {
	factory, err := core.Lookup(c.Sim)
	if err != nil {
		return nil, nil, err
	}
	sim := factory(c.Set.Map())
	remap, err := LayoutFor(c.Panel, sim.Size())
	if err != nil {
		return nil, nil, err
	}
	return sim, remap, nil
}

// LayoutFor resolves a layout name. An empty name picks the direct 64×64
// panel for sims that fit it and the chained 128×128 panel otherwise.
func LayoutFor(name string, size core.Size) (panel.Remapper, error) {
	if name == "" {
		if size.W <= 64 && size.H <= 64 {
			name = "direct64"
		} else {
			name = "chain128"
		}
	}
	return panel.Layout(name)
}
