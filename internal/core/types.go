package core

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
)

// ErrUnknownSim is returned by Lookup when no factory is registered under a name.
var ErrUnknownSim = errors.New("unknown sim")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point is a logical grid coordinate.
type Point struct {
	X, Y int
}

// Painter receives logical pixel writes from a simulation.
type Painter interface {
	Set(x, y int, c color.RGBA)
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func(x, y int, c color.RGBA)

// Set calls f(x, y, c).
func (f PainterFunc) Set(x, y int, c color.RGBA) { f(x, y, c) }

// Discard is a Painter that drops every write.
var Discard Painter = PainterFunc(func(int, int, color.RGBA) {})

// Sim defines the minimal contract a panel simulation must implement.
//
// Reset rebuilds all state from seed and paints the initial picture. Step
// advances one tick, painting only the pixels that changed, and reports
// whether the run still has work to do.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64, p Painter)
	Step(p Painter) bool
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownSim, name)
	}
	return f, nil
}

// Names lists registered simulations in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
