package life

import (
	"github.com/zyedidia/generic/mapset"

	"hub75-ca/internal/core"
)

// Sparse runs Life on a live-cell set, which suits the large panel where
// most of the board stays dark. A ByteGrid mirror backs Cells.
type Sparse struct {
	cfg        Config
	live       mapset.Set[core.Point]
	mirror     *core.ByteGrid
	generation int
	changed    int
}

// NewSparse returns a sparse Life simulation.
func NewSparse(cfg Config) *Sparse {
	return &Sparse{cfg: cfg, live: mapset.New[core.Point](), mirror: core.NewByteGrid(cfg.Width, cfg.Height)}
}

// Name returns the simulation identifier.
func (s *Sparse) Name() string { return "sparselife" }

// Size returns the grid dimensions.
func (s *Sparse) Size() core.Size { return s.mirror.Size() }

// Cells exposes the current generation as a dense grid.
func (s *Sparse) Cells() []uint8 { return s.mirror.Cells() }

// Live returns the current live set.
func (s *Sparse) Live() mapset.Set[core.Point] { return s.live }

// Generation returns the number of steps since Reset.
func (s *Sparse) Generation() int { return s.generation }

// Reset scatters roughly Density percent of the interior area as live cells.
// Draws may repeat, so the population can come out slightly lower.
func (s *Sparse) Reset(seed int64, p core.Painter) {
	if p == nil {
		p = core.Discard
	}
	rng := core.NewRNG(seed)
	s.live = mapset.New[core.Point]()
	s.mirror.Reset()
	s.generation, s.changed = 0, 0

	x0, y0, x1, y1 := s.cfg.interior()
	draws := (x1 - x0) * (y1 - y0) * s.cfg.Density / 100
	for i := 0; i < draws; i++ {
		pt := core.Point{X: rng.Between(x0, x1-1), Y: rng.Between(y0, y1-1)}
		if s.live.Has(pt) {
			continue
		}
		s.live.Put(pt)
		s.mirror.Set(pt.X, pt.Y, 1)
		p.Set(pt.X, pt.Y, core.White)
	}
}

// Step advances one generation, painting births white and deaths black.
func (s *Sparse) Step(p core.Painter) bool {
	if p == nil {
		p = core.Discard
	}
	next := StepSparse(s.live, s.mirror.W, s.mirror.H)
	s.changed = 0
	s.live.Each(func(pt core.Point) {
		if !next.Has(pt) {
			s.mirror.Set(pt.X, pt.Y, 0)
			p.Set(pt.X, pt.Y, core.Black)
			s.changed++
		}
	})
	next.Each(func(pt core.Point) {
		if !s.live.Has(pt) {
			s.mirror.Set(pt.X, pt.Y, 1)
			p.Set(pt.X, pt.Y, core.White)
			s.changed++
		}
	})
	s.live = next
	s.generation++
	if s.cfg.MaxGenerations > 0 && s.generation >= s.cfg.MaxGenerations {
		return false
	}
	return s.changed > 0
}

// Parameters reports the scenario state.
func (s *Sparse) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Sparse life",
		Params: []core.Parameter{
			core.IntParam("generation", "Generation", s.generation),
			core.IntParam("alive", "Alive", s.live.Size()),
			core.FloatParam("coverage", "Coverage %", coverage(s.live.Size(), s.mirror.W*s.mirror.H)),
			core.IntParam("changed", "Changed", s.changed),
		},
	}}}
}

func init() {
	core.Register("sparselife", func(cfg map[string]string) core.Sim {
		return NewSparse(FromMap(DefaultSparseConfig(), cfg))
	})
}
