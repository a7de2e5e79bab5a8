package life

import (
	"github.com/zyedidia/generic/mapset"

	"hub75-ca/internal/core"
)

// StepSparse applies the rule to a set of live cells on a w×h torus. Only
// live cells and their neighbours are evaluated, which keeps mostly empty
// boards cheap. The input set is not modified.
func StepSparse(live mapset.Set[core.Point], w, h int) mapset.Set[core.Point] {
	counts := make(map[core.Point]int, live.Size()*8)
	live.Each(func(p core.Point) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				n := core.Point{X: core.Wrap(p.X+dx, w), Y: core.Wrap(p.Y+dy, h)}
				counts[n]++
			}
		}
	})

	next := mapset.New[core.Point]()
	for p, n := range counts {
		if Rule(live.Has(p), n) {
			next.Put(p)
		}
	}
	return next
}
