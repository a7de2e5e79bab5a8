package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"
)

// SweepResult is one headless round of a sweep.
type SweepResult struct {
	Round
	// Metric is the value of the requested parameter after the round, when
	// the sim reports it.
	Metric    float64
	HasMetric bool
	Err       error
}

// Sweep runs sim rounds for seeds [first, first+count) on workers goroutines.
// Each round gets its own sim instance and in-memory panel. Results are
// returned in seed order; rounds never started because ctx ended are left
// zero.
func Sweep(ctx context.Context, factory core.Factory, options map[string]string, layout string, first int64, count, maxTicks, workers int, metric string) []SweepResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]SweepResult, count)
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = sweepOne(ctx, factory, options, layout, first+int64(i), maxTicks, metric)
				results[i].Index = i
			}
		}()
	}

	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func sweepOne(ctx context.Context, factory core.Factory, options map[string]string, layout string, seed int64, maxTicks int, metric string) SweepResult {
	sim := factory(options)
	remap, err := LayoutFor(layout, sim.Size())
	if err != nil {
		return SweepResult{Round: Round{Seed: seed}, Err: err}
	}
	p := remap.Physical()
	r := NewRunner(sim, panel.NewDisplay(panel.NewFrame(p.W, p.H), remap), nil)
	round, err := r.RunRound(ctx, seed, 0, maxTicks)
	res := SweepResult{Round: round, Err: err}
	if err != nil || metric == "" {
		return res
	}
	if provider, ok := sim.(core.ParameterProvider); ok {
		if param, ok := provider.Parameters().Lookup(metric); ok {
			v, perr := strconv.ParseFloat(param.Value, 64)
			if perr != nil {
				res.Err = fmt.Errorf("metric %q: %w", metric, perr)
				return res
			}
			res.Metric, res.HasMetric = v, true
		}
	}
	return res
}
