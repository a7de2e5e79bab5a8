package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"
)

// Round summarises one simulation run.
type Round struct {
	Index    int
	Seed     int64
	Ticks    int
	Finished bool // the sim ended on its own rather than hitting a limit
	Stats    panel.Stats
	Elapsed  time.Duration
}

// Runner drives a simulation onto a panel display: reset, step until the sim
// finishes, pause, then start again with the next seed. It owns the display
// for the duration of Run.
type Runner struct {
	sim     core.Sim
	display *panel.Display
	log     *slog.Logger

	// OnStart is called once the display has started.
	OnStart func()
	// OnRound is called after each completed round.
	OnRound func(Round)
}

// NewRunner wires sim to display. A nil logger discards log output.
func NewRunner(sim core.Sim, display *panel.Display, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{sim: sim, display: display, log: logger.With("sim", sim.Name())}
}

// Run starts the display and plays rounds until cfg.Rounds are done or ctx is
// cancelled. Cancellation is a normal way to stop and is not reported as an
// error.
func (r *Runner) Run(ctx context.Context, cfg *Config) error {
	if err := r.display.Start(); err != nil {
		return fmt.Errorf("start display: %w", err)
	}
	defer func() {
		if err := r.display.Stop(); err != nil {
			r.log.Error("stop display", "err", err)
		}
	}()
	r.log.Info("display started",
		"logical", r.display.Size(), "physical", r.display.Remapper().Physical())
	if r.OnStart != nil {
		r.OnStart()
	}

	interval := time.Duration(0)
	if cfg.TPS > 0 {
		interval = time.Second / time.Duration(cfg.TPS)
	}
	for i := 0; cfg.Rounds == 0 || i < cfg.Rounds; i++ {
		round, err := r.RunRound(ctx, cfg.Seed+int64(i), interval, cfg.MaxTicks)
		round.Index = i
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				r.log.Info("stopped", "round", i, "ticks", round.Ticks)
				return nil
			}
			return err
		}
		if r.OnRound != nil {
			r.OnRound(round)
		}
		if cfg.Rounds != 0 && i == cfg.Rounds-1 {
			break
		}
		if err := sleep(ctx, cfg.Pause); err != nil {
			return nil
		}
	}
	return nil
}

// RunRound resets the sim with seed and steps it every interval until it
// reports completion, maxTicks is reached (0 means no limit) or ctx is done.
// A zero interval steps as fast as possible.
func (r *Runner) RunRound(ctx context.Context, seed int64, interval time.Duration, maxTicks int) (Round, error) {
	round := Round{Seed: seed}
	start := time.Now()
	if err := r.display.Clear(); err != nil {
		return round, fmt.Errorf("clear display: %w", err)
	}
	r.display.ResetStats()
	r.sim.Reset(seed, r.display)
	if err := r.display.Flush(); err != nil {
		return round, fmt.Errorf("flush display: %w", err)
	}
	r.log.Info("round start", "seed", seed)

	var tick <-chan time.Time
	if interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for maxTicks == 0 || round.Ticks < maxTicks {
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.finish(round, start), ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return r.finish(round, start), err
		}

		more := r.sim.Step(r.display)
		round.Ticks++
		if err := r.display.Flush(); err != nil {
			return r.finish(round, start), fmt.Errorf("flush display: %w", err)
		}
		if !more {
			round.Finished = true
			break
		}
	}

	round = r.finish(round, start)
	r.log.Info("round end",
		"seed", seed,
		"ticks", round.Ticks,
		"finished", round.Finished,
		"written", round.Stats.Written,
		"skipped", round.Stats.Skipped,
		"dropped", round.Stats.Dropped,
		"elapsed", round.Elapsed,
	)
	return round, nil
}

func (r *Runner) finish(round Round, start time.Time) Round {
	round.Stats = r.display.Stats()
	round.Elapsed = time.Since(start)
	return round
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
