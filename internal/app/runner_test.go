package app

import (
	"context"
	"errors"
	"flag"
	"image/color"
	"log/slog"
	"strings"
	"testing"

	"hub75-ca/internal/core"
	"hub75-ca/internal/panel"
)

// countdown paints one pixel per step and finishes after n steps.
type countdown struct {
	n      int
	left   int
	seeds  []int64
	resets int
}

func (c *countdown) Name() string    { return "countdown" }
func (c *countdown) Size() core.Size { return core.Size{W: 8, H: 8} }
func (c *countdown) Cells() []uint8  { return nil }

func (c *countdown) Reset(seed int64, p core.Painter) {
	c.left = c.n
	c.resets++
	c.seeds = append(c.seeds, seed)
	p.Set(0, 0, core.Red)
}

func (c *countdown) Step(p core.Painter) bool {
	c.left--
	p.Set(c.left%8, 1, color.RGBA{G: 255, A: 255})
	return c.left > 0
}

func newTestRunner(sim core.Sim) (*Runner, *panel.Frame) {
	frame := panel.NewFrame(8, 8)
	return NewRunner(sim, panel.NewDisplay(frame, panel.Identity{W: 8, H: 8}), nil), frame
}

func TestRunPlaysRounds(t *testing.T) {
	sim := &countdown{n: 5}
	r, frame := newTestRunner(sim)
	var rounds []Round
	r.OnRound = func(rd Round) { rounds = append(rounds, rd) }

	cfg := &Config{Seed: 42, Rounds: 2}
	if err := r.Run(context.Background(), cfg); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(rounds))
	}
	for i, rd := range rounds {
		if rd.Index != i || rd.Seed != 42+int64(i) {
			t.Fatalf("round %d: index %d seed %d", i, rd.Index, rd.Seed)
		}
		if rd.Ticks != 5 || !rd.Finished {
			t.Fatalf("round %d: ticks %d finished %v", i, rd.Ticks, rd.Finished)
		}
		if rd.Stats.Written != 6 {
			t.Fatalf("round %d: expected 6 writes, got %+v", i, rd.Stats)
		}
	}
	if frame.Running() {
		t.Fatalf("display should be stopped after Run")
	}
	if frame.At(0, 0) != core.Red {
		t.Fatalf("reset pixel missing: %v", frame.At(0, 0))
	}
}

func TestRunRoundTickLimit(t *testing.T) {
	sim := &countdown{n: 100}
	r, _ := newTestRunner(sim)
	rd, err := r.RunRound(context.Background(), 7, 0, 10)
	if err != nil {
		t.Fatalf("round: %v", err)
	}
	if rd.Ticks != 10 || rd.Finished {
		t.Fatalf("expected 10 unfinished ticks, got %+v", rd)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	sim := &countdown{n: 1 << 30}
	r, frame := newTestRunner(sim)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Run(ctx, &Config{TPS: 1000}); err != nil {
		t.Fatalf("cancelled run should not fail: %v", err)
	}
	if sim.resets != 1 {
		t.Fatalf("expected a single reset, got %d", sim.resets)
	}
	if frame.Running() {
		t.Fatalf("display left running")
	}

	_, err := r.RunRound(ctx, 1, 0, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestConfigBind(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := NewConfig()
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "fire", "-seed", "9", "-set", "max_rounds=50", "-set", "fade_rounds = 5", "-rounds", "3"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Sim != "fire" || cfg.Seed != 9 || cfg.Rounds != 3 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m := cfg.Set.Map()
	if m["max_rounds"] != "50" || m["fade_rounds"] != "5" {
		t.Fatalf("unexpected options %v", m)
	}
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatalf("expected an error for a malformed -set")
	}
}

func TestBuildUnknownSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Sim = "does-not-exist"
	if _, _, err := cfg.Build(); !errors.Is(err, core.ErrUnknownSim) {
		t.Fatalf("expected ErrUnknownSim, got %v", err)
	}
}

func TestLayoutFor(t *testing.T) {
	small, err := LayoutFor("", core.Size{W: 64, H: 64})
	if err != nil || small.Physical() != (core.Size{W: 64, H: 64}) {
		t.Fatalf("64x64 sim: %v %v", small, err)
	}
	big, err := LayoutFor("", core.Size{W: 128, H: 128})
	if err != nil || big.Physical() != (core.Size{W: 512, H: 32}) {
		t.Fatalf("128x128 sim: %v %v", big, err)
	}
	if _, err := LayoutFor("bogus", core.Size{}); !errors.Is(err, panel.ErrUnknownLayout) {
		t.Fatalf("expected ErrUnknownLayout, got %v", err)
	}
}

func TestRunLogsPanelLayout(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	frame := panel.NewFrame(8, 8)
	r := NewRunner(&countdown{n: 1}, panel.NewDisplay(frame, panel.Identity{W: 8, H: 8}), logger)

	if err := r.Run(context.Background(), &Config{Rounds: 1}); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"display started", "logical=", "physical="} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q:\n%s", want, out)
		}
	}
}
