package floodfill

import (
	"testing"

	"hub75-ca/internal/core"
)

func TestScenarioSplitsPanelWithWall(t *testing.T) {
	sim := New(DefaultConfig())
	out := recorder{}
	sim.Reset(7, out)

	g := sim.grid
	if g.Count(core.TagWall) == 0 {
		t.Fatal("expected a wall line")
	}
	seed := sim.Seed()
	if g.Get(seed.X, seed.Y) != core.TagSeed {
		t.Fatal("seed marker missing")
	}
	if out[seed] != core.Red {
		t.Fatal("seed should be painted red")
	}
	walls := g.Count(core.TagWall)

	ticks := 0
	for sim.Step(out) {
		ticks++
		if ticks > 10000 {
			t.Fatal("fill did not terminate")
		}
	}

	if g.Count(core.TagWall) != walls {
		t.Fatal("fill overwrote the wall")
	}
	if g.Get(seed.X, seed.Y) != core.TagFilled {
		t.Fatal("seed was not consumed")
	}
	filled := g.Count(core.TagFilled)
	if filled == 0 || filled > sim.cfg.MaxSteps {
		t.Fatalf("unexpected fill size %d", filled)
	}
	if filled+walls+g.Count(core.TagEmpty) != 64*64 {
		t.Fatal("unexpected tags on the grid")
	}
}

func TestScenarioResetIsDeterministic(t *testing.T) {
	a, b := New(DefaultConfig()), New(DefaultConfig())
	a.Reset(42, core.Discard)
	b.Reset(42, core.Discard)
	if a.Seed() != b.Seed() {
		t.Fatal("same seed produced different fill seeds")
	}
	for i, v := range a.Cells() {
		if b.Cells()[i] != v {
			t.Fatal("same seed produced different walls")
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"max_steps": "100", "fill_per_step": "0", "gradient": "true"})
	if c.MaxSteps != 100 {
		t.Fatalf("expected max_steps 100, got %d", c.MaxSteps)
	}
	if c.FillPerStep != DefaultConfig().FillPerStep {
		t.Fatal("non-positive fill_per_step should be ignored")
	}
	if !c.Gradient {
		t.Fatal("expected gradient flag")
	}
}

func TestParametersReportBudgetAndProgress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 50
	sim := New(cfg)
	sim.Reset(3, nil)
	sim.Step(nil)

	params := sim.Parameters()
	budget, ok := params.Lookup("max_steps")
	if !ok || budget.Value != "50" {
		t.Fatalf("max_steps = %+v, expected 50", budget)
	}
	filled, ok := params.Lookup("filled")
	if !ok || filled.Value == "0" {
		t.Fatalf("filled = %+v, expected progress after a step", filled)
	}
}
