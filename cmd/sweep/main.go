package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"hub75-ca/internal/app"
	"hub75-ca/internal/core"
	_ "hub75-ca/internal/sims/ants"
	_ "hub75-ca/internal/sims/fire"
	_ "hub75-ca/internal/sims/floodfill"
	_ "hub75-ca/internal/sims/life"
	_ "hub75-ca/internal/sims/maze"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

func main() {
	simName := flag.String("sim", "maze", "simulation to sweep ("+fmt.Sprint(core.Names())+")")
	layout := flag.String("panel", "", "panel layout (default picks by sim size)")
	seed := flag.Int64("seed", 1, "first seed")
	seeds := flag.Int("seeds", 64, "number of consecutive seeds to run")
	ticks := flag.Int("ticks", 2000, "tick limit per round (0 runs until the sim finishes)")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	metric := flag.String("metric", "", "parameter key to chart per seed (default: ticks)")
	var options app.KVList
	flag.Var(&options, "set", "simulation option in key=value form (repeatable)")
	flag.Parse()

	factory, err := core.Lookup(*simName)
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println(headerStyle.Render(fmt.Sprintf("Sweeping %s over %d seeds (%d workers, %d ticks)", *simName, *seeds, *workers, *ticks)))

	start := time.Now()
	results := app.Sweep(ctx, factory, options.Map(), *layout, *seed, *seeds, *ticks, *workers, *metric)
	elapsed := time.Since(start)

	var series []float64
	var done []app.SweepResult
	for _, res := range results {
		if res.Err != nil {
			fmt.Println(errStyle.Render(fmt.Sprintf("seed %d: %v", res.Seed, res.Err)))
			continue
		}
		if res.Ticks == 0 {
			continue
		}
		done = append(done, res)
		v := float64(res.Ticks)
		if *metric != "" {
			if !res.HasMetric {
				continue
			}
			v = res.Metric
		}
		series = append(series, v)
	}
	if len(done) == 0 {
		log.Fatalf("no rounds completed")
	}

	name := *metric
	if name == "" {
		name = "ticks"
	}
	finished, written, skipped := 0, 0, 0
	for _, res := range done {
		if res.Finished {
			finished++
		}
		written += res.Stats.Written
		skipped += res.Stats.Skipped
	}

	row := func(label string, value any) {
		fmt.Println(labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value)))
	}
	row("rounds", len(done))
	row("finished", fmt.Sprintf("%d (%.0f%%)", finished, 100*float64(finished)/float64(len(done))))
	row("pixel writes", written)
	row("dedup skips", fmt.Sprintf("%d (%.1f%%)", skipped, 100*float64(skipped)/float64(max(1, written+skipped))))
	row("elapsed", elapsed.Round(time.Millisecond))

	if len(series) > 0 {
		lo, hi, mean := summarize(series)
		row(name+" min", lo)
		row(name+" mean", fmt.Sprintf("%.2f", mean))
		row(name+" max", hi)
		chart := asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(min(len(series)*2, 100)), asciigraph.Caption(name+" by seed"))
		fmt.Println(graphStyle.Render(chart))
	}

	sort.SliceStable(done, func(i, j int) bool { return done[i].Ticks > done[j].Ticks })
	fmt.Println(headerStyle.Render("Longest rounds"))
	for i := 0; i < len(done) && i < 5; i++ {
		res := done[i]
		fmt.Printf("%2d) seed=%d ticks=%d finished=%v writes=%d skipped=%d elapsed=%s\n",
			i+1, res.Seed, res.Ticks, res.Finished, res.Stats.Written, res.Stats.Skipped, res.Elapsed.Round(time.Microsecond))
	}
}

func summarize(values []float64) (lo, hi, mean float64) {
	lo, hi = values[0], values[0]
	sum := 0.0
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
		sum += v
	}
	return lo, hi, sum / float64(len(values))
}
