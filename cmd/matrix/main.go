package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"hub75-ca/internal/app"
	"hub75-ca/internal/panel"
	_ "hub75-ca/internal/sims/ants"
	_ "hub75-ca/internal/sims/fire"
	_ "hub75-ca/internal/sims/floodfill"
	_ "hub75-ca/internal/sims/life"
	_ "hub75-ca/internal/sims/maze"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "append structured logs to this file")
	flag.Parse()

	logger, closeLog, err := newLogger(*logPath)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer closeLog()

	sim, remap, err := cfg.Build()
	if err != nil {
		log.Fatalf("setup: %v", err)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := panel.NewTerminal(screen, remap)
	runner := app.NewRunner(sim, panel.NewDisplay(term, remap), logger)
	runner.OnStart = func() { go pollKeys(term.Screen(), stop) }

	var rounds []app.Round
	runner.OnRound = func(r app.Round) { rounds = append(rounds, r) }

	logger.Info("starting", "sim", sim.Name(), "panel", cfg.Panel, "seed", cfg.Seed, "tps", cfg.TPS)
	if err := runner.Run(ctx, cfg); err != nil {
		logger.Error("run failed", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, r := range rounds {
		fmt.Printf("round %d seed=%d ticks=%d finished=%v writes=%d skipped=%d\n",
			r.Index, r.Seed, r.Ticks, r.Finished, r.Stats.Written, r.Stats.Skipped)
	}
}

// pollKeys stops the run on Escape, Ctrl-C or q. It returns once the screen
// is finalised.
func pollKeys(screen tcell.Screen, stop context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				stop()
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, func() { f.Close() }, nil
}
