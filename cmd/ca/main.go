//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hub75-ca/internal/app"
	_ "hub75-ca/internal/sims/ants"
	_ "hub75-ca/internal/sims/fire"
	_ "hub75-ca/internal/sims/floodfill"
	_ "hub75-ca/internal/sims/life"
	_ "hub75-ca/internal/sims/maze"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, remap, err := cfg.Build()
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	game := app.New(sim, remap, cfg)
	w, h := game.Size()

	ebiten.SetWindowTitle("hub75-ca — " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
