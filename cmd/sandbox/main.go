//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"sandbox/internal/app"
	"sandbox/internal/core"
	_ "sandbox/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params, err := cfg.SimConfig()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := core.Build(cfg.Sim, params)
	if err != nil {
		log.Fatalf("build sim: %v (available: %s)", err, strings.Join(core.Names(), ", "))
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	size := sim.Size()

	ebiten.SetWindowTitle("sandbox: " + sim.Name() + " [1 sand, 2 water, 3 wall, 4 erase, C clear]")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
