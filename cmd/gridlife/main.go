//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"gridlife/internal/app"
	"gridlife/pkg/core"
	_ "gridlife/pkg/sims/briansbrain"
	_ "gridlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// Exit codes: 2 for usage errors, 3 for unreadable or malformed
// pattern input, 1 for everything else.
const (
	exitUsage   = 2
	exitPattern = 3
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.FromEnv(); err != nil {
		log.Println(err)
		os.Exit(exitUsage)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Printf("unknown sim %q", cfg.Sim)
		os.Exit(exitUsage)
	}

	sim := factory(nil)
	if cfg.Pattern != "" {
		loader, ok := sim.(core.PatternLoader)
		if !ok {
			log.Printf("sim %q does not accept pattern files", cfg.Sim)
			os.Exit(exitUsage)
		}
		text, err := os.ReadFile(cfg.Pattern)
		if err != nil {
			log.Println(err)
			os.Exit(exitPattern)
		}
		if err := loader.Load(string(text)); err != nil {
			log.Println(err)
			os.Exit(exitPattern)
		}
	} else {
		sim.Reset(cfg.Seed)
	}

	game, err := app.New(sim, cfg)
	if err != nil {
		log.Println(err)
		os.Exit(exitUsage)
	}
	size := sim.Size()

	ebiten.SetWindowTitle("gridlife — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
