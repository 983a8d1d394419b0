//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"cubescape/internal/app"
	"cubescape/internal/core"
	_ "cubescape/internal/landscape"
	"cubescape/internal/logging"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := logging.NewLogger("cubescape", cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		logger.Fatalw("unknown sim", "sim", cfg.Sim, "available", core.SimNames())
	}
	sim, err := factory(cfg.SimConfig())
	if err != nil {
		logger.Fatalw("building sim", "sim", cfg.Sim, "error", err)
	}
	scene, ok := sim.(app.Scene)
	if !ok {
		logger.Fatalw("sim cannot be drawn as cubes", "sim", cfg.Sim)
	}

	game := app.New(scene, cfg, logger)
	logger.Infow("starting", "sim", sim.Name(), "size", sim.Size(), "fps", cfg.FPS, "seed", scene.Seed())

	ebiten.SetWindowTitle("cubescape - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatalw("game stopped", "error", err)
	}
}
