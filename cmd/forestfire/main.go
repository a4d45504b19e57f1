//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"forest-ca/internal/app"
	"forest-ca/internal/config"
	"forest-ca/internal/core"
	_ "forest-ca/internal/forest"
	"forest-ca/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	viewer := config.Default().Viewer
	cfg := app.NewConfig()
	cfg.Sim = viewer.Sim
	cfg.Scale = viewer.Scale
	cfg.TPS = viewer.TPS
	cfg.HUDWidth = viewer.HUDWidth
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logging.Setup(os.Stderr, false, false)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		slog.Error("unknown sim", "sim", cfg.Sim, "available", core.SimNames())
		os.Exit(1)
	}

	sim, err := factory(cfg.Overrides)
	if err != nil {
		slog.Error("invalid sim parameters", "sim", cfg.Sim, "error", err)
		os.Exit(1)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.ScreenSize()

	ebiten.SetWindowTitle("forest-ca: " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("viewer exited", "error", err)
		os.Exit(1)
	}
}
