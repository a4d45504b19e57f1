// Command record runs a forest variant headless and writes it to an MJPEG AVI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"forest-ca/internal/app"
	"forest-ca/internal/config"
	"forest-ca/internal/core"
	_ "forest-ca/internal/forest"
	"forest-ca/internal/logging"
	"forest-ca/internal/record"
)

func main() {
	defaults := config.Default().Record
	opts := record.DefaultOptions()
	opts.Frames = defaults.Frames
	opts.FPS = defaults.FPS
	opts.Scale = defaults.Scale
	opts.Quality = defaults.Quality

	sim := flag.String("sim", "forest", "variant to record")
	out := flag.String("out", defaults.Path, "output AVI path")
	seed := flag.Int64("seed", 0, "reset seed (0 keeps the variant's seed)")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	overrides := app.KeyValues{}
	flag.Var(&overrides, "set", "sim parameter override key=value (repeatable)")
	flag.IntVar(&opts.Frames, "frames", opts.Frames, "maximum frames")
	flag.IntVar(&opts.FPS, "fps", opts.FPS, "playback frame rate")
	flag.IntVar(&opts.Scale, "scale", opts.Scale, "pixels per cell")
	flag.IntVar(&opts.Quality, "quality", opts.Quality, "JPEG quality 1-100")
	flag.IntVar(&opts.StepsPerFrame, "steps", opts.StepsPerFrame, "ticks between frames")
	flag.BoolVar(&opts.StopWhenQuiet, "stop-quiet", opts.StopWhenQuiet, "stop once no cell is burning")
	flag.BoolVar(&opts.Caption, "caption", opts.Caption, "draw the tick counter")
	flag.Parse()

	logging.Setup(os.Stderr, *logJSON, false)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *sim, overrides, *seed, *out, opts); err != nil {
		slog.Error("recording failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, name string, overrides map[string]string, seed int64, out string, opts record.Options) error {
	factory, ok := core.Sims()[name]
	if !ok {
		return fmt.Errorf("unknown sim %q (have %v)", name, core.SimNames())
	}
	sim, err := factory(overrides)
	if err != nil {
		return fmt.Errorf("building %s: %w", name, err)
	}
	if seed != 0 {
		sim.Reset(seed)
	}
	src, ok := sim.(record.Source)
	if !ok {
		return fmt.Errorf("sim %q has no palette", name)
	}

	size := sim.Size()
	slog.Info("recording", "sim", name, "grid", fmt.Sprintf("%dx%d", size.W, size.H), "frames", opts.Frames, "out", out)
	frames, err := record.Record(ctx, src, out, opts)
	if err != nil {
		return err
	}
	slog.Info("wrote video", "path", out, "frames", frames)
	return nil
}
