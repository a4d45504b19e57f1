// Command sweep runs the batch density experiment: for each tree density it
// burns a number of independent forests to quiescence and appends the mean
// burnt fraction and ticks to a semicolon separated results file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"forest-ca/internal/config"
	"forest-ca/internal/forest"
	"forest-ca/internal/logging"
	"forest-ca/internal/results"
)

type flags struct {
	configPath string
	logJSON    bool
	verbose    bool

	topology    string
	initMode    string
	rows, cols  int
	persistence int
	from, to    int
	step        int
	trials      int
	workers     int
	seed        int64
	out         string
	plot        bool
	replot      bool
}

func main() {
	var f flags
	fs := flag.NewFlagSet("sweep", flag.ExitOnError)
	fs.StringVar(&f.configPath, "config", "", "experiment YAML (defaults are embedded)")
	fs.BoolVar(&f.logJSON, "log-json", false, "log as JSON")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	fs.StringVar(&f.topology, "topology", "", "neighbourhood: vonneumann, moore, hex, triside, triall")
	fs.StringVar(&f.initMode, "init", "", "initial layout: density or clustered")
	fs.IntVar(&f.rows, "rows", 0, "grid rows")
	fs.IntVar(&f.cols, "cols", 0, "grid columns")
	fs.IntVar(&f.persistence, "persistence", 0, "extra ticks a fire burns")
	fs.IntVar(&f.from, "from", 0, "first density percent")
	fs.IntVar(&f.to, "to", 0, "last density percent")
	fs.IntVar(&f.step, "step", 0, "density increment")
	fs.IntVar(&f.trials, "trials", 0, "trials per density")
	fs.IntVar(&f.workers, "workers", 0, "parallel trials (0 = one per CPU)")
	fs.Int64Var(&f.seed, "seed", 0, "base seed")
	fs.StringVar(&f.out, "out", "", "results directory")
	fs.BoolVar(&f.plot, "plot", true, "render a PNG of the curve")
	fs.BoolVar(&f.replot, "replot", false, "redraw the PNG from the existing results file and exit")
	fs.Parse(os.Args[1:])

	logging.Setup(os.Stderr, f.logJSON, f.verbose)

	cfg, err := config.Load(f.configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	fs.Visit(func(fl *flag.Flag) { applyFlag(cfg, &f, fl.Name) })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := run
	if f.replot {
		runner = replot
	}
	if err := runner(ctx, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Warn("sweep interrupted; completed levels were saved")
			os.Exit(130)
		}
		slog.Error("sweep failed", "error", err)
		os.Exit(1)
	}
}

func applyFlag(cfg *config.Config, f *flags, name string) {
	switch name {
	case "topology":
		cfg.Forest.Topology = f.topology
	case "init":
		cfg.Forest.Init = f.initMode
	case "rows":
		cfg.Forest.Rows = f.rows
	case "cols":
		cfg.Forest.Cols = f.cols
	case "persistence":
		cfg.Forest.Persistence = f.persistence
	case "from":
		cfg.Sweep.From = f.from
	case "to":
		cfg.Sweep.To = f.to
	case "step":
		cfg.Sweep.Step = f.step
	case "trials":
		cfg.Sweep.Trials = f.trials
	case "workers":
		cfg.Sweep.Workers = f.workers
	case "seed":
		cfg.Sweep.Seed = f.seed
	case "out":
		cfg.Output.Dir = f.out
	case "plot":
		cfg.Output.Plot = f.plot
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	fc, err := cfg.ForestConfig()
	if err != nil {
		return err
	}
	appender, err := results.NewAppender(cfg.Output.Dir)
	if err != nil {
		return err
	}
	csvPath := appender.Path(fc)
	stem := strings.TrimSuffix(csvPath, filepath.Ext(csvPath))
	if cfg.Output.SnapshotConfig {
		if err := cfg.WriteYAML(stem + ".yaml"); err != nil {
			return err
		}
	}

	opts := cfg.SweepOptions()
	var writeErr error
	opts.Progress = func(r forest.DensityResult) {
		slog.Debug("density done", "result", r)
		if writeErr == nil {
			writeErr = appender.Append(fc, results.FromResult(r))
		}
	}

	slog.Info("starting sweep",
		"topology", fc.Topology,
		"grid", fmt.Sprintf("%dx%d", fc.Rows, fc.Cols),
		"densities", fmt.Sprintf("%d..%d/%d", opts.From, opts.To, opts.Step),
		"trials", opts.Trials,
		"workers", opts.Workers,
		"out", csvPath,
	)
	start := time.Now()
	levels, err := forest.Sweep(ctx, fc, opts)
	if err != nil {
		return err
	}
	if writeErr != nil {
		return writeErr
	}

	attrs := []any{"levels", len(levels), "elapsed", time.Since(start).Round(time.Millisecond)}
	if pc, ok := forest.CriticalDensity(levels, 0.5); ok {
		attrs = append(attrs, "critical_density", fmt.Sprintf("%.1f", pc))
	}
	slog.Info("sweep complete", attrs...)

	if cfg.Output.Plot && len(levels) > 1 {
		recs := make([]results.Record, len(levels))
		for i, l := range levels {
			recs[i] = results.FromResult(l)
		}
		title := fmt.Sprintf("%s %dx%d, %d trials", fc.Topology, fc.Rows, fc.Cols, opts.Trials)
		if err := results.PlotCurve(stem+".png", title, recs); err != nil {
			return err
		}
		slog.Info("wrote plot", "path", stem+".png")
	}
	return nil
}

func replot(_ context.Context, cfg *config.Config) error {
	fc, err := cfg.ForestConfig()
	if err != nil {
		return err
	}
	appender, err := results.NewAppender(cfg.Output.Dir)
	if err != nil {
		return err
	}
	csvPath := appender.Path(fc)
	recs, err := results.ReadFile(csvPath)
	if err != nil {
		return err
	}
	recs = results.Latest(recs)
	pngPath := strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".png"
	title := fmt.Sprintf("%s %dx%d", fc.Topology, fc.Rows, fc.Cols)
	if err := results.PlotCurve(pngPath, title, recs); err != nil {
		return err
	}
	slog.Info("wrote plot", "path", pngPath, "levels", len(recs))
	return nil
}
