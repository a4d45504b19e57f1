package forest

import (
	"context"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/stat"

	prng "forest-ca/pkg/core"
)

// SweepOptions controls a batch density sweep.
type SweepOptions struct {
	From, To, Step int
	Trials         int
	Workers        int
	Seed           int64
	// MaxTicks caps each trial; <= 0 uses the grid-derived bound.
	MaxTicks int
	// Progress, when set, is called once per density level in ascending order.
	Progress func(DensityResult)
}

// DefaultSweepOptions mirrors the classic percolation experiment: densities
// 1..99 percent with 100 trials each.
func DefaultSweepOptions() SweepOptions {
	return SweepOptions{From: 1, To: 99, Step: 1, Trials: 100, Workers: 1, Seed: 1}
}

func (o SweepOptions) normalized() (SweepOptions, error) {
	if o.Step <= 0 {
		o.Step = 1
	}
	if o.Trials <= 0 {
		o.Trials = 1
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.From < 0 || o.To > 100 || o.From > o.To {
		return o, fmt.Errorf("%w: density range %d..%d", ErrInvalidConfig, o.From, o.To)
	}
	return o, nil
}

// Levels lists the densities the sweep will visit.
func (o SweepOptions) Levels() []int {
	step := o.Step
	if step <= 0 {
		step = 1
	}
	var out []int
	for d := o.From; d <= o.To; d += step {
		out = append(out, d)
	}
	return out
}

// Sweep runs opts.Trials independent trials at every density level and
// aggregates the burnt fraction and ticks to quiescence. The burnt fraction
// of a level pools all trials: total burnt over total grown forest. Each trial gets a
// fresh grid and a seed derived from (opts.Seed, density, trial), so results
// do not depend on the worker count.
func Sweep(ctx context.Context, base Config, opts SweepOptions) ([]DensityResult, error) {
	opts, err := opts.normalized()
	if err != nil {
		return nil, err
	}
	if base.Init != InitDensity && base.Init != InitClustered {
		return nil, fmt.Errorf("%w: sweep needs density or clustered init, got %s", ErrInvalidConfig, base.Init)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	if !base.Terminates() {
		return nil, fmt.Errorf("%w: sweep needs a config that reaches quiescence", ErrInvalidConfig)
	}

	levels := opts.Levels()
	results := make([]DensityResult, 0, len(levels))
	for _, density := range levels {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := runLevel(ctx, base, density, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if opts.Progress != nil {
			opts.Progress(res)
		}
	}
	return results, nil
}

func runLevel(ctx context.Context, base Config, density int, opts SweepOptions) (DensityResult, error) {
	stats := make([]RunStats, opts.Trials)
	errs := make([]error, opts.Trials)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for trial := range jobs {
				stats[trial], errs[trial] = RunTrial(base, density, prng.MixSeed(opts.Seed, density, trial), opts.MaxTicks)
			}
		}()
	}

feed:
	for trial := 0; trial < opts.Trials; trial++ {
		select {
		case jobs <- trial:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return DensityResult{}, err
	}
	for trial, err := range errs {
		if err != nil {
			return DensityResult{}, fmt.Errorf("density %d trial %d: %w", density, trial, err)
		}
	}

	return aggregate(density, stats), nil
}

// aggregate pools the trials of one level. BurntFraction weighs every tree
// equally, so a sparse trial counts less than a dense one; BurntStdDev is the
// spread of the per-trial fractions.
func aggregate(density int, stats []RunStats) DensityResult {
	fractions := make([]float64, len(stats))
	steps := make([]float64, len(stats))
	var burnt, grown int
	for i, st := range stats {
		fractions[i] = st.BurntFraction()
		steps[i] = float64(st.Ticks)
		burnt += st.Burnt
		grown += st.Tree + st.Burnt
	}
	res := DensityResult{Density: density, Trials: len(stats)}
	if grown > 0 {
		res.BurntFraction = float64(burnt) / float64(grown)
	}
	_, res.BurntStdDev = meanStdDev(fractions)
	res.MeanSteps, res.StepsStdDev = meanStdDev(steps)
	return res
}

// RunTrial builds a fresh sim at the given density and seed and runs it to
// quiescence.
func RunTrial(base Config, density int, seed int64, maxTicks int) (RunStats, error) {
	cfg := base
	cfg.Density = density
	cfg.Seed = seed
	sim, err := New(cfg)
	if err != nil {
		return RunStats{}, err
	}
	return sim.Run(maxTicks)
}

func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return stat.Mean(xs, nil), 0
	}
	return stat.MeanStdDev(xs, nil)
}
