package forest

import (
	"context"
	"errors"
	"math"
	"testing"

	prng "forest-ca/pkg/core"
)

func sweepBase() Config {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 25, 25
	cfg.Topology = VonNeumann4
	return cfg
}

func TestSweepIndependentOfWorkers(t *testing.T) {
	opts := SweepOptions{From: 30, To: 70, Step: 20, Trials: 6, Seed: 5}

	opts.Workers = 1
	serial, err := Sweep(context.Background(), sweepBase(), opts)
	if err != nil {
		t.Fatalf("serial sweep: %v", err)
	}
	opts.Workers = 4
	parallel, err := Sweep(context.Background(), sweepBase(), opts)
	if err != nil {
		t.Fatalf("parallel sweep: %v", err)
	}

	if len(serial) != 3 || len(parallel) != 3 {
		t.Fatalf("expected 3 levels, got %d and %d", len(serial), len(parallel))
	}
	for i := range serial {
		if serial[i] != parallel[i] {
			t.Fatalf("level %d differs: %+v vs %+v", i, serial[i], parallel[i])
		}
		r := serial[i]
		if r.BurntFraction < 0 || r.BurntFraction > 1 {
			t.Fatalf("fraction out of range: %+v", r)
		}
		if r.MeanSteps < 1 || r.Trials != 6 {
			t.Fatalf("unexpected aggregate: %+v", r)
		}
	}
	if serial[0].Density != 30 || serial[2].Density != 70 {
		t.Fatalf("levels out of order: %+v", serial)
	}
	if serial[2].BurntFraction <= serial[0].BurntFraction {
		t.Fatalf("denser forest burnt less: %v <= %v", serial[2].BurntFraction, serial[0].BurntFraction)
	}
}

func TestSweepProgressAndTrial(t *testing.T) {
	var seen []int
	opts := SweepOptions{From: 10, To: 12, Trials: 1, Workers: 2, Seed: 1,
		Progress: func(r DensityResult) { seen = append(seen, r.Density) }}
	results, err := Sweep(context.Background(), sweepBase(), opts)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}
	if len(seen) != 3 || seen[0] != 10 || seen[2] != 12 {
		t.Fatalf("progress calls %v", seen)
	}
	if results[0].BurntStdDev != 0 {
		t.Fatalf("single trial stddev = %v", results[0].BurntStdDev)
	}
}

func TestSweepRejectsBadInput(t *testing.T) {
	if _, err := Sweep(context.Background(), sweepBase(), SweepOptions{From: 60, To: 40}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("inverted range: %v", err)
	}
	cfg := sweepBase()
	cfg.IgnitionChance = 0.01
	if _, err := Sweep(context.Background(), cfg, DefaultSweepOptions()); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("non-terminating config: %v", err)
	}
	for _, mode := range []InitMode{InitFireLine, InitSeed} {
		cfg := sweepBase()
		cfg.Init = mode
		if _, err := Sweep(context.Background(), cfg, DefaultSweepOptions()); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("init %s: %v", mode, err)
		}
	}
}

func TestAggregatePoolsTrees(t *testing.T) {
	res := aggregate(40, []RunStats{
		{Burnt: 1, Tree: 9, Ticks: 2},
		{Burnt: 90, Tree: 0, Ticks: 6},
	})
	if math.Abs(res.BurntFraction-0.91) > 1e-12 {
		t.Fatalf("burnt fraction = %v, want 0.91", res.BurntFraction)
	}
	if res.MeanSteps != 4 || res.Trials != 2 || res.Density != 40 {
		t.Fatalf("unexpected aggregate: %+v", res)
	}
	if res.BurntStdDev == 0 {
		t.Fatalf("per-trial spread lost: %+v", res)
	}

	if empty := aggregate(0, []RunStats{{Empty: 9, Ticks: 1}}); empty.BurntFraction != 0 {
		t.Fatalf("no forest burnt %v", empty.BurntFraction)
	}
}

func TestSweepMatchesHandComputedLevel(t *testing.T) {
	opts := SweepOptions{From: 55, To: 55, Trials: 5, Workers: 3, Seed: 11}
	results, err := Sweep(context.Background(), sweepBase(), opts)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	var burnt, grown, ticks int
	for trial := 0; trial < opts.Trials; trial++ {
		st, err := RunTrial(sweepBase(), 55, prng.MixSeed(opts.Seed, 55, trial), 0)
		if err != nil {
			t.Fatalf("trial %d: %v", trial, err)
		}
		burnt += st.Burnt
		grown += st.Tree + st.Burnt
		ticks += st.Ticks
	}
	want := float64(burnt) / float64(grown)
	if got := results[0].BurntFraction; math.Abs(got-want) > 1e-12 {
		t.Fatalf("burnt fraction = %v, want %v", got, want)
	}
	if got, want := results[0].MeanSteps, float64(ticks)/float64(opts.Trials); math.Abs(got-want) > 1e-12 {
		t.Fatalf("mean steps = %v, want %v", got, want)
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, sweepBase(), DefaultSweepOptions())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
