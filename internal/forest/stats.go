package forest

import "log/slog"

// RunStats is the census taken at the end of a run (or at any tick).
type RunStats struct {
	Empty int
	Tree  int
	Fire  int
	Ash   int

	// Burnt counts trees consumed by fire since Reset. The forced ignition
	// seed is not a tree and is excluded.
	Burnt int
	// Ticks is the number of ticks executed.
	Ticks int
	// SpreadTicks counts ticks in which at least one tree caught fire.
	SpreadTicks int
}

// BurntFraction is Burnt / (Tree + Burnt), the share of the grown forest that
// went up in flames. It is 0 when there was no forest.
func (r RunStats) BurntFraction() float64 {
	total := r.Tree + r.Burnt
	if total == 0 {
		return 0
	}
	return float64(r.Burnt) / float64(total)
}

// LogValue implements slog.LogValuer for structured logging.
func (r RunStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("empty", r.Empty),
		slog.Int("tree", r.Tree),
		slog.Int("fire", r.Fire),
		slog.Int("ash", r.Ash),
		slog.Int("burnt", r.Burnt),
		slog.Int("ticks", r.Ticks),
		slog.Int("spread_ticks", r.SpreadTicks),
		slog.Float64("burnt_fraction", r.BurntFraction()),
	)
}

// DensityResult aggregates the trials run at one density level.
type DensityResult struct {
	Density       int     `yaml:"density"`
	Trials        int     `yaml:"trials"`
	BurntFraction float64 `yaml:"burnt_fraction"`
	BurntStdDev   float64 `yaml:"burnt_stddev"`
	MeanSteps     float64 `yaml:"mean_steps"`
	StepsStdDev   float64 `yaml:"steps_stddev"`
}

// LogValue implements slog.LogValuer for structured logging.
func (d DensityResult) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("density", d.Density),
		slog.Int("trials", d.Trials),
		slog.Float64("burnt_fraction", d.BurntFraction),
		slog.Float64("burnt_stddev", d.BurntStdDev),
		slog.Float64("mean_steps", d.MeanSteps),
		slog.Float64("steps_stddev", d.StepsStdDev),
	)
}

// CriticalDensity estimates the density at which the mean burnt fraction
// first reaches threshold, interpolating linearly between sweep levels.
// Results must be in ascending density order. ok is false when the curve
// never reaches threshold.
func CriticalDensity(results []DensityResult, threshold float64) (density float64, ok bool) {
	for i, r := range results {
		if r.BurntFraction < threshold {
			continue
		}
		if i == 0 {
			return float64(r.Density), true
		}
		prev := results[i-1]
		span := r.BurntFraction - prev.BurntFraction
		if span <= 0 {
			return float64(r.Density), true
		}
		t := (threshold - prev.BurntFraction) / span
		return float64(prev.Density) + t*float64(r.Density-prev.Density), true
	}
	return 0, false
}
