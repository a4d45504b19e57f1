package forest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidConfig reports a malformed configuration. It is only ever
	// returned at construction, never from inside the tick loop.
	ErrInvalidConfig = errors.New("forest: invalid config")
	// ErrResource reports a grid that cannot be allocated.
	ErrResource = errors.New("forest: grid too large")
	// ErrNotQuiescent is returned by Run when the tick bound is exhausted.
	ErrNotQuiescent = errors.New("forest: run did not reach quiescence")
	// ErrContinuous is returned by Run for configs that can never quiesce.
	ErrContinuous = errors.New("forest: continuous run has no termination")
)

// MaxCells bounds rows*cols for a single grid.
const MaxCells = 1 << 26

// Burnout selects what a spent fire leaves behind.
type Burnout uint8

const (
	// BurnoutAsh leaves Ash, which never regrows.
	BurnoutAsh Burnout = iota
	// BurnoutEmpty frees the cell so a tree can grow there again.
	BurnoutEmpty
)

func (b Burnout) String() string {
	switch b {
	case BurnoutAsh:
		return "ash"
	case BurnoutEmpty:
		return "empty"
	}
	return fmt.Sprintf("Burnout(%d)", uint8(b))
}

// ParseBurnout parses "ash" or "empty".
func ParseBurnout(s string) (Burnout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ash", "ashes":
		return BurnoutAsh, nil
	case "empty":
		return BurnoutEmpty, nil
	}
	return 0, fmt.Errorf("%w: unknown burnout %q", ErrInvalidConfig, s)
}

// MarshalText implements encoding.TextMarshaler.
func (b Burnout) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Burnout) UnmarshalText(text []byte) error {
	v, err := ParseBurnout(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// InitMode selects how Reset lays out the grid.
type InitMode uint8

const (
	// InitDensity plants trees with probability Density/100 and lights the centre.
	InitDensity InitMode = iota
	// InitSeed starts bare with a single central fire; trees grow over time.
	InitSeed
	// InitFireLine pins the bottom row on fire permanently.
	InitFireLine
	// InitClustered plants noise-correlated stands of trees and lights the centre.
	InitClustered
)

var initNames = [...]string{"density", "seed", "fireline", "clustered"}

func (m InitMode) String() string {
	if int(m) < len(initNames) {
		return initNames[m]
	}
	return fmt.Sprintf("InitMode(%d)", uint8(m))
}

// ParseInitMode parses an initial condition name.
func ParseInitMode(s string) (InitMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "density", "random":
		return InitDensity, nil
	case "seed", "growth":
		return InitSeed, nil
	case "fireline", "fire_line", "line":
		return InitFireLine, nil
	case "clustered", "noise":
		return InitClustered, nil
	}
	return 0, fmt.Errorf("%w: unknown init mode %q", ErrInvalidConfig, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m InitMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *InitMode) UnmarshalText(text []byte) error {
	v, err := ParseInitMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Config holds the immutable per-run parameters.
type Config struct {
	Rows int
	Cols int

	Topology Topology

	// GrowthChance is the per-tick probability (1/P) that an empty cell grows a tree.
	GrowthChance float64
	// IgnitionChance is the per-tick probability (1/F) that a tree catches fire
	// spontaneously. Zero disables spontaneous ignition.
	IgnitionChance float64
	// Persistence is the number of extra ticks a fire keeps burning.
	Persistence int
	Burnout     Burnout
	// DecayContagious lets a fire spread on every tick it burns. When false only
	// the first burning tick is contagious and the rest is smouldering.
	DecayContagious bool

	Init         InitMode
	Density      int
	ClusterScale float64

	Seed int64
}

// DefaultConfig returns the standard batch configuration.
func DefaultConfig() Config {
	return Config{
		Rows:            101,
		Cols:            101,
		Topology:        Moore8,
		Burnout:         BurnoutAsh,
		DecayContagious: true,
		Init:            InitDensity,
		Density:         60,
		ClusterScale:    0.08,
		Seed:            1,
	}
}

// Validate reports the first problem found in the configuration.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfig, c.Rows, c.Cols)
	}
	if c.Rows > MaxCells/c.Cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrResource, c.Rows, c.Cols, MaxCells)
	}
	if !c.Topology.Valid() {
		return fmt.Errorf("%w: topology %d", ErrInvalidConfig, uint8(c.Topology))
	}
	if err := checkChance("growth chance", c.GrowthChance); err != nil {
		return err
	}
	if err := checkChance("ignition chance", c.IgnitionChance); err != nil {
		return err
	}
	if c.Persistence < 0 || c.Persistence > math.MaxUint8 {
		return fmt.Errorf("%w: persistence must be in [0,%d], got %d", ErrInvalidConfig, math.MaxUint8, c.Persistence)
	}
	if c.Burnout > BurnoutEmpty {
		return fmt.Errorf("%w: burnout %d", ErrInvalidConfig, uint8(c.Burnout))
	}
	if c.Init > InitClustered {
		return fmt.Errorf("%w: init mode %d", ErrInvalidConfig, uint8(c.Init))
	}
	if c.Density < 0 || c.Density > 100 {
		return fmt.Errorf("%w: density must be in [0,100], got %d", ErrInvalidConfig, c.Density)
	}
	if c.Init == InitClustered && !(c.ClusterScale > 0) {
		return fmt.Errorf("%w: cluster scale must be positive, got %g", ErrInvalidConfig, c.ClusterScale)
	}
	return nil
}

func checkChance(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %s must be in [0,1], got %g", ErrInvalidConfig, name, p)
	}
	return nil
}

// Terminates reports whether a run with this config is guaranteed to reach
// quiescence. Regrowth into freed cells can feed a fire forever, so growth is
// only allowed when burnt cells turn to ash.
func (c Config) Terminates() bool {
	if c.Init == InitFireLine || c.IgnitionChance > 0 {
		return false
	}
	return c.GrowthChance == 0 || c.Burnout == BurnoutAsh
}

// FromMap overlays flag-style key/value pairs on top of base. Unlike a silent
// best-effort parse, malformed values are reported so they fail at construction.
func FromMap(base Config, cfg map[string]string) (Config, error) {
	c := base
	for key, v := range cfg {
		var err error
		switch key {
		case "rows", "h":
			c.Rows, err = strconv.Atoi(v)
		case "cols", "w":
			c.Cols, err = strconv.Atoi(v)
		case "topology":
			c.Topology, err = ParseTopology(v)
		case "growth":
			c.GrowthChance, err = strconv.ParseFloat(v, 64)
		case "ignition":
			c.IgnitionChance, err = strconv.ParseFloat(v, 64)
		case "p":
			c.GrowthChance, err = oddsToChance(v)
		case "f":
			c.IgnitionChance, err = oddsToChance(v)
		case "persistence":
			c.Persistence, err = strconv.Atoi(v)
		case "burnout":
			c.Burnout, err = ParseBurnout(v)
		case "decay_contagious":
			c.DecayContagious, err = strconv.ParseBool(v)
		case "init":
			c.Init, err = ParseInitMode(v)
		case "density":
			c.Density, err = strconv.Atoi(v)
		case "cluster_scale":
			c.ClusterScale, err = strconv.ParseFloat(v, 64)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		default:
			return base, fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key)
		}
		if err != nil {
			return base, fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, key, v, err)
		}
	}
	return c, nil
}

// oddsToChance turns "1 in n" odds into a probability; n == 0 disables.
func oddsToChance(v string) (float64, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("odds must be non-negative")
	}
	if n == 0 {
		return 0, nil
	}
	return 1 / float64(n), nil
}
