package forest

import (
	"fmt"

	"forest-ca/internal/core"
	prng "forest-ca/pkg/core"
)

// Sim owns the grid and drives the tick loop. It is not safe for concurrent use.
type Sim struct {
	cfg  Config
	name string

	cur    *core.Grid[Cell]
	nxt    *core.Grid[Cell]
	pinned []bool

	engine *Engine
	rng    *prng.RNG

	tick        int
	burning     int
	burnt       int
	spreadTicks int

	display      []uint8
	displayDirty bool
}

// New validates cfg and returns a Sim reset with cfg.Seed.
func New(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	total := cfg.Rows * cfg.Cols
	s := &Sim{
		cfg:     cfg,
		name:    "forest",
		cur:     core.NewGrid[Cell](cfg.Rows, cfg.Cols),
		nxt:     core.NewGrid[Cell](cfg.Rows, cfg.Cols),
		display: make([]uint8, total),
		rng:     prng.NewRNG(cfg.Seed),
	}
	if cfg.Init == InitFireLine {
		s.pinned = make([]bool, total)
	}
	s.engine = NewEngine(cfg, s.rng)
	s.Reset(0)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return s.name }

// Size reports the grid dimensions.
func (s *Sim) Size() core.Size { return s.cur.Size() }

// Config returns the configuration the sim was built with.
func (s *Sim) Config() Config { return s.cfg }

// Tick returns the number of ticks executed since the last Reset.
func (s *Sim) Tick() int { return s.tick }

// Burning returns the number of cells currently on fire.
func (s *Sim) Burning() int { return s.burning }

// Quiescent reports whether no cell is burning.
func (s *Sim) Quiescent() bool { return s.burning == 0 }

// At returns the cell at (row, col).
func (s *Sim) At(row, col int) Cell { return s.cur.At(row, col) }

// Reset reinitialises the grid. A zero seed reuses the configured seed.
func (s *Sim) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = s.cfg.Seed
	}
	s.rng.Reseed(effective)
	s.tick = 0
	s.burnt = 0
	s.spreadTicks = 0

	s.cur.Fill(emptyCell())
	s.nxt.Fill(emptyCell())
	for i := range s.pinned {
		s.pinned[i] = false
	}

	switch s.cfg.Init {
	case InitDensity:
		s.plantRandom()
		s.igniteCentre()
	case InitSeed:
		s.igniteCentre()
	case InitFireLine:
		s.pinBottomRow()
	case InitClustered:
		s.plantClustered()
		s.igniteCentre()
	}
	s.burning = s.countBurning()
	s.displayDirty = true
}

// Step advances the automaton by one tick and commits the next buffer.
func (s *Sim) Step() {
	rep := s.engine.Step(s.cur, s.nxt, s.pinned)
	s.cur, s.nxt = s.nxt, s.cur
	s.tick++
	s.burning = rep.Burning
	s.burnt += rep.Ignited
	if rep.Ignited > 0 {
		s.spreadTicks++
	}
	s.displayDirty = true
}

// Run steps until no cell is burning and returns the final statistics.
// maxTicks <= 0 selects a bound derived from the grid size, which a finite
// burn always respects.
func (s *Sim) Run(maxTicks int) (RunStats, error) {
	if !s.cfg.Terminates() {
		return s.Census(), fmt.Errorf("%w: init=%s ignition=%g growth=%g burnout=%s",
			ErrContinuous, s.cfg.Init, s.cfg.IgnitionChance, s.cfg.GrowthChance, s.cfg.Burnout)
	}
	if maxTicks <= 0 {
		maxTicks = s.cfg.Rows*s.cfg.Cols*(s.cfg.Persistence+1) + 1
	}
	for s.burning > 0 {
		if s.tick >= maxTicks {
			return s.Census(), fmt.Errorf("%w after %d ticks (%d cells burning)", ErrNotQuiescent, s.tick, s.burning)
		}
		s.Step()
	}
	return s.Census(), nil
}

// Census counts cell states and returns them with the run counters.
func (s *Sim) Census() RunStats {
	st := RunStats{
		Burnt:       s.burnt,
		Ticks:       s.tick,
		SpreadTicks: s.spreadTicks,
	}
	for _, c := range s.cur.Cells() {
		switch c.State {
		case Empty:
			st.Empty++
		case Tree:
			st.Tree++
		case Fire:
			st.Fire++
		case Ash:
			st.Ash++
		}
	}
	return st
}

// Snapshot returns a read-only copy of the visible state of every cell.
func (s *Sim) Snapshot() Snapshot {
	cells := s.cur.Cells()
	states := make([]State, len(cells))
	for i, c := range cells {
		states[i] = c.State
	}
	return Snapshot{Rows: s.cur.Rows, Cols: s.cur.Cols, States: states}
}

func (s *Sim) countBurning() int {
	n := 0
	for _, c := range s.cur.Cells() {
		if c.IsBurning() {
			n++
		}
	}
	return n
}

// Snapshot is an immutable view of the grid for renderers and tests.
type Snapshot struct {
	Rows, Cols int
	States     []State
}

// At returns the state at (row, col).
func (s Snapshot) At(row, col int) State { return s.States[row*s.Cols+col] }
