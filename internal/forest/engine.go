package forest

import (
	"forest-ca/internal/core"
	prng "forest-ca/pkg/core"
)

// TickReport summarises the transitions applied during one tick.
type TickReport struct {
	Grown    int
	Ignited  int
	BurntOut int
	Burning  int
}

// Engine applies the transition rule. It holds no grid state of its own: every
// call reads a complete pre-tick snapshot and writes a separate next buffer, so
// a fire can advance at most one neighbourhood per tick.
type Engine struct {
	topology        Topology
	growth          float64
	ignition        float64
	persistence     uint8
	burnout         Burnout
	decayContagious bool
	rng             *prng.RNG
}

// NewEngine builds an engine for cfg drawing randomness from r.
func NewEngine(cfg Config, r *prng.RNG) *Engine {
	return &Engine{
		topology:        cfg.Topology,
		growth:          cfg.GrowthChance,
		ignition:        cfg.IgnitionChance,
		persistence:     uint8(cfg.Persistence),
		burnout:         cfg.Burnout,
		decayContagious: cfg.DecayContagious,
		rng:             r,
	}
}

// Step computes next from cur. pinned, when non-nil, marks cells that are held
// on fire every tick and never evaluated. Draws happen in row-major order.
func (e *Engine) Step(cur, next *core.Grid[Cell], pinned []bool) TickReport {
	var rep TickReport
	src := cur.Cells()
	dst := next.Cells()
	for row := 0; row < cur.Rows; row++ {
		for col := 0; col < cur.Cols; col++ {
			idx := row*cur.Cols + col
			if pinned != nil && pinned[idx] {
				dst[idx] = fireCell(int(e.persistence))
				rep.Burning++
				continue
			}
			c := src[idx]
			switch c.State {
			case Empty:
				if e.rng.Chance(e.growth) {
					dst[idx] = treeCell()
					rep.Grown++
					continue
				}
				dst[idx] = c
			case Tree:
				if e.rng.Chance(e.ignition) || e.fireNearby(cur, row, col) {
					dst[idx] = fireCell(int(e.persistence))
					rep.Ignited++
					rep.Burning++
					continue
				}
				dst[idx] = c
			case Fire:
				if c.Burn > 0 {
					dst[idx] = Cell{State: Fire, Burn: c.Burn - 1}
					rep.Burning++
					continue
				}
				dst[idx] = e.spent()
				rep.BurntOut++
			default:
				dst[idx] = c
			}
		}
	}
	return rep
}

func (e *Engine) spent() Cell {
	if e.burnout == BurnoutEmpty {
		return emptyCell()
	}
	return Cell{State: Ash}
}

func (e *Engine) fireNearby(g *core.Grid[Cell], row, col int) bool {
	for _, off := range e.topology.Neighbors(row, col) {
		r, c := row+off.DR, col+off.DC
		if !g.InBounds(r, c) {
			continue
		}
		if e.contagious(g.At(r, c)) {
			return true
		}
	}
	return false
}

// contagious reports whether c can ignite a neighbouring tree this tick.
func (e *Engine) contagious(c Cell) bool {
	if !c.IsBurning() {
		return false
	}
	return e.decayContagious || c.Burn == e.persistence
}
