package forest

// State enumerates the visible states of a cell.
type State uint8

const (
	Empty State = iota
	Tree
	Fire
	Ash
)

var stateNames = [...]string{"empty", "tree", "fire", "ash"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Cell is the value stored per lattice site. Burn is the remaining persistence
// countdown and is only meaningful while State == Fire.
type Cell struct {
	State State
	Burn  uint8
}

// IsFlammable reports whether the cell can catch fire.
func (c Cell) IsFlammable() bool { return c.State == Tree }

// IsBurning reports whether the cell is on fire, whatever its countdown.
func (c Cell) IsBurning() bool { return c.State == Fire }

func (c Cell) String() string { return c.State.String() }

func emptyCell() Cell { return Cell{State: Empty} }

func treeCell() Cell { return Cell{State: Tree} }

func fireCell(persistence int) Cell { return Cell{State: Fire, Burn: uint8(persistence)} }
