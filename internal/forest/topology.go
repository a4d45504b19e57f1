package forest

import (
	"fmt"
	"strings"
)

// Topology selects the neighbourhood used for fire contagion.
type Topology uint8

const (
	VonNeumann4 Topology = iota
	Moore8
	Hex6
	TriSide3
	TriAll12
)

// Offset is a relative (row, col) displacement to a neighbour.
type Offset struct {
	DR, DC int
}

var topologyNames = [...]string{"VonNeumann", "Moore", "Hex", "TriSide", "TriAll"}

// neighborTables holds two offset tables per topology. Square lattices use the
// same table for both; hex picks by row parity, triangular by row%2 != col%2.
var neighborTables = [...][2][]Offset{
	VonNeumann4: {vonNeumann, vonNeumann},
	Moore8:      {moore, moore},
	Hex6:        {hexEvenRow, hexOddRow},
	TriSide3:    {triSideSame, triSideMixed},
	TriAll12:    {triAllSame, triAllMixed},
}

var (
	vonNeumann = []Offset{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	moore      = []Offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	hexOddRow  = []Offset{{-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, 0}, {1, 1}}
	hexEvenRow = []Offset{{-1, -1}, {-1, 0}, {0, -1}, {0, 1}, {1, -1}, {1, 0}}

	triSideSame  = []Offset{{0, -1}, {-1, 0}, {1, 0}}
	triSideMixed = []Offset{{-1, 0}, {1, 0}, {0, 1}}

	triAllSame = []Offset{
		{2, 0}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
		{-2, 0}, {-2, -1}, {-1, -1}, {0, -1}, {1, -1}, {2, -1},
	}
	triAllMixed = []Offset{
		{2, 1}, {1, 1}, {0, 1}, {-1, 1}, {-2, 1}, {-2, 0},
		{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {2, 0},
	}
)

// Valid reports whether t names a known topology.
func (t Topology) Valid() bool { return int(t) < len(neighborTables) }

// Count returns the number of neighbours every cell has away from the edges.
func (t Topology) Count() int {
	if !t.Valid() {
		return 0
	}
	return len(neighborTables[t][0])
}

func (t Topology) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
	return topologyNames[t]
}

// NeighborsFor returns the precomputed offsets for the given parities. The
// returned slice is shared and must not be modified.
func NeighborsFor(t Topology, rowParity, colParity int) []Offset {
	if !t.Valid() {
		return nil
	}
	tables := neighborTables[t]
	switch t {
	case Hex6:
		return tables[rowParity&1]
	case TriSide3, TriAll12:
		if rowParity&1 != colParity&1 {
			return tables[1]
		}
		return tables[0]
	default:
		return tables[0]
	}
}

// Neighbors returns the offsets for the cell at (row, col).
func (t Topology) Neighbors(row, col int) []Offset {
	return NeighborsFor(t, row&1, col&1)
}

// ParseTopology accepts the canonical names plus a few common aliases.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vonneumann", "von_neumann", "vonneumann4", "vn", "4":
		return VonNeumann4, nil
	case "moore", "moore8", "8":
		return Moore8, nil
	case "hex", "hex6", "hexagonal", "6":
		return Hex6, nil
	case "triside", "tri_side", "triside3", "tri3", "3":
		return TriSide3, nil
	case "triall", "tri_all", "triall12", "tri12", "12":
		return TriAll12, nil
	}
	return 0, fmt.Errorf("%w: unknown topology %q", ErrInvalidConfig, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Topology) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: topology %d", ErrInvalidConfig, uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Topology) UnmarshalText(b []byte) error {
	parsed, err := ParseTopology(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
