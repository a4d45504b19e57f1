package forest

import "testing"

func TestHeatMask(t *testing.T) {
	cfg := fullForest(3, 3, VonNeumann4)
	cfg.Persistence = 3
	s := mustSim(t, cfg)
	s.Step()

	mask := s.HeatMask()
	if mask[4] != 0.75 {
		t.Fatalf("centre heat = %v, want 0.75", mask[4])
	}
	if mask[1] != 1 {
		t.Fatalf("fresh fire heat = %v, want 1", mask[1])
	}
	if mask[0] != 0 {
		t.Fatalf("tree heat = %v, want 0", mask[0])
	}
}

func TestNeighborCellsClipsAtEdges(t *testing.T) {
	cases := []struct {
		topo     Topology
		row, col int
		want     int
	}{
		{VonNeumann4, 0, 0, 2},
		{Moore8, 0, 0, 3},
		{Moore8, 2, 2, 8},
		{Hex6, 2, 2, 6},
		{TriAll12, 0, 0, 4},
	}
	for _, tc := range cases {
		t.Run(tc.topo.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Rows, cfg.Cols = 5, 5
			cfg.Topology = tc.topo
			s := mustSim(t, cfg)
			if got := len(s.NeighborCells(tc.row, tc.col)); got != tc.want {
				t.Fatalf("(%d,%d): %d neighbours, want %d", tc.row, tc.col, got, tc.want)
			}
		})
	}
	s := mustSim(t, fullForest(3, 3, Moore8))
	if s.NeighborCells(-1, 0) != nil {
		t.Fatal("out of bounds cell should have no neighbours")
	}
}
