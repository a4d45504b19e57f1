package forest

// HeatMask returns, per cell, the remaining burn time of a fire as a fraction
// in (0,1]; non-burning cells are 0. The slice is freshly allocated.
func (s *Sim) HeatMask() []float32 {
	mask := make([]float32, len(s.cur.Cells()))
	span := float32(s.cfg.Persistence + 1)
	for i, c := range s.cur.Cells() {
		if c.IsBurning() {
			mask[i] = float32(c.Burn+1) / span
		}
	}
	return mask
}

// NeighborCells lists the in-bounds neighbours of (row, col) as (row, col)
// pairs under the configured topology.
func (s *Sim) NeighborCells(row, col int) [][2]int {
	if !s.cur.InBounds(row, col) {
		return nil
	}
	offs := s.cfg.Topology.Neighbors(row, col)
	out := make([][2]int, 0, len(offs))
	for _, o := range offs {
		r, c := row+o.DR, col+o.DC
		if s.cur.InBounds(r, c) {
			out = append(out, [2]int{r, c})
		}
	}
	return out
}
