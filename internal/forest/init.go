package forest

import (
	"cmp"
	"slices"

	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

func (s *Sim) igniteCentre() {
	s.cur.Set(s.cfg.Rows/2, s.cfg.Cols/2, fireCell(s.cfg.Persistence))
}

func (s *Sim) plantRandom() {
	cells := s.cur.Cells()
	for i := range cells {
		if s.rng.Percent(s.cfg.Density) {
			cells[i] = treeCell()
		}
	}
}

func (s *Sim) pinBottomRow() {
	row := s.cfg.Rows - 1
	for col := 0; col < s.cfg.Cols; col++ {
		s.cur.Set(row, col, fireCell(s.cfg.Persistence))
		s.pinned[s.cur.Index(row, col)] = true
	}
}

// plantClustered plants the cells with the highest Perlin field values so the
// forest has exactly the requested density but grows in connected stands.
// Ties keep row-major order.
func (s *Sim) plantClustered() {
	if s.cfg.Density == 0 {
		return
	}
	cells := s.cur.Cells()
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, s.rng.Source().Int64())
	field := make([]float64, len(cells))
	scale := s.cfg.ClusterScale
	for row := 0; row < s.cfg.Rows; row++ {
		for col := 0; col < s.cfg.Cols; col++ {
			field[row*s.cfg.Cols+col] = noise.Noise2D(float64(col)*scale, float64(row)*scale)
		}
	}

	order := make([]int, len(field))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(field[b], field[a]) })
	want := min(len(cells)*s.cfg.Density/100, len(cells))
	for _, i := range order[:want] {
		cells[i] = treeCell()
	}
}
