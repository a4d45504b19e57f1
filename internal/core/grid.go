package core

// Grid stores a 2D grid of cells in row-major order.
type Grid[T any] struct {
	Rows, Cols int
	data       []T
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid[T any](rows, cols int) *Grid[T] {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid[T]{Rows: rows, Cols: cols, data: make([]T, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.Cols + col }

// InBounds reports whether (row, col) lies inside the grid. There is no
// wraparound; neighbours outside the grid simply do not exist.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the value at (row, col).
func (g *Grid[T]) At(row, col int) T { return g.data[row*g.Cols+col] }

// Set stores v at (row, col).
func (g *Grid[T]) Set(row, col int, v T) { g.data[row*g.Cols+col] = v }

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Size returns the grid dimensions in the Sim convention (W = cols, H = rows).
func (g *Grid[T]) Size() Size { return Size{W: g.Cols, H: g.Rows} }
