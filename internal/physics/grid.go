// Package physics provides collision lookups on the character grid.
package physics

// CellGrid is an occupancy map over a cols x rows grid. Objects are inserted
// by cell, then a cell can be tested in O(1). The grid is rebuilt every tick;
// Clear keeps the backing memory so a frame does not allocate.
type CellGrid struct {
	cols  int
	rows  int
	cells []uint16 // occupants per cell
}

// NewCellGrid creates an empty grid. Non-positive sizes are raised to 1.
func NewCellGrid(cols, rows int) *CellGrid {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &CellGrid{
		cols:  cols,
		rows:  rows,
		cells: make([]uint16, cols*rows),
	}
}

// Clear empties every cell.
func (g *CellGrid) Clear() {
	clear(g.cells)
}

// Insert marks one more occupant at (col, row). Cells off the grid are ignored.
func (g *CellGrid) Insert(col, row int) {
	if idx, ok := g.index(col, row); ok {
		g.cells[idx]++
	}
}

// Occupied reports whether anything was inserted at (col, row).
func (g *CellGrid) Occupied(col, row int) bool {
	return g.Count(col, row) > 0
}

// Count returns the number of occupants at (col, row).
func (g *CellGrid) Count(col, row int) int {
	if idx, ok := g.index(col, row); ok {
		return int(g.cells[idx])
	}
	return 0
}

func (g *CellGrid) index(col, row int) (int, bool) {
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return 0, false
	}
	return row*g.cols + col, true
}
