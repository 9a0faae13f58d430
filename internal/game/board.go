package game

// Board is a fixed-size grid of cells, row 0 at the top.
//
// Cells live in one contiguous row-major buffer so whole rows can be moved
// with a single copy.
type Board struct {
	rows  int
	cols  int
	cells []Cell
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

func (b *Board) inBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// Row returns the cells of one row. The slice aliases the board.
func (b *Board) Row(row int) []Cell {
	return b.cells[row*b.cols : (row+1)*b.cols]
}

// CellAt returns the cell at (row, col) and whether the coordinates are on the board.
func (b *Board) CellAt(row, col int) (Cell, bool) {
	if !b.inBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[row*b.cols+col], true
}

// IsOccupied reports whether (row, col) is on the board and not Empty.
func (b *Board) IsOccupied(row, col int) bool {
	c, ok := b.CellAt(row, col)
	return ok && c.Occupancy != Empty
}

// SetCell writes a cell without checking fit. Writes off the board are ignored.
func (b *Board) SetCell(row, col int, color Color, occ Occupancy) {
	if !b.inBounds(row, col) {
		return
	}
	if occ == Empty {
		color = Background
	}
	b.cells[row*b.cols+col] = Cell{Occupancy: occ, Color: color}
}

// Fits reports whether all four cells of shape, anchored at pos, are on the
// board and unoccupied. Transient cells block just like persisted ones.
func (b *Board) Fits(shape Shape, pos Position) bool {
	for _, o := range shape {
		row, col := pos.Y+o.DY, pos.X+o.DX
		if !b.inBounds(row, col) || b.IsOccupied(row, col) {
			return false
		}
	}
	return true
}

// ClearTransient resets every Transient cell to Empty.
func (b *Board) ClearTransient() {
	for i := range b.cells {
		if b.cells[i].Occupancy == Transient {
			b.cells[i] = Cell{}
		}
	}
}

func isFull(row []Cell) bool {
	for _, c := range row {
		if c.Occupancy != Persisted {
			return false
		}
	}
	return true
}

// CompactRows removes every row made entirely of Persisted cells. Rows above a
// removed row shift down, keeping their order, and the same number of empty
// rows appear at the top. Returns the number of rows removed.
func (b *Board) CompactRows() int {
	dst := b.rows - 1
	for src := b.rows - 1; src >= 0; src-- {
		if isFull(b.Row(src)) {
			continue
		}
		if dst != src {
			copy(b.Row(dst), b.Row(src))
		}
		dst--
	}

	removed := dst + 1
	clear(b.cells[:removed*b.cols])
	return removed
}

// FullRows counts rows that CompactRows would remove.
func (b *Board) FullRows() int {
	n := 0
	for r := 0; r < b.rows; r++ {
		if isFull(b.Row(r)) {
			n++
		}
	}
	return n
}

// Count returns how many cells have the given occupancy.
func (b *Board) Count(occ Occupancy) int {
	n := 0
	for _, c := range b.cells {
		if c.Occupancy == occ {
			n++
		}
	}
	return n
}

// Grid returns a deep copy of the cells as one slice per row.
func (b *Board) Grid() [][]Cell {
	grid := make([][]Cell, b.rows)
	for r := range grid {
		grid[r] = make([]Cell, b.cols)
		copy(grid[r], b.Row(r))
	}
	return grid
}
