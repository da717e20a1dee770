package game

// Board is a view over a grid of raw cells. Row 0 is the top of the board and
// column 0 its left side. Index arguments are not bounds checked.
type Board struct {
	cells [][]Cell
}

// NewBoard wraps the given grid without copying it.
func NewBoard(cells [][]Cell) *Board {
	return &Board{cells: cells}
}

// NewEmptyBoard returns a board of the given size with every cell empty.
func NewEmptyBoard(rows, columns int) *Board {
	cells := make([][]Cell, rows)
	for r := range cells {
		cells[r] = make([]Cell, columns)
	}
	return &Board{cells: cells}
}

func (b *Board) RowsCount() int {
	return len(b.cells)
}

func (b *Board) ColumnsCount() int {
	if len(b.cells) == 0 {
		return 0
	}
	return len(b.cells[0])
}

// CellState returns the state of the cell at (row, col).
func (b *Board) CellState(row, col int) CellState {
	cell := b.cells[row][col]
	if cell[0] {
		return OwnPiece
	}
	if cell[1] {
		return OpponentPiece
	}
	return Empty
}

// IsColumnFull reports whether the top cell of col is occupied.
func (b *Board) IsColumnFull(col int) bool {
	return b.CellState(0, col) != Empty
}

// SetCellState overwrites a cell. Useful for evaluating hypothetical moves on
// a copy of the board.
func (b *Board) SetCellState(row, col int, state CellState) {
	b.cells[row][col] = Cell{state == OwnPiece, state == OpponentPiece}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	cells := make([][]Cell, len(b.cells))
	for r, row := range b.cells {
		cells[r] = make([]Cell, len(row))
		copy(cells[r], row)
	}
	return &Board{cells: cells}
}

// LegalMoves returns every column that is not full, in ascending order.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, b.ColumnsCount())
	for col := 0; col < b.ColumnsCount(); col++ {
		if !b.IsColumnFull(col) {
			moves = append(moves, col)
		}
	}
	return moves
}

// Drop places a piece in the lowest empty cell of col and returns its row, or
// -1 if the column is full.
func (b *Board) Drop(col int, state CellState) int {
	for row := b.RowsCount() - 1; row >= 0; row-- {
		if b.CellState(row, col) == Empty {
			b.SetCellState(row, col, state)
			return row
		}
	}
	return -1
}

// ColumnCounts returns the number of occupied cells per column.
func (b *Board) ColumnCounts() []int {
	counts := make([]int, b.ColumnsCount())
	for row := 0; row < b.RowsCount(); row++ {
		for col := 0; col < b.ColumnsCount(); col++ {
			if b.CellState(row, col) != Empty {
				counts[col]++
			}
		}
	}
	return counts
}
