package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const fixture = `
---------------------
[ ][ ][ ][ ][ ][ ][ ]
[ ][ ][ ][ ][ ][ ][ ]
[ ][ ][ ][ ][ ][ ][ ]
[O][ ][ ][ ][O][ ][ ]
[O][ ][ ][O][O][ ][ ]
[O][X][ ][O][O][ ][ ]
---------------------
`

func TestBoardCellState(t *testing.T) {
	t.Run("set and get each state", func(t *testing.T) {
		b := NewEmptyBoard(6, 7)

		b.SetCellState(5, 2, OwnPiece)
		b.SetCellState(4, 2, OpponentPiece)

		require.Equal(t, OwnPiece, b.CellState(5, 2))
		require.Equal(t, OpponentPiece, b.CellState(4, 2))
		require.Equal(t, Empty, b.CellState(3, 2))

		b.SetCellState(5, 2, Empty)
		require.Equal(t, Empty, b.CellState(5, 2), "Clearing a cell should unset both flags")
	})

	t.Run("never sets both flags", func(t *testing.T) {
		cells := [][]Cell{{{}}}
		b := NewBoard(cells)

		b.SetCellState(0, 0, OwnPiece)
		b.SetCellState(0, 0, OpponentPiece)

		require.Equal(t, Cell{false, true}, cells[0][0], "Board should write through to the wrapped grid")
	})

	t.Run("dimensions", func(t *testing.T) {
		b := NewEmptyBoard(6, 7)
		require.Equal(t, 6, b.RowsCount())
		require.Equal(t, 7, b.ColumnsCount())
		require.Equal(t, 0, NewBoard(nil).ColumnsCount())
	})
}

func TestBoardIsColumnFull(t *testing.T) {
	full := NewEmptyBoard(6, 7)
	for i := 0; i < 6; i++ {
		full.Drop(3, OwnPiece)
	}
	parsed, err := ParseBoard(fixture)
	require.NoError(t, err)

	for name, b := range map[string]*Board{
		"empty":         NewEmptyBoard(6, 7),
		"fixture":       parsed,
		"full column 3": full,
	} {
		t.Run(name, func(t *testing.T) {
			for col := 0; col < b.ColumnsCount(); col++ {
				require.Equal(t, b.CellState(0, col) != Empty, b.IsColumnFull(col), "column %d", col)
			}
		})
	}

	require.True(t, full.IsColumnFull(3))
	require.Equal(t, []int{0, 1, 2, 4, 5, 6}, full.LegalMoves())
}

func TestBoardDrop(t *testing.T) {
	t.Run("stacks from the bottom", func(t *testing.T) {
		b := NewEmptyBoard(6, 7)

		require.Equal(t, 5, b.Drop(0, OwnPiece))
		require.Equal(t, 4, b.Drop(0, OpponentPiece))
		require.Equal(t, OwnPiece, b.CellState(5, 0))
		require.Equal(t, OpponentPiece, b.CellState(4, 0))
	})

	t.Run("full column", func(t *testing.T) {
		b := NewEmptyBoard(2, 1)
		b.Drop(0, OwnPiece)
		b.Drop(0, OwnPiece)

		require.Equal(t, -1, b.Drop(0, OwnPiece))
	})
}

func TestBoardCopy(t *testing.T) {
	b := NewEmptyBoard(6, 7)
	c := b.Copy()

	c.Drop(1, OwnPiece)

	require.Equal(t, Empty, b.CellState(5, 1), "Copy should not share cells with the original")
	require.Equal(t, OwnPiece, c.CellState(5, 1))
}

func TestBoardColumnCounts(t *testing.T) {
	b, err := ParseBoard(fixture)
	require.NoError(t, err)

	require.Equal(t, []int{3, 1, 0, 2, 3, 0, 0}, b.ColumnCounts())
}
