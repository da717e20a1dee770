package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	t.Run("fixture", func(t *testing.T) {
		b, err := ParseBoard(fixture)

		require.NoError(t, err)
		require.Equal(t, 6, b.RowsCount())
		require.Equal(t, 7, b.ColumnsCount())
		require.Equal(t, OwnPiece, b.CellState(5, 1))
		require.Equal(t, OpponentPiece, b.CellState(5, 0))
		require.Equal(t, OpponentPiece, b.CellState(3, 4))
		require.Equal(t, Empty, b.CellState(5, 2))
	})

	t.Run("round trips through String", func(t *testing.T) {
		b, err := ParseBoard(fixture)
		require.NoError(t, err)

		again, err := ParseBoard(b.String())

		require.NoError(t, err)
		require.Equal(t, b, again)
	})

	t.Run("renders bracketed rows between dividers", func(t *testing.T) {
		b := NewEmptyBoard(2, 3)
		b.Drop(1, OwnPiece)
		b.Drop(2, OpponentPiece)

		require.Equal(t, "---------\n[ ][ ][ ]\n[ ][X][O]\n---------\n", b.String())
	})

	errorCases := map[string]string{
		"empty":           "\n----\n",
		"unknown content": "[ ][Z][ ]",
		"ragged rows":     "[ ][ ][ ]\n[ ][ ]",
		"missing bracket": "[ ][ ] X ",
		"partial cell":    "[ ][ ][",
	}
	for name, input := range errorCases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBoard(input)
			require.ErrorIs(t, err, ErrMalformedBoard)
		})
	}
}
