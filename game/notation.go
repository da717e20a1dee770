package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedBoard = errors.New("malformed board")

// ParseBoard reads the bracketed text format produced by Board.String:
//
//	---------------------
//	[ ][ ][ ][ ][ ][ ][ ]
//	...
//	[O][X][ ][O][O][ ][ ]
//	---------------------
//
// X marks the observing player's pieces and O the opponent's. Blank lines and
// divider lines are skipped.
func ParseBoard(s string) (*Board, error) {
	var cells [][]Cell
	for i, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Trim(line, "-") == "" {
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedBoard, i+1, err)
		}
		if len(cells) > 0 && len(row) != len(cells[0]) {
			return nil, fmt.Errorf("%w: line %d has %d columns, expected %d", ErrMalformedBoard, i+1, len(row), len(cells[0]))
		}
		cells = append(cells, row)
	}

	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedBoard)
	}
	return NewBoard(cells), nil
}

func parseRow(line string) ([]Cell, error) {
	if len(line)%3 != 0 {
		return nil, fmt.Errorf("row %q is not a sequence of [c] cells", line)
	}

	row := make([]Cell, 0, len(line)/3)
	for i := 0; i < len(line); i += 3 {
		if line[i] != '[' || line[i+2] != ']' {
			return nil, fmt.Errorf("bad cell %q", line[i:i+3])
		}
		switch line[i+1] {
		case 'X':
			row = append(row, Cell{true, false})
		case 'O':
			row = append(row, Cell{false, true})
		case ' ':
			row = append(row, Cell{})
		default:
			return nil, fmt.Errorf("unknown cell content %q", line[i+1])
		}
	}
	return row, nil
}

func (b *Board) String() string {
	var sb strings.Builder
	divider := strings.Repeat("-", b.ColumnsCount()*3) + "\n"

	sb.WriteString(divider)
	for row := 0; row < b.RowsCount(); row++ {
		for col := 0; col < b.ColumnsCount(); col++ {
			switch b.CellState(row, col) {
			case OwnPiece:
				sb.WriteString("[X]")
			case OpponentPiece:
				sb.WriteString("[O]")
			default:
				sb.WriteString("[ ]")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString(divider)
	return sb.String()
}
