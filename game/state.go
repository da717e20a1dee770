package game

import (
	"errors"
	"fmt"
)

var (
	ErrColumnFull    = errors.New("column is full")
	ErrColumnInvalid = errors.New("column out of range")
)

// directions scanned for a line through the last placed piece
var directions = [][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// State is the absolute game state kept by the rules engine. Cells hold the
// owning Player, NoPlayer when empty.
type State struct {
	Rules  Rules
	Grid   [][]Player
	Moves  int
	Won    Player
	ToMove Player
}

// NewState returns an empty board with the first player to move.
func NewState(rules Rules) *State {
	grid := make([][]Player, rules.Rows)
	for r := range grid {
		grid[r] = make([]Player, rules.Columns)
	}
	return &State{
		Rules:  rules,
		Grid:   grid,
		ToMove: FirstPlayer,
	}
}

func (s *State) Copy() *State {
	grid := make([][]Player, len(s.Grid))
	for r, row := range s.Grid {
		grid[r] = make([]Player, len(row))
		copy(grid[r], row)
	}
	return &State{
		Rules:  s.Rules,
		Grid:   grid,
		Moves:  s.Moves,
		Won:    s.Won,
		ToMove: s.ToMove,
	}
}

// Winner returns the player who completed a line, NoPlayer otherwise.
func (s *State) Winner() Player {
	return s.Won
}

// Full reports whether every cell is occupied.
func (s *State) Full() bool {
	return s.Moves >= s.Rules.Rows*s.Rules.Columns
}

// Over reports whether the game has ended by a win or a full board.
func (s *State) Over() bool {
	return s.Won != NoPlayer || s.Full()
}

// LegalMask returns one flag per column, set when a piece may be dropped there.
func (s *State) LegalMask() []bool {
	mask := make([]bool, s.Rules.Columns)
	if s.Over() {
		return mask
	}
	for col := range mask {
		mask[col] = s.Grid[0][col] == NoPlayer
	}
	return mask
}

// Play drops a piece for the player to move into col and passes the turn.
func (s *State) Play(col int) (int, error) {
	if col < 0 || col >= s.Rules.Columns {
		return -1, fmt.Errorf("%w: %d", ErrColumnInvalid, col)
	}

	row := -1
	for r := s.Rules.Rows - 1; r >= 0; r-- {
		if s.Grid[r][col] == NoPlayer {
			row = r
			break
		}
	}
	if row < 0 {
		return -1, fmt.Errorf("%w: %d", ErrColumnFull, col)
	}

	s.Grid[row][col] = s.ToMove
	s.Moves++
	if s.completesLine(row, col) {
		s.Won = s.ToMove
	}
	s.ToMove = s.ToMove.Opponent()
	return row, nil
}

func (s *State) completesLine(row, col int) bool {
	mark := s.Grid[row][col]
	if mark == NoPlayer {
		return false
	}

	for _, d := range directions {
		count := 1
		for _, sign := range []int{1, -1} {
			r, c := row+sign*d[0], col+sign*d[1]
			for r >= 0 && r < s.Rules.Rows && c >= 0 && c < s.Rules.Columns && s.Grid[r][c] == mark {
				count++
				r += sign * d[0]
				c += sign * d[1]
			}
		}
		if count >= s.Rules.Connect {
			return true
		}
	}
	return false
}

// Observe renders the grid from the given player's perspective.
func (s *State) Observe(p Player) *Board {
	cells := make([][]Cell, len(s.Grid))
	for r, row := range s.Grid {
		cells[r] = make([]Cell, len(row))
		for c, owner := range row {
			cells[r][c] = Cell{owner != NoPlayer && owner == p, owner != NoPlayer && owner != p}
		}
	}
	return NewBoard(cells)
}
