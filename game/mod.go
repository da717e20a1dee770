package game

// CellState is the content of a board cell from the perspective of the
// player looking at the board.
type CellState int

const (
	Empty CellState = iota
	OwnPiece
	OpponentPiece
)

func (c CellState) String() string {
	switch c {
	case OwnPiece:
		return "own"
	case OpponentPiece:
		return "opponent"
	default:
		return "empty"
	}
}

// Cell is the raw two-flag representation of a cell: index 0 is set when the
// observing player owns the piece, index 1 when the opponent does. At most
// one flag is ever set.
type Cell [2]bool

// Player identifies a seat in a game. The first player always moves first.
type Player int

const (
	NoPlayer Player = iota
	FirstPlayer
	SecondPlayer
)

// Opponent returns the other seat.
func (p Player) Opponent() Player {
	switch p {
	case FirstPlayer:
		return SecondPlayer
	case SecondPlayer:
		return FirstPlayer
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case FirstPlayer:
		return "player_0"
	case SecondPlayer:
		return "player_1"
	default:
		return "none"
	}
}
