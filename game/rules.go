package game

import "connect4/meta"

// Rules sets the board size and how many pieces in a line win.
type Rules struct {
	Rows    int
	Columns int
	Connect int
}

// StandardRules returns the 6 x 7 board with four in a row to win.
func StandardRules() Rules {
	return Rules{
		Rows:    meta.ROWS,
		Columns: meta.COLUMNS,
		Connect: meta.CONNECT,
	}
}

func (r Rules) Valid() bool {
	return r.Rows > 0 && r.Columns > 0 && r.Connect > 0 &&
		(r.Connect <= r.Rows || r.Connect <= r.Columns)
}
