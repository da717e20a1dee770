package agent

import (
	"connect4/game"
	"context"
)

// tieAgent plays a fixed pattern of column triples. Two instances, one of
// them going first, always fill a standard board without a winner.
type tieAgent struct {
	turn    int
	isFirst bool
}

func NewTieAgent() Agent {
	return &tieAgent{isFirst: true}
}

func (a *tieAgent) Init(goingFirst bool) {
	a.turn = 0
	a.isFirst = goingFirst
}

func (a *tieAgent) Step(ctx context.Context, board *game.Board) int {
	col := (a.turn / 3) * 2
	if a.isFirst {
		col++
	}
	a.turn++
	return col % board.ColumnsCount()
}
