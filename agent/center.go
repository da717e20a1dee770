package agent

import (
	"connect4/game"
	"context"
)

var centerPreference = []int{3, 2, 4, 1, 5, 0, 6}

// centerAgent picks whichever open column is closest to the center.
type centerAgent struct{}

func NewCenterAgent() Agent {
	return &centerAgent{}
}

func (a *centerAgent) Init(goingFirst bool) {}

func (a *centerAgent) Step(ctx context.Context, board *game.Board) int {
	for _, col := range centerPreference {
		if col < board.ColumnsCount() && !board.IsColumnFull(col) {
			return col
		}
	}
	// Boards wider than the preference list
	for col := len(centerPreference); col < board.ColumnsCount(); col++ {
		if !board.IsColumnFull(col) {
			return col
		}
	}
	return 0
}
