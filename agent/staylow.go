package agent

import (
	"connect4/game"
	"context"
)

// stayLowAgent picks the column with the fewest pieces in it. Ties go to the
// leftmost column.
type stayLowAgent struct{}

func NewStayLowAgent() Agent {
	return &stayLowAgent{}
}

func (a *stayLowAgent) Init(goingFirst bool) {}

func (a *stayLowAgent) Step(ctx context.Context, board *game.Board) int {
	best, bestCount := 0, -1
	for col, count := range board.ColumnCounts() {
		if bestCount < 0 || count < bestCount {
			best, bestCount = col, count
		}
	}
	return best
}
