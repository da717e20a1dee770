package agent

import (
	"connect4/game"
	"context"
)

type firstLegalAgent struct{}

// NewFirstLegalAgent returns an agent that always plays the leftmost open
// column.
func NewFirstLegalAgent() Agent {
	return &firstLegalAgent{}
}

func (a *firstLegalAgent) Init(goingFirst bool) {}

func (a *firstLegalAgent) Step(ctx context.Context, board *game.Board) int {
	if moves := board.LegalMoves(); len(moves) > 0 {
		return moves[0]
	}
	return 0
}
