package agent

import (
	"connect4/game"
	"context"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that picks uniformly among the open columns.
func NewRandomAgent(src rand.Source) Agent {
	return &randomAgent{rng: rand.New(src)}
}

func (a *randomAgent) Init(goingFirst bool) {}

func (a *randomAgent) Step(ctx context.Context, board *game.Board) int {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		return 0
	}
	return moves[a.rng.Intn(len(moves))]
}
