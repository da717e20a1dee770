package agent

import (
	"connect4/game"
	"context"
)

type Agent interface {
	// Init is called before each game and resets any per-game state.
	Init(goingFirst bool)
	// Step returns the column to drop a piece into. The column must not be
	// full, otherwise the agent loses the game. ctx is cancelled once the
	// move deadline has passed.
	Step(ctx context.Context, board *game.Board) int
}

// Contestant is an agent entered into a tournament under a unique name.
type Contestant struct {
	Name string
	Agent
}

func (c *Contestant) String() string {
	return c.Name
}
