package engine

import (
	"connect4/agent"
	"connect4/tournament/metrics"
	"context"
)

type Engine interface {
	// Play runs one game to completion with first moving first and returns
	// the winner, or nil if the game ended without one. Both agents must
	// already have been initialized for the game.
	Play(ctx context.Context, first, second *agent.Contestant) (winner *agent.Contestant, metric metrics.GameMetric, err error)
	// Settle blocks until no move of c from an earlier game is still
	// running. Call it before Init on a contestant that may have timed out.
	Settle(ctx context.Context, c *agent.Contestant) error
}
