package engine

import (
	"connect4/agent"
	"connect4/game"
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// decide asks the contestant for a move. It returns false if the move budget
// ran out (or ctx was cancelled) before an answer arrived.
func (r *Runner) decide(ctx context.Context, c *agent.Contestant, board *game.Board) (int, bool) {
	if err := r.Settle(ctx, c); err != nil {
		return -1, false
	}
	if r.moveTimeout <= 0 {
		return step(ctx, c, board), true
	}

	stepCtx, cancel := context.WithTimeout(ctx, r.moveTimeout)
	defer cancel()

	// Buffered so a worker that answers late never blocks
	done := make(chan int, 1)
	go func() {
		done <- step(stepCtx, c, board)
	}()

	select {
	case col := <-done:
		return col, true
	case <-stepCtx.Done():
		cancel()
		if !r.join(c, done) {
			r.mu.Lock()
			r.stragglers[c] = done
			r.mu.Unlock()
		}
		return -1, false
	}
}

// join waits up to the grace period for a cancelled worker to return and
// reports whether it did.
func (r *Runner) join(c *agent.Contestant, done <-chan int) bool {
	if r.joinGrace <= 0 {
		return false
	}
	select {
	case <-done:
		return true
	case <-time.After(r.joinGrace):
		log.Warn().Msgf("%s ignored cancellation and is still running after %s", c.Name, r.joinGrace)
		return false
	}
}

// Settle waits for a worker of c left running by an earlier timeout. The
// agent must not be touched again until it has returned.
func (r *Runner) Settle(ctx context.Context, c *agent.Contestant) error {
	r.mu.Lock()
	done, ok := r.stragglers[c]
	r.mu.Unlock()
	if !ok {
		return nil
	}

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	r.mu.Lock()
	delete(r.stragglers, c)
	r.mu.Unlock()
	log.Debug().Msgf("%s finished its timed out move", c.Name)
	return nil
}

// step runs the agent, turning a panic into an illegal column.
func step(ctx context.Context, c *agent.Contestant, board *game.Board) (col int) {
	defer func() {
		if p := recover(); p != nil {
			log.Error().Msgf("%s panicked while choosing a move: %v", c.Name, p)
			col = -1
		}
	}()
	return c.Step(ctx, board)
}
