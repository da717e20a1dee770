package engine

import (
	"connect4/agent"
	"connect4/game"
	"connect4/gamemaster"
	"connect4/tournament/metrics"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const DefaultJoinGrace = 100 * time.Millisecond

type Option func(r *Runner)

// Runner plays games on a fresh local environment each time.
type Runner struct {
	rules       game.Rules
	moveTimeout time.Duration
	stepDelay   time.Duration
	joinGrace   time.Duration
	renderer    io.Writer

	mu         sync.Mutex
	stragglers map[*agent.Contestant]<-chan int // Workers still running after a timeout
}

// WithMoveTimeout bounds how long an agent may take to choose a move. Zero
// disables the bound.
func WithMoveTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		if timeout >= 0 {
			r.moveTimeout = timeout
		}
	}
}

// WithStepDelay pauses between moves so a rendered game can be followed.
func WithStepDelay(delay time.Duration) Option {
	return func(r *Runner) {
		if delay >= 0 {
			r.stepDelay = delay
		}
	}
}

// WithRenderer prints the board after every move. Only used together with a
// step delay.
func WithRenderer(w io.Writer) Option {
	return func(r *Runner) {
		r.renderer = w
	}
}

func WithRules(rules game.Rules) Option {
	return func(r *Runner) {
		r.rules = rules
	}
}

// WithJoinGrace sets how long to wait for a timed out agent to return after
// its context was cancelled.
func WithJoinGrace(grace time.Duration) Option {
	return func(r *Runner) {
		if grace >= 0 {
			r.joinGrace = grace
		}
	}
}

func NewRunner(options ...Option) *Runner {
	r := &Runner{ // Default values
		rules:      game.StandardRules(),
		joinGrace:  DefaultJoinGrace,
		stragglers: map[*agent.Contestant]<-chan int{},
	}
	for _, option := range options {
		option(r)
	}
	if !r.rules.Valid() {
		panic(fmt.Sprintf("invalid rules: %+v", r.rules))
	}
	return r
}

// Play executes the entire game loop until both players have seen the end.
func (r *Runner) Play(ctx context.Context, first, second *agent.Contestant) (*agent.Contestant, metrics.GameMetric, error) {
	if first == nil || second == nil {
		panic("need two contestants")
	}

	env := gamemaster.NewLocalEnv(r.rules)
	seats := map[game.Player]*agent.Contestant{
		game.FirstPlayer:  first,
		game.SecondPlayer: second,
	}
	gm := metrics.GameMetric{
		StartingPlayer: first.Name,
		StartTime:      time.Now(),
	}

	log.Debug().Msgf("%s is starting against %s", first.Name, second.Name)

	var winner *agent.Contestant
	for !env.Done() {
		if err := ctx.Err(); err != nil {
			return nil, gm, err
		}

		player := env.Current()
		contestant := seats[player]
		obs := env.Last()
		if obs.Reward == 1 {
			winner = contestant
		}
		if obs.Terminated {
			if err := env.Step(gamemaster.NoAction); err != nil {
				return nil, gm, fmt.Errorf("engine rejected null action: %w", err)
			}
			continue
		}

		col, ok := r.decide(ctx, contestant, obs.Board)
		if !ok {
			if err := ctx.Err(); err != nil {
				return nil, gm, err
			}
			// Forfeit: the game ends here without touching the engine again
			winner = seats[player.Opponent()]
			gm.Forfeit = metrics.Timeout
			log.Warn().Msgf("%s exceeded the %s move budget, %s wins by forfeit", contestant.Name, r.moveTimeout, winner.Name)
			break
		}

		err := env.Step(col)
		switch {
		case errors.Is(err, gamemaster.ErrIllegalMove):
			gm.Forfeit = metrics.IllegalMove
			log.Warn().Err(err).Msgf("%s made an illegal move and loses the game", contestant.Name)
		case err != nil:
			return nil, gm, fmt.Errorf("engine rejected move: %w", err)
		default:
			gm.TotalMoves++
			log.Debug().Msgf("%s played column %d", contestant.Name, col)
		}

		if err := r.pause(ctx, env); err != nil {
			return nil, gm, err
		}
	}

	gm.EndTime = time.Now()
	gm.Duration = gm.EndTime.Sub(gm.StartTime)
	if winner != nil {
		gm.Winner = winner.Name
	}
	return winner, gm, nil
}

// pause renders the board and waits out the step delay.
func (r *Runner) pause(ctx context.Context, env *gamemaster.LocalEnv) error {
	if r.stepDelay <= 0 {
		return nil
	}
	if r.renderer != nil {
		fmt.Fprint(r.renderer, env.State().Observe(game.FirstPlayer).String())
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.stepDelay):
		return nil
	}
}
