package gamemaster

import (
	"connect4/game"
	"fmt"
)

var _ Env = (*LocalEnv)(nil)

// LocalEnv runs the rules in process.
type LocalEnv struct {
	rules        game.Rules
	state        *game.State
	current      game.Player
	terminated   bool
	rewards      map[game.Player]int
	acknowledged map[game.Player]bool
}

func NewLocalEnv(rules game.Rules) *LocalEnv {
	if !rules.Valid() {
		panic(fmt.Sprintf("invalid rules: %+v", rules))
	}
	e := &LocalEnv{rules: rules}
	e.Reset()
	return e
}

// Reset starts a new game with the first player to move.
func (e *LocalEnv) Reset() {
	e.state = game.NewState(e.rules)
	e.current = game.FirstPlayer
	e.terminated = false
	e.rewards = map[game.Player]int{}
	e.acknowledged = map[game.Player]bool{}
}

// Done reports whether both players have seen the terminal state.
func (e *LocalEnv) Done() bool {
	return e.acknowledged[game.FirstPlayer] && e.acknowledged[game.SecondPlayer]
}

func (e *LocalEnv) Current() game.Player {
	return e.current
}

func (e *LocalEnv) Last() Observation {
	mask := e.state.LegalMask()
	if e.terminated {
		mask = make([]bool, e.rules.Columns)
	}
	return Observation{
		Board:      e.state.Observe(e.current),
		ActionMask: mask,
		Terminated: e.terminated,
		Reward:     e.rewards[e.current],
	}
}

// State returns a copy of the absolute game state.
func (e *LocalEnv) State() *game.State {
	return e.state.Copy()
}

// Step applies the current player's action. An illegal column ends the game
// as a loss for the mover; the returned error wraps ErrIllegalMove.
func (e *LocalEnv) Step(action int) error {
	if e.Done() {
		return ErrGameOver
	}

	player := e.current
	if e.terminated {
		if action != NoAction {
			return fmt.Errorf("%w: %s submitted column %d", ErrGameOver, player, action)
		}
		e.acknowledged[player] = true
		e.current = player.Opponent()
		return nil
	}

	if action == NoAction {
		e.finish(player.Opponent())
		e.current = player.Opponent()
		return fmt.Errorf("%w: %s: %w", ErrIllegalMove, player, ErrNoAction)
	}

	if _, err := e.state.Play(action); err != nil {
		e.finish(player.Opponent())
		e.current = player.Opponent()
		return fmt.Errorf("%w: %s played column %d: %w", ErrIllegalMove, player, action, err)
	}

	if winner := e.state.Winner(); winner != game.NoPlayer {
		e.finish(winner)
	} else if e.state.Full() {
		e.terminated = true
	}
	e.current = e.state.ToMove
	return nil
}

func (e *LocalEnv) finish(winner game.Player) {
	e.terminated = true
	e.rewards[winner] = 1
	e.rewards[winner.Opponent()] = -1
}
