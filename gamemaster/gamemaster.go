package gamemaster

import (
	"connect4/game"
	"errors"
)

// NoAction is submitted by a player whose turn comes up after the game has
// already terminated.
const NoAction = -1

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNoAction    = errors.New("null action before the game has terminated")
)

// Observation is what a player sees when its turn comes up.
type Observation struct {
	Board      *game.Board // From the player's perspective, a fresh copy each call
	ActionMask []bool      // One flag per column, set when the column is playable
	Terminated bool
	Reward     int // 1 for a win, -1 for a loss, 0 otherwise
}

// Env is a two-player, turn-based Connect Four environment. Players are
// iterated with Current until Done; each turn reads Last and answers with
// Step. After termination every player gets one last turn in which it must
// submit NoAction.
type Env interface {
	Reset()
	Done() bool
	Current() game.Player
	Last() Observation
	Step(action int) error
}
