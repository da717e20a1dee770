package tournament

import (
	"connect4/engine"
	"connect4/tournament/metrics"
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

var (
	ErrEvenGamesPerMatch = errors.New("games per match must be a positive odd number")
	ErrTooFewContestants = errors.New("need at least two contestants")
)

type Option func(t *Tournament)

// Tournament runs round-robin matches between contestants on an engine.
type Tournament struct {
	engine        engine.Engine
	gamesPerMatch int
	rng           *rand.Rand
	recorder      metrics.Recorder
}

func WithGamesPerMatch(games int) Option {
	return func(t *Tournament) {
		t.gamesPerMatch = games
	}
}

// WithSeed makes coin flips and tie-breaks reproducible.
func WithSeed(seed uint64) Option {
	return func(t *Tournament) {
		t.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRecorder(recorder metrics.Recorder) Option {
	return func(t *Tournament) {
		if recorder != nil {
			t.recorder = recorder
		}
	}
}

func New(e engine.Engine, options ...Option) (*Tournament, error) {
	if e == nil {
		panic("nil engine")
	}
	t := &Tournament{ // Default values
		engine:        e,
		gamesPerMatch: 1,
		rng:           rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		recorder:      metrics.NewDummyRecorder(),
	}
	for _, option := range options {
		option(t)
	}
	if err := ValidateGamesPerMatch(t.gamesPerMatch); err != nil {
		return nil, err
	}
	return t, nil
}

// ValidateGamesPerMatch rejects counts that could leave a match undecided.
func ValidateGamesPerMatch(games int) error {
	if games <= 0 || games%2 == 0 {
		return fmt.Errorf("%w: got %d", ErrEvenGamesPerMatch, games)
	}
	return nil
}

// Threshold is the number of game wins that decides a match.
func (t *Tournament) Threshold() int {
	return (t.gamesPerMatch + 1) / 2
}

func (t *Tournament) GamesPerMatch() int {
	return t.gamesPerMatch
}
