package tournament

import (
	"connect4/agent"
	"connect4/tournament/metrics"
	"context"

	"github.com/rs/zerolog/log"
)

// A drawn game is replayed this many times in total before a coin decides it.
const maxAttempts = 2

type MatchResult struct {
	Agent1Wins int
	Agent2Wins int
	Games      int
}

// RunMatch plays games between a1 and a2 until one of them reaches the
// majority threshold or the game budget runs out.
func (t *Tournament) RunMatch(ctx context.Context, match int, a1, a2 *agent.Contestant) (MatchResult, error) {
	var result MatchResult
	threshold := t.Threshold()

	for game := 1; game <= t.gamesPerMatch; game++ {
		if result.Agent1Wins >= threshold || result.Agent2Wins >= threshold {
			break
		}

		first, second := a1, a2
		if t.rng.Intn(2) == 1 {
			first, second = a2, a1
		}
		log.Info().Msgf("starting game %d with %s going first", game, first.Name)

		winner, err := t.playGame(ctx, match, game, a1, a2, first, second)
		if err != nil {
			return result, err
		}

		result.Games++
		if winner == a1 {
			result.Agent1Wins++
		} else {
			result.Agent2Wins++
		}
		log.Info().Msgf("winner of game %d is %s", game, winner.Name)
	}

	log.Info().Msgf("%s won %d games and %s won %d games", a1.Name, result.Agent1Wins, a2.Name, result.Agent2Wins)
	return result, nil
}

// playGame always returns one of a1 and a2: draws are replayed once and then
// settled at random.
func (t *Tournament) playGame(ctx context.Context, match, game int, a1, a2, first, second *agent.Contestant) (*agent.Contestant, error) {
	var record metrics.GameRecord
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		for _, c := range []*agent.Contestant{first, second} {
			if err := t.engine.Settle(ctx, c); err != nil {
				return nil, err
			}
		}
		first.Init(true)
		second.Init(false)

		winner, gm, err := t.engine.Play(ctx, first, second)
		if err != nil {
			return nil, err
		}

		record = metrics.GameRecord{
			Match:      match,
			Game:       game,
			Attempt:    attempt,
			Agent1:     a1.Name,
			Agent2:     a2.Name,
			GameMetric: gm,
		}
		if winner != nil {
			t.recorder.AddGame(record)
			return winner, nil
		}
		if attempt < maxAttempts {
			t.recorder.AddGame(record)
			log.Warn().Msgf("no winner for game %d, re-running game %d", game, game)
		}
	}

	winner := a1
	if t.rng.Intn(2) == 1 {
		winner = a2
	}
	record.TieBreak = true
	record.Winner = winner.Name
	t.recorder.AddGame(record)
	log.Warn().Msgf("no winner for game %d after a replay, %s wins the coin toss", game, winner.Name)
	return winner, nil
}
