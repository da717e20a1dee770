package tournament

import (
	"connect4/agent"
	"connect4/tournament/metrics"
	"connect4/utils"
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

type Result struct {
	Standings []metrics.Standing // In contestant order
	Winner    string             // Empty when the tournament is tied
	Tied      []string
}

func (r Result) String() string {
	if r.Winner != "" {
		return fmt.Sprintf("%s WINS!", r.Winner)
	}
	return fmt.Sprintf("No winner. The following agents tied: %s", strings.Join(r.Tied, ", "))
}

// Run plays one match between every unordered pair of contestants and
// resolves the overall winner by match wins, then game wins.
func (t *Tournament) Run(ctx context.Context, contestants []*agent.Contestant) (Result, error) {
	if len(contestants) < 2 {
		return Result{}, fmt.Errorf("%w: got %d", ErrTooFewContestants, len(contestants))
	}

	matchWins := map[string]int{}
	gameWins := map[string]int{}
	pairs := utils.Pairs(contestants)

	for i, pair := range pairs {
		a1, a2 := pair[0], pair[1]
		log.Info().Msgf("starting matchup %d of %d: %s vs %s", i+1, len(pairs), a1.Name, a2.Name)

		result, err := t.RunMatch(ctx, i+1, a1, a2)
		if err != nil {
			return Result{}, fmt.Errorf("matchup %s vs %s: %w", a1.Name, a2.Name, err)
		}

		gameWins[a1.Name] += result.Agent1Wins
		gameWins[a2.Name] += result.Agent2Wins

		// Unreachable with an odd game count, but a level match still
		// needs a definite winner
		winner := a2
		if result.Agent1Wins > result.Agent2Wins {
			winner = a1
		}
		matchWins[winner.Name]++
		log.Info().Msgf("%s is the winner of the matchup", winner.Name)
	}

	standings := make([]metrics.Standing, 0, len(contestants))
	for _, c := range contestants {
		standings = append(standings, metrics.Standing{
			Name:      c.Name,
			MatchWins: matchWins[c.Name],
			GameWins:  gameWins[c.Name],
		})
	}

	winner, tied := resolve(standings)
	return Result{Standings: standings, Winner: winner, Tied: tied}, nil
}

// resolve picks the contestant with the most match wins, then the most game
// wins. Anything still level is a tie between all leaders.
func resolve(standings []metrics.Standing) (string, []string) {
	leaders := leadersBy(standings, func(s metrics.Standing) int { return s.MatchWins })
	if len(leaders) > 1 {
		leaders = leadersBy(leaders, func(s metrics.Standing) int { return s.GameWins })
	}
	if len(leaders) == 1 {
		return leaders[0].Name, nil
	}

	tied := make([]string, 0, len(leaders))
	for _, s := range leaders {
		tied = append(tied, s.Name)
	}
	return "", tied
}

func leadersBy(standings []metrics.Standing, score func(metrics.Standing) int) []metrics.Standing {
	var leaders []metrics.Standing
	for _, s := range standings {
		switch {
		case len(leaders) == 0 || score(s) > score(leaders[0]):
			leaders = []metrics.Standing{s}
		case score(s) == score(leaders[0]):
			leaders = append(leaders, s)
		}
	}
	return leaders
}
