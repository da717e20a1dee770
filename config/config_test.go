package config

import (
	"connect4/agent"
	"connect4/tournament"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func lookupIn(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// unsetenv removes key for the duration of the test and restores it after.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate(agent.DefaultRegistry()))
	require.Equal(t, 1, cfg.GamesPerMatch%2)
	require.Equal(t, []string{"RandomAgent", "StayLowAgent", "CenterAgent", "RandomAgent", "StayLowAgent", "CenterAgent"}, cfg.Agents)
	require.Equal(t, time.Second, cfg.MoveTimeout)
	require.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestApplyEnv(t *testing.T) {
	t.Run("reads every variable", func(t *testing.T) {
		cfg := Default()
		err := cfg.applyEnv(lookupIn(map[string]string{
			EnvAgents:        " TieAgent, CenterAgent ,,TieAgent",
			EnvGamesPerMatch: "7",
			EnvMoveTimeout:   "0.5",
			EnvStepDelay:     "250ms",
			EnvSeed:          "42",
			EnvRecordsDir:    "out",
			EnvLogLevel:      "debug",
		}))

		require.NoError(t, err)
		require.Equal(t, []string{"TieAgent", "CenterAgent", "TieAgent"}, cfg.Agents)
		require.Equal(t, 7, cfg.GamesPerMatch)
		require.Equal(t, 500*time.Millisecond, cfg.MoveTimeout)
		require.Equal(t, 250*time.Millisecond, cfg.StepDelay)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, "out", cfg.RecordsDir)
		require.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	})

	t.Run("empty values keep the defaults", func(t *testing.T) {
		cfg := Default()
		err := cfg.applyEnv(lookupIn(map[string]string{EnvGamesPerMatch: "  "}))

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("malformed values", func(t *testing.T) {
		for _, tc := range []struct{ key, value string }{
			{EnvGamesPerMatch, "three"},
			{EnvMoveTimeout, "soon"},
			{EnvMoveTimeout, "NaN"},
			{EnvStepDelay, "1parsec"},
			{EnvStepDelay, "Inf"},
			{EnvSeed, "-1"},
			{EnvLogLevel, "loud"},
		} {
			cfg := Default()
			err := cfg.applyEnv(lookupIn(map[string]string{tc.key: tc.value}))
			require.ErrorIs(t, err, ErrInvalidValue, tc.key)
			require.ErrorContains(t, err, tc.key)
		}
	})
}

func TestLoad(t *testing.T) {
	for _, key := range []string{EnvAgents, EnvGamesPerMatch, EnvMoveTimeout, EnvStepDelay, EnvSeed, EnvRecordsDir, EnvLogLevel} {
		unsetenv(t, key)
	}
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Run("flags override the environment", func(t *testing.T) {
		t.Setenv(EnvGamesPerMatch, "5")
		t.Setenv(EnvSeed, "9")

		cfg, err := Load([]string{"-games", "3", "-agents", "RandomAgent,TieAgent", "-move-timeout", "0"}, missing)

		require.NoError(t, err)
		require.Equal(t, 3, cfg.GamesPerMatch)
		require.Equal(t, uint64(9), cfg.Seed)
		require.Equal(t, []string{"RandomAgent", "TieAgent"}, cfg.Agents)
		require.Equal(t, time.Duration(0), cfg.MoveTimeout)
	})

	t.Run("env file fills unset variables", func(t *testing.T) {
		unsetenv(t, EnvSeed)
		t.Setenv(EnvGamesPerMatch, "11")
		file := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(file, []byte("CONNECT4_SEED=77\nCONNECT4_GAMES_PER_MATCH=3\n"), 0644))

		cfg, err := Load(nil, file)

		require.NoError(t, err)
		require.Equal(t, uint64(77), cfg.Seed)
		require.Equal(t, 11, cfg.GamesPerMatch, "Variables already in the environment win over the file")
	})

	t.Run("probe flags", func(t *testing.T) {
		cfg, err := Load([]string{"-probe", "board.txt", "-agent", "StayLowAgent"}, missing)

		require.NoError(t, err)
		require.Equal(t, "board.txt", cfg.Probe)
		require.Equal(t, "StayLowAgent", cfg.ProbeAgent)
	})

	t.Run("bad flags", func(t *testing.T) {
		_, err := Load([]string{"-games", "many"}, missing)
		require.ErrorIs(t, err, ErrInvalidValue)

		_, err = Load([]string{"-log-level", "loud"}, missing)
		require.ErrorIs(t, err, ErrInvalidValue)

		_, err = Load([]string{"-move-timeout", "NaN"}, missing)
		require.ErrorIs(t, err, ErrInvalidValue)

		_, err = Load([]string{"stray"}, missing)
		require.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestValidate(t *testing.T) {
	registry := agent.DefaultRegistry()

	t.Run("even games", func(t *testing.T) {
		cfg := Default()
		cfg.GamesPerMatch = 4
		require.ErrorIs(t, cfg.Validate(registry), tournament.ErrEvenGamesPerMatch)
	})

	t.Run("too few agents", func(t *testing.T) {
		cfg := Default()
		cfg.Agents = []string{"TieAgent"}
		require.ErrorIs(t, cfg.Validate(registry), tournament.ErrTooFewContestants)
	})

	t.Run("unknown agent", func(t *testing.T) {
		cfg := Default()
		cfg.Agents = []string{"TieAgent", "MinimaxAgent"}
		err := cfg.Validate(registry)
		require.ErrorIs(t, err, agent.ErrUnknownAgent)
		require.ErrorContains(t, err, "MinimaxAgent")
	})

	t.Run("negative durations", func(t *testing.T) {
		cfg := Default()
		cfg.MoveTimeout = -time.Second
		require.ErrorIs(t, cfg.Validate(registry), ErrInvalidValue)

		cfg = Default()
		cfg.StepDelay = -time.Second
		require.ErrorIs(t, cfg.Validate(registry), ErrInvalidValue)
	})

	t.Run("probe mode only needs the probe agent", func(t *testing.T) {
		cfg := Default()
		cfg.Probe = "board.txt"
		cfg.Agents = nil
		cfg.GamesPerMatch = 2
		require.NoError(t, cfg.Validate(registry))

		cfg.ProbeAgent = "MinimaxAgent"
		require.ErrorIs(t, cfg.Validate(registry), agent.ErrUnknownAgent)
	})
}

func TestParseSeconds(t *testing.T) {
	for input, want := range map[string]time.Duration{
		"1":     time.Second,
		"0":     0,
		"0.25":  250 * time.Millisecond,
		"1m":    time.Minute,
		"150ms": 150 * time.Millisecond,
	} {
		got, err := parseSeconds(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}

	_, err := parseSeconds("later")
	require.Error(t, err)

	for _, input := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "1e300"} {
		_, err := parseSeconds(input)
		require.ErrorIs(t, err, ErrInvalidValue, input)
	}
}
