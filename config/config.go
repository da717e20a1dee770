package config

import (
	"connect4/agent"
	"connect4/meta"
	"connect4/tournament"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var ErrInvalidValue = errors.New("invalid configuration value")

const (
	EnvAgents        = "CONNECT4_AGENTS"
	EnvGamesPerMatch = "CONNECT4_GAMES_PER_MATCH"
	EnvMoveTimeout   = "CONNECT4_MOVE_TIMEOUT"
	EnvStepDelay     = "CONNECT4_STEP_DELAY"
	EnvSeed          = "CONNECT4_SEED"
	EnvRecordsDir    = "CONNECT4_RECORDS_DIR"
	EnvLogLevel      = "CONNECT4_LOG_LEVEL"
)

type Config struct {
	Agents        []string
	GamesPerMatch int
	MoveTimeout   time.Duration // 0 disables the move deadline
	StepDelay     time.Duration
	Seed          uint64 // 0 picks a seed from the clock
	RecordsDir    string // CSV export is skipped when empty
	LogLevel      zerolog.Level

	// Probe mode runs a single step of ProbeAgent on the board in the Probe
	// file instead of a tournament.
	Probe      string
	ProbeAgent string
}

func Default() Config {
	return Config{
		Agents:        append([]string(nil), meta.TOURNAMENT_AGENTS...),
		GamesPerMatch: meta.GAMES_PER_MATCH,
		MoveTimeout:   meta.MOVE_TIMEOUT,
		StepDelay:     meta.STEP_DELAY,
		LogLevel:      zerolog.InfoLevel,
		ProbeAgent:    "CenterAgent",
	}
}

// Load layers the defaults, the given .env files (".env" when none are
// given, missing files are ignored), the environment and finally args.
func Load(args []string, envFiles ...string) (Config, error) {
	cfg := Default()

	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading env file: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvAgents); ok {
		c.Agents = splitList(v)
	}
	if v, ok := get(EnvGamesPerMatch); ok {
		games, err := strconv.Atoi(v)
		if err != nil {
			return invalid(EnvGamesPerMatch, v, err)
		}
		c.GamesPerMatch = games
	}
	if v, ok := get(EnvMoveTimeout); ok {
		d, err := parseSeconds(v)
		if err != nil {
			return invalid(EnvMoveTimeout, v, err)
		}
		c.MoveTimeout = d
	}
	if v, ok := get(EnvStepDelay); ok {
		d, err := parseSeconds(v)
		if err != nil {
			return invalid(EnvStepDelay, v, err)
		}
		c.StepDelay = d
	}
	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return invalid(EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v, ok := get(EnvRecordsDir); ok {
		c.RecordsDir = v
	}
	if v, ok := get(EnvLogLevel); ok {
		level, err := zerolog.ParseLevel(v)
		if err != nil {
			return invalid(EnvLogLevel, v, err)
		}
		c.LogLevel = level
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	flags := flag.NewFlagSet("connect4", flag.ContinueOnError)

	flags.Func("agents", "comma separated agent ids, repeats allowed", func(v string) error {
		c.Agents = splitList(v)
		return nil
	})
	flags.IntVar(&c.GamesPerMatch, "games", c.GamesPerMatch, "games per matchup (odd)")
	flags.Func("move-timeout", "seconds an agent gets per move, 0 disables the deadline", func(v string) error {
		d, err := parseSeconds(v)
		c.MoveTimeout = d
		return err
	})
	flags.Func("step-delay", "seconds to pause and render the board after every move", func(v string) error {
		d, err := parseSeconds(v)
		c.StepDelay = d
		return err
	})
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "seed for coin flips and random agents, 0 uses the clock")
	flags.StringVar(&c.RecordsDir, "records-dir", c.RecordsDir, "directory for CSV game records and standings")
	flags.Func("log-level", "zerolog level (debug, info, warn, error)", func(v string) error {
		level, err := zerolog.ParseLevel(v)
		c.LogLevel = level
		return err
	})
	flags.StringVar(&c.Probe, "probe", c.Probe, "board file to run a single agent step on")
	flags.StringVar(&c.ProbeAgent, "agent", c.ProbeAgent, "agent id used with -probe")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	if flags.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", ErrInvalidValue, flags.Args())
	}
	return nil
}

// Validate rejects anything that would fail before the first game is played.
func (c Config) Validate(registry agent.Registry) error {
	if c.MoveTimeout < 0 {
		return fmt.Errorf("%w: move timeout %v is negative", ErrInvalidValue, c.MoveTimeout)
	}
	if c.StepDelay < 0 {
		return fmt.Errorf("%w: step delay %v is negative", ErrInvalidValue, c.StepDelay)
	}

	if c.Probe != "" {
		_, err := registry.Lookup(c.ProbeAgent)
		return err
	}

	if err := tournament.ValidateGamesPerMatch(c.GamesPerMatch); err != nil {
		return err
	}
	if len(c.Agents) < 2 {
		return fmt.Errorf("%w: got %d", tournament.ErrTooFewContestants, len(c.Agents))
	}
	for _, id := range c.Agents {
		if _, err := registry.Lookup(id); err != nil {
			return err
		}
	}
	return nil
}

// parseSeconds accepts plain seconds ("1", "0.5") or a Go duration ("250ms").
func parseSeconds(v string) (time.Duration, error) {
	if secs, err := strconv.ParseFloat(v, 64); err == nil {
		ns := secs * float64(time.Second)
		if math.IsNaN(ns) || math.IsInf(ns, 0) || math.Abs(ns) >= math.MaxInt64 {
			return 0, fmt.Errorf("%w: %q is not a finite number of seconds", ErrInvalidValue, v)
		}
		return time.Duration(ns), nil
	}
	return time.ParseDuration(v)
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func invalid(key, value string, err error) error {
	return fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, key, value, err)
}
