package main

import (
	"connect4/agent"
	"connect4/config"
	"connect4/engine"
	"connect4/tournament"
	"connect4/tournament/metrics"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        colorable.NewColorableStderr(),
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		TimeFormat: time.TimeOnly,
	})

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	registry := agent.DefaultRegistry()
	if err := cfg.Validate(registry); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	if cfg.Probe != "" {
		err = probe(ctx, cfg, registry, os.Stdout)
	} else {
		err = run(ctx, cfg, registry, os.Stdout)
	}
	stop()
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}

// run plays the configured round robin and prints the standings to out.
func run(ctx context.Context, cfg config.Config, registry agent.Registry, out io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info().Msgf("seed %d", seed)

	contestants, err := registry.Contestants(cfg.Agents, seed)
	if err != nil {
		return err
	}

	runner := engine.NewRunner(
		engine.WithMoveTimeout(cfg.MoveTimeout),
		engine.WithStepDelay(cfg.StepDelay),
		engine.WithRenderer(out),
	)
	recorder := metrics.NewRecorder()
	t, err := tournament.New(runner,
		tournament.WithGamesPerMatch(cfg.GamesPerMatch),
		tournament.WithSeed(seed),
		tournament.WithRecorder(recorder),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := t.Run(ctx, contestants)
	if err != nil {
		return err
	}
	log.Info().Msgf("tournament finished in %v after %d games", time.Since(start).Round(time.Millisecond), len(recorder.Records()))

	fmt.Fprintln(out)
	for _, s := range result.Standings {
		fmt.Fprintf(out, "Agent %s won %d matchups and %d games\n", s.Name, s.MatchWins, s.GameWins)
	}
	fmt.Fprintln(out, result)

	if cfg.RecordsDir == "" {
		return nil
	}
	w, err := metrics.NewWriter(cfg.RecordsDir)
	if err != nil {
		return err
	}
	if err := w.WriteGameRecords(recorder.Records()); err != nil {
		return err
	}
	if err := w.WriteStandings(result.Standings); err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", w.Dir())
	return nil
}
