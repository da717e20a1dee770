package main

import (
	"connect4/agent"
	"connect4/config"
	"connect4/game"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

var errProbeIllegal = errors.New("agent chose an illegal column")

// probe asks a single agent for one move on the board stored in cfg.Probe and
// prints the board with the piece dropped in.
func probe(ctx context.Context, cfg config.Config, registry agent.Registry, out io.Writer) error {
	data, err := os.ReadFile(cfg.Probe)
	if err != nil {
		return err
	}
	board, err := game.ParseBoard(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Probe, err)
	}
	fmt.Fprintf(out, "Parsed game board:\n%s", board)

	factory, err := registry.Lookup(cfg.ProbeAgent)
	if err != nil {
		return err
	}
	a := factory(cfg.Seed)
	a.Init(goingFirst(board))

	if cfg.MoveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.MoveTimeout)
		defer cancel()
	}
	col := a.Step(ctx, board.Copy())
	fmt.Fprintf(out, "Agent requested a piece be placed in column %d\n", col)
	if col < 0 || col >= board.ColumnsCount() || board.IsColumnFull(col) {
		return fmt.Errorf("%w: %d", errProbeIllegal, col)
	}

	board.Drop(col, game.OwnPiece)
	fmt.Fprintf(out, "Game board with new piece:\n%s", board)
	return nil
}

// goingFirst infers the move order from the piece counts: the first player
// moves whenever both sides have the same number of pieces.
func goingFirst(board *game.Board) bool {
	own, opponent := 0, 0
	for row := 0; row < board.RowsCount(); row++ {
		for col := 0; col < board.ColumnsCount(); col++ {
			switch board.CellState(row, col) {
			case game.OwnPiece:
				own++
			case game.OpponentPiece:
				opponent++
			}
		}
	}
	return own == opponent
}
