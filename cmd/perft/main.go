// Command perft is the move generator's correctness harness: given a
// depth, a starting FEN, and an optional list of moves to play first, it
// divides the perft count by root move and verifies the incrementally
// maintained Zobrist hash never drifts from a from-scratch recomputation
// at every leaf. Its argument-driven shape replaces the stdin REPL of
// Blunder's interface/command-line.go, since the spec calls for a batch
// harness rather than an interactive play loop.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"chessmodule/core"
	"chessmodule/internal/engineio"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: perft <depth> <fen> [move ...]")
	}

	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 0 {
		return fmt.Errorf("invalid depth %q: %w", args[0], err)
	}

	fen := args[1]
	board, err := core.ParseFEN(fen)
	if err != nil {
		return err
	}

	for _, moveStr := range args[2:] {
		m, ok := core.ParseMove(board, moveStr)
		if !ok {
			return fmt.Errorf("%q is not a legal move in position %q", moveStr, board.FEN())
		}
		if !board.ApplyMove(m) {
			return fmt.Errorf("%q rejected at make-move boundary", moveStr)
		}
	}

	engineio.Log.Infof("running perft to depth %d from %q", depth, board.FEN())

	ctx := context.Background()
	total, err := core.PerftVerifyHash(ctx, board, depth)
	if err != nil {
		return fmt.Errorf("hash consistency check failed: %w", err)
	}

	divide := core.DividePerft(board, depth)
	for _, entry := range divide {
		fmt.Printf("%s %s\n", entry.Move, engineio.FormatNodeCount(entry.Nodes))
	}
	fmt.Printf("\nnodes searched: %s\n", engineio.FormatNodeCount(total))

	return nil
}
