// utils.go converts between coordinate-notation move strings and Move
// values, the way Blunder's core/utils.go converts to and from UCI move
// strings, adapted to this package's Move/Board types.
package core

import "fmt"

// ParseMove finds the legal move in the current position matching the
// coordinate-notation string s (e.g. "e2e4", "e7e8q"). It reports false
// if s is malformed or names no legal move.
func ParseMove(b *Board, s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, false
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, false
	}

	var promotion Kind = NoKind
	if len(s) == 5 {
		p, ok := PieceFromFENSymbol(s[4])
		if !ok {
			return Move{}, false
		}
		promotion = p.Kind()
	}

	for _, m := range GenerateMoves(b, false) {
		if m.From != from || m.To != to {
			continue
		}
		if m.Kind == PromotionMove && m.Promotion != promotion {
			continue
		}
		return m, true
	}
	return Move{}, false
}

// MustParseMove is like ParseMove but panics on failure; it exists for
// test fixtures and the perft CLI, which treat a bad move string in a
// trusted move list as a programmer error, not recoverable input.
func MustParseMove(b *Board, s string) Move {
	m, ok := ParseMove(b, s)
	if !ok {
		panic(fmt.Sprintf("core: %q is not a legal move in position %q", s, b.FEN()))
	}
	return m
}
