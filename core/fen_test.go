package core

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartingFEN,
		KiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q, want %q", got, fen)
		}
	}
}

func TestParseFENRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",     // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",   // bad side to move
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w ZZZZ - 0 1",   // bad castle rights
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",  // bad ep square
		"rnbqkbnr/pppppppp/7/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",   // short rank
		"rnbqkbXr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",   // bad symbol
	}
	for _, fen := range cases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected an error, got nil", fen)
		} else if _, ok := err.(*FENParseError); !ok {
			t.Errorf("ParseFEN(%q): error type = %T, want *FENParseError", fen, err)
		}
	}
}

func TestParseFENPlacesPieces(t *testing.T) {
	b, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	cases := []struct {
		sq   Square
		want Piece
	}{
		{A1, WhiteRook}, {E1, WhiteKing}, {H1, WhiteRook},
		{D8, BlackQueen}, {E8, BlackKing},
		{E4, NoPiece},
	}
	for _, c := range cases {
		if got := b.PieceAt(c.sq); got != c.want {
			t.Errorf("PieceAt(%v) = %v, want %v", c.sq, got, c.want)
		}
	}
}
