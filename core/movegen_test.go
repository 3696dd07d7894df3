package core

import "testing"

func TestGenerateMovesStartingPositionCount(t *testing.T) {
	b := NewBoard()
	moves := GenerateMoves(b, false)
	if len(moves) != 20 {
		t.Errorf("legal moves from the starting position = %d, want 20", len(moves))
	}
}

func TestGenerateMovesOnlyCapturesIsASubset(t *testing.T) {
	b, err := ParseFEN(KiwipeteFEN)
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	all := GenerateMoves(b, false)
	captures := GenerateMoves(b, true)

	allSet := make(map[Move]bool, len(all))
	for _, m := range all {
		allSet[m] = true
	}
	for _, m := range captures {
		if !m.IsCapture() {
			t.Errorf("capture-only generation produced a non-capture: %v", m)
		}
		if !allSet[m] {
			t.Errorf("capture %v not present in the full legal move list", m)
		}
	}
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	// White king would pass through f1, attacked by the black rook on f8.
	b, err := ParseFEN("5r1k/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	for _, m := range GenerateMoves(b, false) {
		if m.Kind == CastleKingside {
			t.Error("kingside castle should be illegal while passing through an attacked square")
		}
	}
}

func TestCastlingAllowedWhenClear(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	found := false
	for _, m := range GenerateMoves(b, false) {
		if m.Kind == CastleKingside {
			found = true
		}
	}
	if !found {
		t.Error("kingside castle should be legal with a clear, unattacked path")
	}
}

func TestPinnedPieceCannotExposeKing(t *testing.T) {
	// The black rook on e8 pins the white knight on e3 to the king on e1.
	b, err := ParseFEN("4r3/8/8/8/8/4N3/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	for _, m := range GenerateMoves(b, false) {
		if m.Piece == WhiteKnight && m.To != m.From {
			// Every knight move leaves the e-file and exposes the king
			// to the rook, so the knight must have no legal moves at all.
			t.Errorf("pinned knight should have no legal moves, found %v", m)
		}
	}
}

func TestIsSquareAttacked(t *testing.T) {
	b := NewBoard()
	if IsSquareAttacked(b, E4, Black) {
		t.Error("e4 should not be attacked by Black from the starting position")
	}
	if !IsSquareAttacked(b, A2, White) {
		t.Error("a2 should be attacked by White's own rook on a1")
	}
}
