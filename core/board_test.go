package core

import "testing"

func TestNewBoardStartingPosition(t *testing.T) {
	b := NewBoard()
	if b.SideToMove() != White {
		t.Errorf("side to move = %v, want White", b.SideToMove())
	}
	if b.CastleRights() != AllCastleRights {
		t.Errorf("castle rights = %v, want AllCastleRights", b.CastleRights())
	}
	if got := b.PieceAt(E1); got != WhiteKing {
		t.Errorf("E1 = %v, want WhiteKing", got)
	}
	if got := b.PieceAt(E8); got != BlackKing {
		t.Errorf("E8 = %v, want BlackKing", got)
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	b, err := ParseFEN(KiwipeteFEN)
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}

	before := *b
	for _, m := range GenerateMoves(b, false) {
		commit, ok := b.MakeMove(m)
		if !ok {
			t.Fatalf("legal move %v rejected by MakeMove", m)
		}
		b.UnmakeMove(commit)

		if *b != before {
			t.Fatalf("board state diverged after make/unmake of %v", m)
		}
		if b.Hash() != ZobristHash(b) {
			t.Fatalf("hash drifted after make/unmake of %v", m)
		}
	}
}

func TestCastlingRightsRevokedByRookCapture(t *testing.T) {
	// Black rook can capture on a1/h1, which should strip White's rights
	// on that side without touching the other side.
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}

	m := Move{From: A8, To: A1, Piece: BlackRook, Captured: WhiteRook, Kind: Normal}
	commit, ok := b.MakeMove(m)
	if !ok {
		t.Fatal("expected move to be accepted")
	}
	if b.CastleRights()&WhiteQueenside != 0 {
		t.Error("white queenside rights should be revoked after rook capture on a1")
	}
	if b.CastleRights()&WhiteKingside == 0 {
		t.Error("white kingside rights should survive")
	}
	b.UnmakeMove(commit)
	if b.CastleRights() != (WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside) {
		t.Error("castle rights not restored by UnmakeMove")
	}
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	b, err := ParseFEN("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}

	m := Move{From: E5, To: F6, Piece: WhitePawn, Captured: BlackPawn, Kind: EnPassant}
	commit, ok := b.MakeMove(m)
	if !ok {
		t.Fatal("expected en passant capture to be accepted")
	}
	if b.PieceAt(F5) != NoPiece {
		t.Error("captured pawn on f5 should have been removed")
	}
	if b.PieceAt(F6) != WhitePawn {
		t.Error("capturing pawn should be on f6")
	}
	b.UnmakeMove(commit)
	if b.PieceAt(F5) != BlackPawn {
		t.Error("en passant unmake should restore the captured pawn")
	}
	if b.PieceAt(E5) != WhitePawn {
		t.Error("en passant unmake should restore the capturing pawn")
	}
}

func TestPromotionRequiresAKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MakeMove to panic on a half-formed promotion")
		}
	}()
	b, err := ParseFEN("8/4P3/8/8/8/8/8/4K2k w - - 0 1")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	m := Move{From: E7, To: E8, Piece: WhitePawn, Kind: PromotionMove, Promotion: NoKind}
	b.MakeMove(m)
}

func TestApplyAndUndoHistory(t *testing.T) {
	b := NewBoard()
	m, ok := ParseMove(b, "e2e4")
	if !ok {
		t.Fatal("e2e4 should be legal from the starting position")
	}
	if !b.ApplyMove(m) {
		t.Fatal("ApplyMove should accept a legal move")
	}
	if b.History().Len() != 1 {
		t.Fatalf("history length = %d, want 1", b.History().Len())
	}
	last, ok := b.LastMove()
	if !ok || last != m {
		t.Fatalf("LastMove() = %v, %v; want %v, true", last, ok, m)
	}
	if !b.Undo() {
		t.Fatal("Undo should succeed with one move on the stack")
	}
	if b.History().Len() != 0 {
		t.Error("history should be empty after undo")
	}
	if b.Undo() {
		t.Error("Undo on an empty history should report false")
	}
}
