package core

import "testing"

func TestEvaluateStartingPositionIsSymmetric(t *testing.T) {
	b := NewBoard()
	if got := Evaluate(b); got != 0 {
		t.Errorf("Evaluate(starting position) = %d, want 0", got)
	}
}

func TestEvaluateFavorsExtraMaterial(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	if got := Evaluate(b); got < pieceValues[Queen] {
		t.Errorf("Evaluate(white up a queen) = %d, want >= %d", got, pieceValues[Queen])
	}
}

func TestEvaluateFlipsWithSideToMove(t *testing.T) {
	white, err := ParseFEN("4k3/8/8/8/8/8/4Q3/4K3 w - - 0 1")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	black, err := ParseFEN("4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1")
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	if Evaluate(white) != -Evaluate(black) {
		t.Errorf("Evaluate should negate across side to move: white=%d black=%d", Evaluate(white), Evaluate(black))
	}
}

func TestMVVLVAPrefersHigherValueVictim(t *testing.T) {
	pawnTakesQueen := Move{Piece: WhitePawn, Captured: BlackQueen, Kind: Normal}
	queenTakesPawn := Move{Piece: WhiteQueen, Captured: BlackPawn, Kind: Normal}
	if mvvLVAScore(pawnTakesQueen) <= mvvLVAScore(queenTakesPawn) {
		t.Error("pawn-takes-queen should order ahead of queen-takes-pawn")
	}
}

func TestMVVLVAQuietMoveScoresZero(t *testing.T) {
	quiet := Move{Piece: WhiteKnight, Captured: NoPiece, Kind: Normal}
	if mvvLVAScore(quiet) != 0 {
		t.Errorf("mvvLVAScore(quiet move) = %d, want 0", mvvLVAScore(quiet))
	}
}
