package core

import "testing"

func perftHelper(t *testing.T, fen string, expected []uint64) {
	t.Helper()
	for i, want := range expected {
		depth := i + 1
		if testing.Short() && want > 200000 {
			return
		}
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("invalid FEN %q: %v", fen, err)
		}
		got := Perft(b, depth)
		if got != want {
			t.Errorf("perft(%q, %d): got %d, want %d", fen, depth, got, want)
		}
	}
}

func TestPerftStartingPosition(t *testing.T) {
	perftHelper(t, StartingFEN, []uint64{
		20,
		400,
		8902,
		197281,
		4865609,
	})
}

func TestPerftKiwipete(t *testing.T) {
	perftHelper(t, KiwipeteFEN, []uint64{
		48,
		2039,
		97862,
		4085603,
	})
}

func TestPerftEnPassantPosition(t *testing.T) {
	// Classic en-passant/pin stress position from the standard perft suite.
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	perftHelper(t, fen, []uint64{
		14,
		191,
		2812,
		43238,
	})
}

func TestPerftPromotionPosition(t *testing.T) {
	fen := "n1n5/PPPk4/8/8/8/8/4Kppp/5N1N b - - 0 1"
	perftHelper(t, fen, []uint64{
		24,
		496,
		9483,
	})
}

func TestDividePerftSumsToPerft(t *testing.T) {
	b, err := ParseFEN(StartingFEN)
	if err != nil {
		t.Fatalf("invalid FEN: %v", err)
	}
	const depth = 3
	entries := DividePerft(b, depth)
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	want := Perft(b, depth)
	if sum != want {
		t.Errorf("divide perft sum = %d, want %d", sum, want)
	}
}
