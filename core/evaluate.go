// evaluate.go scores a position from the side-to-move's perspective,
// following the material-plus-piece-square-table shape of Blunder's
// core/evaluate.go, with piece-square tables mirrored for Black via
// Square.Mirror rather than Blunder's separate white/black table copies.
package core

// Material values in centipawns.
var pieceValues = [KindCount]int{
	Pawn:   100,
	Knight: 300,
	Bishop: 350,
	Rook:   500,
	Queen:  1000,
	King:   10000,
}

// pieceSquareTables[kind][sq] is the positional bonus for a White piece of
// that kind on sq; Black's bonus is read from the mirrored square.
var pieceSquareTables = [KindCount][64]int{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		50, 50, 50, 50, 50, 50, 50, 50,
		10, 10, 20, 30, 30, 20, 10, 10,
		5, 5, 10, 25, 25, 10, 5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, -5, -10, 0, 0, -10, -5, 5,
		5, 10, 10, -20, -20, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	Rook: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		0, 0, 0, 5, 5, 0, 0, 0,
	},
	// Queen has no entry: its row stays all zero.
	King: {
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		20, 20, 0, 0, 0, 0, 20, 20,
		20, 30, 10, 0, 0, 10, 30, 20,
	},
}

func pieceSquareValue(p Piece, sq Square) int {
	if p.Color() == Black {
		sq = sq.Mirror()
	}
	return pieceSquareTables[p.Kind()][sq]
}

// Evaluate scores b from the side-to-move's perspective: positive means
// the side to move stands better.
func Evaluate(b *Board) int {
	score := 0
	for p := Piece(0); p < Piece(PieceCount); p++ {
		bb := b.pieces[p]
		value := pieceValues[p.Kind()]
		for bb != 0 {
			sq := bb.PopLSB()
			contribution := value + pieceSquareValue(p, sq)
			if p.Color() == White {
				score += contribution
			} else {
				score -= contribution
			}
		}
	}
	if b.sideToMove == Black {
		score = -score
	}
	return score
}

// mvvLVAScore returns Most-Valuable-Victim/Least-Valuable-Aggressor
// ordering score for a capturing move: victim value dominates, attacker
// value breaks ties in the attacker's favor (a pawn taking a queen orders
// ahead of a queen taking a queen).
func mvvLVAScore(m Move) int {
	if !m.IsCapture() {
		return 0
	}
	victim := m.Captured
	if m.Kind == EnPassant {
		victim = MakePiece(m.Piece.Color().Other(), Pawn)
	}
	return pieceValues[victim.Kind()]*16 - pieceValues[m.Piece.Kind()]
}
