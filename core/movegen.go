// movegen.go generates legal moves from a Board. It follows Blunder's
// core/movegen.go two-stage shape (generate pseudo-legal candidates per
// piece type, then filter for legality) but replaces Blunder's explicit
// pin-detection/check-evasion special cases with the simpler make/
// IsSquareAttacked/unmake filter the spec calls for: a pseudo-legal move
// is legal iff, after playing it, the mover's own king is not attacked.
// Sliding-piece attacks come from the magic bitboard tables in attacks.go
// rather than Blunder's hyperbola quintessence.
package core

// GenerateMoves returns every legal move available to the side to move.
// If onlyCaptures is true, only captures (including en passant and
// capture-promotions) are generated, for use by quiescence search.
func GenerateMoves(b *Board, onlyCaptures bool) MoveList {
	pseudo := generatePseudoLegalMoves(b, onlyCaptures)
	legal := make(MoveList, 0, len(pseudo))
	for _, m := range pseudo {
		commit, ok := b.MakeMove(m)
		if !ok {
			continue
		}
		if !b.kingInCheck(m.Piece.Color()) {
			legal = append(legal, m)
		}
		b.UnmakeMove(commit)
	}
	return legal
}

// GeneratePieceMoves returns the legal moves available to the single
// piece occupying from, a convenience used by UIs that want to highlight
// one piece's destinations rather than walking the full move list.
func GeneratePieceMoves(b *Board, from Square) MoveList {
	all := GenerateMoves(b, false)
	out := make(MoveList, 0)
	for _, m := range all {
		if m.From == from {
			out = append(out, m)
		}
	}
	return out
}

func generatePseudoLegalMoves(b *Board, onlyCaptures bool) MoveList {
	us := b.sideToMove
	moves := make(MoveList, 0, 64)

	moves = genPawnMoves(b, us, onlyCaptures, moves)
	moves = genJumpMoves(b, us, Knight, KnightAttacks, onlyCaptures, moves)
	moves = genSliderMoves(b, us, Bishop, onlyCaptures, moves)
	moves = genSliderMoves(b, us, Rook, onlyCaptures, moves)
	moves = genSliderMoves(b, us, Queen, onlyCaptures, moves)
	moves = genJumpMoves(b, us, King, KingAttacks, onlyCaptures, moves)
	if !onlyCaptures {
		moves = genCastleMoves(b, us, moves)
	}

	return moves
}

func genJumpMoves(b *Board, us Color, kind Kind, attacksOf func(Square) Bitboard, onlyCaptures bool, moves MoveList) MoveList {
	ownPiece := MakePiece(us, kind)
	bb := b.pieces[ownPiece]
	enemy := b.occupied[us.Other()]
	friendly := b.occupied[us]

	for bb != 0 {
		from := bb.PopLSB()
		targets := attacksOf(from) &^ friendly
		if onlyCaptures {
			targets &= enemy
		}
		for targets != 0 {
			to := targets.PopLSB()
			moves = append(moves, Move{
				From:     from,
				To:       to,
				Piece:    ownPiece,
				Captured: b.mailbox[to],
				Kind:     Normal,
			})
		}
	}
	return moves
}

func genSliderMoves(b *Board, us Color, kind Kind, onlyCaptures bool, moves MoveList) MoveList {
	ownPiece := MakePiece(us, kind)
	bb := b.pieces[ownPiece]
	occ := b.AllOccupied()
	enemy := b.occupied[us.Other()]
	friendly := b.occupied[us]

	for bb != 0 {
		from := bb.PopLSB()
		var targets Bitboard
		switch kind {
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Rook:
			targets = RookAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		}
		targets &^= friendly
		if onlyCaptures {
			targets &= enemy
		}
		for targets != 0 {
			to := targets.PopLSB()
			moves = append(moves, Move{
				From:     from,
				To:       to,
				Piece:    ownPiece,
				Captured: b.mailbox[to],
				Kind:     Normal,
			})
		}
	}
	return moves
}

var promotionKinds = [4]Kind{Queen, Rook, Bishop, Knight}

func genPawnMoves(b *Board, us Color, onlyCaptures bool, moves MoveList) MoveList {
	ownPawn := MakePiece(us, Pawn)
	bb := b.pieces[ownPawn]
	occ := b.AllOccupied()
	enemy := b.occupied[us.Other()]

	var pushDelta int
	var startRank, promoRank int
	if us == White {
		pushDelta, startRank, promoRank = 8, 1, 7
	} else {
		pushDelta, startRank, promoRank = -8, 6, 0
	}

	for bb != 0 {
		from := bb.PopLSB()
		rank := from.Rank()

		if !onlyCaptures {
			oneStep := Square(int(from) + pushDelta)
			if !occ.Test(oneStep) {
				if oneStep.Rank() == promoRank {
					moves = appendPromotions(moves, from, oneStep, ownPawn, NoPiece)
				} else {
					moves = append(moves, Move{From: from, To: oneStep, Piece: ownPawn, Captured: NoPiece, Kind: Normal})
					if rank == startRank {
						twoStep := Square(int(from) + 2*pushDelta)
						if !occ.Test(twoStep) {
							moves = append(moves, Move{From: from, To: twoStep, Piece: ownPawn, Captured: NoPiece, Kind: DoublePush})
						}
					}
				}
			}
		}

		attacks := PawnAttacks(us, from)
		captures := attacks & enemy
		for captures != 0 {
			to := captures.PopLSB()
			if to.Rank() == promoRank {
				moves = appendPromotions(moves, from, to, ownPawn, b.mailbox[to])
			} else {
				moves = append(moves, Move{From: from, To: to, Piece: ownPawn, Captured: b.mailbox[to], Kind: Normal})
			}
		}

		if b.epSquare != NoSquare && attacks.Test(b.epSquare) {
			moves = append(moves, Move{
				From:     from,
				To:       b.epSquare,
				Piece:    ownPawn,
				Captured: MakePiece(us.Other(), Pawn),
				Kind:     EnPassant,
			})
		}
	}
	return moves
}

func appendPromotions(moves MoveList, from, to Square, piece, captured Piece) MoveList {
	for _, k := range promotionKinds {
		moves = append(moves, Move{
			From:      from,
			To:        to,
			Piece:     piece,
			Captured:  captured,
			Kind:      PromotionMove,
			Promotion: k,
		})
	}
	return moves
}

func genCastleMoves(b *Board, us Color, moves MoveList) MoveList {
	occ := b.AllOccupied()
	them := us.Other()

	tryCastle := func(kind MoveKind, right CastleRights, kingTo, rookFrom Square, betweenSquares []Square, kingPassSquares []Square) MoveList {
		if b.castleRights&right == 0 {
			return moves
		}
		for _, sq := range betweenSquares {
			if occ.Test(sq) {
				return moves
			}
		}
		for _, sq := range kingPassSquares {
			if IsSquareAttacked(b, sq, them) {
				return moves
			}
		}
		kingFrom := b.pieces[MakePiece(us, King)].LSB()
		moves = append(moves, Move{
			From:     kingFrom,
			To:       kingTo,
			Piece:    MakePiece(us, King),
			Captured: NoPiece,
			Kind:     kind,
		})
		return moves
	}

	if us == White {
		moves = tryCastle(CastleKingside, WhiteKingside, G1, H1, []Square{F1, G1}, []Square{E1, F1, G1})
		moves = tryCastle(CastleQueenside, WhiteQueenside, C1, A1, []Square{B1, C1, D1}, []Square{E1, D1, C1})
	} else {
		moves = tryCastle(CastleKingside, BlackKingside, G8, H8, []Square{F8, G8}, []Square{E8, F8, G8})
		moves = tryCastle(CastleQueenside, BlackQueenside, C8, A8, []Square{B8, C8, D8}, []Square{E8, D8, C8})
	}
	return moves
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by.
func IsSquareAttacked(b *Board, sq Square, by Color) bool {
	occ := b.AllOccupied()

	if PawnAttacks(by.Other(), sq)&b.pieces[MakePiece(by, Pawn)] != 0 {
		return true
	}
	if KnightAttacks(sq)&b.pieces[MakePiece(by, Knight)] != 0 {
		return true
	}
	if KingAttacks(sq)&b.pieces[MakePiece(by, King)] != 0 {
		return true
	}
	bishopsQueens := b.pieces[MakePiece(by, Bishop)] | b.pieces[MakePiece(by, Queen)]
	if BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := b.pieces[MakePiece(by, Rook)] | b.pieces[MakePiece(by, Queen)]
	if RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}
