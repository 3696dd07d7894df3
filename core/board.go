// board.go is the primary internal representation: one mutable Board
// value holding twelve per-piece bitboards plus a mailbox array for O(1)
// piece-at-square lookup. This hybrid mirrors Blunder's core/board.go
// design note verbatim ("a hybrid approach of bitboards and mailbox
// representations allow for cleaner, and more efficient code"), adapted
// from Blunder's 6-piece-type-plus-2-color bitboard layout to one
// bitboard per of the twelve {color,kind} piece variants, as the spec's
// data model requires.
package core

import "fmt"

// CastleRights is a 4-bit mask: bit0=white kingside, bit1=white
// queenside, bit2=black kingside, bit3=black queenside.
type CastleRights uint8

const (
	WhiteKingside CastleRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastleRights  CastleRights = 0
	AllCastleRights CastleRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// GameState reports whether the game is still in progress and, if not,
// how it ended. The losing/drawn side is whichever color is currently on
// move when the state was last recomputed (see Board.UpdateGameState).
type GameState uint8

const (
	InPlay GameState = iota
	Checkmate
	Stalemate
)

// StartingFEN is the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// KiwipeteFEN is a famously tricky position for move generator testing.
const KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// Board is the mutable chess position. Clone it with value-copy (it holds
// no pointers or slices) when the search needs a scratch copy; the hot
// path inside search instead uses in-place MakeMove/UnmakeMove.
type Board struct {
	pieces   [PieceCount]Bitboard
	occupied [2]Bitboard // occupied[White], occupied[Black]
	mailbox  [64]Piece

	sideToMove   Color
	epSquare     Square
	castleRights CastleRights

	halfMoveClock  int
	fullMoveNumber int

	hash uint64

	history History
	state   GameState
}

// NewBoard returns a board in the standard starting position.
func NewBoard() *Board {
	b, err := ParseFEN(StartingFEN)
	if err != nil {
		panic(fmt.Sprintf("core: starting FEN must parse: %v", err))
	}
	return b
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color { return b.sideToMove }

// EPSquare returns the current en-passant target square, or NoSquare.
func (b *Board) EPSquare() Square { return b.epSquare }

// CastleRights returns the current castling rights mask.
func (b *Board) CastleRights() CastleRights { return b.castleRights }

// HalfMoveClock returns the half-move clock. MakeMove increments it on
// every move; captures and pawn moves do not reset it.
func (b *Board) HalfMoveClock() int { return b.halfMoveClock }

// FullMoveNumber returns the full-move counter.
func (b *Board) FullMoveNumber() int { return b.fullMoveNumber }

// Hash returns the incrementally maintained Zobrist key.
func (b *Board) Hash() uint64 { return b.hash }

// State returns the last-computed game state; see UpdateGameState.
func (b *Board) State() GameState { return b.state }

// PieceAt returns the piece occupying sq, or NoPiece if it's empty.
func (b *Board) PieceAt(sq Square) Piece { return b.mailbox[sq] }

// PieceBitboard returns the bitboard for a single {color,kind} variant.
func (b *Board) PieceBitboard(p Piece) Bitboard { return b.pieces[p] }

// Occupied returns the union of all of c's pieces.
func (b *Board) Occupied(c Color) Bitboard { return b.occupied[c] }

// AllOccupied returns the union of every piece on the board.
func (b *Board) AllOccupied() Bitboard { return b.occupied[White] | b.occupied[Black] }

// History exposes the bounded undo stack for driver inspection (e.g. a
// GUI's move list or PGN export); core/search never needs it directly.
func (b *Board) History() *History { return &b.history }

// LastMove returns the most recently applied move, if any.
func (b *Board) LastMove() (Move, bool) {
	c, ok := b.history.Last()
	return c.Move, ok
}

// addPiece places p on sq, updating bitboards, mailbox and hash. sq must
// be empty.
func (b *Board) addPiece(p Piece, sq Square) {
	b.pieces[p] = b.pieces[p].Set(sq)
	b.occupied[p.Color()] = b.occupied[p.Color()].Set(sq)
	b.mailbox[sq] = p
	b.hash ^= pieceKey(p, sq)
}

// removePiece removes whatever piece occupies sq. sq must be occupied.
func (b *Board) removePiece(sq Square) {
	p := b.mailbox[sq]
	b.pieces[p] = b.pieces[p].Clear(sq)
	b.occupied[p.Color()] = b.occupied[p.Color()].Clear(sq)
	b.mailbox[sq] = NoPiece
	b.hash ^= pieceKey(p, sq)
}

// movePiece relocates the piece on from to the (empty) square to.
func (b *Board) movePiece(from, to Square) {
	p := b.mailbox[from]
	b.removePiece(from)
	b.addPiece(p, to)
}

func (b *Board) setEPSquare(sq Square) {
	if b.epSquare != NoSquare {
		b.hash ^= epKey(b.epSquare)
	}
	b.epSquare = sq
	if b.epSquare != NoSquare {
		b.hash ^= epKey(b.epSquare)
	}
}

func (b *Board) setCastleRights(r CastleRights) CastleRights {
	prev := b.castleRights
	if prev == r {
		return 0
	}
	b.hash ^= castleKey(prev)
	b.castleRights = r
	b.hash ^= castleKey(r)
	return prev ^ r
}

// castleRightsAfter clears whichever rights are invalidated by a piece
// having moved to or from one of the rook/king home squares.
func castleRightsAfter(rights CastleRights, from, to Square) CastleRights {
	clear := func(sq Square) {
		switch sq {
		case A1:
			rights &^= WhiteQueenside
		case H1:
			rights &^= WhiteKingside
		case E1:
			rights &^= WhiteKingside | WhiteQueenside
		case A8:
			rights &^= BlackQueenside
		case H8:
			rights &^= BlackKingside
		case E8:
			rights &^= BlackKingside | BlackQueenside
		}
	}
	clear(from)
	clear(to)
	return rights
}

// MakeMove applies m to the board and returns the undo record, or
// (nil, false) if m's piece does not belong to the side to move (the
// API-boundary illegal-move case; the generator filters this upstream so
// it never mutates state).
func (b *Board) MakeMove(m Move) (*MoveCommit, bool) {
	if m.Piece.Color() != b.sideToMove {
		return nil, false
	}
	if m.Kind == PromotionMove && m.Promotion == NoKind {
		panic("core: half-formed promotion move reached MakeMove")
	}

	commit := MoveCommit{
		Move:              m,
		PrevEPSquare:      b.epSquare,
		PrevHalfMoveClock: b.halfMoveClock,
	}

	us := b.sideToMove
	nextEP := NoSquare

	switch m.Kind {
	case DoublePush:
		b.movePiece(m.From, m.To)
		if us == White {
			nextEP = m.From + 8
		} else {
			nextEP = m.From - 8
		}
	case EnPassant:
		capSq := epCaptureSquare(m.To, us)
		b.removePiece(capSq)
		b.movePiece(m.From, m.To)
	case CastleKingside:
		kingTo, rookFrom, rookTo := castleSquares(us, true)
		b.movePiece(m.From, kingTo)
		b.movePiece(rookFrom, rookTo)
	case CastleQueenside:
		kingTo, rookFrom, rookTo := castleSquares(us, false)
		b.movePiece(m.From, kingTo)
		b.movePiece(rookFrom, rookTo)
	case PromotionMove:
		if m.Captured != NoPiece {
			b.removePiece(m.To)
		}
		b.removePiece(m.From)
		b.addPiece(MakePiece(us, m.Promotion), m.To)
	default: // Normal
		if m.Captured != NoPiece {
			b.removePiece(m.To)
		}
		b.movePiece(m.From, m.To)
	}

	b.setEPSquare(nextEP)

	b.halfMoveClock++

	if us == Black {
		b.fullMoveNumber++
	}

	afterRights := castleRightsAfter(b.castleRights, m.From, m.To)
	commit.CastleDelta = b.setCastleRights(afterRights)

	b.sideToMove = us.Other()
	b.hash ^= sideToMoveKey()

	return &commit, true
}

// UnmakeMove reverses the mutation performed by the matching MakeMove
// call. c must be the MoveCommit returned by that call.
func (b *Board) UnmakeMove(c *MoveCommit) {
	b.sideToMove = b.sideToMove.Other()
	b.hash ^= sideToMoveKey()

	us := b.sideToMove
	m := c.Move

	if us == Black {
		b.fullMoveNumber--
	}
	b.halfMoveClock = c.PrevHalfMoveClock

	b.setCastleRights(b.castleRights ^ c.CastleDelta)
	b.setEPSquare(c.PrevEPSquare)

	switch m.Kind {
	case DoublePush:
		b.movePiece(m.To, m.From)
	case EnPassant:
		capSq := epCaptureSquare(m.To, us)
		b.movePiece(m.To, m.From)
		b.addPiece(MakePiece(us.Other(), Pawn), capSq)
	case CastleKingside:
		kingTo, rookFrom, rookTo := castleSquares(us, true)
		b.movePiece(rookTo, rookFrom)
		b.movePiece(kingTo, m.From)
	case CastleQueenside:
		kingTo, rookFrom, rookTo := castleSquares(us, false)
		b.movePiece(rookTo, rookFrom)
		b.movePiece(kingTo, m.From)
	case PromotionMove:
		b.removePiece(m.To)
		if m.Captured != NoPiece {
			b.addPiece(m.Captured, m.To)
		}
		b.addPiece(MakePiece(us, Pawn), m.From)
	default: // Normal
		b.movePiece(m.To, m.From)
		if m.Captured != NoPiece {
			b.addPiece(m.Captured, m.To)
		}
	}
}

// ApplyMove makes m and, if legal, pushes the undo record onto the
// board's history stack for later Undo.
func (b *Board) ApplyMove(m Move) bool {
	commit, ok := b.MakeMove(m)
	if !ok {
		return false
	}
	b.history.Push(*commit)
	return true
}

// Undo reverses the most recently applied move. It reports false if the
// history is empty.
func (b *Board) Undo() bool {
	if b.history.Len() == 0 {
		return false
	}
	c := b.history.Pop()
	b.UnmakeMove(&c)
	return true
}

func epCaptureSquare(to Square, capturingColor Color) Square {
	if capturingColor == White {
		return to - 8
	}
	return to + 8
}

// castleSquares returns the king's destination and the rook's from/to
// squares for a castle of the given side, per color.
func castleSquares(c Color, kingside bool) (kingTo, rookFrom, rookTo Square) {
	if c == White {
		if kingside {
			return G1, H1, F1
		}
		return C1, A1, D1
	}
	if kingside {
		return G8, H8, F8
	}
	return C8, A8, D8
}

// InCheck reports whether the side to move's king is currently attacked.
func (b *Board) InCheck() bool {
	return b.kingInCheck(b.sideToMove)
}

func (b *Board) kingInCheck(c Color) bool {
	kingBB := b.pieces[MakePiece(c, King)]
	if kingBB.Empty() {
		return false
	}
	return IsSquareAttacked(b, kingBB.LSB(), c.Other())
}

// UpdateGameState recomputes State() from the active side's legal-move
// count and check status. Callers invoke this after ApplyMove when they
// care about checkmate/stalemate detection (the search itself only needs
// the legal-move count, not the State field).
func (b *Board) UpdateGameState() {
	moves := GenerateMoves(b, false)
	switch {
	case len(moves) > 0:
		b.state = InPlay
	case b.InCheck():
		b.state = Checkmate
	default:
		b.state = Stalemate
	}
}
