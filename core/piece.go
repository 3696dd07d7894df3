package core

import "fmt"

// Kind is a piece type irrespective of color.
type Kind uint8

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	KindCount = int(King) + 1

	// NoKind marks a half-formed Promotion move still awaiting a UI
	// piece choice; it must never reach Board.MakeMove.
	NoKind Kind = 0xFF
)

func (k Kind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// Piece is one of the twelve {color, kind} variants, each backed by its own
// bitboard in the Board. NoPiece is the mailbox sentinel for an empty square.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing

	PieceCount = int(BlackKing) + 1
	NoPiece    = Piece(0xFF)
)

// MakePiece builds a Piece from its color and kind.
func MakePiece(c Color, k Kind) Piece {
	return Piece(int(c)*KindCount + int(k))
}

// Color returns the piece's owner.
func (p Piece) Color() Color {
	if p >= 6 {
		return Black
	}
	return White
}

// Kind returns the piece's type, irrespective of color.
func (p Piece) Kind() Kind {
	return Kind(int(p) % KindCount)
}

// Value returns the piece's material value in centipawns.
func (p Piece) Value() int {
	return pieceValues[p.Kind()]
}

// FENSymbol returns the single-character FEN symbol for the piece
// (uppercase for White, lowercase for Black).
func (p Piece) FENSymbol() byte {
	sym := [KindCount]byte{'P', 'N', 'B', 'R', 'Q', 'K'}[p.Kind()]
	if p.Color() == Black {
		sym += 'a' - 'A'
	}
	return sym
}

func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	return fmt.Sprintf("%c", p.FENSymbol())
}

// PieceFromFENSymbol returns the Piece for a FEN piece letter, or
// (NoPiece, false) if the symbol isn't a recognized piece letter.
func PieceFromFENSymbol(sym byte) (Piece, bool) {
	var kind Kind
	switch sym | 0x20 { // lowercase
	case 'p':
		kind = Pawn
	case 'n':
		kind = Knight
	case 'b':
		kind = Bishop
	case 'r':
		kind = Rook
	case 'q':
		kind = Queen
	case 'k':
		kind = King
	default:
		return NoPiece, false
	}
	color := White
	if sym >= 'a' && sym <= 'z' {
		color = Black
	}
	return MakePiece(color, kind), true
}
