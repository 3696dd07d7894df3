package core

import "fmt"

// Square is a board square, 0..63, rank-major from A1=0 to H8=63:
// file = s % 8, rank = s / 8.
type Square uint8

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63

	NoSquare Square = 64
)

// File returns the square's file, 0 (a) to 7 (h).
func (s Square) File() int { return int(s) % 8 }

// Rank returns the square's rank, 0 (rank 1) to 7 (rank 8).
func (s Square) Rank() int { return int(s) / 8 }

// Mirror reflects the square about the board's horizontal midline:
// mirror(file, rank) = (file, 7-rank). Used to reuse White piece-square
// tables for Black.
func (s Square) Mirror() Square {
	return Square(s.File() + (7-s.Rank())*8)
}

// Bitboard returns the single-bit Bitboard for this square.
func (s Square) Bitboard() Bitboard {
	return Bitboard(1) << uint(s)
}

func (s Square) String() string {
	if s >= 64 {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// MakeSquare builds a Square from a file and rank, each 0..7.
func MakeSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses two-character algebraic notation ("e4") into a Square.
// Every caller that constructs a Square from untrusted input must go
// through this validating constructor.
func ParseSquare(coord string) (Square, error) {
	if len(coord) != 2 {
		return NoSquare, fmt.Errorf("square %q: want 2 characters", coord)
	}
	file := coord[0]
	rank := coord[1]
	if file < 'a' || file > 'h' {
		return NoSquare, fmt.Errorf("square %q: invalid file %q", coord, file)
	}
	if rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("square %q: invalid rank %q", coord, rank)
	}
	return MakeSquare(int(file-'a'), int(rank-'1')), nil
}
