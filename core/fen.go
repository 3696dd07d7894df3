// fen.go parses and serializes Forsyth-Edwards Notation, following the
// six-field walk in Blunder's core/board.go LoadFEN, adapted to return a
// typed *FENParseError instead of panicking on malformed external input.
package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseFEN builds a Board from a FEN string. It reports a *FENParseError
// if any of the six space-separated fields is malformed.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fenError(fen, "fields", fmt.Sprintf("want 6 space-separated fields, got %d", len(fields)))
	}

	b := &Board{}
	for i := range b.mailbox {
		b.mailbox[i] = NoPiece
	}

	if err := b.parsePlacement(fen, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fenError(fen, "side to move", fmt.Sprintf("want 'w' or 'b', got %q", fields[1]))
	}

	rights, err := parseCastleRights(fen, fields[2])
	if err != nil {
		return nil, err
	}
	b.castleRights = rights

	if fields[3] == "-" {
		b.epSquare = NoSquare
	} else {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fenError(fen, "en passant square", err.Error())
		}
		b.epSquare = sq
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return nil, fenError(fen, "halfmove clock", fmt.Sprintf("want a non-negative integer, got %q", fields[4]))
	}
	b.halfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		return nil, fenError(fen, "fullmove number", fmt.Sprintf("want a positive integer, got %q", fields[5]))
	}
	b.fullMoveNumber = fullMove

	b.hash = ZobristHash(b)
	b.history.top = -1
	b.state = InPlay

	return b, nil
}

func (b *Board) parsePlacement(fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenError(fen, "piece placement", fmt.Sprintf("want 8 ranks, got %d", len(ranks)))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p, ok := PieceFromFENSymbol(ch)
			if !ok {
				return fenError(fen, "piece placement", fmt.Sprintf("unrecognized symbol %q", ch))
			}
			if file >= 8 {
				return fenError(fen, "piece placement", fmt.Sprintf("rank %d overflows 8 files", rank+1))
			}
			sq := MakeSquare(file, rank)
			b.pieces[p] = b.pieces[p].Set(sq)
			b.occupied[p.Color()] = b.occupied[p.Color()].Set(sq)
			b.mailbox[sq] = p
			file++
		}
		if file != 8 {
			return fenError(fen, "piece placement", fmt.Sprintf("rank %d has %d files, want 8", rank+1, file))
		}
	}
	return nil
}

func parseCastleRights(fen, field string) (CastleRights, error) {
	if field == "-" {
		return NoCastleRights, nil
	}
	var rights CastleRights
	for _, ch := range []byte(field) {
		switch ch {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		default:
			return 0, fenError(fen, "castling rights", fmt.Sprintf("unrecognized symbol %q", ch))
		}
	}
	return rights, nil
}

// FEN serializes the board back to Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.mailbox[MakeSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteByte(p.FENSymbol())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if rank != 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.castleRights == NoCastleRights {
		sb.WriteByte('-')
	} else {
		if b.castleRights&WhiteKingside != 0 {
			sb.WriteByte('K')
		}
		if b.castleRights&WhiteQueenside != 0 {
			sb.WriteByte('Q')
		}
		if b.castleRights&BlackKingside != 0 {
			sb.WriteByte('k')
		}
		if b.castleRights&BlackQueenside != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())

	fmt.Fprintf(&sb, " %d %d", b.halfMoveClock, b.fullMoveNumber)

	return sb.String()
}
