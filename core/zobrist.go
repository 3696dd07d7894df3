// zobrist.go builds the random key tables used for incremental position
// hashing, following zurichess's engine/zobrist.go: a PRNG seeded with a
// fixed constant populates per-(piece,square), per-ep-square,
// per-castle-mask and per-side-to-move keys once at first use, so that
// hashes (and therefore transposition-table behavior) are reproducible
// across runs.
package core

import (
	"math/rand"
	"sync"
)

const zobristSeed = 1070372

var (
	pieceKeys   [PieceCount][64]uint64
	epKeys      [64]uint64
	castleKeys  [16]uint64
	sideKey     uint64
	zobristOnce sync.Once
)

func initZobristKeys() {
	zobristOnce.Do(func() {
		rng := rand.New(rand.NewSource(zobristSeed))
		for p := 0; p < PieceCount; p++ {
			for sq := 0; sq < 64; sq++ {
				pieceKeys[p][sq] = rng.Uint64()
			}
		}
		for sq := 0; sq < 64; sq++ {
			epKeys[sq] = rng.Uint64()
		}
		for mask := 0; mask < 16; mask++ {
			castleKeys[mask] = rng.Uint64()
		}
		sideKey = rng.Uint64()
	})
}

func pieceKey(p Piece, sq Square) uint64 {
	initZobristKeys()
	return pieceKeys[p][sq]
}

func epKey(sq Square) uint64 {
	initZobristKeys()
	return epKeys[sq]
}

func castleKey(rights CastleRights) uint64 {
	initZobristKeys()
	return castleKeys[rights]
}

func sideToMoveKey() uint64 {
	initZobristKeys()
	return sideKey
}

// ZobristHash recomputes a board's Zobrist key from scratch, by XORing
// together the piece keys of every occupied square, the en-passant key (if
// an ep target is set), the castle-rights key, and the side-to-move key.
// Board.Hash maintains this value incrementally; ZobristHash exists so
// callers (and tests) can verify the incremental value never drifts.
func ZobristHash(b *Board) uint64 {
	initZobristKeys()
	var h uint64
	for p := Piece(0); p < Piece(PieceCount); p++ {
		bb := b.pieces[p]
		for bb != 0 {
			sq := bb.PopLSB()
			h ^= pieceKey(p, sq)
		}
	}
	if b.epSquare != NoSquare {
		h ^= epKey(b.epSquare)
	}
	h ^= castleKey(b.castleRights)
	if b.sideToMove == Black {
		h ^= sideToMoveKey()
	}
	return h
}
