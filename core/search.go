// search.go implements alpha-beta negamax with iterative deepening,
// quiescence search, a triangular principal-variation table, killer
// moves, the history heuristic and a transposition table. The Searcher
// struct and its tt/killers/history fields follow Blunder's core/search.go
// (ttable/killerMoves/searchHistory there); the triangular PV table (pvTable/pvLength indexed by
// ply) and MVV-LVA-first move ordering are additions Blunder's version
// didn't have, built the way zurichess's engine/pv.go frames PV tracking
// but using the simpler fixed triangular array instead of a hash table.
package core

import (
	"context"
)

const (
	maxPly = 64

	infScore  = 1 << 20
	mateScore = infScore - maxPly

	ttSizeExp = 20 // 2^20 entries
	ttSize    = 1 << ttSizeExp
	ttMask    = ttSize - 1

	// DefaultQuiescenceDepth bounds how many plies quiescence search may
	// extend past the main search horizon, the same role Blunder's
	// QuiesenceSearchDepth constant plays.
	DefaultQuiescenceDepth = 3
)

type boundKind uint8

const (
	boundExact boundKind = iota
	boundLower
	boundUpper
)

type ttEntry struct {
	key   uint64
	depth int
	score int
	bound boundKind
	move  Move
	valid bool
}

// Searcher holds all per-search mutable state: the transposition table,
// killer/history move-ordering tables and the triangular PV table. A
// Searcher is reusable across searches on the same board; create a new
// one to discard the transposition table.
type Searcher struct {
	board *Board

	tt []ttEntry

	killers [maxPly][2]Move
	history [PieceCount][64]int

	pvTable  [maxPly][maxPly]Move
	pvLength [maxPly]int

	qDepth int

	nodes uint64
}

// NewSearcher returns a Searcher bound to b with a fresh transposition
// table. qDepth caps how many plies quiescence search may extend beyond
// the main search horizon; pass DefaultQuiescenceDepth absent a reason
// to tune it.
func NewSearcher(b *Board, qDepth int) *Searcher {
	return &Searcher{
		board:  b,
		tt:     make([]ttEntry, ttSize),
		qDepth: qDepth,
	}
}

// Nodes returns the number of nodes visited by the most recent Search call.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Search runs iterative deepening up to maxDepth plies, returning the
// best move found and its score from the side-to-move's perspective. It
// stops early, returning the best complete iteration's result, if ctx is
// canceled.
func (s *Searcher) Search(ctx context.Context, maxDepth int) (Move, int) {
	s.nodes = 0
	var bestMove Move
	var bestScore int

	for depth := 1; depth <= maxDepth; depth++ {
		for p := range s.pvLength {
			s.pvLength[p] = 0
		}

		score := s.negamax(ctx, -infScore, infScore, depth, 0)
		if ctx.Err() != nil {
			break
		}

		bestScore = score
		if s.pvLength[0] > 0 {
			bestMove = s.pvTable[0][0]
		}
	}

	return bestMove, bestScore
}

// recordPV writes move as ply's PV move and appends the already-resolved
// continuation from ply+1, the standard triangular-table splice: row ply
// keeps its own move followed by everything row ply+1 had found.
func (s *Searcher) recordPV(ply int, move Move) {
	s.pvTable[ply][ply] = move
	for next := ply + 1; next < s.pvLength[ply+1]; next++ {
		s.pvTable[ply][next] = s.pvTable[ply+1][next]
	}
	s.pvLength[ply] = s.pvLength[ply+1]
}

func (s *Searcher) negamax(ctx context.Context, alpha, beta, depth, ply int) int {
	s.pvLength[ply] = ply

	if ctx.Err() != nil {
		return 0
	}
	s.nodes++
	if s.nodes&2047 == 0 && ctx.Err() != nil {
		return 0
	}

	if depth <= 0 {
		return s.quiescence(ctx, alpha, beta, s.qDepth, ply)
	}

	alphaOrig := alpha

	hash := s.board.Hash()
	entry := &s.tt[hash&ttMask]
	if entry.valid && entry.key == hash && entry.depth >= depth && ply > 0 {
		switch entry.bound {
		case boundExact:
			s.recordPV(ply, entry.move)
			return entry.score
		case boundLower:
			if entry.score > alpha {
				alpha = entry.score
			}
		case boundUpper:
			if entry.score < beta {
				beta = entry.score
			}
		}
		if alpha >= beta {
			return entry.score
		}
	}

	inCheck := s.board.InCheck()
	moves := GenerateMoves(s.board, false)
	if len(moves) == 0 {
		if inCheck {
			return -mateScore + ply
		}
		return 0
	}

	var pvMove Move
	if entry.valid && entry.key == hash {
		pvMove = entry.move
	}
	s.orderMoves(moves, ply, pvMove)

	bestScore := -infScore
	var bestMove Move

	for _, m := range moves {
		commit, ok := s.board.MakeMove(m)
		if !ok {
			continue
		}
		score := -s.negamax(ctx, -beta, -alpha, depth-1, ply+1)
		s.board.UnmakeMove(commit)

		if ctx.Err() != nil {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			s.recordPV(ply, m)
		}

		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if m.IsQuiet() {
				s.killers[ply][1] = s.killers[ply][0]
				s.killers[ply][0] = m
				s.history[m.Piece][m.To] += depth * depth
			}
			break
		}
	}

	var bound boundKind
	switch {
	case bestScore <= alphaOrig:
		bound = boundUpper
	case bestScore >= beta:
		bound = boundLower
	default:
		bound = boundExact
	}
	*entry = ttEntry{key: hash, depth: depth, score: bestScore, bound: bound, move: bestMove, valid: true}

	return bestScore
}

func (s *Searcher) quiescence(ctx context.Context, alpha, beta, qDepth, ply int) int {
	s.nodes++
	if s.nodes&2047 == 0 && ctx.Err() != nil {
		return 0
	}

	standPat := Evaluate(s.board)
	if qDepth == 0 {
		return standPat
	}
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= maxPly-1 {
		return standPat
	}

	moves := GenerateMoves(s.board, true)
	s.orderMoves(moves, ply, Move{})

	for _, m := range moves {
		commit, ok := s.board.MakeMove(m)
		if !ok {
			continue
		}
		score := -s.quiescence(ctx, -beta, -alpha, qDepth-1, ply+1)
		s.board.UnmakeMove(commit)

		if ctx.Err() != nil {
			return 0
		}

		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// orderMoves sorts moves in place, highest-priority first: the
// transposition table's recorded best move, then captures by MVV-LVA,
// then killer moves, then quiet moves by history score. It is a plain
// insertion sort since move lists are short (rarely more than ~40).
func (s *Searcher) orderMoves(moves MoveList, ply int, pvMove Move) {
	scores := make([]int, len(moves))
	for i, m := range moves {
		switch {
		case !pvMove.IsZero() && m == pvMove:
			scores[i] = 1 << 30
		case m.IsCapture():
			scores[i] = 1<<20 + mvvLVAScore(m)
		case m == s.killers[ply][0]:
			scores[i] = 1 << 19
		case m == s.killers[ply][1]:
			scores[i] = 1<<19 - 1
		default:
			scores[i] = s.history[m.Piece][m.To]
		}
	}

	for i := 1; i < len(moves); i++ {
		j := i
		for j > 0 && scores[j-1] < scores[j] {
			scores[j-1], scores[j] = scores[j], scores[j-1]
			moves[j-1], moves[j] = moves[j], moves[j-1]
			j--
		}
	}
}
