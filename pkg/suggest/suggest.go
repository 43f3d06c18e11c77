package suggest

import (
	"context"
	"math"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/seekerror/logw"
)

// mate is a score magnitude large enough that no material evaluation can
// ever exceed it, used to signal a forced checkmate found within the
// search horizon.
const mate Pawns = 1_000_000

// Suggester picks a move via fixed-depth negamax search over a
// caller-supplied Evaluator. It does not prune (no alpha-beta) and does
// not cache positions (no transposition table): both are explicit
// non-goals of this package.
type Suggester struct {
	Eval Evaluator
}

// Suggest returns the best move found by searching depth plies, plus its
// score in Pawns from the perspective of the side to move on b. ok is
// false if b has no legal moves.
func (s Suggester) Suggest(ctx context.Context, b board.Board, depth int) (m board.Move, score Pawns, ok bool) {
	moves := board.LegalMoves(b)
	if len(moves) == 0 {
		return board.Move{}, 0, false
	}

	best := moves[0]
	bestScore := Pawns(math.Inf(-1))
	for _, candidate := range moves {
		v := -s.search(candidate.Result, depth-1)
		if v > bestScore {
			bestScore = v
			best = candidate
		}
	}

	logw.Debugf(ctx, "suggest: depth=%v best=%v score=%v", depth, best, bestScore)
	return best, bestScore, true
}

// search returns the negamax score of b, from the perspective of the
// side to move on b.
func (s Suggester) search(b board.Board, depth int) Pawns {
	moves := board.LegalMoves(b)
	if len(moves) == 0 {
		if board.IsInCheck(b) {
			return -mate
		}
		return 0
	}
	if depth == 0 {
		return s.Eval.Evaluate(b)
	}

	best := Pawns(math.Inf(-1))
	for _, m := range moves {
		v := -s.search(m.Result, depth-1)
		if v > best {
			best = v
		}
	}
	return best
}
