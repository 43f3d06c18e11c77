// Package suggest is a thin minimax move suggester over a pluggable
// position evaluation. It is a client of pkg/board's move generator and
// a caller-supplied Evaluator; it has no hard engineering of its own.
package suggest

import "github.com/rookwise/chesscore/pkg/board"

// Pawns is a position score in units of one pawn's nominal value.
type Pawns float64

// Evaluator is a static position evaluator, scoring a Board from the
// perspective of the side to move.
type Evaluator interface {
	Evaluate(b board.Board) Pawns
}

// Material scores the nominal material balance for the side to move.
type Material struct{}

func (Material) Evaluate(b board.Board) Pawns {
	turn := b.Turn()

	var score Pawns
	for _, l := range board.AllLocations() {
		sq := b.At(l)
		if sq.IsEmpty() {
			continue
		}
		v := NominalValue(sq.Kind())
		if sq.Color() == turn {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// NominalValue is the absolute nominal value in pawns of a piece kind.
// The king has an arbitrary value of 100 pawns, large enough that no
// material trade ever outweighs losing it.
func NominalValue(k board.Kind) Pawns {
	switch k {
	case board.Pawn:
		return 1
	case board.Knight, board.Bishop:
		return 3
	case board.Rook:
		return 5
	case board.Queen:
		return 9
	case board.King:
		return 100
	default:
		return 0
	}
}
