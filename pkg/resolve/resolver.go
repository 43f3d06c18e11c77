// Package resolve reconciles a parsed SAN token against board state: the
// only place the ambiguity intentionally left in the SAN grammar is
// settled, by filtering the board's legal moves down to the one the
// token designates.
package resolve

import (
	"github.com/rookwise/chesscore/pkg/board"
	"github.com/rookwise/chesscore/pkg/pgn"
)

// Resolve picks the unique legal move on b that san designates, or
// returns ok=false if the filter leaves zero or more than one candidate.
func Resolve(san pgn.SanMove, b board.Board) (m board.Move, ok bool) {
	candidates := board.LegalMoves(b)

	if san.KingSideCastle || san.QueenSideCastle {
		candidates = filterCastling(candidates, b, san)
	} else {
		candidates = filterDestination(candidates, san)
		candidates = filterPieceKind(candidates, san)
		candidates = filterPromotionFlag(candidates, san)
		candidates = filterDisambiguation(candidates, san)
		candidates = filterCapture(candidates, b, san)
	}
	candidates = filterCheckAndMate(candidates, san)
	candidates = filterPromotionKind(candidates, san)

	if len(candidates) != 1 {
		return board.Move{}, false
	}
	return candidates[0], true
}

// filterCastling retains only moves whose result places the king on the
// appropriate castling destination file (G for king-side, C for
// queen-side) on the mover's home rank.
func filterCastling(moves []board.Move, b board.Board, san pgn.SanMove) []board.Move {
	homeRank := 0
	if b.Turn() == board.Black {
		homeRank = 7
	}
	destFile := 6
	if san.QueenSideCastle {
		destFile = 2
	}
	dest := board.MustLocation(destFile, homeRank)

	var out []board.Move
	for _, m := range moves {
		if m.Src.File() == 4 && m.Src.Rank() == homeRank && m.Dest == dest {
			out = append(out, m)
		}
	}
	return out
}

func filterDestination(moves []board.Move, san pgn.SanMove) []board.Move {
	destFile, ok := san.DestFile.V()
	if !ok {
		return nil
	}
	destRank, ok := san.DestRank.V()
	if !ok {
		return nil
	}

	var out []board.Move
	for _, m := range moves {
		if m.Dest.File() == destFile && m.Dest.Rank() == destRank {
			out = append(out, m)
		}
	}
	return out
}

// filterPieceKind matches the result square's kind against the SAN's
// piece kind, except when the SAN is a pawn move with a promotion: the
// promoted-to kind, not pawn, occupies the destination square.
func filterPieceKind(moves []board.Move, san pgn.SanMove) []board.Move {
	if san.PieceKind == board.Pawn {
		if _, promoting := san.Promotion.V(); promoting {
			return moves
		}
	}

	var out []board.Move
	for _, m := range moves {
		if m.Result.At(m.Dest).Kind() == san.PieceKind {
			out = append(out, m)
		}
	}
	return out
}

func filterPromotionFlag(moves []board.Move, san pgn.SanMove) []board.Move {
	_, wantsPromotion := san.Promotion.V()

	var out []board.Move
	for _, m := range moves {
		if m.IsPromotion == wantsPromotion {
			out = append(out, m)
		}
	}
	return out
}

func filterDisambiguation(moves []board.Move, san pgn.SanMove) []board.Move {
	out := moves
	if file, ok := san.SrcFile.V(); ok {
		out = filterSrcFile(out, file)
	}
	if rank, ok := san.SrcRank.V(); ok {
		out = filterSrcRank(out, rank)
	}
	return out
}

func filterSrcFile(moves []board.Move, file int) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.Src.File() == file {
			out = append(out, m)
		}
	}
	return out
}

func filterSrcRank(moves []board.Move, rank int) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if m.Src.Rank() == rank {
			out = append(out, m)
		}
	}
	return out
}

// isCapture reports whether m is a capture on the pre-move board b:
// either the destination square was occupied by an opposing piece, or
// the move is an en-passant capture (a diagonal pawn move landing on
// b's en-passant target).
func isCapture(b board.Board, m board.Move) bool {
	occupant := b.At(m.Dest)
	if !occupant.IsEmpty() && occupant.Color() != b.Turn() {
		return true
	}

	mover := b.At(m.Src)
	if mover.Kind() != board.Pawn || m.Src.File() == m.Dest.File() {
		return false
	}
	target, ok := b.EnPassant().V()
	return ok && target == m.Dest
}

func filterCapture(moves []board.Move, b board.Board, san pgn.SanMove) []board.Move {
	var out []board.Move
	for _, m := range moves {
		if isCapture(b, m) == san.Capture {
			out = append(out, m)
		}
	}
	return out
}

// filterCheckAndMate applies the check/mate cross-check. gives_mate, as
// defined by the filter, is true whenever the defender simply has no
// reply (it does not by itself distinguish checkmate from stalemate);
// the stalemate carve-out below accounts for that.
func filterCheckAndMate(moves []board.Move, san pgn.SanMove) []board.Move {
	var out []board.Move
	for _, m := range moves {
		causesCheck := m.Classification != board.Normal

		_, kingPresent := m.Result.KingLocation(m.Result.Turn())
		noReplies := len(board.LegalMoves(m.Result)) == 0
		givesMate := noReplies && kingPresent
		isStalemate := noReplies && !causesCheck

		if san.Check && !causesCheck {
			continue
		}
		if san.Checkmate != givesMate && !isStalemate {
			continue
		}
		if !san.Check && !san.Checkmate && causesCheck && !givesMate {
			continue
		}
		out = append(out, m)
	}
	return out
}

func filterPromotionKind(moves []board.Move, san pgn.SanMove) []board.Move {
	kind, ok := san.Promotion.V()
	if !ok {
		return moves
	}

	var out []board.Move
	for _, m := range moves {
		if m.Result.At(m.Dest).Kind() == kind {
			out = append(out, m)
		}
	}
	return out
}
