package board

import "github.com/seekerror/stdlib/pkg/lang"

// tracker is the capability set the shared per-piece enumeration routine
// drives. Two implementations share this routine: one that builds full
// Moves, and one that only sets bits in a threatened-square mask. The
// threat-mask path is hot and must not allocate Moves.
type tracker interface {
	add(src, dest Location)
	addCastling(kingSrc, kingDest, rookSrc, rookDest Location)
	addPawnDoubleJump(src, dest Location)
	addEnPassant(src, dest, captured Location)
	addPromotions(src, dest Location)
}

// LegalMoves returns every legal move from b, each carrying its
// classification (normal, check or checkmate). Stalemate is a game-level
// concept (an empty result with the side not in check) rather than a
// per-move tag; see pkg/game.
func LegalMoves(b Board) []Move {
	t := &moveTracker{b: b}
	generatePseudoMoves(b, t)

	mover := b.Turn()
	defender := mover.Opponent()

	ret := make([]Move, 0, len(t.moves))
	for _, m := range t.moves {
		if isCastlingMove(b, m) {
			if !castlingPathIsSafe(b, m) {
				continue
			}
		}
		if kingLoc, ok := m.Result.KingLocation(mover); ok {
			if ThreatenedMask(m.Result)&bit(kingLoc) != 0 {
				continue // mover's own king would be attacked: illegal
			}
		}

		m.Classification = classify(m, defender)
		ret = append(ret, m)
	}
	return ret
}

// ThreatenedMask returns a 64-bit mask in which bit i is set iff the side
// to move on b could, ignoring self-check, move a piece to Location i.
func ThreatenedMask(b Board) uint64 {
	t := &threatTracker{}
	generatePseudoMoves(b, t)
	return t.mask
}

func bit(l Location) uint64 {
	return 1 << uint(l)
}

// IsInCheck reports whether the side to move on b has its king attacked.
// A missing king is never "in check".
func IsInCheck(b Board) bool {
	kingLoc, ok := b.KingLocation(b.Turn())
	if !ok {
		return false
	}
	return ThreatenedMask(b.withTurn(b.Turn().Opponent()))&bit(kingLoc) != 0
}

// classify determines whether m gives check or checkmate to defender. The
// mover's reach onto the result board is computed by forcing turn back to
// the mover, not by trusting whatever m.Result.Turn() happens to report.
// Checkmate is then determined by recursively enumerating defender's legal
// moves from the result board: empty means checkmate. A missing king is
// never "in check".
func classify(m Move, defender Color) Classification {
	kingLoc, ok := m.Result.KingLocation(defender)
	if !ok {
		return Normal
	}

	mover := defender.Opponent()
	if ThreatenedMask(m.Result.withTurn(mover))&bit(kingLoc) == 0 {
		return Normal
	}
	if len(LegalMoves(m.Result)) == 0 {
		return Checkmate
	}
	return Check
}

// isCastlingMove detects a king move of two files on the pre-move board;
// castling is the only way a king moves more than one square.
func isCastlingMove(b Board, m Move) bool {
	sq := b.At(m.Src)
	if sq.Kind() != King {
		return false
	}
	df := m.Dest.File() - m.Src.File()
	return df == 2 || df == -2
}

// castlingPathIsSafe rejects castling if any square from the king's source
// to its destination, both included, is attacked by the opponent
// on the pre-move board. This check is deliberately not part of per-square
// move generation, which only enforces path emptiness.
func castlingPathIsSafe(b Board, m Move) bool {
	opponentMask := ThreatenedMask(b.withTurn(b.Turn().Opponent()))

	lo, hi := m.Src.File(), m.Dest.File()
	if lo > hi {
		lo, hi = hi, lo
	}
	rank := m.Src.Rank()
	for f := lo; f <= hi; f++ {
		sq := MustLocation(f, rank)
		if opponentMask&bit(sq) != 0 {
			return false
		}
	}
	return true
}

// generatePseudoMoves drives t over every piece belonging to the side to
// move on b, applying the per-piece movement rules below. Pseudo-legal: it
// does not filter for self-check.
func generatePseudoMoves(b Board, t tracker) {
	mover := b.Turn()
	for _, src := range AllLocations() {
		sq := b.At(src)
		if sq.IsEmpty() || sq.Color() != mover {
			continue
		}

		switch sq.Kind() {
		case Pawn:
			generatePawnMoves(b, t, src, mover)
		case Rook:
			generateSlidingMoves(b, t, src, mover, rookDirections)
		case Bishop:
			generateSlidingMoves(b, t, src, mover, bishopDirections)
		case Queen:
			generateSlidingMoves(b, t, src, mover, rookDirections)
			generateSlidingMoves(b, t, src, mover, bishopDirections)
		case Knight:
			generateStepMoves(b, t, src, mover, knightOffsets)
		case King:
			generateStepMoves(b, t, src, mover, kingOffsets)
			generateCastling(b, t, src, mover)
		}
	}
}

func generatePawnMoves(b Board, t tracker, src Location, mover Color) {
	dir := 1
	if mover == Black {
		dir = -1
	}
	promRank := 7
	if mover == Black {
		promRank = 0
	}

	if one, ok := src.AddDelta(0, dir); ok && b.At(one).IsEmpty() {
		if one.Rank() == promRank {
			t.addPromotions(src, one)
		} else {
			t.add(src, one)
		}

		if !b.At(src).HasMoved() {
			if two, ok := src.AddDelta(0, 2*dir); ok && b.At(two).IsEmpty() {
				t.addPawnDoubleJump(src, two)
			}
		}
	}

	for _, df := range [2]int{-1, 1} {
		dest, ok := src.AddDelta(df, dir)
		if !ok {
			continue
		}
		target := b.At(dest)
		if !target.IsEmpty() && target.Color() != mover {
			if dest.Rank() == promRank {
				t.addPromotions(src, dest)
			} else {
				t.add(src, dest)
			}
		}
	}

	if target, ok := b.EnPassant().V(); ok {
		if target.Rank() == src.Rank() && abs(target.File()-src.File()) == 1 {
			if dest, ok := target.AddDelta(0, dir); ok {
				t.addEnPassant(src, dest, target)
			}
		}
	}
}

func generateSlidingMoves(b Board, t tracker, src Location, mover Color, directions [4][2]int) {
	for _, d := range directions {
		for _, dest := range src.Direction(d[0], d[1]) {
			occupant := b.At(dest)
			if occupant.IsEmpty() {
				t.add(src, dest)
				continue
			}
			if occupant.Color() != mover {
				t.add(src, dest)
			}
			break
		}
	}
}

func generateStepMoves(b Board, t tracker, src Location, mover Color, offsets [8][2]int) {
	for _, o := range offsets {
		dest, ok := src.AddDelta(o[0], o[1])
		if !ok {
			continue
		}
		occupant := b.At(dest)
		if occupant.IsEmpty() || occupant.Color() != mover {
			t.add(src, dest)
		}
	}
}

func generateCastling(b Board, t tracker, kingSrc Location, mover Color) {
	if b.At(kingSrc).HasMoved() {
		return
	}
	homeRank := 0
	if mover == Black {
		homeRank = 7
	}
	if kingSrc.Rank() != homeRank || kingSrc.File() != 4 {
		return
	}

	type side struct {
		rookFile, kingDestFile, rookDestFile int
	}
	for _, s := range []side{{7, 6, 5}, {0, 2, 3}} {
		rookSrc := MustLocation(s.rookFile, homeRank)
		rook := b.At(rookSrc)
		if rook.Kind() != Rook || rook.Color() != mover || rook.HasMoved() {
			continue
		}

		clear := true
		lo, hi := s.rookFile, 4
		if lo > hi {
			lo, hi = hi, lo
		}
		for f := lo + 1; f < hi; f++ {
			if !b.At(MustLocation(f, homeRank)).IsEmpty() {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}

		kingDest := MustLocation(s.kingDestFile, homeRank)
		rookDest := MustLocation(s.rookDestFile, homeRank)
		t.addCastling(kingSrc, kingDest, rookSrc, rookDest)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// moveTracker accumulates full Moves with recomputed result Boards.
type moveTracker struct {
	b     Board
	moves []Move
}

func (t *moveTracker) add(src, dest Location) {
	squares := t.b.squares
	squares[dest] = t.b.At(src).WithMoved(true)
	squares[src] = EmptySquare

	result := newBoardUnchecked(squares, t.b.Turn().Opponent(), lang.None[Location]())
	t.moves = append(t.moves, Move{Src: src, Dest: dest, Result: result})
}

func (t *moveTracker) addCastling(kingSrc, kingDest, rookSrc, rookDest Location) {
	squares := t.b.squares
	king := t.b.At(kingSrc).WithMoved(true)
	rook := t.b.At(rookSrc).WithMoved(true)
	squares[kingSrc] = EmptySquare
	squares[rookSrc] = EmptySquare
	squares[kingDest] = king
	squares[rookDest] = rook

	result := newBoardUnchecked(squares, t.b.Turn().Opponent(), lang.None[Location]())
	t.moves = append(t.moves, Move{Src: kingSrc, Dest: kingDest, Result: result})
}

func (t *moveTracker) addPawnDoubleJump(src, dest Location) {
	squares := t.b.squares
	squares[dest] = t.b.At(src).WithMoved(true)
	squares[src] = EmptySquare

	result := newBoardUnchecked(squares, t.b.Turn().Opponent(), lang.Some(dest))
	t.moves = append(t.moves, Move{Src: src, Dest: dest, Result: result})
}

func (t *moveTracker) addEnPassant(src, dest, captured Location) {
	squares := t.b.squares
	squares[dest] = t.b.At(src).WithMoved(true)
	squares[src] = EmptySquare
	squares[captured] = EmptySquare

	result := newBoardUnchecked(squares, t.b.Turn().Opponent(), lang.None[Location]())
	t.moves = append(t.moves, Move{Src: src, Dest: dest, Result: result})
}

func (t *moveTracker) addPromotions(src, dest Location) {
	mover := t.b.At(src).Color()
	for _, kind := range PromotionKinds {
		squares := t.b.squares
		squares[dest] = NewSquare(kind, mover, true)
		squares[src] = EmptySquare

		result := newBoardUnchecked(squares, t.b.Turn().Opponent(), lang.None[Location]())
		t.moves = append(t.moves, Move{Src: src, Dest: dest, Result: result, IsPromotion: true})
	}
}

// threatTracker accumulates a bitmask of reachable destination squares
// without allocating any Moves.
type threatTracker struct {
	mask uint64
}

func (t *threatTracker) add(src, dest Location)              { t.mask |= bit(dest) }
func (t *threatTracker) addCastling(_, _, _, _ Location)      {} // castling cannot attack
func (t *threatTracker) addPawnDoubleJump(src, dest Location) { t.mask |= bit(dest) }
func (t *threatTracker) addEnPassant(src, dest, _ Location)   { t.mask |= bit(dest) }
func (t *threatTracker) addPromotions(src, dest Location)     { t.mask |= bit(dest) }
