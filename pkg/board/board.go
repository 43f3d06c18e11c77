// Package board implements the chess position model and legal-move
// generator: Location, Square, Board and Move, plus the tracker-driven
// move generator (movegen.go).
package board

import (
	"fmt"
	"strings"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Board is an immutable chess position: 64 squares, the side to move, and
// the en-passant target square, if any. A "move" produces a new Board;
// there is no shared interior state.
type Board struct {
	squares [64]Square
	turn    Color
	ep      lang.Optional[Location]
}

// NewBoard constructs a Board, validating at most one king per color and a
// well-formed en-passant target.
func NewBoard(squares [64]Square, turn Color, ep lang.Optional[Location]) (Board, error) {
	b := Board{squares: squares, turn: turn, ep: ep}

	var whiteKings, blackKings int
	for _, l := range AllLocations() {
		sq := b.squares[l]
		if sq.Kind() == King {
			if sq.Color() == White {
				whiteKings++
			} else {
				blackKings++
			}
		}
	}
	if whiteKings > 1 || blackKings > 1 {
		return Board{}, fmt.Errorf("invalid board: more than one king per color (white=%v, black=%v)", whiteKings, blackKings)
	}

	if target, ok := ep.V(); ok {
		occupant := b.squares[target]
		if occupant.Kind() != Pawn || occupant.Color() != turn.Opponent() {
			return Board{}, fmt.Errorf("invalid board: en-passant target %v does not hold an opposing pawn", target)
		}

		jumpDir := 1
		if occupant.Color() == Black {
			jumpDir = -1
		}
		behind, ok := target.AddDelta(0, -jumpDir)
		if !ok || !b.squares[behind].IsEmpty() {
			return Board{}, fmt.Errorf("invalid board: square behind en-passant target %v is not empty", target)
		}
	}

	return b, nil
}

// newBoardUnchecked builds a Board without re-validating invariants, for
// internal use by the move generator where the result is known-valid by
// construction.
func newBoardUnchecked(squares [64]Square, turn Color, ep lang.Optional[Location]) Board {
	return Board{squares: squares, turn: turn, ep: ep}
}

// NewStandardBoard returns the standard chess starting position, white to
// move.
func NewStandardBoard() Board {
	var squares [64]Square

	backRank := [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < 8; f++ {
		squares[MustLocation(f, 0)] = NewSquare(backRank[f], White, false)
		squares[MustLocation(f, 1)] = NewSquare(Pawn, White, false)
		squares[MustLocation(f, 6)] = NewSquare(Pawn, Black, false)
		squares[MustLocation(f, 7)] = NewSquare(backRank[f], Black, false)
	}

	b, err := NewBoard(squares, White, lang.None[Location]())
	if err != nil {
		panic(err) // unreachable: the standard position is always valid
	}
	return b
}

// At returns the occupant of l.
func (b Board) At(l Location) Square {
	return b.squares[l]
}

// Turn returns the side to move.
func (b Board) Turn() Color {
	return b.turn
}

// EnPassant returns the destination square of the opposing pawn's most
// recent two-square advance, if the previous move was such an advance.
func (b Board) EnPassant() lang.Optional[Location] {
	return b.ep
}

// KingLocation returns the location of color's king, if present on the
// board. A position may lack a king.
func (b Board) KingLocation(color Color) (Location, bool) {
	for _, l := range AllLocations() {
		sq := b.squares[l]
		if sq.Kind() == King && sq.Color() == color {
			return l, true
		}
	}
	return 0, false
}

// withTurn returns a copy of b with the side to move forced to c,
// irrespective of whose move it actually is. Used internally to compute
// "what could this side attack from here" without constructing a new
// position.
func (b Board) withTurn(c Color) Board {
	b.turn = c
	return b
}

func (b Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteString(b.squares[MustLocation(file, rank)].String())
		}
		if rank > 0 {
			sb.WriteRune('/')
		}
	}

	ep := "-"
	if target, ok := b.ep.V(); ok {
		ep = target.String()
	}
	return fmt.Sprintf("%v %v ep:%v", sb.String(), b.turn, ep)
}
