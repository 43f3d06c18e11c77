// Package game implements the thin controller binding a Board to a
// Driver: it applies a (src, dest) move request, resolves promotion
// choices through the Driver, and reports terminal states. ForceMove
// commits an already-resolved Move directly, without asking the Driver
// for a promotion choice.
package game

import (
	"context"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/seekerror/logw"
)

// MoveOutcome is the result of attempting a move through Game.Move.
type MoveOutcome uint8

const (
	Invalid MoveOutcome = iota
	Normal
	Checkmate
	Stalemate
)

func (o MoveOutcome) String() string {
	switch o {
	case Invalid:
		return "invalid"
	case Normal:
		return "normal"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	default:
		return "?"
	}
}

// Game binds a current Board to a Driver supplying promotion choices and
// receiving terminal-state notifications. The Board is the only mutable
// state, and it is mutated exclusively by Move and ForceMove.
type Game struct {
	b      board.Board
	driver Driver
}

// New starts a Game at the standard starting position.
func New(driver Driver) *Game {
	return &Game{b: board.NewStandardBoard(), driver: driver}
}

// NewWithBoard starts a Game at an arbitrary position.
func NewWithBoard(driver Driver, b board.Board) *Game {
	return &Game{b: b, driver: driver}
}

// Board returns a snapshot of the current position. Board is an
// immutable value, so the snapshot is safe to retain.
func (g *Game) Board() board.Board {
	return g.b
}

// CurrentTurn returns the side to move.
func (g *Game) CurrentTurn() board.Color {
	return g.b.Turn()
}

// Move attempts to play a move from src to dest. If the move is a
// promotion, the Driver is asked to pick the promoted piece before the
// move is committed.
func (g *Game) Move(ctx context.Context, src, dest board.Location) (MoveOutcome, error) {
	var candidates []board.Move
	for _, m := range board.LegalMoves(g.b) {
		if m.Src == src && m.Dest == dest {
			candidates = append(candidates, m)
		}
	}
	if len(candidates) == 0 {
		return Invalid, nil
	}

	chosen := candidates[0]
	if chosen.IsPromotion {
		m, err := g.resolvePromotion(ctx, candidates)
		if err != nil {
			return Invalid, err
		}
		chosen = m
	}

	return g.commit(ctx, chosen), nil
}

// ForceMove commits a specific legal Move without consulting the Driver
// for a promotion choice: m's Result and Classification, including the
// promoted piece it already carries, are taken as given. Callers that
// already know which of several same-destination candidates they mean
// (e.g. a SAN move resolved to a specific promotion kind) use this
// instead of Move, which would otherwise re-derive the promotion choice
// through the Driver and override it. m must be one of
// board.LegalMoves(g.Board()); otherwise ForceMove returns Invalid.
func (g *Game) ForceMove(ctx context.Context, m board.Move) (MoveOutcome, error) {
	for _, legal := range board.LegalMoves(g.b) {
		if legal == m {
			return g.commit(ctx, legal), nil
		}
	}
	return Invalid, nil
}

// commit installs m's result as the current position and determines the
// resulting MoveOutcome, notifying the Driver of a terminal position.
func (g *Game) commit(ctx context.Context, m board.Move) MoveOutcome {
	g.b = m.Result
	logw.Infof(ctx, "move %v: %v", m, g.b)

	if next := board.LegalMoves(g.b); len(next) == 0 {
		if m.Classification == board.Checkmate {
			g.driver.Checkmate(ctx, g, m)
			return Checkmate
		}
		g.driver.Stalemate(ctx, g, m)
		return Stalemate
	}
	return Normal
}

func (g *Game) resolvePromotion(ctx context.Context, candidates []board.Move) (board.Move, error) {
	sq, err := g.driver.Promote(ctx, g, candidates[0])
	if err != nil {
		return board.Move{}, err
	}
	if !sq.Kind().IsPromotable() || sq.Color() != g.b.Turn() {
		return board.Move{}, &InvalidDriverActionError{Reason: "promotion result must be a rook, knight, bishop or queen of the mover's color"}
	}
	for _, m := range candidates {
		occupant := m.Result.At(m.Dest)
		if occupant.Kind() == sq.Kind() && occupant.Color() == sq.Color() {
			return m, nil
		}
	}
	return board.Move{}, &InvalidDriverActionError{Reason: "no candidate move matches the chosen promotion piece"}
}
