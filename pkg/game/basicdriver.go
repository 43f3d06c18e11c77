package game

import (
	"context"

	"github.com/rookwise/chesscore/pkg/board"
)

// BasicDriver is a minimal Driver: it always promotes to a queen and
// ignores terminal-state notifications. Useful for batch validation and
// search, where no human or UI is present to make the choice.
type BasicDriver struct{}

func (BasicDriver) Promote(ctx context.Context, g *Game, m board.Move) (board.Square, error) {
	return board.NewSquare(board.Queen, m.Result.At(m.Dest).Color(), true), nil
}

func (BasicDriver) Checkmate(ctx context.Context, g *Game, m board.Move) {}

func (BasicDriver) Stalemate(ctx context.Context, g *Game, m board.Move) {}
