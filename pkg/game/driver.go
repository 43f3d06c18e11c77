package game

import (
	"context"

	"github.com/rookwise/chesscore/pkg/board"
)

// Driver is the external collaborator a Game calls into for the two
// decisions it cannot make on its own: which piece a pawn promotes to,
// and notification of a terminal position. It is called exactly once
// per applicable event, synchronously from within Game.Move (Checkmate
// and Stalemate also from Game.ForceMove), and must
// not call back into the Game; re-entrancy is undefined behavior.
type Driver interface {
	// Promote is called when the chosen move is a promotion. It must
	// return a Square with Kind in {Rook, Knight, Bishop, Queen} and the
	// same Color as the mover; any other result fails the move with
	// InvalidDriverActionError.
	Promote(ctx context.Context, g *Game, m board.Move) (board.Square, error)

	// Checkmate notifies the driver that m ended the game by checkmate.
	Checkmate(ctx context.Context, g *Game, m board.Move)

	// Stalemate notifies the driver that m ended the game by stalemate.
	Stalemate(ctx context.Context, g *Game, m board.Move)
}

// InvalidDriverActionError reports a Driver.Promote result that violates
// its contract.
type InvalidDriverActionError struct {
	Reason string
}

func (e *InvalidDriverActionError) Error() string {
	return "invalid driver action: " + e.Reason
}
