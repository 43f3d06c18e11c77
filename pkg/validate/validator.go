// Package validate applies a recorded sequence of SAN moves against a
// fresh starting position and reports the first one that fails to
// resolve or fails to apply.
package validate

import (
	"context"
	"fmt"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/rookwise/chesscore/pkg/game"
	"github.com/rookwise/chesscore/pkg/pgn"
	"github.com/rookwise/chesscore/pkg/resolve"
	"github.com/seekerror/logw"
)

// ValidationFailureError reports the first SAN move in a game that did
// not resolve against the board, or resolved but failed to apply.
type ValidationFailureError struct {
	Index        int
	OffendingSan pgn.SanMove
	Reason       string
}

func (e *ValidationFailureError) Error() string {
	return fmt.Sprintf("validation failed at move %v (%v): %v", e.Index+1, e.OffendingSan.Text, e.Reason)
}

// ValidationResult is the outcome of validating a recorded game: either
// every move resolved and applied (Failure is nil), or the first
// offending move is reported. FinalBoard is the position reached after
// MovesPlayed moves (the starting position if MovesPlayed is 0).
type ValidationResult struct {
	MovesPlayed int
	Failure     *ValidationFailureError
	FinalBoard  board.Board
}

// Validate replays moves against the standard starting position,
// resolving each SAN against the current board and committing the
// resolved move with Game.ForceMove on a Game whose Driver is a
// BasicDriver. Promotion choice is whatever the SAN specifies, applied
// through the resolver's promotion-kind match, not asked of the driver.
func Validate(ctx context.Context, moves []pgn.SanMove) ValidationResult {
	g := game.New(game.BasicDriver{})

	for i, san := range moves {
		b := g.Board()
		m, ok := resolve.Resolve(san, b)
		if !ok {
			logw.Errorf(ctx, "validate: move %v (%v) did not resolve", i+1, san.Text)
			return ValidationResult{
				MovesPlayed: i,
				Failure:     &ValidationFailureError{Index: i, OffendingSan: san, Reason: "did not resolve to a unique legal move"},
				FinalBoard:  b,
			}
		}

		outcome, err := g.ForceMove(ctx, m)
		if err != nil || outcome == game.Invalid {
			logw.Errorf(ctx, "validate: move %v (%v) failed to apply", i+1, san.Text)
			return ValidationResult{
				MovesPlayed: i,
				Failure:     &ValidationFailureError{Index: i, OffendingSan: san, Reason: "resolved move failed to apply"},
				FinalBoard:  b,
			}
		}
	}

	return ValidationResult{MovesPlayed: len(moves), FinalBoard: g.Board()}
}
