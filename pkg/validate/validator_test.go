package validate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/rookwise/chesscore/pkg/pgn"
	"github.com/rookwise/chesscore/pkg/validate"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gameOf(t *testing.T, pgnText string) []pgn.SanMove {
	t.Helper()
	p := pgn.NewMoveParser(pgn.NewLexer(strings.NewReader(pgnText)))
	moves, ok, err := p.NextGame(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	return moves
}

func TestValidateAcceptsLegalGame(t *testing.T) {
	moves := gameOf(t, `1. e4 e5 2. Nf3 Nc6 3. Bb5 1-0`)
	result := validate.Validate(context.Background(), moves)
	assert.Nil(t, result.Failure)
	assert.Equal(t, len(moves), result.MovesPlayed)
}

func TestValidateRejectsUnreachableDestination(t *testing.T) {
	moves := gameOf(t, `1. e4 e5 2. Nf3 Nc6 1-0`)

	// Corrupt the fourth move (Nc6) with a spurious 'h'-file
	// disambiguation: no black knight on the h-file can reach c6.
	moves[3].SrcFile = lang.Some(7)

	result := validate.Validate(context.Background(), moves)
	require.NotNil(t, result.Failure)
	assert.Equal(t, 3, result.Failure.Index)
	assert.Equal(t, 3, result.MovesPlayed)
}

func TestValidateAppliesUnderPromotionExactly(t *testing.T) {
	// White's b-pawn marches to b8 and underpromotes to a knight, a
	// square vacated by the black knight's earlier development and never
	// reoccupied. Validate must apply exactly the resolved promotion
	// kind, not silently replay it as a queen promotion.
	moves := gameOf(t, `1. a4 Nc6 2. a5 b6 3. axb6 Nf6 4. b7 Ne4 5. b8=N 1-0`)

	result := validate.Validate(context.Background(), moves)
	require.Nil(t, result.Failure)
	assert.Equal(t, len(moves), result.MovesPlayed)

	occupant := result.FinalBoard.At(board.MustLocation(1, 7))
	assert.Equal(t, board.Knight, occupant.Kind())
	assert.Equal(t, board.White, occupant.Color())
}

func TestValidateRejectsUnresolvablePromotionKind(t *testing.T) {
	// A single legal move list entry whose promotion kind cannot be
	// satisfied anywhere never resolves, which Validate reports the same
	// way as any other unresolved SAN.
	moves := gameOf(t, `1. e4 e5 1-0`)
	moves[0].Promotion = lang.Some(board.Queen)

	result := validate.Validate(context.Background(), moves)
	require.NotNil(t, result.Failure)
	assert.Equal(t, 0, result.Failure.Index)
}
