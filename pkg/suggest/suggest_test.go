package suggest_test

import (
	"context"
	"testing"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/rookwise/chesscore/pkg/suggest"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialEvaluateStandardStartIsBalanced(t *testing.T) {
	b := board.NewStandardBoard()
	assert.EqualValues(t, 0, suggest.Material{}.Evaluate(b))
}

func TestMaterialEvaluateFavorsSideUp(t *testing.T) {
	var squares [64]board.Square
	squares[board.MustLocation(0, 0)] = board.NewSquare(board.King, board.White, false)
	squares[board.MustLocation(7, 7)] = board.NewSquare(board.King, board.Black, false)
	squares[board.MustLocation(3, 3)] = board.NewSquare(board.Queen, board.White, false)
	b, err := board.NewBoard(squares, board.White, lang.None[board.Location]())
	require.NoError(t, err)

	assert.EqualValues(t, suggest.NominalValue(board.Queen), suggest.Material{}.Evaluate(b))
}

func TestSuggestTakesFreeQueen(t *testing.T) {
	// White rook on a1 can capture a hanging black queen on a8 in one
	// move; at depth 1 negamax must find it over any quiet alternative.
	var squares [64]board.Square
	squares[board.MustLocation(0, 0)] = board.NewSquare(board.Rook, board.White, false)
	squares[board.MustLocation(4, 0)] = board.NewSquare(board.King, board.White, false)
	squares[board.MustLocation(0, 7)] = board.NewSquare(board.Queen, board.Black, false)
	squares[board.MustLocation(4, 7)] = board.NewSquare(board.King, board.Black, false)
	b, err := board.NewBoard(squares, board.White, lang.None[board.Location]())
	require.NoError(t, err)

	s := suggest.Suggester{Eval: suggest.Material{}}
	m, _, ok := s.Suggest(context.Background(), b, 1)
	require.True(t, ok)
	assert.Equal(t, board.MustLocation(0, 0), m.Src)
	assert.Equal(t, board.MustLocation(0, 7), m.Dest)
}

func TestSuggestNoLegalMoves(t *testing.T) {
	// White king f7, white queen g6, black king h8: stalemate, no moves
	// for the side to move (black).
	var squares [64]board.Square
	squares[board.MustLocation(5, 6)] = board.NewSquare(board.King, board.White, true)
	squares[board.MustLocation(6, 5)] = board.NewSquare(board.Queen, board.White, true)
	squares[board.MustLocation(7, 7)] = board.NewSquare(board.King, board.Black, false)
	b, err := board.NewBoard(squares, board.Black, lang.None[board.Location]())
	require.NoError(t, err)

	s := suggest.Suggester{Eval: suggest.Material{}}
	_, _, ok := s.Suggest(context.Background(), b, 2)
	assert.False(t, ok)
}
