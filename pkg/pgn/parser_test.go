package pgn_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rookwise/chesscore/pkg/pgn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveParserSingleGame(t *testing.T) {
	p := pgn.NewMoveParser(pgn.NewLexer(strings.NewReader(
		`[Event "Test"]

1. e4 e5 2. Nf3 Nc6 1-0`)))

	moves, ok, err := p.NextGame(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, moves, 4)
	assert.Equal(t, "e4", moves[0].Text)
	assert.Equal(t, "e5", moves[1].Text)
	assert.Equal(t, "Nf3", moves[2].Text)
	assert.Equal(t, "Nc6", moves[3].Text)
}

func TestMoveParserMultipleGames(t *testing.T) {
	p := pgn.NewMoveParser(pgn.NewLexer(strings.NewReader(
		`1. e4 e5 1-0 1. d4 d5 1/2-1/2`)))
	ctx := context.Background()

	first, ok, err := p.NextGame(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, first, 2)

	second, ok, err := p.NextGame(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, second, 2)
	assert.Equal(t, "d4", second[0].Text)

	_, ok, err = p.NextGame(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMoveParserMultipleGamesWithTagPairs(t *testing.T) {
	p := pgn.NewMoveParser(pgn.NewLexer(strings.NewReader(
		"[Event \"Game One\"]\n\n1. e4 e5 1-0\n\n[Event \"Game Two\"]\n\n1. d4 d5 1/2-1/2")))
	ctx := context.Background()

	first, ok, err := p.NextGame(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, first, 2)
	assert.Equal(t, "e4", first[0].Text)

	second, ok, err := p.NextGame(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, second, 2)
	assert.Equal(t, "d4", second[0].Text)
}

func TestMoveParserCleanEOFBetweenGames(t *testing.T) {
	p := pgn.NewMoveParser(pgn.NewLexer(strings.NewReader(``)))
	moves, ok, err := p.NextGame(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, moves)
}

func TestMoveParserIncompleteGame(t *testing.T) {
	p := pgn.NewMoveParser(pgn.NewLexer(strings.NewReader(`1. e4 e5 2. Nf3`)))
	_, ok, err := p.NextGame(context.Background())
	assert.False(t, ok)
	require.Error(t, err)
	var incomplete *pgn.IncompleteGameError
	assert.ErrorAs(t, err, &incomplete)
}

func TestMoveParserDiscardsAlternatives(t *testing.T) {
	p := pgn.NewMoveParser(pgn.NewLexer(strings.NewReader(
		`1. e4 (1. d4 d5 2. c4) e5 1-0`)))
	moves, ok, err := p.NextGame(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, moves, 2)
	assert.Equal(t, "e4", moves[0].Text)
	assert.Equal(t, "e5", moves[1].Text)
}

func TestMoveParserPropagatesSyntaxError(t *testing.T) {
	p := pgn.NewMoveParser(pgn.NewLexer(strings.NewReader(`1. e4 Zz9`)))
	_, ok, err := p.NextGame(context.Background())
	assert.False(t, ok)
	var syntaxErr *pgn.SyntaxErrorError
	assert.ErrorAs(t, err, &syntaxErr)
}
