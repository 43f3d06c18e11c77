package pgn_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/rookwise/chesscore/pkg/pgn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sanCapture is a Visitor that only cares about a single SanMove event.
type sanCapture struct {
	recorder
	san *pgn.SanMove
}

func (c *sanCapture) VisitSanMove(m pgn.SanMove) {
	mm := m
	c.san = &mm
}

func lexSingleSAN(t *testing.T, tok string) pgn.SanMove {
	t.Helper()
	lex := pgn.NewLexer(strings.NewReader(tok))
	c := &sanCapture{}
	more, err := lex.Next(context.Background(), c)
	require.NoError(t, err)
	require.True(t, more)
	require.NotNil(t, c.san, "expected a SanMove event for %q", tok)
	return *c.san
}

func lexSyntaxError(t *testing.T, tok string) string {
	t.Helper()
	lex := pgn.NewLexer(strings.NewReader(tok))
	r := &recorder{}
	more, err := lex.Next(context.Background(), r)
	require.NoError(t, err)
	require.True(t, more)
	require.Len(t, r.events, 1)
	return r.events[0]
}

func assertOptInt(t *testing.T, opt interface{ V() (int, bool) }, want int) {
	t.Helper()
	got, ok := opt.V()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestSANPawnMove(t *testing.T) {
	m := lexSingleSAN(t, "e4")
	assert.Equal(t, board.Pawn, m.PieceKind)
	assertOptInt(t, m.DestFile, 4)
	assertOptInt(t, m.DestRank, 3)
	assert.False(t, m.Capture)
}

func TestSANPieceMove(t *testing.T) {
	m := lexSingleSAN(t, "Nf3")
	assert.Equal(t, board.Knight, m.PieceKind)
	assertOptInt(t, m.DestFile, 5)
	assertOptInt(t, m.DestRank, 2)
}

func TestSANCapture(t *testing.T) {
	m := lexSingleSAN(t, "Bxe5")
	assert.Equal(t, board.Bishop, m.PieceKind)
	assert.True(t, m.Capture)
	assertOptInt(t, m.DestFile, 4)
	assertOptInt(t, m.DestRank, 4)
}

func TestSANDisambiguationByFile(t *testing.T) {
	m := lexSingleSAN(t, "Nbd7")
	assert.Equal(t, board.Knight, m.PieceKind)
	assertOptInt(t, m.SrcFile, 1)
	_, hasRank := m.SrcRank.V()
	assert.False(t, hasRank)
}

func TestSANDisambiguationByRank(t *testing.T) {
	m := lexSingleSAN(t, "N1d2")
	assertOptInt(t, m.SrcRank, 0)
	_, hasFile := m.SrcFile.V()
	assert.False(t, hasFile)
}

func TestSANDisambiguationByFileAndRank(t *testing.T) {
	m := lexSingleSAN(t, "Qh4e1")
	assertOptInt(t, m.SrcFile, 7)
	assertOptInt(t, m.SrcRank, 3)
}

func TestSANPromotion(t *testing.T) {
	m := lexSingleSAN(t, "e8=Q")
	kind, ok := m.Promotion.V()
	require.True(t, ok)
	assert.Equal(t, board.Queen, kind)
}

func TestSANPromotionWithCaptureAndCheck(t *testing.T) {
	m := lexSingleSAN(t, "exd8=N+")
	assert.True(t, m.Capture)
	assert.True(t, m.Check)
	kind, ok := m.Promotion.V()
	require.True(t, ok)
	assert.Equal(t, board.Knight, kind)
}

func TestSANKingSideCastle(t *testing.T) {
	m := lexSingleSAN(t, "O-O")
	assert.True(t, m.KingSideCastle)
	assert.False(t, m.QueenSideCastle)
}

func TestSANQueenSideCastle(t *testing.T) {
	m := lexSingleSAN(t, "O-O-O")
	assert.True(t, m.QueenSideCastle)
}

func TestSANCheckmateSuffix(t *testing.T) {
	m := lexSingleSAN(t, "Qh5#")
	assert.True(t, m.Checkmate)
	assert.False(t, m.Check)
}

func TestSANInvalidPromotionPiece(t *testing.T) {
	assert.Contains(t, lexSyntaxError(t, "e8=K"), "Error:")
}

func TestSANMalformedDestination(t *testing.T) {
	assert.Contains(t, lexSyntaxError(t, "Nz9"), "Error:")
}
