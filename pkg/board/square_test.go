package board_test

import (
	"testing"
	"unsafe"

	"github.com/rookwise/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSquareLayout(t *testing.T) {
	assert.EqualValues(t, 1, unsafe.Sizeof(board.Square(0)))
}

func TestSquare(t *testing.T) {
	s := board.NewSquare(board.Knight, board.Black, true)
	assert.Equal(t, board.Knight, s.Kind())
	assert.Equal(t, board.Black, s.Color())
	assert.True(t, s.HasMoved())
	assert.False(t, s.IsEmpty())
	assert.Equal(t, "n", s.String())
}

func TestSquareEqualityIgnoresHasMoved(t *testing.T) {
	a := board.NewSquare(board.Rook, board.White, false)
	b := board.NewSquare(board.Rook, board.White, true)
	assert.True(t, a.Equals(b))
	assert.NotEqual(t, a, b) // the underlying bytes differ...
}

func TestEmptySquare(t *testing.T) {
	assert.True(t, board.EmptySquare.IsEmpty())
	assert.Equal(t, board.Empty, board.EmptySquare.Kind())
	assert.Equal(t, ".", board.EmptySquare.String())
}

func TestWithMoved(t *testing.T) {
	s := board.NewSquare(board.Pawn, board.White, false)
	moved := s.WithMoved(true)
	assert.False(t, s.HasMoved())
	assert.True(t, moved.HasMoved())
	assert.True(t, s.Equals(moved))
}
