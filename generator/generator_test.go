package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaces/game"
)

func TestGeneratedBoardsAreValid(t *testing.T) {
	gen := New(1)
	for _, size := range []int{2, 3, 5, 8, 13, 40, 99} {
		for i := 0; i < 20; i++ {
			board := gen.Board(size)
			require.NoError(t, board.Validate(), "size %d board %d must validate", size, i)
		}
	}
}

func TestGeneratorIsDeterministic(t *testing.T) {
	first := New(42).Boards(6, 10)
	second := New(42).Boards(6, 10)
	require.Equal(t, first, second, "same seed must reproduce the same boards")

	other := New(43).Boards(6, 10)
	assert.NotEqual(t, first, other, "different seeds should diverge")
}

func TestGeneratedBoardShape(t *testing.T) {
	board := New(7).Board(5)

	assert.Equal(t, 5, board.Size)
	require.Len(t, board.Grid, 5)

	last := board.Sequence[len(board.Sequence)-1]
	assert.Equal(t, game.FinalMove, last.Kind, "sequence must end on the goal move")
	assert.Equal(t, game.FinalRow, last.Pos.Row)

	for i, move := range board.Sequence {
		assert.Equal(t, i+1, move.Order, "orders must be dense and 1-based")
	}

	traps := 0
	for _, move := range board.Sequence {
		if move.Kind == game.TrapMove {
			traps++
		}
	}
	assert.LessOrEqual(t, traps, board.Size-1)
}

func TestGeneratorRejectsBadSize(t *testing.T) {
	assert.Panics(t, func() { New(1).Board(1) })
	assert.Panics(t, func() { New(1).Board(100) })
}
