package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionAdjacent(t *testing.T) {
	center := Position{Row: 2, Col: 2}

	assert.True(t, center.Adjacent(Position{Row: 1, Col: 2}))
	assert.True(t, center.Adjacent(Position{Row: 3, Col: 2}))
	assert.True(t, center.Adjacent(Position{Row: 2, Col: 1}))
	assert.True(t, center.Adjacent(Position{Row: 2, Col: 3}))

	assert.False(t, center.Adjacent(center), "a square is not adjacent to itself")
	assert.False(t, center.Adjacent(Position{Row: 1, Col: 1}), "diagonals are not adjacent")
	assert.False(t, center.Adjacent(Position{Row: 0, Col: 2}), "two squares away is not adjacent")
}

func TestPositionRotate(t *testing.T) {
	assert.Equal(t, Position{Row: 4, Col: 4}, Position{Row: 0, Col: 0}.Rotate(5))
	assert.Equal(t, Position{Row: 2, Col: 2}, Position{Row: 2, Col: 2}.Rotate(5), "the center is its own rotation")

	// Rotation is an involution.
	p := Position{Row: 1, Col: 3}
	assert.Equal(t, p, p.Rotate(5).Rotate(5))

	// The goal row rotates off the far edge, so the two goal markers can
	// never collide with each other or with a board square.
	assert.Equal(t, Position{Row: 5, Col: 1}, Position{Row: FinalRow, Col: 3}.Rotate(5))
}

func TestPositionKey(t *testing.T) {
	size := 7
	seen := map[int]struct{}{}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			key := Position{Row: row, Col: col}.Key(size)
			_, dup := seen[key]
			require.False(t, dup, "key collision at (%d,%d)", row, col)
			seen[key] = struct{}{}
		}
	}

	// Off-grid rows pack outside the board's key range.
	assert.Less(t, Position{Row: FinalRow, Col: 0}.Key(size), 0)
	assert.GreaterOrEqual(t, Position{Row: size, Col: 0}.Key(size), size*size)
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard(3)
	b.Grid[1][1] = Piece
	b.Sequence = []Move{{Pos: Position{Row: 1, Col: 1}, Kind: PieceMove, Order: 1}}

	c := b.Copy()
	require.Equal(t, b, c)

	c.Grid[1][1] = Trap
	c.Sequence[0].Kind = TrapMove
	assert.Equal(t, Piece, b.Grid[1][1], "copy must not share grid storage")
	assert.Equal(t, PieceMove, b.Sequence[0].Kind, "copy must not share the sequence")
}

func TestStartingCorners(t *testing.T) {
	assert.Equal(t, Position{Row: 4, Col: 0}, PlayerStart(5))
	assert.Equal(t, Position{Row: 0, Col: 4}, OpponentStart(5))

	// The corners are each other's rotation.
	assert.Equal(t, OpponentStart(5), PlayerStart(5).Rotate(5))
}
