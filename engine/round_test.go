package engine

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaces/game"
)

// boardFromMoves builds a board whose grid matches its sequence, so the
// same fixture passes validation and feeds the simulator.
func boardFromMoves(t *testing.T, size int, moves ...game.Move) *game.Board {
	t.Helper()

	b := game.NewBoard(size)
	for i := range moves {
		moves[i].Order = i + 1
		switch moves[i].Kind {
		case game.PieceMove:
			if b.Grid[moves[i].Pos.Row][moves[i].Pos.Col] != game.Trap {
				b.Grid[moves[i].Pos.Row][moves[i].Pos.Col] = game.Piece
			}
		case game.TrapMove:
			b.Grid[moves[i].Pos.Row][moves[i].Pos.Col] = game.Trap
		}
	}
	b.Sequence = moves
	return b
}

func piece(row, col int) game.Move {
	return game.Move{Pos: game.Position{Row: row, Col: col}, Kind: game.PieceMove}
}

func trap(row, col int) game.Move {
	return game.Move{Pos: game.Position{Row: row, Col: col}, Kind: game.TrapMove}
}

func final(col int) game.Move {
	return game.Move{Pos: game.Position{Row: game.FinalRow, Col: col}, Kind: game.FinalMove}
}

func TestSimulateRoundEndToEnd(t *testing.T) {
	player := boardFromMoves(t, 2,
		piece(1, 0), piece(1, 1), piece(0, 1), piece(0, 0), final(0))
	require.NoError(t, player.Validate())

	// The opponent's board never reaches its goal; the simulator does not
	// care that it would fail validation.
	opponent := boardFromMoves(t, 2, piece(1, 1), piece(1, 0), piece(0, 0))

	result := SimulateRound(1, player, opponent, WithSilent())

	assert.Equal(t, PlayerWins, result.Winner)
	assert.Greater(t, result.PlayerPoints, result.OpponentPoints)
	assert.Equal(t, 2, result.PlayerPoints, "one forward step plus the goal")
	assert.Equal(t, 1, result.OpponentPoints)
	assert.False(t, result.PlayerHitTrap)
	assert.False(t, result.OpponentHitTrap)
	assert.False(t, result.Collision)
	assert.Equal(t, game.Position{Row: game.FinalRow, Col: 0}, result.PlayerFinal)
	assert.Equal(t, game.Position{Row: 1, Col: 1}, result.OpponentFinal, "opponent ends on its last rotated square")
	assert.Equal(t, 4, result.PlayerMoves)
	assert.Equal(t, 3, result.OpponentMoves)
	assert.Equal(t, 4, result.PlayerLastStep)
	assert.Equal(t, 2, result.OpponentLastStep)
}

func TestSimulateRoundRotationSymmetry(t *testing.T) {
	a := boardFromMoves(t, 3,
		piece(2, 0), piece(1, 0), piece(0, 0), final(0))
	b := boardFromMoves(t, 3,
		piece(2, 2), piece(2, 1), piece(1, 1), piece(0, 1), final(1))
	require.NoError(t, a.Validate())
	require.NoError(t, b.Validate())

	ab := SimulateRound(1, a, b, WithSilent())
	ba := SimulateRound(1, b, a, WithSilent())

	assert.Equal(t, ab.PlayerPoints, ba.OpponentPoints, "swapping sides must swap scores")
	assert.Equal(t, ab.OpponentPoints, ba.PlayerPoints, "swapping sides must swap scores")
	assert.Equal(t, PlayerWins, ab.Winner)
	assert.Equal(t, OpponentWins, ba.Winner)
}

func TestSimulateRoundCollision(t *testing.T) {
	t.Run("both sides lose a point, floored at zero", func(t *testing.T) {
		// The player banks one forward point before the pieces meet on
		// (1,0); the opponent arrives sideways with nothing to lose.
		player := boardFromMoves(t, 3, piece(2, 0), piece(1, 0))
		opponent := boardFromMoves(t, 3, piece(1, 1), piece(1, 2))

		result := SimulateRound(1, player, opponent, WithSilent())

		assert.True(t, result.Collision)
		assert.Equal(t, Tie, result.Winner)
		assert.Equal(t, 0, result.PlayerPoints, "the banked point is lost to the collision")
		assert.Equal(t, 0, result.OpponentPoints, "an empty score stays at zero")
		assert.Equal(t, result.PlayerFinal, result.OpponentFinal)
	})

	t.Run("round terminates at the collision step", func(t *testing.T) {
		player := boardFromMoves(t, 3, piece(2, 0), piece(1, 0), piece(0, 0), final(0))
		opponent := boardFromMoves(t, 3, piece(1, 1), piece(1, 2), piece(0, 2))

		result := SimulateRound(1, player, opponent, WithSilent())

		assert.True(t, result.Collision)
		assert.Equal(t, 1, result.PlayerLastStep, "no move may execute after the collision")
		assert.Equal(t, 2, result.PlayerMoves)
	})
}

func TestSimulateRoundTrapHit(t *testing.T) {
	// The opponent arms (1,1) in the player's frame at step 1, right as
	// the player walks onto it with an empty score.
	player := boardFromMoves(t, 3, piece(1, 0), piece(1, 1), piece(0, 1), final(1))
	opponent := boardFromMoves(t, 3, piece(1, 0), trap(1, 1))

	result := SimulateRound(1, player, opponent, WithSilent())

	assert.True(t, result.PlayerHitTrap)
	assert.Equal(t, game.Position{Row: 1, Col: 1}, result.PlayerTrapPos)
	assert.Equal(t, game.Position{Row: 1, Col: 1}, result.PlayerFinal, "the hit ends the player's round on the trap")
	assert.Equal(t, 0, result.PlayerPoints, "the penalty cannot push the score below zero")
	assert.False(t, result.OpponentHitTrap)
	assert.Equal(t, 2, result.PlayerMoves, "no player move may execute after the hit")
	assert.Equal(t, 1, result.PlayerLastStep)
}

func TestSimulateRoundDefaults(t *testing.T) {
	// Boards that never move leave both sides on their starting corners.
	player := game.NewBoard(4)
	opponent := game.NewBoard(4)

	result := SimulateRound(1, player, opponent, WithSilent())

	assert.Equal(t, Tie, result.Winner)
	assert.Equal(t, 0, result.PlayerPoints)
	assert.Equal(t, 0, result.OpponentPoints)
	assert.Equal(t, game.PlayerStart(4), result.PlayerFinal)
	assert.Equal(t, game.OpponentStart(4), result.OpponentFinal)
	assert.False(t, result.Collision)
	assert.Equal(t, -1, result.PlayerLastStep)
	assert.Equal(t, -1, result.OpponentLastStep)
}

func TestSimulateRoundDeterminism(t *testing.T) {
	player := boardFromMoves(t, 3,
		piece(2, 1), trap(2, 1), piece(1, 1), piece(0, 1), final(1))
	opponent := boardFromMoves(t, 3,
		piece(2, 2), piece(1, 2), piece(0, 2), final(2))
	require.NoError(t, player.Validate())
	require.NoError(t, opponent.Validate())

	first := SimulateRound(7, player, opponent, WithSilent())
	second := SimulateRound(7, player, opponent, WithSilent())

	require.Equal(t, first, second, "identical inputs must produce identical results")
}

func TestSimulateRoundLogging(t *testing.T) {
	player := game.NewBoard(2)
	opponent := game.NewBoard(2)

	t.Run("diagnostics go to the configured logger", func(t *testing.T) {
		var buf bytes.Buffer
		SimulateRound(1, player, opponent, WithLogger(zerolog.New(&buf)))
		assert.Contains(t, buf.String(), "round simulated")
	})

	t.Run("silent drops diagnostics", func(t *testing.T) {
		var buf bytes.Buffer
		SimulateRound(1, player, opponent, WithLogger(zerolog.New(&buf)), WithSilent())
		assert.Empty(t, buf.String())
	})
}
