package engine

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"spaces/game"
)

// Winner identifies which side of a round came out ahead.
type Winner string

const (
	PlayerWins   Winner = "player"
	OpponentWins Winner = "opponent"
	Tie          Winner = "tie"
)

// RoundResult is the scored, explainable outcome of one round. It is built
// once by SimulateRound and never mutated afterwards.
type RoundResult struct {
	Round         int
	Winner        Winner
	PlayerBoard   *game.Board
	OpponentBoard *game.Board

	// Final positions in the player's frame. A side that never moved
	// defaults to its canonical starting corner.
	PlayerFinal   game.Position
	OpponentFinal game.Position

	PlayerPoints   int
	OpponentPoints int
	Collision      bool

	// Diagnostics.
	PlayerMoves      int
	OpponentMoves    int
	PlayerHitTrap    bool
	OpponentHitTrap  bool
	PlayerTrapPos    game.Position // meaningful only when PlayerHitTrap
	OpponentTrapPos  game.Position // meaningful only when OpponentHitTrap
	PlayerLastStep   int
	OpponentLastStep int
}

// ArityError reports a SimulateRounds call with mismatched board lists.
// This is a programming error at the call site, not a data error.
type ArityError struct {
	PlayerBoards   int
	OpponentBoards int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("mismatched board lists: %d player boards vs %d opponent boards",
		e.PlayerBoards, e.OpponentBoards)
}

type Option func(*config)

type config struct {
	silent bool
	logger zerolog.Logger
}

// WithSilent suppresses the per-round diagnostic log line.
func WithSilent() Option {
	return func(c *config) {
		c.silent = true
	}
}

// WithLogger redirects round diagnostics to the given logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(options ...Option) *config {
	c := &config{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}
