// Package generator produces random boards that always pass validation.
// It exists for the throughput harness and for property-style tests; the
// engine itself never draws randomness.
package generator

import (
	"fmt"

	"golang.org/x/exp/rand"

	"spaces/game"
)

type Generator struct {
	rng *rand.Rand

	// trapChance is the per-waypoint chance of arming the square under the
	// piece (a supermove).
	trapChance float64
}

// New returns a generator whose output is fully determined by seed.
func New(seed uint64) *Generator {
	return &Generator{
		rng:        rand.New(rand.NewSource(seed)),
		trapChance: 0.3,
	}
}

// Board generates one valid board of the given size. It panics if size is
// outside the legal range, since that is a harness programming error.
func (g *Generator) Board(size int) *game.Board {
	if size < game.MinBoardSize || size > game.MaxBoardSize {
		panic(fmt.Sprintf("generator: board size %d outside [%d, %d]",
			size, game.MinBoardSize, game.MaxBoardSize))
	}

	path := g.path(size)
	board := game.NewBoard(size)
	for _, p := range path {
		board.Grid[p.Row][p.Col] = game.Piece
	}

	// Traps go under the piece mid-path (supermoves). The serpentine path
	// never revisits a square, so the piece always vacates a fresh trap on
	// the next step and never walks back onto it.
	trapsLeft := size - 1
	var seq []game.Move
	for i, p := range path {
		seq = append(seq, game.Move{Pos: p, Kind: game.PieceMove})
		if i < len(path)-1 && trapsLeft > 0 && g.rng.Float64() < g.trapChance {
			seq = append(seq, game.Move{Pos: p, Kind: game.TrapMove})
			board.Grid[p.Row][p.Col] = game.Trap
			trapsLeft--
		}
	}

	last := path[len(path)-1]
	seq = append(seq, game.Move{Pos: game.Position{Row: game.FinalRow, Col: last.Col}, Kind: game.FinalMove})

	for i := range seq {
		seq[i].Order = i + 1
	}
	board.Sequence = seq
	return board
}

// Boards generates n valid boards of the given size.
func (g *Generator) Boards(size, n int) []*game.Board {
	boards := make([]*game.Board, n)
	for i := range boards {
		boards[i] = g.Board(size)
	}
	return boards
}

// path walks from a random square on the bottom row up to row 0, taking a
// random horizontal run in each row. One direction per row and strictly
// rising rows mean no square is ever revisited, and every row gets a piece
// visit on the way up.
func (g *Generator) path(size int) []game.Position {
	pos := game.Position{Row: size - 1, Col: g.rng.Intn(size)}
	path := []game.Position{pos}

	for pos.Row > 0 {
		dir := 1
		if g.rng.Intn(2) == 0 {
			dir = -1
		}
		room := size - 1 - pos.Col
		if dir < 0 {
			room = pos.Col
		}
		for steps := g.rng.Intn(room + 1); steps > 0; steps-- {
			pos.Col += dir
			path = append(path, pos)
		}
		pos.Row--
		path = append(path, pos)
	}
	return path
}
