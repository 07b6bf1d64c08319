package game

const (
	MinBoardSize = 2
	MaxBoardSize = 99
)

// FinalRow is the off-grid row reserved for the goal move.
const FinalRow = -1

// Cell is the static content of one grid square.
type Cell int

const (
	Empty Cell = iota
	Piece
	Trap
)

// MoveKind classifies one entry of a board's move sequence.
type MoveKind int

const (
	PieceMove MoveKind = iota
	TrapMove
	FinalMove
)

func (k MoveKind) String() string {
	switch k {
	case PieceMove:
		return "piece"
	case TrapMove:
		return "trap"
	case FinalMove:
		return "final"
	default:
		return "unknown"
	}
}
