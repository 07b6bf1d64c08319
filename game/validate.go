package game

import (
	"fmt"
	"strings"
)

// Rule identifiers carried by Violation, one per legality rule the
// validator enforces.
const (
	RuleGrid      = "grid"       // size out of range or grid dimensions wrong
	RuleSequence  = "sequence"   // empty sequence or missing final move
	RuleBounds    = "bounds"     // position outside the grid
	RuleCellMatch = "cell"       // move kind does not match grid content
	RuleAdjacency = "adjacency"  // diagonal step, jump, or detached trap
	RuleTrapStep  = "trap-step"  // piece stepping onto a recorded trap
	RuleSupermove = "supermove"  // supermove discipline broken
	RuleTrapLimit = "trap-limit" // more than size-1 traps
	RuleTraversal = "traversal"  // piece never visited some row
	RuleOrder     = "order"      // trap or final before the piece exists
)

// Violation is one legality failure found by Validate. Move is the 0-based
// index of the offending sequence entry, or -1 for board-level failures.
type Violation struct {
	Move    int
	Rule    string
	Message string
}

func (v Violation) String() string {
	if v.Move < 0 {
		return fmt.Sprintf("%s: %s", v.Rule, v.Message)
	}
	return fmt.Sprintf("move %d (%s): %s", v.Move, v.Rule, v.Message)
}

// ValidationError reports why a board is not playable.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "invalid board: " + strings.Join(msgs, "; ")
}

// Validate decides whether the board is a legal, playable program. It
// returns nil on success and a *ValidationError otherwise. Validation is a
// single pass over the move sequence, is pure, and holds no state between
// calls.
func (b *Board) Validate() error {
	if b.Size < MinBoardSize || b.Size > MaxBoardSize {
		return reject(-1, RuleGrid, fmt.Sprintf("board size %d outside [%d, %d]", b.Size, MinBoardSize, MaxBoardSize))
	}
	if len(b.Grid) != b.Size {
		return reject(-1, RuleGrid, fmt.Sprintf("grid has %d rows, want %d", len(b.Grid), b.Size))
	}
	for r, row := range b.Grid {
		if len(row) != b.Size {
			return reject(-1, RuleGrid, fmt.Sprintf("grid row %d has %d cells, want %d", r, len(row), b.Size))
		}
	}
	if len(b.Sequence) == 0 {
		return reject(-1, RuleSequence, "move sequence is empty")
	}

	// cursor is the last on-grid position the sequence touched. Trap
	// placements advance it too: the adjacency of each move is judged
	// against the previous sequence entry, not only the piece's square.
	var (
		cursor      *Position
		traps       = map[int]struct{}{}
		pending     *Position // unresolved supermove square
		visitedRows = map[int]struct{}{}
		hasFinal    bool
	)

	for i, move := range b.Sequence {
		switch move.Kind {
		case FinalMove:
			if move.Pos.Row != FinalRow {
				return reject(i, RuleBounds, fmt.Sprintf("final move row must be %d, got %d", FinalRow, move.Pos.Row))
			}
			if move.Pos.Col < 0 || move.Pos.Col >= b.Size {
				return reject(i, RuleBounds, fmt.Sprintf("final move column %d outside grid", move.Pos.Col))
			}
			if pending != nil {
				return reject(i, RuleSupermove, "goal reached without vacating the supermove square")
			}
			if hasFinal {
				return reject(i, RuleSequence, "sequence has more than one final move")
			}
			hasFinal = true

		case PieceMove:
			if !move.Pos.InBounds(b.Size) {
				return reject(i, RuleBounds, fmt.Sprintf("piece move at %v outside grid", move.Pos))
			}
			if c := b.Cell(move.Pos); c != Piece && c != Trap {
				return reject(i, RuleCellMatch, fmt.Sprintf("grid cell at %v holds neither piece nor trap", move.Pos))
			}
			if pending != nil {
				if move.Pos == *pending {
					return reject(i, RuleSupermove, "piece did not move off the supermove square")
				}
				pending = nil
			}
			if cursor != nil {
				if !move.Pos.Adjacent(*cursor) {
					return reject(i, RuleAdjacency, fmt.Sprintf("piece step %v -> %v is not one orthogonal square", *cursor, move.Pos))
				}
				if _, trapped := traps[move.Pos.Key(b.Size)]; trapped {
					return reject(i, RuleTrapStep, fmt.Sprintf("piece stepped onto trap at %v", move.Pos))
				}
			}
			pos := move.Pos
			cursor = &pos
			visitedRows[pos.Row] = struct{}{}

		case TrapMove:
			if !move.Pos.InBounds(b.Size) {
				return reject(i, RuleBounds, fmt.Sprintf("trap at %v outside grid", move.Pos))
			}
			if b.Cell(move.Pos) != Trap {
				return reject(i, RuleCellMatch, fmt.Sprintf("grid cell at %v does not hold a trap", move.Pos))
			}
			if cursor == nil {
				return reject(i, RuleOrder, "trap placed before the piece exists")
			}
			if move.Pos == *cursor {
				// Supermove: trap under the piece, which must vacate next.
				if pending != nil {
					return reject(i, RuleSupermove, "supermove while another supermove is unresolved")
				}
				pos := move.Pos
				pending = &pos
			} else {
				if pending != nil {
					return reject(i, RuleSupermove, "trap placed while a supermove is unresolved")
				}
				if !move.Pos.Adjacent(*cursor) {
					return reject(i, RuleAdjacency, fmt.Sprintf("trap at %v not adjacent to %v", move.Pos, *cursor))
				}
				pos := move.Pos
				cursor = &pos
			}
			traps[move.Pos.Key(b.Size)] = struct{}{}

		default:
			return reject(i, RuleSequence, fmt.Sprintf("unknown move kind %d", move.Kind))
		}
	}

	var violations []Violation
	if len(traps) > b.Size-1 {
		violations = append(violations, Violation{
			Move: -1, Rule: RuleTrapLimit,
			Message: fmt.Sprintf("%d traps placed, at most %d allowed", len(traps), b.Size-1),
		})
	}
	if pending != nil {
		violations = append(violations, Violation{
			Move: -1, Rule: RuleSupermove,
			Message: fmt.Sprintf("sequence ends with unresolved supermove at %v", *pending),
		})
	}
	if !hasFinal {
		violations = append(violations, Violation{
			Move: -1, Rule: RuleSequence,
			Message: "sequence has no final move",
		})
	}
	for row := 0; row < b.Size; row++ {
		if _, ok := visitedRows[row]; !ok {
			violations = append(violations, Violation{
				Move: -1, Rule: RuleTraversal,
				Message: fmt.Sprintf("piece never visited row %d", row),
			})
		}
	}
	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}

func reject(move int, rule, message string) error {
	return &ValidationError{Violations: []Violation{{Move: move, Rule: rule, Message: message}}}
}
