package game

// Position is a grid coordinate. Row FinalRow (-1) only ever appears on a
// board's goal move; everywhere else both coordinates are in [0, Size-1].
type Position struct {
	Row int
	Col int
}

// Key packs a position into a single int for map lookups. Off-grid rows
// (the two goal markers) pack outside [0, size*size), so they can never
// alias a board square.
func (p Position) Key(size int) int {
	return p.Row*size + p.Col
}

// Adjacent reports whether o is exactly one orthogonal step away.
func (p Position) Adjacent(o Position) bool {
	dr := p.Row - o.Row
	dc := p.Col - o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// Rotate applies the 180° transform that views the opposing board from this
// side's frame.
func (p Position) Rotate(size int) Position {
	return Position{Row: size - 1 - p.Row, Col: size - 1 - p.Col}
}

// InBounds reports whether the position is a real square of a size×size grid.
func (p Position) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Col >= 0 && p.Col < size
}

// Move is one entry of a board's pre-committed sequence. Order is the dense
// 1-based index of the move within the sequence.
type Move struct {
	Pos   Position
	Kind  MoveKind
	Order int
}

// Board is one player's pre-committed program: a static grid plus the
// ordered moves that animate it. Boards are authored in the owner's local
// frame (row 0 is the owner's goal side) and are read-only to the engine.
type Board struct {
	Size     int
	Grid     [][]Cell
	Sequence []Move
}

// NewBoard returns an empty size×size board with no moves.
func NewBoard(size int) *Board {
	grid := make([][]Cell, size)
	for i := range grid {
		grid[i] = make([]Cell, size)
	}
	return &Board{Size: size, Grid: grid}
}

// Cell returns the grid content at p. Off-grid positions read as Empty.
func (b *Board) Cell(p Position) Cell {
	if !p.InBounds(b.Size) {
		return Empty
	}
	return b.Grid[p.Row][p.Col]
}

func (b *Board) Copy() *Board {
	gridCopy := make([][]Cell, len(b.Grid))
	for i, row := range b.Grid {
		rowCopy := make([]Cell, len(row))
		copy(rowCopy, row)
		gridCopy[i] = rowCopy
	}

	seqCopy := make([]Move, len(b.Sequence))
	copy(seqCopy, b.Sequence)

	return &Board{
		Size:     b.Size,
		Grid:     gridCopy,
		Sequence: seqCopy,
	}
}

// PlayerStart is the canonical starting corner of the player's piece.
func PlayerStart(size int) Position {
	return Position{Row: size - 1, Col: 0}
}

// OpponentStart is the opponent's canonical starting corner, already seen
// from the player's frame.
func OpponentStart(size int) Position {
	return Position{Row: 0, Col: size - 1}
}
