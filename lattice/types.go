package lattice

import (
	"errors"
	"fmt"
)

// Sentinel errors for lattice construction and structural checks.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("lattice: grid must have at least one row and one column")
	// ErrMalformedGrid indicates rows of differing width or an unexpected character.
	ErrMalformedGrid = errors.New("lattice: malformed grid")
	// ErrMissingStart indicates the grid carries no start marker.
	ErrMissingStart = errors.New("lattice: missing start marker")
	// ErrAmbiguousStart indicates the grid carries more than one start marker.
	ErrAmbiguousStart = errors.New("lattice: more than one start marker")
	// ErrBlockedStart indicates a start coordinate on a blocked or out-of-range cell.
	ErrBlockedStart = errors.New("lattice: start cell is not open")
	// ErrStrategyAssumption indicates the lattice does not satisfy the structural
	// regularity (square shape, open border, open cross, quadratic growth) that a
	// fast counting strategy relies on.
	ErrStrategyAssumption = errors.New("lattice: strategy assumption violated")
)

// Text markers used by Parse and String.
const (
	MarkOpen    = '.'
	MarkBlocked = '#'
	MarkStart   = 'S'
)

// Cell is the state of one lattice position.
type Cell uint8

const (
	// Open cells can be stepped on.
	Open Cell = iota
	// Blocked cells are impassable.
	Blocked
)

// Rune returns the text marker of c.
func (c Cell) Rune() rune {
	if c == Blocked {
		return MarkBlocked
	}
	return MarkOpen
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("Cell(%d)", uint8(c))
	}
}

// Coord addresses a cell by row and column. Coordinates outside the finite
// lattice address copies in the infinite tiling.
type Coord struct {
	Row, Col int
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns |Δrow| + |Δcol| between c and d.
func (c Coord) Manhattan(d Coord) int {
	return abs(c.Row-d.Row) + abs(c.Col-d.Col)
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Steps lists the four unit moves: up, down, left, right.
var Steps = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Lattice is an immutable rectangular grid of cells with a designated start.
// cells is stored row-major: cells[row*cols + col].
type Lattice struct {
	rows, cols int
	cells      []Cell
	start      Coord
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
