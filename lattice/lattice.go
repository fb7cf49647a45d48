package lattice

import (
	"fmt"
	"strings"
)

// New constructs a Lattice from a non-empty rectangular 2D slice of cells.
// The input is deep-copied, so later mutation of cells does not leak in.
// Returns ErrEmptyGrid, ErrMalformedGrid for ragged rows, or ErrBlockedStart
// when start is outside the grid or on a blocked cell.
func New(cells [][]Cell, start Coord) (*Lattice, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	flat := make([]Cell, 0, h*w)
	for i, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedGrid, i, len(row), w)
		}
		flat = append(flat, row...)
	}
	l := &Lattice{rows: h, cols: w, cells: flat, start: start}
	if !l.IsOpen(start) {
		return nil, fmt.Errorf("%w: %v", ErrBlockedStart, start)
	}

	return l, nil
}

// Parse builds a Lattice from its text form: one line per row, '.' for open,
// '#' for blocked and exactly one 'S' marking the (open) start cell.
// Leading/trailing blank space around the grid and '\r' line endings are ignored.
func Parse(text string) (*Lattice, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")

	var (
		width = -1
		cells = make([]Cell, 0, len(text))
		start Coord
		found int
	)
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if width < 0 {
			width = len(line)
		} else if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", ErrMalformedGrid, i, len(line), width)
		}
		for j := 0; j < len(line); j++ {
			switch line[j] {
			case MarkOpen:
				cells = append(cells, Open)
			case MarkBlocked:
				cells = append(cells, Blocked)
			case MarkStart:
				found++
				if found > 1 {
					return nil, fmt.Errorf("%w: second marker at (%d,%d)", ErrAmbiguousStart, i, j)
				}
				start = Coord{Row: i, Col: j}
				cells = append(cells, Open)
			default:
				return nil, fmt.Errorf("%w: unexpected character %q at (%d,%d)", ErrMalformedGrid, line[j], i, j)
			}
		}
	}
	if found == 0 {
		return nil, ErrMissingStart
	}

	return &Lattice{rows: len(lines), cols: width, cells: cells, start: start}, nil
}

// Rows returns the number of rows.
func (l *Lattice) Rows() int { return l.rows }

// Cols returns the number of columns.
func (l *Lattice) Cols() int { return l.cols }

// IsSquare reports whether the lattice has as many rows as columns.
func (l *Lattice) IsSquare() bool { return l.rows == l.cols }

// Size returns the side N of a square lattice, or 0 when it is not square.
func (l *Lattice) Size() int {
	if !l.IsSquare() {
		return 0
	}
	return l.rows
}

// Start returns the start coordinate.
func (l *Lattice) Start() Coord { return l.start }

// InBounds reports whether c lies inside the finite lattice.
func (l *Lattice) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < l.rows && c.Col >= 0 && c.Col < l.cols
}

// At returns the cell at c. Coordinates outside the lattice read as Blocked.
func (l *Lattice) At(c Coord) Cell {
	if !l.InBounds(c) {
		return Blocked
	}
	return l.cells[c.Row*l.cols+c.Col]
}

// IsOpen reports whether c lies inside the lattice and is open.
func (l *Lattice) IsOpen(c Coord) bool {
	return l.At(c) == Open
}

// Wrap maps an unbounded coordinate of the tiling onto the finite lattice
// using floor-modulo, so (-1,-1) maps to (rows-1, cols-1).
func (l *Lattice) Wrap(c Coord) Coord {
	return Coord{Row: floorMod(c.Row, l.rows), Col: floorMod(c.Col, l.cols)}
}

// IsOpenWrapped reports whether the tiling cell at c is open.
func (l *Lattice) IsOpenWrapped(c Coord) bool {
	return l.IsOpen(l.Wrap(c))
}

// String renders the lattice back into its text form (rows joined by '\n').
func (l *Lattice) String() string {
	var b strings.Builder
	b.Grow(l.rows * (l.cols + 1))
	for i := 0; i < l.rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j := 0; j < l.cols; j++ {
			c := Coord{Row: i, Col: j}
			if c == l.start {
				b.WriteByte(MarkStart)
				continue
			}
			b.WriteRune(l.At(c).Rune())
		}
	}
	return b.String()
}

func floorMod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
