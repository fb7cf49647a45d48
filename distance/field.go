package distance

import "github.com/katalvlaran/latticewalk/lattice"

// Field is a rectangular window of BFS distances. Coordinates passed to At
// and yielded by Each are absolute: lattice coordinates for the default
// window, tiling coordinates (possibly negative) for centred windows.
type Field struct {
	origin     lattice.Coord // absolute coordinate of window cell (0,0)
	rows, cols int
	source     lattice.Coord
	dist       []int // row-major, Unreached when no path
}

func newField(origin lattice.Coord, rows, cols int, source lattice.Coord) *Field {
	dist := make([]int, rows*cols)
	for i := range dist {
		dist[i] = Unreached
	}
	return &Field{origin: origin, rows: rows, cols: cols, source: source, dist: dist}
}

// Origin returns the absolute coordinate of the window's top-left cell.
func (f *Field) Origin() lattice.Coord { return f.origin }

// Rows returns the window height.
func (f *Field) Rows() int { return f.rows }

// Cols returns the window width.
func (f *Field) Cols() int { return f.cols }

// Source returns the BFS source.
func (f *Field) Source() lattice.Coord { return f.source }

// Contains reports whether c lies inside the window.
func (f *Field) Contains(c lattice.Coord) bool {
	r, k := c.Row-f.origin.Row, c.Col-f.origin.Col
	return r >= 0 && r < f.rows && k >= 0 && k < f.cols
}

// At returns the distance of c from the source, or Unreached.
func (f *Field) At(c lattice.Coord) int {
	if !f.Contains(c) {
		return Unreached
	}
	return f.dist[f.index(c)]
}

// Reached returns the number of cells with a finite distance.
func (f *Field) Reached() int {
	n := 0
	for _, d := range f.dist {
		if d != Unreached {
			n++
		}
	}
	return n
}

// Within returns the number of cells at distance ≤ budget, regardless of parity.
func (f *Field) Within(budget int) int {
	n := 0
	for _, d := range f.dist {
		if d != Unreached && d <= budget {
			n++
		}
	}
	return n
}

// Each calls fn for every reached cell in row-major order.
func (f *Field) Each(fn func(c lattice.Coord, d int)) {
	for i, d := range f.dist {
		if d == Unreached {
			continue
		}
		fn(f.coord(i), d)
	}
}

func (f *Field) index(c lattice.Coord) int {
	return (c.Row-f.origin.Row)*f.cols + (c.Col - f.origin.Col)
}

func (f *Field) coord(i int) lattice.Coord {
	return lattice.Coord{Row: f.origin.Row + i/f.cols, Col: f.origin.Col + i%f.cols}
}
