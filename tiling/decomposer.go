package tiling

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
)

// NewDecomposer validates the variant's preconditions on l and runs its BFS
// passes. The result can count any number of budgets.
func NewDecomposer(l *lattice.Lattice, v Variant, opts ...Option) (*Decomposer, error) {
	if l == nil {
		return nil, distance.ErrLatticeNil
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if err := CheckShape(l, v); err != nil {
		return nil, err
	}

	n, s := l.Size(), l.Start()
	last := n - 1
	sources := map[int]lattice.Coord{
		upperLeft:  {Row: 0, Col: 0},
		upperRight: {Row: 0, Col: last},
		lowerLeft:  {Row: last, Col: 0},
		lowerRight: {Row: last, Col: last},
		fromStart:  s,
	}
	if v == Cross {
		sources[top] = lattice.Coord{Row: 0, Col: s.Col}
		sources[bottom] = lattice.Coord{Row: last, Col: s.Col}
		sources[left] = lattice.Coord{Row: s.Row, Col: 0}
		sources[right] = lattice.Coord{Row: s.Row, Col: last}
	}

	d := &Decomposer{lat: l, variant: v, n: n}
	if err := d.build(sources, o.Parallel); err != nil {
		return nil, err
	}
	if d.fields[upperLeft].At(s) == distance.Unreached {
		return nil, fmt.Errorf("%w: start %v is cut off from the border", lattice.ErrStrategyAssumption, s)
	}
	if err := d.settle(); err != nil {
		return nil, err
	}

	return d, nil
}

// CheckShape reports, as ErrStrategyAssumption, the first structural
// precondition of variant v that l violates. It does not run any BFS.
func CheckShape(l *lattice.Lattice, v Variant) error {
	if l == nil {
		return distance.ErrLatticeNil
	}
	n := l.Size()
	switch {
	case n == 0:
		return fmt.Errorf("%w: lattice is %d×%d, not square", lattice.ErrStrategyAssumption, l.Rows(), l.Cols())
	case n%2 == 0:
		return fmt.Errorf("%w: side %d is even", lattice.ErrStrategyAssumption, n)
	case !l.HasOpenBorder():
		return fmt.Errorf("%w: border is not fully open", lattice.ErrStrategyAssumption)
	}

	switch v {
	case Border:
		want := 2
		if n == 1 {
			want = 1
		}
		rows, cols := l.OpenRows(), l.OpenCols()
		if rows.Size() != want || cols.Size() != want {
			return fmt.Errorf("%w: %d open rows and %d open columns, want only the border",
				lattice.ErrStrategyAssumption, rows.Size(), cols.Size())
		}
	case Cross:
		if !l.HasOpenCross() {
			return fmt.Errorf("%w: start row or column is blocked", lattice.ErrStrategyAssumption)
		}
	default:
		return fmt.Errorf("%w: unknown variant %v", lattice.ErrStrategyAssumption, v)
	}
	return nil
}

// build runs one bounded BFS per source. The passes share nothing but the
// read-only lattice, so the parallel path needs no locking.
func (d *Decomposer) build(sources map[int]lattice.Coord, parallel bool) error {
	if !parallel {
		for slot, src := range sources {
			f, err := distance.Build(d.lat, src)
			if err != nil {
				return err
			}
			d.fields[slot] = f
		}
		return nil
	}

	var (
		wg   sync.WaitGroup
		errs [numSources]error
	)
	for slot, src := range sources {
		wg.Add(1)
		go func(slot int, src lattice.Coord) {
			defer wg.Done()
			d.fields[slot], errs[slot] = distance.Build(d.lat, src)
		}(slot, src)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// settle compares the closed-form distance of every cell in the tiles within
// settleTiles of the start tile against a plain toroidal BFS. Closed-form
// distances are lengths of real walks, so they can only overshoot; warmup
// becomes the largest overshooting distance, beyond which an overshoot no
// longer changes any count. The outermost ring must agree exactly.
func (d *Decomposer) settle() error {
	n, s := d.n, d.lat.Start()
	plane, err := distance.Build(d.lat, s, distance.WithWindow((settleTiles+2)*n), distance.WithToroidal())
	if err != nil {
		return err
	}

	for ti := -settleTiles; ti <= settleTiles; ti++ {
		for tj := -settleTiles; tj <= settleTiles; tj++ {
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					p := lattice.Coord{Row: r, Col: c}
					want := plane.At(lattice.Coord{Row: ti*n + r, Col: tj*n + c})
					if want == distance.Unreached {
						continue
					}
					got := d.expected(p, ti, tj)
					if got == distance.Unreached {
						return fmt.Errorf("%w: %v of tile (%d,%d) is reachable but not from the border",
							lattice.ErrStrategyAssumption, p, ti, tj)
					}
					if got <= want {
						continue
					}
					if max(abs(ti), abs(tj)) == settleTiles {
						return fmt.Errorf("%w: tile distances have not settled %d tiles out",
							lattice.ErrStrategyAssumption, settleTiles)
					}
					d.warmup = max(d.warmup, got)
				}
			}
		}
	}
	return nil
}
