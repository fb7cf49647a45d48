package distance

import (
	"fmt"

	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/latticewalk/lattice"
)

// walker encapsulates mutable BFS state.
type walker struct {
	lat   *lattice.Lattice
	opts  Options
	field *Field
	queue *queue.Queue[int]
}

// Build runs breadth-first search over l from source, applying any number of
// functional Options, and returns the resulting distance Field.
// Returns ErrLatticeNil, ErrOptionViolation, ErrBlockedSource, or a wrapped
// OnVisit error.
func Build(l *lattice.Lattice, source lattice.Coord, opts ...Option) (*Field, error) {
	if l == nil {
		return nil, ErrLatticeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var f *Field
	if o.Centered {
		side := 2*o.Radius + 1
		origin := lattice.Coord{Row: source.Row - o.Radius, Col: source.Col - o.Radius}
		f = newField(origin, side, side, source)
	} else {
		f = newField(lattice.Coord{}, l.Rows(), l.Cols(), source)
	}

	w := &walker{lat: l, opts: o, field: f, queue: queue.New[int]()}
	if !w.open(source) {
		return nil, fmt.Errorf("%w: %v", ErrBlockedSource, source)
	}

	w.enqueue(source, 0)
	return f, w.loop()
}

// open reports whether c is inside the window and open under the addressing mode.
func (w *walker) open(c lattice.Coord) bool {
	if !w.field.Contains(c) {
		return false
	}
	if w.opts.Toroidal {
		return w.lat.IsOpenWrapped(c)
	}
	return w.lat.IsOpen(c)
}

// enqueue assigns depth d to c and schedules it.
func (w *walker) enqueue(c lattice.Coord, d int) {
	i := w.field.index(c)
	w.field.dist[i] = d
	w.queue.Enqueue(i)
}

// loop drains the worklist frontier by frontier.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		i := w.queue.Dequeue()
		c, d := w.field.coord(i), w.field.dist[i]
		if err := w.opts.OnVisit(c, d); err != nil {
			return fmt.Errorf("distance: OnVisit error at %v: %w", c, err)
		}
		if w.opts.MaxDepth > 0 && d >= w.opts.MaxDepth {
			continue
		}
		for _, step := range lattice.Steps {
			nbr := c.Add(step)
			if !w.open(nbr) || w.field.At(nbr) != Unreached {
				continue
			}
			w.enqueue(nbr, d+1)
		}
	}
	return nil
}
