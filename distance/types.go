package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/latticewalk/lattice"
)

// Sentinel errors for field construction and counting.
var (
	// ErrLatticeNil is returned if a nil lattice pointer is passed.
	ErrLatticeNil = errors.New("distance: lattice is nil")
	// ErrBlockedSource is returned when the BFS source is not an open window cell.
	ErrBlockedSource = errors.New("distance: source cell is blocked")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
	// ErrNegativeBudget is returned for step budgets below zero.
	ErrNegativeBudget = errors.New("distance: negative step budget")
)

// Unreached marks a window cell with no open path from the source.
const Unreached = -1

// Option configures Build via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Build runs.
type Option func(*Options)

// Options holds the window shape and traversal callbacks for Build.
type Options struct {
	// Radius, when Centered is set, gives the window half-side: the window is
	// the (2*Radius+1)² square centred on the source.
	Radius   int
	Centered bool

	// Toroidal maps window coordinates onto the lattice with floor-modulo.
	Toroidal bool

	// MaxDepth, if > 0, stops expanding beyond this depth.
	MaxDepth int

	// OnVisit is called when a cell is dequeued. Returning an error aborts Build.
	OnVisit func(c lattice.Coord, depth int) error

	err error
}

// DefaultOptions returns the lattice-extent, bounded, unlimited-depth setup
// with a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(lattice.Coord, int) error { return nil },
	}
}

// WithWindow explores the (2r+1)² square centred on the source instead of the
// lattice extent.
func WithWindow(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: window radius cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.Radius = r
		o.Centered = true
	}
}

// WithToroidal reads window cells through the infinite periodic tiling.
func WithToroidal() Option {
	return func(o *Options) {
		o.Toroidal = true
	}
}

// WithMaxDepth stops the search at depth d.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run for every dequeued cell.
func WithOnVisit(fn func(c lattice.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
