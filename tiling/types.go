package tiling

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
)

// Variant selects which open lines the decomposition routes through.
type Variant int

const (
	// Border routes tile crossings through the lattice corners.
	Border Variant = iota
	// Cross routes axis-aligned crossings through the start row and column.
	Cross
)

// String implements fmt.Stringer.
func (v Variant) String() string {
	switch v {
	case Border:
		return "border"
	case Cross:
		return "cross"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Option configures NewDecomposer via functional arguments.
type Option func(*Options)

// Options tunes decomposer construction.
type Options struct {
	// Parallel runs the independent BFS passes concurrently.
	Parallel bool
}

// WithParallel runs the corner, edge and start passes in their own goroutines.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// Source positions of the corner and edge-midpoint passes.
const (
	upperLeft = iota
	upperRight
	lowerLeft
	lowerRight
	top
	bottom
	left
	right
	fromStart
	numSources
)

// settleTiles is how many tiles out from the start tile NewDecomposer checks
// the closed-form distances against a direct BFS.
const settleTiles = 3

// Decomposer holds the per-lattice distance fields reused across budgets.
type Decomposer struct {
	lat     *lattice.Lattice
	variant Variant
	n       int
	fields  [numSources]*distance.Field // nil for edge passes of the Border variant
	warmup  int                         // smallest budget Count accepts
}

// Variant returns the decomposition variant.
func (d *Decomposer) Variant() Variant { return d.variant }

// Warmup returns the smallest budget from which Count is exact. Below it some
// tile copies are closer than the closed form assumes.
func (d *Decomposer) Warmup() int { return d.warmup }

// Lattice returns the decomposed lattice.
func (d *Decomposer) Lattice() *lattice.Lattice { return d.lat }
