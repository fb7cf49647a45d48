// Package classify picks the counting strategy for a lattice and step budget.
//
// The decision is evaluated once per query and never retried:
//
//  1. budget below the exact threshold, or not yet three tile widths past the
//     start tile → Exact (windowed brute-force BFS, correct for any lattice);
//  2. border and the row and column through the start fully open → OpenCross;
//  3. border fully open and no other open line → OpenBorder;
//  4. otherwise → Quadratic extrapolation.
//
// Steps 2 and 3 apply the tile decomposer's structural preconditions
// (tiling.CheckShape), so a lattice is never sent to a variant that would
// reject it on shape. A caller that disagrees may pass a Strategy hint to the
// solver instead.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/latticewalk/lattice"
	"github.com/katalvlaran/latticewalk/tiling"
)

// DefaultThreshold is the budget below which the exact count is always used.
const DefaultThreshold = 100

// warmupTiles is how many tile widths the wavefront must cross before the
// periodic strategies are trusted.
const warmupTiles = 3

// ErrUnknownStrategy is returned by ParseStrategy for unrecognised names.
var ErrUnknownStrategy = errors.New("classify: unknown strategy")

// Strategy names one way of counting reachable cells.
type Strategy int

const (
	// Auto defers to Classify.
	Auto Strategy = iota
	// Exact runs a toroidal BFS over the full (2b+1)² window.
	Exact
	// Quadratic fits a Newton polynomial through three tile-spaced samples.
	Quadratic
	// OpenBorder sums tile copies reached through the open lattice border.
	OpenBorder
	// OpenCross sums tile copies reached through the open start row/column.
	OpenCross
)

var names = [...]string{
	Auto:       "auto",
	Exact:      "exact",
	Quadratic:  "quadratic",
	OpenBorder: "border",
	OpenCross:  "cross",
}

// String implements fmt.Stringer.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return names[s]
}

// ParseStrategy maps a name as printed by String back to a Strategy.
// Matching is case-insensitive; the empty string means Auto.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Auto, nil
	}
	for s, n := range names {
		if n == name {
			return Strategy(s), nil
		}
	}
	return Auto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Classify returns the strategy for counting budget steps on l. A threshold
// ≤ 0 selects DefaultThreshold.
func Classify(l *lattice.Lattice, budget, threshold int) Strategy {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	span := l.Rows()
	if l.Cols() > span {
		span = l.Cols()
	}
	switch {
	case budget < threshold || budget <= warmupTiles*span:
		return Exact
	case tiling.CheckShape(l, tiling.Cross) == nil:
		return OpenCross
	case tiling.CheckShape(l, tiling.Border) == nil:
		return OpenBorder
	default:
		return Quadratic
	}
}
