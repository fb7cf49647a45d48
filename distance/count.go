package distance

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/lattice"
)

// CountWithin counts the cells of f whose distance is at most budget and whose
// Manhattan distance to start has the parity of budget. A shortest path of
// such a length can be padded to exactly budget steps by stepping back and
// forth; the other parity never lands on budget.
func CountWithin(f *Field, start lattice.Coord, budget int) int {
	parity := budget % 2
	n := 0
	f.Each(func(c lattice.Coord, d int) {
		if d <= budget && c.Manhattan(start)%2 == parity {
			n++
		}
	})
	return n
}

// CountExact counts the tiling cells reachable from the lattice start in
// exactly budget steps by brute force: a toroidal BFS over the (2·budget+1)²
// window. Correct for any lattice shape; O(budget²) time and memory.
func CountExact(l *lattice.Lattice, budget int) (int, error) {
	if l == nil {
		return 0, ErrLatticeNil
	}
	if budget < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeBudget, budget)
	}
	f, err := Build(l, l.Start(), WithWindow(budget), WithToroidal(), WithMaxDepth(budget))
	if err != nil {
		return 0, err
	}
	return CountWithin(f, l.Start(), budget), nil
}
