package tiling

import (
	"fmt"

	"github.com/katalvlaran/latticewalk/distance"
	"github.com/katalvlaran/latticewalk/lattice"
)

// Count returns the number of tiling cells reachable from the start in
// exactly budget steps. Budgets below Warmup are rejected with
// ErrStrategyAssumption.
func (d *Decomposer) Count(budget int) (int, error) {
	if budget < 0 {
		return 0, fmt.Errorf("%w: %d", distance.ErrNegativeBudget, budget)
	}
	if budget < d.warmup {
		return 0, fmt.Errorf("%w: budget %d is below the warm-up budget %d",
			lattice.ErrStrategyAssumption, budget, d.warmup)
	}
	var (
		s      = d.lat.Start()
		parity = budget % 2
		home   = d.fields[fromStart]
		total  int
	)
	d.fields[upperLeft].Each(func(p lattice.Coord, _ int) {
		correct := p.Manhattan(s)%2 == parity
		if ds := home.At(p); correct && ds != distance.Unreached && ds <= budget {
			total++
		}
		for _, off := range d.axisOffsets(p) {
			total += axisCopies(budget, off, d.n, correct)
		}
		for _, off := range d.diagonalOffsets(p) {
			total += diagonalCopies(budget, off, d.n, correct)
		}
	})
	return total, nil
}

// expected returns the closed-form distance from the start to the copy of p
// in tile (ti, tj), or distance.Unreached when p is cut off from the border.
func (d *Decomposer) expected(p lattice.Coord, ti, tj int) int {
	if d.fields[upperLeft].At(p) == distance.Unreached {
		return distance.Unreached
	}
	if ti == 0 && tj == 0 {
		return d.fields[fromStart].At(p)
	}
	if ti == 0 || tj == 0 {
		axis := d.axisOffsets(p)
		switch {
		case ti > 0:
			return axis[0] + (ti-1)*d.n
		case ti < 0:
			return axis[1] + (-ti-1)*d.n
		case tj > 0:
			return axis[2] + (tj-1)*d.n
		default:
			return axis[3] + (-tj-1)*d.n
		}
	}
	quadrant := 0
	if tj < 0 {
		quadrant++
	}
	if ti < 0 {
		quadrant += 2
	}
	return d.diagonalOffsets(p)[quadrant] + (abs(ti)-1+abs(tj)-1)*d.n
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// axisOffsets returns, for p, the cost of reaching its copy in the adjacent
// tile below, above, right and left of the start tile.
func (d *Decomposer) axisOffsets(p lattice.Coord) [4]int {
	s := d.lat.Start()
	at := func(slot int, c lattice.Coord) int { return d.fields[slot].At(c) }

	if d.variant == Cross {
		return [4]int{
			at(bottom, s) + at(top, p) + 1,
			at(top, s) + at(bottom, p) + 1,
			at(right, s) + at(left, p) + 1,
			at(left, s) + at(right, p) + 1,
		}
	}
	return [4]int{
		min(at(lowerLeft, s)+at(upperLeft, p), at(lowerRight, s)+at(upperRight, p)) + 1,
		min(at(upperLeft, s)+at(lowerLeft, p), at(upperRight, s)+at(lowerRight, p)) + 1,
		min(at(upperRight, s)+at(upperLeft, p), at(lowerRight, s)+at(lowerLeft, p)) + 1,
		min(at(upperLeft, s)+at(upperRight, p), at(lowerLeft, s)+at(lowerRight, p)) + 1,
	}
}

// diagonalOffsets returns, for p, the cost of reaching its copy in the
// diagonally adjacent tiles: down-right, down-left, up-right, up-left.
func (d *Decomposer) diagonalOffsets(p lattice.Coord) [4]int {
	s := d.lat.Start()
	at := func(slot int, c lattice.Coord) int { return d.fields[slot].At(c) }
	return [4]int{
		at(lowerRight, s) + at(upperLeft, p) + 2,
		at(lowerLeft, s) + at(upperRight, p) + 2,
		at(upperRight, s) + at(lowerLeft, p) + 2,
		at(upperLeft, s) + at(lowerRight, p) + 2,
	}
}

// axisCopies counts the copies along one ray. The k-th copy (k ≥ 0) costs
// offset + k·n; parity alternates between consecutive copies and the first
// copy has the opposite parity of the start tile.
func axisCopies(budget, offset, n int, correct bool) int {
	if budget < offset {
		return 0
	}
	copies := 1 + (budget-offset)/n
	result := copies / 2
	if copies%2 == 1 && !correct {
		result++
	}
	return result
}

// diagonalCopies counts the copies in one quadrant. Layer k (k ≥ 0) holds k+1
// copies at cost offset + k·n; layer 0 shares the start tile's parity, so the
// matching layers sum to 1+3+5+… = ⌈m/2⌉² or 2+4+6+… = ⌊m/2⌋·(⌊m/2⌋+1).
func diagonalCopies(budget, offset, n int, correct bool) int {
	if budget < offset {
		return 0
	}
	layers := 1 + (budget-offset)/n
	if correct {
		odd := (layers + 1) / 2
		return odd * odd
	}
	even := layers / 2
	return even * (even + 1)
}
