// Package extrapolate counts reachable cells for huge step budgets by fitting
// a quadratic through three exact samples spaced one tile width apart.
//
// With N the lattice side and budget = q·N + r, the exact counts v0, v1, v2 at
// budgets r, r+N and r+2N are taken from one toroidal distance field. The
// Newton forward-difference polynomial
//
//	P(x) = a0 + a1·x + a2·x·(x-1),  a0 = v0, a1 = v1-v0, a2 = ((v2-v1)-(v1-v0))/2
//
// interpolates them, and P(q) is the answer. The result is only as good as the
// assumption that the count grows exactly quadratically per tile once the
// wavefront has crossed a few tiles. A non-integral a2, a failed fourth-sample
// check (WithVerify) or a negative P(q) is reported as
// lattice.ErrStrategyAssumption rather than rounded away.
package extrapolate
