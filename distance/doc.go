// Package distance builds breadth-first distance fields over a lattice and
// counts the cells reachable in an exact number of steps.
//
// What
//
//   - Build runs a single-source BFS from a lattice coordinate and returns a
//     Field of shortest open-path lengths (Unreached where no path exists).
//   - The exploration window is either the lattice itself (default) or an odd
//     square of side 2r+1 centred on the source (WithWindow).
//   - WithToroidal addresses the window through the infinite tiling: window
//     cell (i,j) reads lattice cell (i mod N, j mod M), floor-modulo.
//   - WithMaxDepth stops expanding past a depth; WithOnVisit observes visits.
//   - CountWithin applies the parity law: a cell at distance d ≤ budget is
//     reachable in exactly budget steps iff d and budget share parity.
//
// Why
//
//   - One BFS pass serves every counting strategy: the exact small-budget
//     count, the quadratic samples, and the corner/edge fields of the tile
//     decomposer.
//
// Complexity
//
//   - Build:       O(window area) time and memory; each cell is assigned once.
//   - CountWithin: O(window area).
//
// Errors
//
//   - ErrLatticeNil       if the lattice pointer is nil.
//   - ErrBlockedSource    if the source maps to a blocked or out-of-window cell.
//   - ErrOptionViolation  for a negative window radius or depth.
//   - ErrNegativeBudget   for a negative step budget.
//   - Wrapped OnVisit hook errors.
package distance
