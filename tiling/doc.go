// Package tiling counts reachable cells in closed form for lattices whose
// border (and, for the Cross variant, start row and column) is fully open.
//
// What:
//
//   - A Decomposer runs a constant number of finite-lattice BFS passes, from
//     the four corners (Border), plus the four edge midpoints on the start's
//     row and column (Cross), plus the start itself.
//   - Count(budget) then visits every lattice cell p once and adds up the
//     tile copies of p reachable in exactly budget steps: the start tile, four
//     axis-aligned rays of tiles and four diagonal quadrants.
//
// Why:
//
//   - With the straight lines open, the cheapest crossing between adjacent
//     tile copies is always through a fixed boundary cell, so reaching a copy
//     k tiles away costs a per-cell offset plus k·N. The number of copies that
//     fit under the budget, and how many of those share the budget's parity,
//     follows from arithmetic series, independent of how large budget is.
//
// Preconditions (ErrStrategyAssumption otherwise):
//
//   - the lattice is square with odd side N, so parity flips between tiles;
//   - Border: the fully open rows and columns are exactly {0, N-1};
//   - Cross: the border and the start row and column are fully open;
//   - the start is connected to the border;
//   - within three tiles of the start tile, every closed-form distance that
//     overshoots the true one lies in the inner two rings. The largest such
//     distance is the Warmup budget; Count rejects smaller budgets.
//
// Complexity:
//
//   - NewDecomposer: O(5·N²) Border, O(9·N²) Cross, plus O(100·N²) for
//     the warm-up check.
//   - Count:         O(N²) per budget.
package tiling
