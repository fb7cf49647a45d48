// Package latticewalk counts the cells reachable in exactly N steps on a
// finite grid repeated without bound in every direction.
//
// What is latticewalk?
//
//	A small library and CLI built from a handful of focused packages:
//		• lattice     – the finite tile: parsing, wrapping, open rows/columns, regions
//		• distance    – bounded BFS fields, windowed or toroidal, and the parity count
//		• classify    – picks a counting strategy from the tile's regularities
//		• extrapolate – quadratic fit over budgets r, r+N, r+2N (verified at r+3N)
//		• tiling      – closed-form tile decomposition for open-border and open-cross tiles
//		• solver      – the entry point: Solve(text, budget) and a reusable Solver
//		• render      – draws the reachable set with lipgloss styles
//		• config      – YAML configuration with an embedded default
//
// Parity law:
//
//	A cell at BFS distance d from the start is reachable in exactly S steps
//	iff d ≤ S and d ≡ S (mod 2): a walker can always burn two steps by
//	stepping back and forth.
//
// Quick example:
//
//	...........
//	.....###.#.
//	.###.##..#.
//	..#.#...#..
//	....#.#....
//	.##..S####.      6 steps → 16 cells
//	.##..#...#.    100 steps → 6536 cells
//	.......##..
//	.##.#.####.
//	.##..##.##.
//	...........
//
//	go install github.com/katalvlaran/latticewalk/cmd/latticewalk@latest
package latticewalk
