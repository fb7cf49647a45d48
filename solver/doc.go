// Package solver is the entry point collaborators call: it parses a grid,
// picks a counting strategy and returns the number of cells reachable in
// exactly a given number of steps on the infinite tiling.
//
// Solve(text, budget) is the one-call form. A Solver carries the tunables
// (strategy hint, exact threshold, fourth-sample verification, parallel
// passes, logger) and caches tile decomposers per lattice, so repeated
// budgets on the same lattice reuse their distance fields.
//
// Errors from lattice.Parse are returned unchanged. Strategy failures wrap
// lattice.ErrStrategyAssumption; the solver never falls back on its own, so a
// caller can retry with WithStrategy(classify.Exact) when that is affordable.
package solver
