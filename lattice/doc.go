// Package lattice holds the finite, immutable unit grid that tiles the plane.
//
// What:
//
//   - Lattice wraps a rectangular grid of Open/Blocked cells plus a start Coord.
//   - Parse reads the text form ('.' open, '#' blocked, 'S' start).
//   - Wrap / IsOpenWrapped address the infinite tiling with floor-modulo.
//   - OpenRows / OpenCols / HasOpenBorder / HasOpenCross expose the structural
//     regularities that the fast counting strategies rely on.
//
// Why:
//
//   - Every distance field, classifier decision and closed-form sum reads the
//     same lattice; keeping it immutable lets callers share it freely and key
//     caches on its pointer identity.
//
// Complexity:
//
//   - Parse / New:            O(W×H) time and memory.
//   - At / IsOpen / Wrap:     O(1).
//   - OpenRows / OpenCols:    O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:          input has no rows or no columns.
//   - ErrMalformedGrid:      rows of differing width or an unknown character.
//   - ErrMissingStart:       no 'S' marker.
//   - ErrAmbiguousStart:     more than one 'S' marker.
//   - ErrBlockedStart:       New was given a start on a blocked cell.
//   - ErrStrategyAssumption: shared by the counting strategies when the lattice
//     lacks the regularity a fast path assumed.
package lattice
