// Package grid stores values keyed by the coordinates of a space.Space.
//
// What:
//
//   - Dense[V] holds exactly Space.PointCount() values in a flat backing
//     slice, laid out in Space.Points() order (first axis slowest). It
//     is the storage for example tilings, collapsed outputs and the
//     per-cell wave nodes.
//   - Sparse[V] holds values in a map keyed by Vector.Key(). Unset
//     coordinates read as a caller-chosen absent sentinel; writing the
//     sentinel removes the entry.
//
// Why:
//
//   - Dense gives O(1) coordinate access with cache-friendly layout,
//     like a row-major matrix generalized to n axes.
//   - Sparse suits partial assignments (seeds, bans) over large spaces.
//
// Complexity:
//
//   - Dense At/Set:   O(n) (coordinate → flat index).
//   - Dense Clone:    O(PointCount).
//   - Sparse At/Set:  O(n) hashing plus map access.
//
// Errors:
//
//   - ErrNilSpace: constructor received a nil space.
//   - ErrLengthMismatch: flat constructor input of the wrong length.
//   - ErrOutOfBounds: coordinate outside a non-periodic axis.
//   - ErrIndexRange: flat index outside [0, PointCount).
package grid
