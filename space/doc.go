// Package space provides the coordinate primitives every other waven
// package is addressed in: integer vectors of arbitrary dimension and
// axis-aligned boxes with per-axis periodicity.
//
// What:
//
//   - Vector wraps an immutable ordered tuple of ints with componentwise
//     arithmetic, value equality and a stable string key for map use.
//   - Space is an immutable box [Min, Max] ⊂ ℤⁿ with a periodic flag per
//     axis. It memoizes axis ranges, the total point count and row-major
//     strides at construction.
//   - Wrap applies mathematical modulo on periodic axes, so any integer
//     coordinate lands back inside [Min, Max] on those axes.
//   - FlatIndex and CoordsAt form a bijection between in-range
//     coordinates and [0, PointCount); Points enumerates all coordinates
//     with the first axis varying slowest. The enumeration order is a
//     public contract — grid constructors that accept flat slices rely
//     on it.
//
// Why:
//
//   - One addressing scheme for sample inputs, output cells and
//     adjacency offsets, independent of dimension count.
//   - Periodic axes make generated content seamlessly tileable.
//
// Complexity:
//
//   - Vector ops:        O(n) per operation (n = dimension count).
//   - Contains / Wrap:   O(n).
//   - FlatIndex/CoordsAt O(n).
//   - Points:            O(n·PointCount) time, O(n·PointCount) memory.
//
// Errors:
//
//   - ErrEmptyVector: a vector needs at least one component.
//   - ErrDimensionMismatch: operands disagree on dimension count.
//   - ErrZeroDivisor: componentwise Div/Mod by a zero component.
//   - ErrRangeInverted: an axis with Min > Max.
//   - ErrOutOfBounds: coordinate outside a non-periodic axis.
//   - ErrIndexRange: flat index outside [0, PointCount).
package space
