// Package tiling models which tiles may sit next to which, and how
// often each tile should appear.
//
// What:
//
//   - Rule[T] is one directed adjacency fact: Origin may appear with
//     Adjacent at the given non-zero offset.
//   - Analysis[T] is the read-only adjacency model the wave engine runs
//     against: a deduplicated rule set with O(1) membership, per-tile
//     weights with precomputed w·ln w, the total weight pair, the
//     maximum Shannon entropy, and per-(tile, direction) support counts
//     used to seed enablement counters.
//   - FromSample learns all of the above from an example tiling: every
//     adjacent pair observed in the sample becomes a rule plus its
//     inverse, and tile occurrence counts become weights.
//   - FromRules accepts explicit rules and counts instead; no inverse
//     is added on this path — callers supply both directions when they
//     want symmetric adjacency.
//
// Why:
//
//   - Separating the learned model from the collapse engine lets one
//     immutable Analysis drive any number of concurrent runs.
//
// Complexity:
//
//   - FromSample: O(PointCount × directions) rule extraction.
//   - Contains:   O(1) amortized (hash set membership).
//   - Support:    O(directions) (copy of a row precomputed at construction).
//
// Errors:
//
//   - ErrNilSample / ErrNilSpace: nil construction input.
//   - ErrNoTiles: nothing to analyze (empty sample or counts).
//   - ErrDimensionMismatch: rule direction of the wrong dimension.
//   - ErrZeroDirection: rule with the zero offset.
//   - ErrDirectionRange: rule direction outside the unit box.
//   - ErrUnknownTile: rule names a tile missing from the counts.
//   - ErrNonPositiveWeight: explicit count below one.
package tiling
