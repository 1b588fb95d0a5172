// Package wave runs the observe/propagate core of Wave Function
// Collapse over any tiling.Analysis and output space.Space.
//
// What:
//
//   - Node is one cell's wave state: the set of still-possible tiles,
//     per-(tile, direction) enablement counters, and incrementally
//     maintained total weight and Shannon entropy.
//   - Wave is the dense array of nodes over the output space, returned
//     from every run — complete on success, partial on contradiction so
//     callers can inspect which cell ran dry.
//   - Runner owns the loop: pick the lowest-entropy undecided cell
//     (ties broken uniformly by the caller's RNG), collapse it to one
//     tile by weighted random choice, then propagate forbidden-tile
//     consequences depth-first until quiescence or contradiction.
//   - RunOptions carries predetermined tile assignments and bans that
//     are applied — and propagated — before the main loop. Entries
//     outside the output space are silently ignored by contract.
//
// Why:
//
//   - The engine is dimension-generic: the same loop fills strips,
//     maps and volumes, with periodic axes producing tileable output.
//   - Injected RNG is the only nondeterminism: identical inputs and an
//     identical RNG stream reproduce the terminal wave exactly.
//
// Complexity:
//
//   - One run: O(cells × tiles × directions) propagation work plus an
//     O(cells) selection scan per collapse.
//   - Memory: O(cells × tiles × directions) enablement counters,
//     allocated once via prototype cloning.
//
// Errors:
//
//   - ErrNilSpace / ErrNilAnalysis / ErrDimensionMismatch: construction.
//   - ErrContradiction: some cell lost every possibility; the partial
//     wave is returned for inspection. Not retried internally — rerun
//     with a different seed.
//   - ErrUnknownTile: ban of a tile that is not possible (invariant
//     violation when the engine raises it itself).
//   - ErrNotCollapsed: Collapsed() on an unfinished wave.
//   - ErrInternal: zero-total weighted pick or similar.
package wave
