package wave

import "github.com/katalvlaran/waven/space"

// Predetermined names one (cell, tile) pair for seeding a run.
type Predetermined[T comparable] struct {
	// At is the cell coordinate in the output space. Entries outside
	// the space are silently ignored, by documented contract.
	At space.Vector
	// Tile is the tile to assign or ban at the cell.
	Tile T
}

// RunOptions seeds a run before the main loop starts.
type RunOptions[T comparable] struct {
	// Tiles collapses the listed cells to the given tiles first, exactly
	// as if the engine had observed them. Later entries for the same
	// cell win. A predetermined tile that contradicts the rules (or a
	// predetermined ban) surfaces as ErrContradiction from RunWith.
	Tiles []Predetermined[T]

	// Bans removes the listed tiles from the listed cells before the
	// main loop, with full propagation of the consequences.
	Bans []Predetermined[T]
}

// DefaultRunOptions returns empty options: no seeds, no bans.
func DefaultRunOptions[T comparable]() RunOptions[T] {
	return RunOptions[T]{}
}
