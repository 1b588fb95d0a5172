package tiling

import "errors"

var (
	// ErrNilSample indicates FromSample received a nil sample.
	ErrNilSample = errors.New("tiling: sample must not be nil")
	// ErrNilSpace indicates FromRules received a nil space.
	ErrNilSpace = errors.New("tiling: space must not be nil")
	// ErrNoTiles indicates an analysis without a single weighted tile.
	ErrNoTiles = errors.New("tiling: analysis requires at least one tile")
	// ErrDimensionMismatch indicates a rule direction whose dimension
	// differs from the space's.
	ErrDimensionMismatch = errors.New("tiling: rule direction dimension mismatch")
	// ErrZeroDirection indicates a rule with the zero offset.
	ErrZeroDirection = errors.New("tiling: rule direction must be non-zero")
	// ErrDirectionRange indicates a rule direction outside the unit
	// direction box of the space.
	ErrDirectionRange = errors.New("tiling: rule direction outside the direction space")
	// ErrUnknownTile indicates a rule naming a tile without a count, or
	// a weight lookup for an unknown tile.
	ErrUnknownTile = errors.New("tiling: unknown tile")
	// ErrNonPositiveWeight indicates an explicit tile count below one.
	ErrNonPositiveWeight = errors.New("tiling: tile counts must be >= 1")
)
