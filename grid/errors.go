package grid

import "errors"

var (
	// ErrNilSpace indicates a constructor received a nil *space.Space.
	ErrNilSpace = errors.New("grid: space must not be nil")
	// ErrLengthMismatch indicates a flat slice whose length differs from
	// the space's point count.
	ErrLengthMismatch = errors.New("grid: flat slice length must equal the space point count")
	// ErrOutOfBounds indicates a coordinate outside the backing space.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrIndexRange indicates a flat index outside [0, PointCount).
	ErrIndexRange = errors.New("grid: flat index out of range")
)
