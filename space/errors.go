package space

import "errors"

var (
	// ErrEmptyVector indicates a vector with zero components.
	ErrEmptyVector = errors.New("space: vector must have at least one component")
	// ErrDimensionMismatch indicates operands of differing dimensionality.
	ErrDimensionMismatch = errors.New("space: dimension mismatch")
	// ErrZeroDivisor indicates componentwise division or modulo by zero.
	ErrZeroDivisor = errors.New("space: division by zero component")
	// ErrRangeInverted indicates an axis whose minimum exceeds its maximum.
	ErrRangeInverted = errors.New("space: axis minimum exceeds maximum")
	// ErrOutOfBounds indicates a coordinate outside a non-periodic axis.
	ErrOutOfBounds = errors.New("space: coordinate out of bounds")
	// ErrIndexRange indicates a flat index outside [0, PointCount).
	ErrIndexRange = errors.New("space: flat index out of range")
)
