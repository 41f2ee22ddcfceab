package algebra

import "errors"

var (
	// ErrZeroDim indicates a requested dimension or shape that is not positive.
	ErrZeroDim = errors.New("algebra: dimension must be positive")
	// ErrShape indicates mismatched dimensions in an arithmetic operation.
	ErrShape = errors.New("algebra: dimension mismatch")
	// ErrIndex indicates a component index outside the valid range.
	ErrIndex = errors.New("algebra: index out of range")
	// ErrNotVec3 indicates a vector that must be 3-dimensional but is not.
	ErrNotVec3 = errors.New("algebra: vector must have dimension 3")
)
