package interval

import "errors"

// Sentinel errors for interval operations.
var (
	// ErrTooFewDims indicates fewer than two matrix dimensions.
	ErrTooFewDims = errors.New("interval: need at least two dimensions (one matrix)")
	// ErrBadDimension indicates a non-positive matrix dimension.
	ErrBadDimension = errors.New("interval: dimensions must be positive")
)
