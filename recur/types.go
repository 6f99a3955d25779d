package recur

import (
	"errors"

	"github.com/katalvlaran/lvlsolve/memo"
)

// Sentinel errors for recur operations.
var (
	// ErrNegativeSteps indicates a negative stairway height.
	ErrNegativeSteps = errors.New("recur: step count must be non-negative")
	// ErrBadStride indicates a non-positive or non-increasing stride set.
	ErrBadStride = errors.New("recur: strides must be positive and strictly increasing")
)

// Options configures the step-counting recurrence.
//
// Fields:
//   - Strides — the allowed stride sizes, in strictly increasing order.
//   - Memo    — optional caller-owned cache keyed by remaining height.
//     When nil, StepWays allocates a fresh table per call. A reused
//     table must come from calls with the same Strides; mixing stride
//     sets in one table corrupts it.
type Options struct {
	Strides []int
	Memo    *memo.Table[int, uint64]
}

// DefaultOptions returns Options with Strides={1,2} and no shared memo.
func DefaultOptions() Options {
	return Options{Strides: []int{1, 2}}
}
