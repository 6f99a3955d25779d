package combinat

import "errors"

// Sentinel errors for enumeration inputs.
var (
	// ErrNegativeInput indicates a negative n or k.
	ErrNegativeInput = errors.New("combinat: n and k must be non-negative")
	// ErrKExceedsN indicates more elements requested than available.
	ErrKExceedsN = errors.New("combinat: k must not exceed n")
	// ErrBadCandidate indicates a non-positive target-sum candidate.
	ErrBadCandidate = errors.New("combinat: candidates must be positive")
	// ErrNegativeTarget indicates a negative target sum.
	ErrNegativeTarget = errors.New("combinat: target must be non-negative")
)
