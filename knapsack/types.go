package knapsack

import "errors"

// Sentinel errors for knapsack operations.
var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")
	// ErrNegativeWeight indicates an item with negative weight.
	ErrNegativeWeight = errors.New("knapsack: item weights must be non-negative")
	// ErrNegativeValue indicates an item with negative value.
	ErrNegativeValue = errors.New("knapsack: item values must be non-negative")
	// ErrBadDenomination indicates a non-positive coin denomination.
	ErrBadDenomination = errors.New("knapsack: denominations must be positive")
	// ErrNegativeTarget indicates a target sum below zero.
	ErrNegativeTarget = errors.New("knapsack: target must be non-negative")
	// ErrNegativeElement indicates a negative subset-sum element.
	ErrNegativeElement = errors.New("knapsack: elements must be non-negative")
	// ErrTargetUnreachable indicates no combination reaches the target.
	ErrTargetUnreachable = errors.New("knapsack: no combination reaches the target")
)

// Item is one selectable (weight, value) pair for MaxValue.
type Item struct {
	Weight int
	Value  int
}
