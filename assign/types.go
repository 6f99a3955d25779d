package assign

import "errors"

// Sentinel errors for assignment solving.
var (
	// ErrBadMatrix indicates an empty or ragged cost matrix.
	ErrBadMatrix = errors.New("assign: cost matrix must be square and non-empty")
	// ErrInfeasible indicates no perfect assignment avoids every
	// forbidden pairing.
	ErrInfeasible = errors.New("assign: no feasible assignment")
)

// Assignment holds the outcome of MinCost.
type Assignment struct {
	// TaskOf[w] is the task index assigned to worker w.
	// For n workers, len(TaskOf) == n and TaskOf is a permutation of 0..n-1.
	TaskOf []int

	// Cost is the total cost of the assignment.
	Cost float64
}
