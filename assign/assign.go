package assign

import (
	"fmt"
	"math"
	"math/bits"
)

// MinCost finds a minimum-cost perfect assignment of n workers to n
// tasks on the given cost matrix, where cost[w][t] is the cost of
// worker w doing task t. A value of math.Inf(1) forbids the pairing.
//
// It returns an Assignment with TaskOf (task per worker, a permutation
// of 0..n-1) and the total Cost, or ErrInfeasible if forbidden
// pairings exclude every perfect assignment.
//
// This indexes task subsets by bitmasks from 0…(1<<n)-1:
//
//	dp[mask] = minimum cost of assigning tasks in mask to workers
//	           0..popcount(mask)-1.
//
// After filling dp, the assignment is reconstructed from a per-mask
// choice table, last worker first.
func MinCost(cost [][]float64) (Assignment, error) {
	n := len(cost)
	if n == 0 {
		return Assignment{}, ErrBadMatrix
	}
	// --- 1. Validate matrix shape ---
	for w := 0; w < n; w++ {
		if len(cost[w]) != n {
			return Assignment{}, fmt.Errorf("assign: row %d length %d, want %d: %w", w, len(cost[w]), n, ErrBadMatrix)
		}
	}

	// Full subset mask: all n task bits set.
	allMask := (1 << n) - 1

	// --- 2. Allocate DP and choice tables ---
	dp := make([]float64, 1<<n)
	choice := make([]int, 1<<n)
	for mask := 1; mask <= allMask; mask++ {
		dp[mask] = math.Inf(1) // initialize to +∞
		choice[mask] = -1      // “no task chosen”
	}

	// --- 3. Fill DP in ascending mask order ---
	for mask := 1; mask <= allMask; mask++ {
		// The worker receiving the newest task of this subset.
		worker := bits.OnesCount(uint(mask)) - 1
		for t := 0; t < n; t++ {
			if mask&(1<<t) == 0 {
				continue // t not in subset
			}
			prevMask := mask ^ (1 << t)
			if math.IsInf(dp[prevMask], 1) {
				continue // prefix assignment already impossible
			}
			c := cost[worker][t]
			if math.IsInf(c, 1) {
				continue // forbidden pairing
			}
			if cand := dp[prevMask] + c; cand < dp[mask] {
				dp[mask] = cand
				choice[mask] = t
			}
		}
	}

	if math.IsInf(dp[allMask], 1) {
		return Assignment{}, ErrInfeasible
	}

	// --- 4. Reconstruct the assignment from the choice table ---
	taskOf := make([]int, n)
	mask := allMask
	for worker := n - 1; worker >= 0; worker-- {
		t := choice[mask]
		taskOf[worker] = t
		mask ^= 1 << t
	}

	return Assignment{TaskOf: taskOf, Cost: dp[allMask]}, nil
}
