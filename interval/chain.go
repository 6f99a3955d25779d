package interval

import "math"

// MatrixChain returns the minimum number of scalar multiplications
// needed to evaluate the product of n = len(dims)-1 matrices, where
// matrix i has dimensions dims[i]×dims[i+1].
//
// Recurrence over the half-open matrix interval [i, j]:
//
//	cost[i][i] = 0
//	cost[i][j] = min over splits k in [i, j):
//	             cost[i][k] + cost[k+1][j] + dims[i]·dims[k+1]·dims[j+1]
//
// The table is filled by ascending interval length; every split reads
// two strictly shorter intervals, already computed.
//
// A single matrix costs 0. Returns ErrTooFewDims for len(dims) < 2 and
// ErrBadDimension for any dims[i] < 1.
func MatrixChain(dims []int) (int, error) {
	if len(dims) < 2 {
		return 0, ErrTooFewDims
	}
	for _, d := range dims {
		if d < 1 {
			return 0, ErrBadDimension
		}
	}

	n := len(dims) - 1 // number of matrices
	cost := make([][]int, n)
	for i := range cost {
		cost[i] = make([]int, n)
	}

	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			best := math.MaxInt
			for k := i; k < j; k++ {
				cand := cost[i][k] + cost[k+1][j] + dims[i]*dims[k+1]*dims[j+1]
				if cand < best {
					best = cand
				}
			}
			cost[i][j] = best
		}
	}

	return cost[0][n-1], nil
}
