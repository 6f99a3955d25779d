package recur

import "github.com/katalvlaran/lvlsolve/memo"

// StepWays counts the distinct ordered ways to ascend n steps taking
// strides from opts.Strides (default {1,2} when opts is nil).
//
// Base case: StepWays(0) = 1, the empty ascent. Every other value
// follows the recurrence ways(n) = Σ ways(n-s) over strides s ≤ n.
//
// Evaluation is top-down: each remaining height is computed at most
// once and cached, either in opts.Memo (if supplied) or in a table
// private to this call.
//
// Returns ErrNegativeSteps for n < 0 and ErrBadStride for an invalid
// stride set; both are detected before any recursion.
func StepWays(n int, opts *Options) (uint64, error) {
	strides, tbl, err := prepare(n, opts)
	if err != nil {
		return 0, err
	}

	return descend(n, strides, tbl), nil
}

// StepWaysTab computes the same count bottom-up. The table is filled
// in ascending index order; ways(i) depends only on ways(i-s) with
// s ≥ 1, so every dependency precedes its reader.
//
// opts.Memo is ignored here: tabulation owns its whole table by
// construction.
func StepWaysTab(n int, opts *Options) (uint64, error) {
	strides, _, err := prepare(n, opts)
	if err != nil {
		return 0, err
	}

	ways := make([]uint64, n+1)
	ways[0] = 1 // the empty ascent
	for i := 1; i <= n; i++ {
		for _, s := range strides {
			if s > i {
				break // strides are increasing; the rest are too long
			}
			ways[i] += ways[i-s]
		}
	}

	return ways[n], nil
}

// prepare validates inputs and resolves the stride set and memo table.
func prepare(n int, opts *Options) ([]int, *memo.Table[int, uint64], error) {
	if n < 0 {
		return nil, nil, ErrNegativeSteps
	}

	strides := []int{1, 2}
	var tbl *memo.Table[int, uint64]
	if opts != nil {
		if opts.Strides != nil {
			strides = opts.Strides
		}
		tbl = opts.Memo
	}
	prev := 0
	for _, s := range strides {
		if s <= prev {
			return nil, nil, ErrBadStride
		}
		prev = s
	}
	if len(strides) == 0 {
		return nil, nil, ErrBadStride
	}
	if tbl == nil {
		tbl = memo.New[int, uint64]()
	}

	return strides, tbl, nil
}

// descend is the memoized recurrence body. Only fully evaluated
// heights are stored, never partial sums.
func descend(n int, strides []int, tbl *memo.Table[int, uint64]) uint64 {
	if n == 0 {
		return 1
	}
	if v, ok := tbl.Get(n); ok {
		return v
	}

	var total uint64
	for _, s := range strides {
		if s > n {
			break
		}
		total += descend(n-s, strides, tbl)
	}
	tbl.Put(n, total)

	return total
}
