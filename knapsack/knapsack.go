package knapsack

// MaxValue solves the 0/1 knapsack problem: the maximum total value of
// a subset of items whose total weight does not exceed capacity.
//
// Zero-weight items fit in any knapsack, including capacity 0, so a
// capacity of 0 returns the sum of zero-weight item values.
//
// Tabulation: best[c] after processing k items is the optimum using
// only those k items at capacity c. Each item sweeps c descending from
// capacity to its weight, so best[c-w] still refers to the previous
// item's row and the item cannot be taken twice. Zero-weight items
// would read their own row under that sweep, so they are folded in as
// an unconditional bonus instead.
//
// Returns ErrNegativeCapacity, ErrNegativeWeight, or ErrNegativeValue
// before any table is allocated.
func MaxValue(items []Item, capacity int) (int, error) {
	if capacity < 0 {
		return 0, ErrNegativeCapacity
	}
	bonus := 0 // total value of zero-weight items, always includable
	for _, it := range items {
		if it.Weight < 0 {
			return 0, ErrNegativeWeight
		}
		if it.Value < 0 {
			return 0, ErrNegativeValue
		}
		if it.Weight == 0 {
			bonus += it.Value
		}
	}

	best := make([]int, capacity+1)
	for _, it := range items {
		if it.Weight == 0 {
			continue
		}
		for c := capacity; c >= it.Weight; c-- {
			if cand := best[c-it.Weight] + it.Value; cand > best[c] {
				best[c] = cand
			}
		}
	}

	return best[capacity] + bonus, nil
}

// MinCoins returns the minimum number of coins from an unbounded
// supply of the given denominations summing exactly to target.
//
// target 0 needs 0 coins. An unreachable target is reported as
// ErrTargetUnreachable — the count result is only meaningful when the
// error is nil.
//
// Tabulation: counts[t] is filled in ascending t; each t reads only
// counts[t-coin] with coin ≥ 1, so every dependency precedes its
// reader. Ascending order is what permits coin reuse (the same coin
// may contribute to t-coin and to t).
func MinCoins(coins []int, target int) (int, error) {
	if target < 0 {
		return 0, ErrNegativeTarget
	}
	for _, c := range coins {
		if c <= 0 {
			return 0, ErrBadDenomination
		}
	}

	const unreached = -1
	counts := make([]int, target+1)
	for t := 1; t <= target; t++ {
		counts[t] = unreached
	}
	for t := 1; t <= target; t++ {
		for _, c := range coins {
			if c > t || counts[t-c] == unreached {
				continue
			}
			if cand := counts[t-c] + 1; counts[t] == unreached || cand < counts[t] {
				counts[t] = cand
			}
		}
	}

	if counts[target] == unreached {
		return 0, ErrTargetUnreachable
	}

	return counts[target], nil
}

// SubsetSum reports whether some subset of nums sums exactly to
// target. target 0 is trivially reachable via the empty subset.
//
// Tabulation: reach[t] means t is a reachable sum. Each element sweeps
// t descending so it is used at most once, the 0/1 discipline shared
// with MaxValue.
func SubsetSum(nums []int, target int) (bool, error) {
	if target < 0 {
		return false, ErrNegativeTarget
	}
	for _, v := range nums {
		if v < 0 {
			return false, ErrNegativeElement
		}
	}

	reach := make([]bool, target+1)
	reach[0] = true
	for _, v := range nums {
		if v == 0 {
			continue // contributes nothing to any sum
		}
		for t := target; t >= v; t-- {
			if reach[t-v] {
				reach[t] = true
			}
		}
	}

	return reach[target], nil
}
