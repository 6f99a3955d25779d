package combinat

import "sort"

// CombinationSum returns every combination of candidates summing
// exactly to target, with unlimited reuse of each candidate. Reuse is
// achieved by recursing without advancing the start index, so a
// combination is non-decreasing in candidate position and each
// multiset appears once. A branch is abandoned as soon as its running
// sum exceeds target — candidates are positive, so no deeper extension
// can recover.
//
// For candidates [2,3,6,7] and target 7 the result is [2 2 3] [7].
// target 0 yields the single empty combination.
//
// Returns ErrBadCandidate for any candidate ≤ 0 and ErrNegativeTarget
// for target < 0, both before search.
func CombinationSum(candidates []int, target int) ([][]int, error) {
	if err := validateSum(candidates, target); err != nil {
		return nil, err
	}

	st := &sumSearch{nums: candidates, target: target, reuse: true}
	st.extend(0, 0)

	return st.out, nil
}

// CombinationSumUnique returns every combination summing exactly to
// target where each element of candidates is used at most once. It
// sorts a private copy and skips a candidate equal to its previous
// sibling at the same depth, so duplicate input values never produce
// duplicate combinations.
//
// For candidates [10,1,2,7,6,1,5] and target 8 the result is
// [1 1 6] [1 2 5] [1 7] [2 6].
func CombinationSumUnique(candidates []int, target int) ([][]int, error) {
	if err := validateSum(candidates, target); err != nil {
		return nil, err
	}

	sorted := append([]int(nil), candidates...)
	sort.Ints(sorted)

	st := &sumSearch{nums: sorted, target: target}
	st.extend(0, 0)

	return st.out, nil
}

// validateSum enforces the shared input contract.
func validateSum(candidates []int, target int) error {
	if target < 0 {
		return ErrNegativeTarget
	}
	for _, c := range candidates {
		if c <= 0 {
			return ErrBadCandidate
		}
	}

	return nil
}

// sumSearch is the explicit search state for both target-sum variants.
type sumSearch struct {
	nums   []int
	target int
	reuse  bool
	path   []int
	out    [][]int
}

// extend grows the partial solution from start with running sum acc.
func (st *sumSearch) extend(start, acc int) {
	if acc == st.target {
		st.out = append(st.out, append([]int{}, st.path...))

		return
	}
	for i := start; i < len(st.nums); i++ {
		if !st.reuse && i > start && st.nums[i] == st.nums[i-1] {
			continue // duplicate sibling at this depth
		}
		if acc+st.nums[i] > st.target {
			if !st.reuse {
				// nums is sorted here; later candidates only grow.
				break
			}
			continue
		}
		st.path = append(st.path, st.nums[i]) // choose
		if st.reuse {
			st.extend(i, acc+st.nums[i]) // same index: reuse allowed
		} else {
			st.extend(i+1, acc+st.nums[i])
		}
		st.path = st.path[:len(st.path)-1] // unchoose
	}
}
