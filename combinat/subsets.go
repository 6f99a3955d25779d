package combinat

import "sort"

// Subsets returns all 2ⁿ subsets of nums, in cascade order: starting
// from the empty subset, each element in turn extends every subset
// accepted so far. For [1,2,3] the result is exactly
//
//	[] [1] [2] [1 2] [3] [1 3] [2 3] [1 2 3]
//
// nums is read-only; every returned subset is a fresh slice. Elements
// are treated positionally — duplicate values produce duplicate
// subsets (see SubsetsUnique).
func Subsets(nums []int) [][]int {
	out := [][]int{{}}
	for _, v := range nums {
		grown := len(out)
		for i := 0; i < grown; i++ {
			ext := make([]int, len(out[i])+1)
			copy(ext, out[i])
			ext[len(out[i])] = v
			out = append(out, ext)
		}
	}

	return out
}

// SubsetsUnique returns all distinct subsets of nums, suppressing
// duplicates arising from repeated values. It sorts a private copy of
// the input, then runs a choose/skip search: at each depth a candidate
// equal to its previous sibling is skipped, so each distinct multiset
// is accepted exactly once. Accepted subsets appear in depth-first
// order of the pruned tree; [1,2,2] yields
//
//	[] [1] [1 2] [1 2 2] [2] [2 2]
func SubsetsUnique(nums []int) [][]int {
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)

	st := &subsetSearch{nums: sorted}
	st.extend(0)

	return st.out
}

// subsetSearch carries the partial solution and accumulator through
// the recursion — no mutable state is captured by closures.
type subsetSearch struct {
	nums []int
	path []int
	out  [][]int
}

// extend accepts the current partial solution, then tries every
// candidate at or after start, skipping same-depth duplicates.
func (st *subsetSearch) extend(start int) {
	st.out = append(st.out, append([]int{}, st.path...)) // defensive copy

	for i := start; i < len(st.nums); i++ {
		if i > start && st.nums[i] == st.nums[i-1] {
			continue // same value as the previous sibling at this depth
		}
		st.path = append(st.path, st.nums[i]) // choose
		st.extend(i + 1)
		st.path = st.path[:len(st.path)-1] // unchoose
	}
}
