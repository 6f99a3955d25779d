package combinat

import "sort"

// Permutations returns all n! arrangements of nums, treating elements
// positionally (duplicate values produce duplicate permutations — see
// PermutationsUnique). Candidates are tried in input order at every
// depth, so [1,2,3] yields
//
//	[1 2 3] [1 3 2] [2 1 3] [2 3 1] [3 1 2] [3 2 1]
//
// nums is read-only; every permutation is a fresh slice. An empty
// input yields the single empty permutation.
func Permutations(nums []int) [][]int {
	st := &permSearch{nums: nums, used: make([]bool, len(nums))}
	st.extend()

	return st.out
}

// PermutationsUnique returns all distinct arrangements of nums. It
// sorts a private copy, then skips a value equal to its previous
// sibling unless that previous occurrence is itself in use — the
// standard rule guaranteeing each distinct sequence is built exactly
// once. [1,1,2] yields [1 1 2] [1 2 1] [2 1 1].
func PermutationsUnique(nums []int) [][]int {
	sorted := append([]int(nil), nums...)
	sort.Ints(sorted)

	st := &permSearch{nums: sorted, used: make([]bool, len(sorted)), dedup: true}
	st.extend()

	return st.out
}

// permSearch is the explicit search state for both permutation
// variants: the partial arrangement, per-index usage flags, and the
// accumulator.
type permSearch struct {
	nums  []int
	used  []bool
	dedup bool
	path  []int
	out   [][]int
}

// extend fills the next position with every unused candidate.
func (st *permSearch) extend() {
	if len(st.path) == len(st.nums) {
		st.out = append(st.out, append([]int{}, st.path...))

		return
	}
	for i := range st.nums {
		if st.used[i] {
			continue
		}
		if st.dedup && i > 0 && st.nums[i] == st.nums[i-1] && !st.used[i-1] {
			continue // equal value, previous twin not in use: skip
		}
		st.used[i] = true
		st.path = append(st.path, st.nums[i]) // choose
		st.extend()
		st.path = st.path[:len(st.path)-1] // unchoose
		st.used[i] = false
	}
}
