package combinat

// Combinations returns every way to choose k values from 1..n, order
// irrelevant within a combination. Each combination is emitted in
// ascending order, and combinations appear in lexicographic order:
// Combinations(4, 2) yields [1 2] [1 3] [1 4] [2 3] [2 4] [3 4].
//
// k = 0 yields the single empty combination. Returns ErrNegativeInput
// for n < 0 or k < 0 and ErrKExceedsN for k > n, both before search.
func Combinations(n, k int) ([][]int, error) {
	if n < 0 || k < 0 {
		return nil, ErrNegativeInput
	}
	if k > n {
		return nil, ErrKExceedsN
	}

	st := &comboSearch{n: n, k: k}
	st.extend(1)

	return st.out, nil
}

// comboSearch is the explicit search state for Combinations.
type comboSearch struct {
	n, k int
	path []int
	out  [][]int
}

// extend tries candidates from next upward. Only candidates at or
// after the last chosen value are considered, which is what makes the
// output combinations rather than permutations. The depth bound prunes
// branches that cannot reach k elements.
func (st *comboSearch) extend(next int) {
	if len(st.path) == st.k {
		st.out = append(st.out, append([]int{}, st.path...))

		return
	}
	// Highest viable start: enough candidates must remain to fill path.
	remaining := st.k - len(st.path)
	for v := next; v <= st.n-remaining+1; v++ {
		st.path = append(st.path, v) // choose
		st.extend(v + 1)
		st.path = st.path[:len(st.path)-1] // unchoose
	}
}
