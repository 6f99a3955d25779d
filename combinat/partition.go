package combinat

// PalindromePartitions returns every way to split s into consecutive
// non-empty palindromic pieces. Pieces are chosen left to right,
// shortest prefix first, and a prefix is tested for palindromicity
// before recursing — the pruning that keeps dead branches shallow.
//
// "aab" yields [a a b] [aa b]. The empty string yields the single
// empty partition.
func PalindromePartitions(s string) [][]string {
	st := &partitionSearch{s: s}
	st.extend(0)

	return st.out
}

// partitionSearch is the explicit search state: the input, the pieces
// chosen so far, and the accumulator.
type partitionSearch struct {
	s    string
	path []string
	out  [][]string
}

// extend chooses the next piece starting at position from.
func (st *partitionSearch) extend(from int) {
	if from == len(st.s) {
		st.out = append(st.out, append([]string{}, st.path...))

		return
	}
	for end := from + 1; end <= len(st.s); end++ {
		piece := st.s[from:end]
		if !isPalindrome(piece) {
			continue // prune before recursing
		}
		st.path = append(st.path, piece) // choose
		st.extend(end)
		st.path = st.path[:len(st.path)-1] // unchoose
	}
}

// isPalindrome reports whether s reads identically in both directions.
func isPalindrome(s string) bool {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		if s[l] != s[r] {
			return false
		}
	}

	return true
}
