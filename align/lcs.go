package align

// LCS computes the length of the longest common subsequence of a and
// b. With opts.ReturnTrace (FullMatrix only) it also reconstructs one
// witness subsequence; ties during backtracking prefer advancing in a,
// which makes the witness deterministic.
//
// Recurrence:
//
//	L[i][j] = L[i-1][j-1] + 1                if a[i-1] == b[j-1]
//	        = max(L[i-1][j], L[i][j-1])      otherwise
//
// Base row and column are zero: an empty prefix shares nothing.
//
// Time O(n·m); memory O(n·m) (FullMatrix) or O(m) (TwoRows).
func LCS(a, b string, opts *Options) (int, string, error) {
	o, err := opts.resolve()
	if err != nil {
		return 0, "", err
	}

	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, "", nil
	}

	if o.MemoryMode == TwoRows {
		return lcsTwoRows(a, b), "", nil
	}

	// Full (n+1)×(m+1) table; row and column 0 stay zero.
	tab := make([][]int, n+1)
	for i := range tab {
		tab[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				tab[i][j] = tab[i-1][j-1] + 1
			} else {
				tab[i][j] = maxInt(tab[i-1][j], tab[i][j-1])
			}
		}
	}

	if !o.ReturnTrace {
		return tab[n][m], "", nil
	}

	// Backtrack from (n, m): take matches, otherwise follow the larger
	// neighbor, preferring the a-side on ties.
	witness := make([]byte, 0, tab[n][m])
	i, j := n, m
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			witness = append(witness, a[i-1])
			i--
			j--
		case tab[i-1][j] >= tab[i][j-1]:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(witness)-1; l < r; l, r = l+1, r-1 {
		witness[l], witness[r] = witness[r], witness[l]
	}

	return tab[n][m], string(witness), nil
}

// lcsTwoRows fills the table keeping only two rows.
func lcsTwoRows(a, b string) int {
	n, m := len(a), len(b)
	rows := [2][]int{make([]int, m+1), make([]int, m+1)}
	for i := 1; i <= n; i++ {
		curr, prev := rows[i%2], rows[(i-1)%2]
		curr[0] = 0
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = maxInt(prev[j], curr[j-1])
			}
		}
	}

	return rows[n%2][m]
}

// maxInt returns the larger of two ints.
func maxInt(x, y int) int {
	if x > y {
		return x
	}

	return y
}
