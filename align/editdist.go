package align

// EditDistance computes the Levenshtein distance between a and b: the
// minimum number of single-character inserts, deletes, and substitutes
// turning a into b, every operation costing one unit.
//
// With opts.ReturnTrace (FullMatrix only) it also reconstructs the
// edit script. The script lists only mutating operations — matches are
// skipped — so len(script) always equals the returned distance. Script
// order follows the backtrace reversed, i.e. operations appear in
// ascending position order.
//
// Recurrence:
//
//	D[i][0] = i, D[0][j] = j
//	D[i][j] = D[i-1][j-1]                          if a[i-1] == b[j-1]
//	        = 1 + min(D[i-1][j-1],  (substitute)
//	                  D[i-1][j],    (delete a[i-1])
//	                  D[i][j-1])    (insert b[j-1])
//
// Time O(n·m); memory O(n·m) (FullMatrix) or O(m) (TwoRows).
func EditDistance(a, b string, opts *Options) (int, []EditOp, error) {
	o, err := opts.resolve()
	if err != nil {
		return 0, nil, err
	}

	n, m := len(a), len(b)
	if o.MemoryMode == TwoRows {
		return editTwoRows(a, b), nil, nil
	}

	tab := make([][]int, n+1)
	for i := range tab {
		tab[i] = make([]int, m+1)
		tab[i][0] = i // delete the whole prefix of a
	}
	for j := 0; j <= m; j++ {
		tab[0][j] = j // insert the whole prefix of b
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				tab[i][j] = tab[i-1][j-1]
				continue
			}
			tab[i][j] = 1 + min3Int(tab[i-1][j-1], tab[i-1][j], tab[i][j-1])
		}
	}

	if !o.ReturnTrace {
		return tab[n][m], nil, nil
	}

	// Backtrack, emitting only mutating operations. Preference order on
	// ties: match, substitute, delete, insert — fixed so the script is
	// deterministic.
	script := make([]EditOp, 0, tab[n][m])
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1] && tab[i][j] == tab[i-1][j-1]:
			i--
			j--
		case i > 0 && j > 0 && tab[i][j] == tab[i-1][j-1]+1:
			script = append(script, EditOp{Kind: Substitute, I: i - 1, J: j - 1})
			i--
			j--
		case i > 0 && tab[i][j] == tab[i-1][j]+1:
			script = append(script, EditOp{Kind: Delete, I: i - 1, J: -1})
			i--
		default:
			script = append(script, EditOp{Kind: Insert, I: i - 1, J: j - 1})
			j--
		}
	}
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}

	return tab[n][m], script, nil
}

// editTwoRows fills the distance table keeping only two rows.
func editTwoRows(a, b string) int {
	n, m := len(a), len(b)
	rows := [2][]int{make([]int, m+1), make([]int, m+1)}
	for j := 0; j <= m; j++ {
		rows[0][j] = j
	}
	for i := 1; i <= n; i++ {
		curr, prev := rows[i%2], rows[(i-1)%2]
		curr[0] = i
		for j := 1; j <= m; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = 1 + min3Int(prev[j-1], prev[j], curr[j-1])
		}
	}

	return rows[n%2][m]
}

// min3Int returns the minimum of three int values.
func min3Int(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
