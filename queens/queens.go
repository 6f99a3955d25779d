package queens

import "strings"

// Solve returns every way to place n non-attacking queens on an n×n
// board. Each solution is a slice of n column indices, one per row.
// Solutions are ordered lexicographically because columns are tried in
// ascending order at every row.
//
// An unsatisfiable size (n=2, n=3) yields an empty result set; only
// n < 1 is an input error.
func Solve(n int) ([][]int, error) {
	if n < 1 {
		return nil, ErrBadSize
	}

	st := newBoardSearch(n, true)
	st.place(0)

	return st.out, nil
}

// Count returns the number of n-queens placements without keeping
// them. Same search as Solve, accumulator-only.
func Count(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadSize
	}

	st := newBoardSearch(n, false)
	st.place(0)

	return st.found, nil
}

// Render draws one placement as n strings of '.' and 'Q', row by row.
// cols is a column-per-row vector as produced by Solve.
func Render(cols []int) []string {
	n := len(cols)
	board := make([]string, n)
	for row, col := range cols {
		board[row] = strings.Repeat(".", col) + "Q" + strings.Repeat(".", n-col-1)
	}

	return board
}

// boardSearch is the explicit search state: the partial placement and
// the three occupancy sets that make the collision check O(1).
type boardSearch struct {
	n       int
	collect bool
	cols    []int  // cols[row] = chosen column
	colUsed []bool // column occupancy
	diagSE  []bool // ↘ diagonals, indexed row-col+n-1
	diagSW  []bool // ↙ diagonals, indexed row+col
	out     [][]int
	found   int
}

func newBoardSearch(n int, collect bool) *boardSearch {
	return &boardSearch{
		n:       n,
		collect: collect,
		cols:    make([]int, 0, n),
		colUsed: make([]bool, n),
		diagSE:  make([]bool, 2*n-1),
		diagSW:  make([]bool, 2*n-1),
	}
}

// place puts a queen on the given row, trying columns ascending.
func (st *boardSearch) place(row int) {
	if row == st.n {
		st.found++
		if st.collect {
			st.out = append(st.out, append([]int{}, st.cols...)) // defensive copy
		}

		return
	}
	for col := 0; col < st.n; col++ {
		se, sw := row-col+st.n-1, row+col
		if st.colUsed[col] || st.diagSE[se] || st.diagSW[sw] {
			continue // collides with an earlier row
		}
		st.colUsed[col], st.diagSE[se], st.diagSW[sw] = true, true, true
		st.cols = append(st.cols, col) // choose
		st.place(row + 1)
		st.cols = st.cols[:len(st.cols)-1] // unchoose
		st.colUsed[col], st.diagSE[se], st.diagSW[sw] = false, false, false
	}
}
