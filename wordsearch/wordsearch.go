package wordsearch

// neighborOffsets lists the four orthogonal moves in N, S, W, E order.
// The order determines which trace Path returns when several exist.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Exists reports whether word can be traced through 4-directionally
// adjacent grid cells, using each cell at most once per path. Start
// cells are tried in row-major scan order.
//
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrEmptyWord before any
// search; an absent word is a plain false, not an error.
func Exists(grid [][]byte, word string) (bool, error) {
	st, err := newGridSearch(grid, word)
	if err != nil {
		return false, err
	}

	return st.scan(), nil
}

// Path returns the first trace of word in scan order, one Cell per
// letter. A well-formed grid without the word yields ErrWordNotFound.
func Path(grid [][]byte, word string) ([]Cell, error) {
	st, err := newGridSearch(grid, word)
	if err != nil {
		return nil, err
	}
	if !st.scan() {
		return nil, ErrWordNotFound
	}

	return st.path, nil
}

// gridSearch is the explicit search state: the inputs, the per-path
// visited mask, and the trace being built.
type gridSearch struct {
	grid    [][]byte
	word    string
	visited [][]bool
	path    []Cell
}

// newGridSearch validates the inputs and allocates the visited mask.
func newGridSearch(grid [][]byte, word string) (*gridSearch, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(grid[0])
	for _, row := range grid[1:] {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	if len(word) == 0 {
		return nil, ErrEmptyWord
	}

	visited := make([][]bool, len(grid))
	for r := range visited {
		visited[r] = make([]bool, width)
	}

	return &gridSearch{grid: grid, word: word, visited: visited, path: make([]Cell, 0, len(word))}, nil
}

// scan tries every starting cell in row-major order.
func (st *gridSearch) scan() bool {
	for r := range st.grid {
		for c := range st.grid[r] {
			if st.extend(r, c, 0) {
				return true
			}
		}
	}

	return false
}

// extend tries to match word[idx] at (r, c) and continue through the
// neighbors. Visited marking happens on entry, unmarking on exit.
func (st *gridSearch) extend(r, c, idx int) bool {
	if r < 0 || r >= len(st.grid) || c < 0 || c >= len(st.grid[0]) {
		return false // off-grid
	}
	if st.visited[r][c] || st.grid[r][c] != st.word[idx] {
		return false // reuse or letter mismatch
	}

	st.visited[r][c] = true
	st.path = append(st.path, Cell{Row: r, Col: c}) // choose

	if idx == len(st.word)-1 {
		return true // whole word matched; keep the path as-is
	}
	for _, d := range neighborOffsets {
		if st.extend(r+d[0], c+d[1], idx+1) {
			return true
		}
	}

	st.path = st.path[:len(st.path)-1] // unchoose
	st.visited[r][c] = false

	return false
}
