package sudoku_test

import (
	"testing"

	"github.com/katalvlaran/lvlsolve/sudoku"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardOf parses nine 9-char rows, '.' for empty.
func boardOf(t *testing.T, rows [9]string) sudoku.Board {
	t.Helper()
	var b sudoku.Board
	for r, row := range rows {
		require.Len(t, row, 9)
		for c := 0; c < 9; c++ {
			if row[c] != '.' {
				b[r][c] = row[c] - '0'
			}
		}
	}

	return b
}

// assertSolved checks all 27 nine-distinct-digit constraints.
func assertSolved(t *testing.T, b *sudoku.Board) {
	t.Helper()
	groups := make([][9][10]bool, 3) // rows, cols, boxes
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b[r][c]
			require.True(t, v >= 1 && v <= 9, "cell (%d,%d) unfilled", r, c)
			box := (r/3)*3 + c/3
			assert.False(t, groups[0][r][v], "row %d repeats %d", r, v)
			assert.False(t, groups[1][c][v], "col %d repeats %d", c, v)
			assert.False(t, groups[2][box][v], "box %d repeats %d", box, v)
			groups[0][r][v], groups[1][c][v], groups[2][box][v] = true, true, true
		}
	}
}

// TestSolve_ClassicPuzzle solves a well-known uniquely solvable board
// and verifies both constraint satisfaction and given preservation.
func TestSolve_ClassicPuzzle(t *testing.T) {
	b := boardOf(t, [9]string{
		"53..7....",
		"6..195...",
		".98....6.",
		"8...6...3",
		"4..8.3..1",
		"7...2...6",
		".6....28.",
		"...419..5",
		"....8..79",
	})
	givens := b

	require.NoError(t, sudoku.Solve(&b))
	assertSolved(t, &b)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if givens[r][c] != 0 {
				assert.Equal(t, givens[r][c], b[r][c], "given (%d,%d) must survive", r, c)
			}
		}
	}
}

// TestSolve_AlreadyComplete verifies a solved board passes untouched.
func TestSolve_AlreadyComplete(t *testing.T) {
	b := boardOf(t, [9]string{
		"534678912",
		"672195348",
		"198342567",
		"859761423",
		"426853791",
		"713924856",
		"961537284",
		"287419635",
		"345286179",
	})
	before := b

	require.NoError(t, sudoku.Solve(&b))
	assert.Equal(t, before, b, "a complete board has nothing to fill")
}

// TestSolve_EmptyBoard verifies the fully open board is solvable.
func TestSolve_EmptyBoard(t *testing.T) {
	var b sudoku.Board

	require.NoError(t, sudoku.Solve(&b))
	assertSolved(t, &b)
}

// TestSolve_ConflictingGivens verifies inconsistent boards are
// rejected before search, board untouched.
func TestSolve_ConflictingGivens(t *testing.T) {
	var b sudoku.Board
	b[0][0], b[0][8] = 5, 5 // same row, same digit
	before := b

	err := sudoku.Solve(&b)
	assert.ErrorIs(t, err, sudoku.ErrConflict)
	assert.Equal(t, before, b, "validation must not mutate the board")
}

// TestSolve_BadCellValue verifies range validation.
func TestSolve_BadCellValue(t *testing.T) {
	var b sudoku.Board
	b[4][4] = 12

	err := sudoku.Solve(&b)
	assert.ErrorIs(t, err, sudoku.ErrBadCell)
}

// TestSolve_NoSolution verifies consistent-but-unsolvable givens
// return ErrNoSolution with the board restored byte-for-byte.
func TestSolve_NoSolution(t *testing.T) {
	// Row 0 holds 1..8 with its last cell open; a 9 in that cell's
	// column (different box) starves cell (0,8) of every candidate.
	var b sudoku.Board
	for c := 0; c < 8; c++ {
		b[0][c] = byte(c + 1)
	}
	b[5][8] = 9
	before := b

	err := sudoku.Solve(&b)
	assert.ErrorIs(t, err, sudoku.ErrNoSolution)
	assert.Equal(t, before, b, "failed search must restore the caller's board")
}
