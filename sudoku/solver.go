package sudoku

import "fmt"

// Solve completes b in place. Givens are validated before any search:
// a malformed or self-contradictory board is an input error, never a
// mid-search discovery. If the board is consistent but admits no
// completion, b is left exactly as passed and ErrNoSolution is
// returned — backtracking undoes every trial write on the way out.
func Solve(b *Board) error {
	if err := validate(b); err != nil {
		return err
	}
	if !fill(b) {
		return ErrNoSolution
	}

	return nil
}

// validate checks value range and given-digit consistency.
func validate(b *Board) error {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := b[r][c]
			if v > 9 {
				return fmt.Errorf("sudoku: cell (%d,%d) holds %d: %w", r, c, v, ErrBadCell)
			}
			if v == 0 {
				continue
			}
			// Temporarily blank the cell so canPlace only sees peers.
			b[r][c] = 0
			ok := canPlace(b, r, c, v)
			b[r][c] = v
			if !ok {
				return fmt.Errorf("sudoku: cell (%d,%d) holds a duplicate %d: %w", r, c, v, ErrConflict)
			}
		}
	}

	return nil
}

// canPlace reports whether v may go at (r, c): not yet present in the
// row, the column, or the enclosing 3×3 box.
func canPlace(b *Board, r, c int, v byte) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}

	return true
}

// firstEmpty scans row-major for the next cell to fill.
func firstEmpty(b *Board) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}

	return 0, 0, false
}

// fill is the recursive search: candidates 1..9 ascending at the
// first empty cell, write on choose, erase on unchoose.
func fill(b *Board) bool {
	r, c, open := firstEmpty(b)
	if !open {
		return true // no empty cell remains: solved
	}
	for v := byte(1); v <= 9; v++ {
		if !canPlace(b, r, c, v) {
			continue
		}
		b[r][c] = v
		if fill(b) {
			return true
		}
		b[r][c] = 0
	}

	return false
}
