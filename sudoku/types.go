package sudoku

import "errors"

// Sentinel errors for board solving.
var (
	// ErrBadCell indicates a cell value outside 0..9.
	ErrBadCell = errors.New("sudoku: cell values must be 0 (empty) or 1..9")
	// ErrConflict indicates givens that already collide in a row,
	// column, or box.
	ErrConflict = errors.New("sudoku: starting board violates a constraint")
	// ErrNoSolution indicates a consistent board with no completion.
	ErrNoSolution = errors.New("sudoku: no solution exists")
)

// Board is a 9×9 grid; 0 marks an empty cell, 1..9 a filled digit.
type Board [9][9]byte
