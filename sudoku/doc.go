// Package sudoku fills a classic 9×9 board by constraint-checked
// backtracking.
//
// What:
//
//   - Solve fills every empty cell (value 0) with a digit 1–9 so each
//     row, column, and 3×3 box holds nine distinct digits.
//
// How:
//
//	The first empty cell in row-major order is filled with candidates
//	1..9 ascending; a candidate already present in the cell's row,
//	column, or box is rejected before recursing. Dead ends erase the
//	cell and retreat.
//
// Side effects (documented contract):
//
//   - On success the caller's board is mutated in place to the solved
//     grid. If no solution exists, every trial write has been undone —
//     the board is byte-for-byte what the caller passed — and Solve
//     returns ErrNoSolution.
//
// Errors:
//
//   - ErrBadCell    — a cell value above 9.
//   - ErrConflict   — the givens already violate a row/column/box
//     constraint. Both are detected before any search step.
//   - ErrNoSolution — well-formed givens admitting no completion.
package sudoku
