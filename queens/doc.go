// Package queens places n non-attacking queens on an n×n board by
// row-wise backtracking.
//
// What:
//
//   - Solve — every placement, one queen per row, as column indices.
//   - Count — the number of placements without materializing them.
//   - Render — a board drawing ("..Q.") for one placement.
//
// How:
//
//	Rows are filled top to bottom; candidate columns are tried in
//	ascending order. A candidate is rejected before recursing if its
//	column, its ↘ diagonal (row−col), or its ↙ diagonal (row+col) is
//	already occupied — three boolean occupancy sets, marked on choose
//	and unmarked on unchoose. Solutions therefore appear in ascending
//	lexicographic order of their column vectors.
//
// Edge cases:
//
//   - n=1 has the single trivial placement; n=2 and n=3 have none —
//     an empty result set, not an error.
//
// Complexity:
//
//	Exponential in n; practical for n ≲ 14.
//
// Errors:
//
//   - ErrBadSize — n < 1.
package queens
