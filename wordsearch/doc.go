// Package wordsearch finds words along adjacent-cell paths in a
// rectangular letter grid.
//
// What:
//
//   - Exists — whether the word can be traced through 4-directionally
//     adjacent cells, each cell used at most once per path.
//   - Path   — the first such trace in scan order, as cell coordinates.
//
// How:
//
//	Every grid cell matching the word's first letter starts a search;
//	start cells are scanned row-major. Each step tries the four
//	neighbors in N, S, W, E order and rejects a move before recursing
//	if it leaves the grid, revisits a cell of the current path, or
//	mismatches the next required letter. Cells are marked visited on
//	entry and unmarked on exit, so sibling branches never see each
//	other's footprints.
//
// Complexity:
//
//	O(W·H·3^len(word)) worst case; the per-step constraint checks
//	keep real grids far below that.
//
// Errors:
//
//   - ErrEmptyGrid      — no rows or no columns.
//   - ErrNonRectangular — rows of differing lengths.
//   - ErrEmptyWord      — the empty word matches nothing by contract.
//   - ErrWordNotFound   — Path found no trace (Exists reports the same
//     situation as a plain false).
package wordsearch
