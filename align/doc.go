// Package align provides two-dimensional alignment solvers over a
// pair of strings: longest common subsequence and Levenshtein edit
// distance.
//
// What:
//
//   - LCS computes the length of the longest subsequence common to
//     both inputs, optionally reconstructing one witness subsequence.
//   - EditDistance computes the minimum number of unit-cost insert,
//     delete, and substitute operations turning one string into the
//     other, optionally reconstructing the edit script.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate an (n+1)×(m+1) table D.
//  2. Base row/column: D[i][0] and D[0][j] are the empty-prefix values
//     (0 for LCS; i and j for edit distance).
//  3. Fill row-major, ascending i then ascending j: D[i][j] reads only
//     D[i-1][j], D[i][j-1], D[i-1][j-1], all already computed.
//  4. Answer is D[n][m]; if a trace is requested, backtrack from
//     (n, m) to (0, 0) following the move that produced each cell.
//
// Memory Modes:
//
//   - FullMatrix — keep the whole table; supports trace recovery.
//     Memory O(n·m).
//   - TwoRows    — keep only the current and previous rows; memory
//     O(m), no trace recovery.
//
// Edge cases:
//
//   - Either input empty: LCS is 0 with an empty witness; edit
//     distance is the other input's length (all inserts or deletes).
//
// Errors:
//
//   - ErrTraceNeedsMatrix — ReturnTrace=true with MemoryMode=TwoRows.
//   - ErrBadMode          — unknown MemoryMode value.
package align
