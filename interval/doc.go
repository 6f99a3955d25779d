// Package interval provides interval dynamic programming: optimal
// ways to split a contiguous range into sub-ranges.
//
// What:
//
//   - MatrixChain — minimum scalar multiplications to evaluate a chain
//     of matrices, choosing the best parenthesization.
//   - MinPalindromeCuts — minimum cuts so every piece of a string is a
//     palindrome.
//
// Why:
//
//   - Both tables are filled by ascending interval length: the cost of
//     an interval reads only costs of strictly shorter intervals, so
//     length order is a dependency proof, not a convention. That order
//     is part of each function's contract.
//
// Edge cases:
//
//   - A single matrix (two dims) costs 0 — nothing to multiply.
//   - A string of length ≤ 1 needs 0 cuts.
//
// Complexity:
//
//   - MatrixChain:       O(n³) time, O(n²) memory.
//   - MinPalindromeCuts: O(n²) time, O(n²) memory.
//
// Errors:
//
//   - ErrTooFewDims, ErrBadDimension (MatrixChain).
package interval
