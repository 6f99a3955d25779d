// Package combinat enumerates discrete structures — subsets,
// combinations, target-sum combinations, permutations, and palindrome
// partitions — by incremental constructive search.
//
// What:
//
//   - Subsets / SubsetsUnique       — all subsets, with or without
//     duplicate suppression.
//   - Combinations                  — all k-of-n index combinations.
//   - CombinationSum / …Unique      — combinations reaching a target
//     sum, with unlimited reuse or single use per element.
//   - Permutations / …Unique        — all arrangements, with or
//     without duplicate suppression.
//   - PalindromePartitions          — every split of a string into
//     palindromic pieces.
//
// Traversal contracts (results are ordered, and the order is part of
// the API):
//
//   - Subsets cascades: element k doubles the result set by extending
//     every subset accepted so far, so [1,2,3] yields
//     [] [1] [2] [1 2] [3] [1 3] [2 3] [1 2 3].
//   - The recursive enumerators (everything else) extend a partial
//     solution with candidates in input order (after the documented
//     sort, for the *Unique variants), pruning before recursing and
//     undoing each choice on return. Solutions therefore appear in
//     depth-first order of the pruned search tree.
//   - Duplicate suppression sorts a private copy of the input — the
//     caller's slice is never reordered — and skips a candidate equal
//     to its previous sibling at the same depth (for permutations:
//     unless that previous occurrence is in use deeper in the path).
//
// Every accepted solution is a defensive copy; no result aliases the
// in-progress partial solution or the caller's input.
//
// Errors:
//
//   - ErrNegativeInput, ErrKExceedsN        (Combinations)
//   - ErrBadCandidate, ErrNegativeTarget    (CombinationSum variants)
//
// Enumeration over an empty search space returns an empty (or
// base-case) result set, never an error: no solution is a legitimate
// answer here.
package combinat
