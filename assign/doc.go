// Package assign solves the minimum-cost assignment problem exactly
// with bitmask dynamic programming.
//
// What:
//
//   - MinCost assigns n workers to n tasks, one task each, minimizing
//     the total cost read from an n×n matrix. cost[w][t] of
//     math.Inf(1) marks a forbidden pairing.
//
// How:
//
//	dp[mask] is the cheapest way to hand the task set mask to the
//	first popcount(mask) workers. Masks are visited in ascending
//	numeric order; every mask reads only mask^(1<<t), a strict
//	subset, so each dependency is already final. A choice table
//	records the task given to the last worker of each mask, and the
//	optimal assignment is reconstructed by walking it backwards from
//	the full mask.
//
// Complexity:
//
//	Time O(n·2ⁿ), memory O(2ⁿ). Practical for n ≲ 20.
//
// Errors:
//
//   - ErrBadMatrix  — empty or ragged cost matrix.
//   - ErrInfeasible — forbidden pairings rule out every perfect
//     assignment.
package assign
