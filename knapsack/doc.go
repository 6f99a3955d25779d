// Package knapsack provides capacity-bounded selection solvers: 0/1
// knapsack, unbounded coin change, and subset-sum feasibility.
//
// What:
//
//   - MaxValue — choose a subset of (weight, value) items maximizing
//     total value without exceeding a capacity; each item used at most
//     once.
//   - MinCoins — minimum number of coins from an unbounded supply of
//     denominations summing exactly to a target.
//   - SubsetSum — whether some subset of the input sums exactly to a
//     target.
//
// Why:
//
//   - All three share one optimal-substructure shape: the best answer
//     for a budget is assembled from best answers for strictly smaller
//     budgets. Each is tabulated bottom-up over ascending budget, and
//     the 0/1 variants additionally iterate the budget descending per
//     item so no item is counted twice.
//
// Infeasibility:
//
//   - MinCoins reports an unreachable target as ErrTargetUnreachable,
//     never as a magic count — a caller can always tell "3 coins" from
//     "no combination exists".
//
// Complexity:
//
//   - MaxValue:  O(items·capacity) time, O(capacity) memory.
//   - MinCoins:  O(coins·target) time, O(target) memory.
//   - SubsetSum: O(items·target) time, O(target) memory.
//
// Errors:
//
//   - ErrNegativeCapacity, ErrNegativeWeight, ErrNegativeValue (MaxValue)
//   - ErrBadDenomination, ErrNegativeTarget, ErrTargetUnreachable (MinCoins)
//   - ErrNegativeElement, ErrNegativeTarget (SubsetSum)
package knapsack
