// Package memo provides the memoization table used by the top-down
// solvers in lvlsolve.
//
// What:
//
//   - Table[K, V] maps a state key (the tuple of parameters identifying
//     a subproblem) to its fully computed result.
//   - Solvers that accept a *Table let callers reuse a cache across
//     repeated calls on overlapping problem instances.
//
// Why:
//
//   - Correctness of memoization only requires referential transparency:
//     equal keys must always map to equal results. Table enforces the
//     write-once discipline that makes this easy to audit.
//
// Ownership:
//
//   - A Table is exclusively owned by one in-flight call. It carries no
//     locks; callers running independent searches concurrently must give
//     each its own Table.
//
// Complexity:
//
//   - Get / Put: O(1) expected. Memory: O(distinct states).
package memo
