// Package lvlsolve is your in-memory playground for combinatorial
// search and optimization — memoized recurrences on one side,
// constraint-driven backtracking on the other.
//
// 🚀 What is lvlsolve?
//
//	A modern, zero-side-effect library that brings together:
//		• Linear recurrences: memoized & tabulated step counting
//		• Alignment DP: longest common subsequence, edit distance
//		• Knapsack family: 0/1 selection, unbounded coin change, subset-sum
//		• Interval DP: matrix-chain cost, minimum palindrome cuts
//		• Bitmask DP: exact minimum-cost assignment
//		• Enumeration: subsets, combinations, permutations, target sums
//		• Constraint search: N-Queens, Sudoku fill, word-search paths
//
// ✨ Why choose lvlsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – explicit sentinel errors, no hidden state
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – documented traversal order, reproducible results
//
// Under the hood, everything is organized per algorithm family:
//
//	memo/       — caller-suppliable memoization table
//	recur/      — linear recurrences (top-down and bottom-up)
//	align/      — LCS & edit distance with trace recovery
//	knapsack/   — 0/1 knapsack, coin change, subset-sum
//	interval/   — matrix-chain, palindrome cuts
//	assign/     — Held–Karp-style bitmask assignment
//	combinat/   — subset / combination / permutation enumeration
//	queens/     — N-Queens placement search
//	sudoku/     — constraint-propagating grid fill
//	wordsearch/ — grid path existence & recovery
//
// Every solver is a pure function: problem instance in, value or
// solution set out. No goroutines, no I/O, no state shared between
// calls — concurrent callers simply pass distinct inputs.
//
//	go get github.com/katalvlaran/lvlsolve
package lvlsolve
