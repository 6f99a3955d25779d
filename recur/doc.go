// Package recur solves linear recurrences over a one-dimensional
// index, the simplest shape of optimal substructure.
//
// What:
//
//   - StepWays counts the distinct ways to ascend an n-step stairway
//     taking strides from a configurable set (default {1, 2}), the
//     classic f(n) = f(n-1) + f(n-2) recurrence generalized to any
//     stride set.
//   - StepWays recurses top-down and caches each index exactly once;
//     StepWaysTab fills the same table bottom-up in ascending index
//     order and never recurses.
//
// Why:
//
//   - The two evaluation orders are interchangeable because the
//     recurrence is a strict function of strictly smaller indices:
//     ways(i) reads only ways(i-s) for strides s ≥ 1, so ascending
//     order guarantees every dependency is ready. Both entry points
//     must therefore agree on every input — the tests assert it.
//
// Options:
//
//   - Options.Strides: positive, strictly increasing stride set.
//   - Options.Memo: optional caller-owned table, reusable across calls
//     on overlapping inputs. Pre-seeding it never changes an answer,
//     only the time taken.
//
// Complexity:
//
//   - Time O(n·len(strides)), memory O(n).
//
// Errors:
//
//   - ErrNegativeSteps: n < 0.
//   - ErrBadStride: a stride is non-positive or the set is not
//     strictly increasing.
package recur
