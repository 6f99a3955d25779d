package combinat_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/combinat"
)

// Scenario:
//
//	Enumerate every subset of a three-element set. The cascade order
//	is stable: each element extends everything accepted before it.
func ExampleSubsets() {
	for _, s := range combinat.Subsets([]int{1, 2, 3}) {
		fmt.Println(s)
	}
	// Output:
	// []
	// [1]
	// [2]
	// [1 2]
	// [3]
	// [1 3]
	// [2 3]
	// [1 2 3]
}

// Scenario:
//
//	Ways to pay 7 units with an unlimited supply of 2, 3, 6 and 7
//	coins. Branches whose running sum overshoots are pruned before
//	recursing.
func ExampleCombinationSum() {
	sums, err := combinat.CombinationSum([]int{2, 3, 6, 7}, 7)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, c := range sums {
		fmt.Println(c)
	}
	// Output:
	// [2 2 3]
	// [7]
}

// Scenario:
//
//	Distinct arrangements of a multiset: the duplicate-skip rule
//	builds each distinct sequence exactly once.
func ExamplePermutationsUnique() {
	for _, p := range combinat.PermutationsUnique([]int{1, 1, 2}) {
		fmt.Println(p)
	}
	// Output:
	// [1 1 2]
	// [1 2 1]
	// [2 1 1]
}
