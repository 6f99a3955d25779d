package queens_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsolve/queens"
)

// Scenario:
//
//	The 4×4 board admits exactly two placements; Render draws the
//	first one (lexicographically smallest column vector).
func ExampleSolve() {
	sols, err := queens.Solve(4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("solutions:", len(sols))
	for _, row := range queens.Render(sols[0]) {
		fmt.Println(row)
	}
	// Output:
	// solutions: 2
	// .Q..
	// ...Q
	// Q...
	// ..Q.
}
