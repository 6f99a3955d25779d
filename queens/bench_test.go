package queens_test

import (
	"testing"

	"github.com/katalvlaran/lvlsolve/queens"
)

// benchmarkCount runs the counting search for one board size.
func benchmarkCount(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := queens.Count(n); err != nil {
			b.Fatalf("Count failed: %v", err)
		}
	}
}

// BenchmarkCount_8 benchmarks the classic 8×8 board.
func BenchmarkCount_8(b *testing.B) {
	benchmarkCount(b, 8)
}

// BenchmarkCount_11 benchmarks an 11×11 board.
func BenchmarkCount_11(b *testing.B) {
	benchmarkCount(b, 11)
}
