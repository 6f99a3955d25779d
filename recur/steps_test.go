package recur_test

import (
	"testing"

	"github.com/katalvlaran/lvlsolve/memo"
	"github.com/katalvlaran/lvlsolve/recur"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteStepWays enumerates every ascent recursively, no caching.
// Exponential; only used as the oracle on small n.
func bruteStepWays(n int, strides []int) uint64 {
	if n == 0 {
		return 1
	}
	var total uint64
	for _, s := range strides {
		if s <= n {
			total += bruteStepWays(n-s, strides)
		}
	}

	return total
}

// TestStepWays_BaseCases verifies n=0 and n=1 base cases.
func TestStepWays_BaseCases(t *testing.T) {
	opts := recur.DefaultOptions()

	ways, err := recur.StepWays(0, &opts)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ways, "zero steps has exactly the empty ascent")

	ways, err = recur.StepWays(1, &opts)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), ways, "one step has a single ascent")
}

// TestStepWays_NegativeInput verifies negative heights error before recursion.
func TestStepWays_NegativeInput(t *testing.T) {
	opts := recur.DefaultOptions()

	_, err := recur.StepWays(-1, &opts)
	assert.ErrorIs(t, err, recur.ErrNegativeSteps, "negative n must be an input error")

	_, err = recur.StepWaysTab(-3, &opts)
	assert.ErrorIs(t, err, recur.ErrNegativeSteps, "tabulated form shares the contract")
}

// TestStepWays_BadStrides verifies stride-set validation.
func TestStepWays_BadStrides(t *testing.T) {
	for _, strides := range [][]int{{}, {0, 1}, {-2, 3}, {2, 2}, {3, 1}} {
		opts := recur.Options{Strides: strides}
		_, err := recur.StepWays(5, &opts)
		assert.ErrorIs(t, err, recur.ErrBadStride, "strides %v must be rejected", strides)
	}
}

// TestStepWays_MatchesBruteForce cross-checks against exhaustive
// enumeration for every n up to 15 and two stride sets.
func TestStepWays_MatchesBruteForce(t *testing.T) {
	for _, strides := range [][]int{{1, 2}, {1, 3, 5}} {
		opts := recur.Options{Strides: strides}
		for n := 0; n <= 15; n++ {
			want := bruteStepWays(n, strides)

			got, err := recur.StepWays(n, &opts)
			require.NoError(t, err)
			assert.Equal(t, want, got, "StepWays(%d, %v)", n, strides)

			tab, err := recur.StepWaysTab(n, &opts)
			require.NoError(t, err)
			assert.Equal(t, want, tab, "StepWaysTab(%d, %v)", n, strides)
		}
	}
}

// TestStepWays_MemoTransparency verifies a pre-populated caller table
// changes only the work done, never the answer.
func TestStepWays_MemoTransparency(t *testing.T) {
	shared := memo.New[int, uint64]()
	opts := recur.Options{Strides: []int{1, 2}, Memo: shared}

	first, err := recur.StepWays(20, &opts)
	require.NoError(t, err)
	assert.Greater(t, shared.Len(), 0, "first call must populate the shared table")

	// Second call reuses every cached state.
	second, err := recur.StepWays(20, &opts)
	require.NoError(t, err)
	assert.Equal(t, first, second, "warm cache must not change the result")

	// A fresh-table call agrees too.
	cold := recur.DefaultOptions()
	third, err := recur.StepWays(20, &cold)
	require.NoError(t, err)
	assert.Equal(t, first, third, "cold and warm caches must agree")
}

// TestStepWays_KnownSequence pins the default {1,2} stride counts,
// which follow the Fibonacci sequence shifted by one.
func TestStepWays_KnownSequence(t *testing.T) {
	opts := recur.DefaultOptions()
	want := []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, w := range want {
		got, err := recur.StepWays(n, &opts)
		require.NoError(t, err)
		assert.Equal(t, w, got, "StepWays(%d)", n)
	}
}
