package combinat_test

import (
	"testing"

	"github.com/katalvlaran/lvlsolve/combinat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binom computes n choose k exactly for the small sizes tested here.
func binom(n, k int) int {
	if k > n {
		return 0
	}
	res := 1
	for i := 0; i < k; i++ {
		res = res * (n - i) / (i + 1)
	}

	return res
}

// TestCombinations_Lexicographic pins the documented order for C(4,2).
func TestCombinations_Lexicographic(t *testing.T) {
	got, err := combinat.Combinations(4, 2)
	require.NoError(t, err)

	want := [][]int{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	assert.Equal(t, want, got)
}

// TestCombinations_Degenerate covers k=0, k=n, and n=0.
func TestCombinations_Degenerate(t *testing.T) {
	got, err := combinat.Combinations(3, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}}, got, "choosing nothing has one way")

	got, err = combinat.Combinations(3, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}}, got, "choosing everything has one way")

	got, err = combinat.Combinations(0, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{}}, got)
}

// TestCombinations_InputErrors verifies boundary validation.
func TestCombinations_InputErrors(t *testing.T) {
	_, err := combinat.Combinations(-1, 0)
	assert.ErrorIs(t, err, combinat.ErrNegativeInput)

	_, err = combinat.Combinations(3, -2)
	assert.ErrorIs(t, err, combinat.ErrNegativeInput)

	_, err = combinat.Combinations(2, 3)
	assert.ErrorIs(t, err, combinat.ErrKExceedsN, "k>n is an input error, not an empty result")
}

// TestCombinations_Completeness verifies count, distinctness, strict
// ascent, and range for all n ≤ 7, k ≤ n.
func TestCombinations_Completeness(t *testing.T) {
	for n := 0; n <= 7; n++ {
		for k := 0; k <= n; k++ {
			got, err := combinat.Combinations(n, k)
			require.NoError(t, err)
			require.Len(t, got, binom(n, k), "C(%d,%d)", n, k)

			seen := make(map[string]bool, len(got))
			for _, c := range got {
				require.Len(t, c, k)
				for i, v := range c {
					assert.GreaterOrEqual(t, v, 1)
					assert.LessOrEqual(t, v, n)
					if i > 0 {
						assert.Greater(t, v, c[i-1], "combination %v must ascend", c)
					}
				}
				key := fingerprint(c)
				assert.False(t, seen[key], "duplicate combination %v", c)
				seen[key] = true
			}
		}
	}
}
