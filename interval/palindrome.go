package interval

// MinPalindromeCuts returns the minimum number of cuts needed to split
// s so that every resulting piece is a palindrome. Strings of length
// ≤ 1 need no cut; a string that is already a palindrome needs none.
//
// Two tables cooperate:
//
//   - pal[i][j] — whether s[i..j] is a palindrome, filled by ascending
//     substring length (pal[i][j] reads pal[i+1][j-1], two shorter).
//   - cuts[j]   — minimum cuts for the prefix s[0..j]: 0 if the whole
//     prefix is a palindrome, else min over i of cuts[i-1]+1 where
//     s[i..j] is a palindrome. Filled in ascending j.
//
// Time O(n²), memory O(n²).
func MinPalindromeCuts(s string) int {
	n := len(s)
	if n <= 1 {
		return 0
	}

	pal := make([][]bool, n)
	for i := range pal {
		pal[i] = make([]bool, n)
		pal[i][i] = true
	}
	for length := 2; length <= n; length++ {
		for i := 0; i+length-1 < n; i++ {
			j := i + length - 1
			if s[i] != s[j] {
				continue
			}
			pal[i][j] = length == 2 || pal[i+1][j-1]
		}
	}

	cuts := make([]int, n)
	for j := 0; j < n; j++ {
		if pal[0][j] {
			cuts[j] = 0
			continue
		}
		best := j // worst case: cut before every character
		for i := 1; i <= j; i++ {
			if pal[i][j] && cuts[i-1]+1 < best {
				best = cuts[i-1] + 1
			}
		}
		cuts[j] = best
	}

	return cuts[n-1]
}
