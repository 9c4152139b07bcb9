// Package seq computes longest common subsequences of ordered sequences.
//
// The tables are O(n*m) in time and space, which is fine for configuration
// documents of a few thousand lines. Callers comparing larger inputs should
// bound them first.
package seq

// LCS returns the longest common subsequence of a and b.
//
// When several subsequences of maximal length exist, the one returned is the
// one found by the standard dynamic programming backtrack: on a mismatch the
// walk moves back in a only when that strictly keeps a longer prefix match,
// otherwise it moves back in b.
func LCS[T comparable](a, b []T) []T {
	return lcs(a, b, func(x, y T) bool { return x == y })
}

// LCSFunc is like LCS for string sequences, but compares the items after
// applying norm to them. The returned items are taken from a, un-normalized.
// A nil norm compares items as is.
func LCSFunc(a, b []string, norm func(string) string) []string {
	if norm == nil {
		return LCS(a, b)
	}
	na := mapStrings(a, norm)
	nb := mapStrings(b, norm)
	idx := lcsIndices(len(na), len(nb), func(i, j int) bool { return na[i] == nb[j] })
	res := make([]string, len(idx))
	for k, i := range idx {
		res[k] = a[i]
	}
	return res
}

// Len returns the length of the longest common subsequence of a and b.
func Len[T comparable](a, b []T) int {
	t := table(len(a), len(b), func(i, j int) bool { return a[i] == b[j] })
	return t[len(a)][len(b)]
}

func lcs[T any](a, b []T, eq func(x, y T) bool) []T {
	idx := lcsIndices(len(a), len(b), func(i, j int) bool { return eq(a[i], b[j]) })
	res := make([]T, len(idx))
	for k, i := range idx {
		res[k] = a[i]
	}
	return res
}

// lcsIndices returns the indices into the first sequence of the items of
// the LCS, in order.
func lcsIndices(m, n int, eq func(i, j int) bool) []int {
	if m == 0 || n == 0 {
		return nil
	}
	dp := table(m, n, eq)
	res := make([]int, dp[m][n])
	k := len(res) - 1
	i, j := m, n
	for i > 0 && j > 0 {
		switch {
		case eq(i-1, j-1):
			res[k] = i - 1
			k--
			i--
			j--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return res
}

func table(m, n int, eq func(i, j int) bool) [][]int {
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if eq(i-1, j-1) {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}
	return dp
}

func mapStrings(vs []string, f func(string) string) []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = f(v)
	}
	return res
}
