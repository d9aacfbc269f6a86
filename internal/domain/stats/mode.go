package stats

import (
	"cmp"
	"sort"
)

// Count is one entry of a frequency distribution.
type Count[T cmp.Ordered] struct {
	Value T
	N     int
}

// Mode returns the most frequent value. Ties go to the smallest value, which
// is the first mode in the natural order of the value domain. ok is false for
// an empty input.
func Mode[T cmp.Ordered](values []T) (mode T, ok bool) {
	counts := make(map[T]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		n := counts[v]
		if n > best || (n == best && v < mode) {
			mode, best = v, n
		}
	}
	return mode, best > 0
}

// MostCommon returns the most frequent value. Ties go to the value that was
// seen first. ok is false for an empty input.
func MostCommon[T comparable](values []T) (value T, n int, ok bool) {
	counts := make(map[T]int, len(values))
	firstSeen := make(map[T]int, len(values))
	for i, v := range values {
		if _, seen := firstSeen[v]; !seen {
			firstSeen[v] = i
		}
		counts[v]++
	}
	bestAt := -1
	for v, c := range counts {
		at := firstSeen[v]
		if c > n || (c == n && at < bestAt) {
			value, n, bestAt = v, c, at
		}
	}
	return value, n, n > 0
}

// ValueCounts returns the full distribution ordered by count descending and
// then by value ascending.
func ValueCounts[T cmp.Ordered](values []T) []Count[T] {
	counts := make(map[T]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	out := make([]Count[T], 0, len(counts))
	for v, n := range counts {
		out = append(out, Count[T]{Value: v, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Value < out[j].Value
	})
	return out
}
