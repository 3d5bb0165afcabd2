package Trees

import (
	"cmp"

	"github.com/duke-git/lancet/v2/algorithm"
	"github.com/duke-git/lancet/v2/slice"
)

// orderedComparator satisfies the lancet comparator for any ordered T.
type orderedComparator[T cmp.Ordered] struct{}

func (orderedComparator[T]) Compare(v1, v2 any) int {
	return cmp.Compare(v1.(T), v2.(T))
}

// isNaN reports whether v is a floating point NaN, the only ordered value not
// equal to itself.
func isNaN[T cmp.Ordered](v T) bool {
	return v != v
}

// Prepare returns the keys sorted in ascending order with repeated keys removed,
// ready for building a tree. The sort is a stable merge sort, and for repeats
// the first occurrence is kept. NaN keys are dropped as they have no place in
// the order. keys isn't modified.
// Time: O(n log n); Space: O(n)
func Prepare[T cmp.Ordered](keys []T) []T {
	s := make([]T, 0, len(keys))
	for _, k := range keys {
		if !isNaN(k) {
			s = append(s, k)
		}
	}
	if len(s) < 2 {
		return s
	}
	algorithm.MergeSort(s, orderedComparator[T]{})
	return slice.Unique(s)
}
