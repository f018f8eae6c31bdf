package sorts

import (
	"github.com/benz9527/xalgo/lib/infra"
)

// SelectionSort sorts s ascending in place and returns s itself.
// After k rounds the first k positions hold the k smallest elements.
// O(n^2) comparisons, O(1) extra space, not stable.
func SelectionSort[S ~[]E, E infra.OrderedKey](s S) S {
	return SelectionSortFunc(s, infra.Compare[E])
}

func SelectionSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int) S {
	for i := 0; i < len(s); i++ {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if cmp(s[j], s[minIdx]) < 0 {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
	return s
}

func IsSorted[S ~[]E, E infra.OrderedKey](s S) bool {
	return IsSortedFunc(s, infra.Compare[E])
}

func IsSortedFunc[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}
	return true
}
