package search

import (
	"github.com/benz9527/xalgo/lib/infra"
)

// BinarySearch looks for target in the ascending sorted s.
//
// The candidate range is kept half-open [low, high), so a miss on the
// left of mid shrinks high to mid (exclusive) instead of mid-1.
// If target appears multiple times, no guarantee is made about which
// of those indices is returned.
// Unsorted input returns an unspecified answer, it never panics.
func BinarySearch[S ~[]E, E infra.OrderedKey](s S, target E) (idx int, ok bool) {
	return BinarySearchFunc(s, target, infra.Compare[E])
}

// BinarySearchFunc is the same as BinarySearch but the order is defined
// by cmp, which returns a negative number if the element is less than
// target, zero if equal and a positive number if greater.
func BinarySearchFunc[S ~[]E, E, T any](s S, target T, cmp func(e E, t T) int) (idx int, ok bool) {
	low, high := 0, len(s)
	for low < high {
		mid := int(uint(low+high) >> 1)
		res := cmp(s[mid], target)
		if res == 0 {
			return mid, true
		} else if res > 0 {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return 0, false
}

// RecursiveBinarySearch answers the same as BinarySearch, but the bounds
// are passed down as arguments of each call instead of being mutated in
// a loop.
// The bounds are inclusive and signed, an empty range (low > high) is the
// base case. So mid-1 walks to -1 safely when target is smaller than
// every element.
func RecursiveBinarySearch[S ~[]E, E infra.OrderedKey](s S, target E) (idx int, ok bool) {
	return RecursiveBinarySearchFunc(s, target, infra.Compare[E])
}

func RecursiveBinarySearchFunc[S ~[]E, E, T any](s S, target T, cmp func(e E, t T) int) (idx int, ok bool) {
	return recursiveBinarySearch(s, target, cmp, 0, len(s)-1)
}

func recursiveBinarySearch[S ~[]E, E, T any](s S, target T, cmp func(e E, t T) int, low, high int) (int, bool) {
	if low > high {
		return 0, false
	}
	mid := low + (high-low)/2
	res := cmp(s[mid], target)
	if res == 0 {
		return mid, true
	} else if res > 0 {
		return recursiveBinarySearch(s, target, cmp, low, mid-1)
	}
	return recursiveBinarySearch(s, target, cmp, mid+1, high)
}
