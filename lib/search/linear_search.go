package search

// LinearSearch scans s from the head and returns the index of the first
// element equal to target.
// The order of s is irrelevant. ok is false if no element matches, the
// returned index is meaningless in that case.
func LinearSearch[S ~[]E, E comparable](s S, target E) (idx int, ok bool) {
	return LinearSearchFunc(s, func(e E) bool {
		return e == target
	})
}

func LinearSearchFunc[S ~[]E, E any](s S, match func(e E) bool) (idx int, ok bool) {
	if match == nil {
		return 0, false
	}
	for i := range s {
		if match(s[i]) {
			return i, true
		}
	}
	return 0, false
}
