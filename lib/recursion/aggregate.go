package recursion

import (
	"github.com/benz9527/xalgo/lib/infra"
)

// Sum is the head plus the sum of the tail, the empty sum is zero.
// The recursion depth equals len(s), use SumIter for large inputs.
func Sum[S ~[]E, E infra.Number](s S) E {
	if len(s) == 0 {
		return 0
	}
	return s[0] + Sum(s[1:])
}

func Count[S ~[]E, E any](s S) int {
	if len(s) == 0 {
		return 0
	}
	return 1 + Count(s[1:])
}

// Max returns false for the empty s, it is a value, not an error.
// The absent max of the tail loses against every present head.
func Max[S ~[]E, E infra.OrderedKey](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	tailMax, ok := Max(s[1:])
	if !ok || s[0] >= tailMax {
		return s[0], true
	}
	return tailMax, true
}

func SumIter[S ~[]E, E infra.Number](s S) E {
	var total E
	for i := range s {
		total += s[i]
	}
	return total
}

func CountIter[S ~[]E, E any](s S) int {
	n := 0
	for range s {
		n++
	}
	return n
}

func MaxIter[S ~[]E, E infra.OrderedKey](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}
	res := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] > res {
			res = s[i]
		}
	}
	return res, true
}
