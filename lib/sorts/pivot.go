package sorts

import (
	"math/rand/v2"
)

func pickFirst[E any](_ []E, _ func(a, b E) int) int {
	return 0
}

func pickMiddle[E any](s []E, _ func(a, b E) int) int {
	return len(s) >> 1
}

// pickMedianOfThree returns the index of the median among
// the head, the middle and the tail.
func pickMedianOfThree[E any](s []E, cmp func(a, b E) int) int {
	n := len(s)
	if n < 3 {
		return 0
	}
	lo, mid, hi := 0, n>>1, n-1
	if cmp(s[mid], s[lo]) < 0 {
		lo, mid = mid, lo
	}
	if cmp(s[hi], s[mid]) < 0 {
		mid, hi = hi, mid
		if cmp(s[mid], s[lo]) < 0 {
			mid = lo
		}
	}
	return mid
}

func pickRandom[E any](rng *rand.Rand) pivotPicker[E] {
	if rng == nil {
		return func(s []E, _ func(a, b E) int) int {
			return rand.IntN(len(s))
		}
	}
	return func(s []E, _ func(a, b E) int) int {
		return rng.IntN(len(s))
	}
}

func newPivotPicker[E any](cfg *quickSortCfg) pivotPicker[E] {
	switch cfg.policy {
	case PivotMiddle:
		return pickMiddle[E]
	case PivotMedianOfThree:
		return pickMedianOfThree[E]
	case PivotRandom:
		return pickRandom[E](cfg.rng)
	case PivotFirst:
		fallthrough
	default:
	}
	return pickFirst[E]
}
