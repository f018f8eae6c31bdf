package verify

import (
	"math/rand/v2"
	"slices"

	"github.com/Pallinder/go-randomdata"
)

type Shape uint8

const (
	ShapeEmpty Shape = iota
	ShapeSingle
	ShapeRandom
	ShapeSorted
	ShapeReversed
	ShapeDuplicates
	ShapeNegatives
	_shapeMax
)

var shapeNames = [_shapeMax]string{
	ShapeEmpty:      "empty",
	ShapeSingle:     "single",
	ShapeRandom:     "random",
	ShapeSorted:     "sorted",
	ShapeReversed:   "reversed",
	ShapeDuplicates: "duplicates",
	ShapeNegatives:  "negatives",
}

func (s Shape) String() string {
	if s >= _shapeMax {
		return "unknown"
	}
	return shapeNames[s]
}

const (
	maxFixtureLen = 64
	fixtureBound  = 1000
)

// Ints returns n values in [lo, hi). hi <= lo yields a constant slice.
func Ints(rng *rand.Rand, n, lo, hi int) []int {
	if n <= 0 {
		return []int{}
	}
	res := make([]int, n)
	for i := range res {
		if hi <= lo {
			res[i] = lo
			continue
		}
		res[i] = lo + rng.IntN(hi-lo)
	}
	return res
}

func SortedInts(rng *rand.Rand, n, lo, hi int) []int {
	res := Ints(rng, n, lo, hi)
	slices.Sort(res)
	return res
}

// IntsOf builds a fixture of the given shape with at most maxFixtureLen
// elements.
func IntsOf(rng *rand.Rand, shape Shape) []int {
	n := 2 + rng.IntN(maxFixtureLen-1)
	switch shape {
	case ShapeEmpty:
		return []int{}
	case ShapeSingle:
		return Ints(rng, 1, -fixtureBound, fixtureBound)
	case ShapeSorted:
		return SortedInts(rng, n, -fixtureBound, fixtureBound)
	case ShapeReversed:
		res := SortedInts(rng, n, -fixtureBound, fixtureBound)
		slices.Reverse(res)
		return res
	case ShapeDuplicates:
		// A tiny range forces repeated keys.
		return Ints(rng, n, 0, 3)
	case ShapeNegatives:
		return Ints(rng, n, -fixtureBound, 0)
	case ShapeRandom:
		fallthrough
	default:
	}
	return Ints(rng, n, -fixtureBound, fixtureBound)
}

// Strings returns n words from the randomdata dictionaries, shuffled by rng.
func Strings(rng *rand.Rand, n int) []string {
	if n <= 0 {
		return []string{}
	}
	res := make([]string, 0, n)
	for i := 0; i < n; i++ {
		switch i % 3 {
		case 0:
			res = append(res, randomdata.SillyName())
		case 1:
			res = append(res, randomdata.Noun())
		default:
			res = append(res, randomdata.Adjective())
		}
	}
	rng.Shuffle(len(res), func(i, j int) {
		res[i], res[j] = res[j], res[i]
	})
	return res
}

func StringsOf(rng *rand.Rand, shape Shape) []string {
	switch shape {
	case ShapeEmpty:
		return []string{}
	case ShapeSingle:
		return Strings(rng, 1)
	case ShapeSorted:
		res := Strings(rng, 2+rng.IntN(maxFixtureLen-1))
		slices.Sort(res)
		return res
	case ShapeReversed:
		res := Strings(rng, 2+rng.IntN(maxFixtureLen-1))
		slices.Sort(res)
		slices.Reverse(res)
		return res
	case ShapeDuplicates:
		word := randomdata.Noun()
		res := Strings(rng, 2+rng.IntN(maxFixtureLen/2))
		for i := 0; i < len(res); i += 2 {
			res[i] = word
		}
		return res
	case ShapeRandom, ShapeNegatives:
		fallthrough
	default:
	}
	return Strings(rng, 2+rng.IntN(maxFixtureLen-1))
}

func randomShape(rng *rand.Rand) Shape {
	return Shape(rng.IntN(int(_shapeMax)))
}
