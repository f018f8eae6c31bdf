package verify

import (
	"context"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"

	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/lib/recursion"
	"github.com/benz9527/xalgo/lib/search"
	"github.com/benz9527/xalgo/lib/sorts"
)

// Property is a single law checked against fresh fixtures drawn from rng.
// Check returns nil when the law holds.
type Property struct {
	Name  string
	Check func(ctx context.Context, rng *rand.Rand) error
}

const (
	PropBinarySearchFound = "bsearch.found"
	PropSearchAbsent      = "search.absent"
	PropSortIdempotent    = "sort.idempotent"
	PropSortPermutation   = "sort.permutation"
	PropSortOrdered       = "sort.ordered"
	PropSumCount          = "agg.sum_count"
	PropMax               = "agg.max"
)

func violation(prop, format string, args ...any) error {
	return infra.NewErrorStack(fmt.Sprintf("[verify] %s violated: ", prop) + fmt.Sprintf(format, args...))
}

type sorter[E infra.OrderedKey] struct {
	name string
	fn   func(s []E) []E
}

// sortersOf lists every sort kernel. SelectionSort works in place so it
// receives a clone.
func sortersOf[E infra.OrderedKey](rng *rand.Rand) []sorter[E] {
	res := []sorter[E]{
		{
			name: "selection",
			fn: func(s []E) []E {
				return sorts.SelectionSort(slices.Clone(s))
			},
		},
	}
	for _, p := range []sorts.PivotPolicy{
		sorts.PivotFirst,
		sorts.PivotMiddle,
		sorts.PivotMedianOfThree,
		sorts.PivotRandom,
	} {
		policy := p
		src := rand.NewPCG(rng.Uint64(), rng.Uint64())
		res = append(res, sorter[E]{
			name: "quick/" + policy.String(),
			fn: func(s []E) []E {
				return sorts.QuickSort(s, sorts.WithPivotPolicy(policy), sorts.WithPivotRandSource(src))
			},
		})
	}
	return res
}

func checkBinarySearchFound[E infra.OrderedKey](sorted []E, rng *rand.Rand) error {
	if len(sorted) == 0 {
		if _, ok := search.BinarySearch(sorted, *new(E)); ok {
			return violation(PropBinarySearchFound, "found a target in an empty slice")
		}
		return nil
	}
	target := sorted[rng.IntN(len(sorted))]
	i, ok := search.BinarySearch(sorted, target)
	if !ok || sorted[i] != target {
		return violation(PropBinarySearchFound, "iterative missed %v in %v", target, sorted)
	}
	j, ok := search.RecursiveBinarySearch(sorted, target)
	if !ok || sorted[j] != target {
		return violation(PropBinarySearchFound, "recursive missed %v in %v", target, sorted)
	}
	return nil
}

// checkSearchAbsent is vacuous when the candidate happens to be present.
func checkSearchAbsent[E infra.OrderedKey](sorted []E, absent E) error {
	if slices.Contains(sorted, absent) {
		return nil
	}
	if _, ok := search.LinearSearch(sorted, absent); ok {
		return violation(PropSearchAbsent, "linear found absent %v", absent)
	}
	if _, ok := search.BinarySearch(sorted, absent); ok {
		return violation(PropSearchAbsent, "binary found absent %v", absent)
	}
	if _, ok := search.RecursiveBinarySearch(sorted, absent); ok {
		return violation(PropSearchAbsent, "recursive binary found absent %v", absent)
	}
	return nil
}

func checkSortIdempotent[E infra.OrderedKey](s []E, rng *rand.Rand) error {
	for _, st := range sortersOf[E](rng) {
		once := st.fn(s)
		if twice := st.fn(once); !slices.Equal(once, twice) {
			return violation(PropSortIdempotent, "%s: %v then %v", st.name, once, twice)
		}
	}
	return nil
}

func checkSortPermutation[E infra.OrderedKey](s []E, rng *rand.Rand) error {
	want := lo.CountValues(s)
	for _, st := range sortersOf[E](rng) {
		if got := lo.CountValues(st.fn(s)); !maps.Equal(want, got) {
			return violation(PropSortPermutation, "%s changed the multiset of %v", st.name, s)
		}
	}
	return nil
}

func checkSortOrdered[E infra.OrderedKey](s []E, rng *rand.Rand) error {
	for _, st := range sortersOf[E](rng) {
		if res := st.fn(s); !sorts.IsSorted(res) {
			return violation(PropSortOrdered, "%s: %v", st.name, res)
		}
	}
	return nil
}

func checkCount[E any](s []E) error {
	if got := recursion.Count(s); got != len(s) {
		return violation(PropSumCount, "count %d, len %d", got, len(s))
	}
	if got := recursion.CountIter(s); got != len(s) {
		return violation(PropSumCount, "iterative count %d, len %d", got, len(s))
	}
	return nil
}

func checkSum[E infra.Number](s []E) error {
	want := lo.Sum(s)
	if got := recursion.Sum(s); got != want {
		return violation(PropSumCount, "sum %v, reference %v", got, want)
	}
	if got := recursion.SumIter(s); got != want {
		return violation(PropSumCount, "iterative sum %v, reference %v", got, want)
	}
	return checkCount(s)
}

func checkMax[E infra.OrderedKey](s []E) error {
	got, ok := recursion.Max(s)
	gotIter, okIter := recursion.MaxIter(s)
	if len(s) == 0 {
		if ok || okIter {
			return violation(PropMax, "max of an empty slice is present")
		}
		return nil
	}
	want := slices.Max(s)
	if !ok || got != want {
		return violation(PropMax, "max %v, reference %v", got, want)
	}
	if !okIter || gotIter != want {
		return violation(PropMax, "iterative max %v, reference %v", gotIter, want)
	}
	return nil
}

func wrapCheck(check func(rng *rand.Rand) error) func(ctx context.Context, rng *rand.Rand) error {
	return func(ctx context.Context, rng *rand.Rand) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return check(rng)
	}
}

func IntProperties() []Property {
	return []Property{
		{
			Name: PropBinarySearchFound,
			Check: wrapCheck(func(rng *rand.Rand) error {
				sorted := IntsOf(rng, randomShape(rng))
				slices.Sort(sorted)
				return checkBinarySearchFound(sorted, rng)
			}),
		},
		{
			Name: PropSearchAbsent,
			Check: wrapCheck(func(rng *rand.Rand) error {
				sorted := SortedInts(rng, rng.IntN(maxFixtureLen), -fixtureBound, fixtureBound)
				if err := checkSearchAbsent(sorted, fixtureBound+rng.IntN(fixtureBound)); err != nil {
					return err
				}
				return checkSearchAbsent(sorted, -fixtureBound+rng.IntN(2*fixtureBound))
			}),
		},
		{
			Name: PropSortIdempotent,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkSortIdempotent(IntsOf(rng, randomShape(rng)), rng)
			}),
		},
		{
			Name: PropSortPermutation,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkSortPermutation(IntsOf(rng, randomShape(rng)), rng)
			}),
		},
		{
			Name: PropSortOrdered,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkSortOrdered(IntsOf(rng, randomShape(rng)), rng)
			}),
		},
		{
			Name: PropSumCount,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkSum(IntsOf(rng, randomShape(rng)))
			}),
		},
		{
			Name: PropMax,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkMax(IntsOf(rng, randomShape(rng)))
			}),
		},
	}
}

func StringProperties() []Property {
	return []Property{
		{
			Name: PropBinarySearchFound,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkBinarySearchFound(StringsOf(rng, ShapeSorted), rng)
			}),
		},
		{
			Name: PropSearchAbsent,
			Check: wrapCheck(func(rng *rand.Rand) error {
				sorted := StringsOf(rng, ShapeSorted)
				// Dictionary words never contain a tilde.
				return checkSearchAbsent(sorted, sorted[0]+"~")
			}),
		},
		{
			Name: PropSortIdempotent,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkSortIdempotent(StringsOf(rng, randomShape(rng)), rng)
			}),
		},
		{
			Name: PropSortPermutation,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkSortPermutation(StringsOf(rng, randomShape(rng)), rng)
			}),
		},
		{
			Name: PropSortOrdered,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkSortOrdered(StringsOf(rng, randomShape(rng)), rng)
			}),
		},
		{
			Name: PropSumCount,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkCount(StringsOf(rng, randomShape(rng)))
			}),
		},
		{
			Name: PropMax,
			Check: wrapCheck(func(rng *rand.Rand) error {
				return checkMax(StringsOf(rng, randomShape(rng)))
			}),
		},
	}
}

// AllProperties prefixes the int and string suites by their element type.
func AllProperties() []Property {
	res := make([]Property, 0, 14)
	for _, p := range IntProperties() {
		res = append(res, Property{Name: "int/" + p.Name, Check: p.Check})
	}
	for _, p := range StringProperties() {
		res = append(res, Property{Name: "string/" + p.Name, Check: p.Check})
	}
	return res
}
