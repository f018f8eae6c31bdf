package sorts

import (
	"github.com/benz9527/xalgo/lib/infra"
)

// QuickSort returns a new ascending sorted slice and leaves s untouched.
//
// One element is taken out as pivot (the first one unless another
// PivotPolicy is given), the rest is split into the elements strictly
// less than the pivot and the elements not less than it. Both parts are
// sorted recursively and joined as less ++ [pivot] ++ notLess, so the
// duplicates of the pivot always land on its right.
//
// Options failed to apply are skipped, use QuickSortE to get the error.
func QuickSort[S ~[]E, E infra.OrderedKey](s S, opts ...QuickSortOption) S {
	res, _ := QuickSortFuncE(s, infra.Compare[E], opts...)
	return res
}

func QuickSortE[S ~[]E, E infra.OrderedKey](s S, opts ...QuickSortOption) (S, error) {
	return QuickSortFuncE(s, infra.Compare[E], opts...)
}

func QuickSortFunc[S ~[]E, E any](s S, cmp func(a, b E) int, opts ...QuickSortOption) S {
	res, _ := QuickSortFuncE(s, cmp, opts...)
	return res
}

// QuickSortFuncE always returns the sorted result, even with an option error.
func QuickSortFuncE[S ~[]E, E any](s S, cmp func(a, b E) int, opts ...QuickSortOption) (S, error) {
	cfg := &quickSortCfg{policy: PivotFirst}
	var err error
	for _, o := range opts {
		if o == nil {
			continue
		}
		if _err := o(cfg); _err != nil && err == nil {
			err = _err
		}
	}
	return quickSort(s, cmp, newPivotPicker[E](cfg)), err
}

func quickSort[S ~[]E, E any](s S, cmp func(a, b E) int, pick pivotPicker[E]) S {
	if len(s) == 0 {
		return S{}
	}

	p := pick(s, cmp)
	pivot := s[p]
	var less, notLess S
	for i := range s {
		if i == p {
			continue
		}
		if cmp(s[i], pivot) < 0 {
			less = append(less, s[i])
		} else {
			notLess = append(notLess, s[i])
		}
	}

	res := make(S, 0, len(s))
	res = append(res, quickSort(less, cmp, pick)...)
	res = append(res, pivot)
	res = append(res, quickSort(notLess, cmp, pick)...)
	return res
}
