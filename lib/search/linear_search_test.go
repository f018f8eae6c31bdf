package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearSearch(t *testing.T) {
	testcases := []struct {
		name    string
		s       []int
		target  int
		wantIdx int
		wantOk  bool
	}{
		{"empty", []int{}, 1, 0, false},
		{"nil", nil, 1, 0, false},
		{"single hit", []int{1}, 1, 0, true},
		{"single miss", []int{1}, 2, 0, false},
		{"unsorted", []int{5, 3, 9, 0, -2}, -2, 4, true},
		{"first of duplicates", []int{4, 7, 7, 7}, 7, 1, true},
		{"absent", []int{0, 1, 2, 3}, 10, 0, false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			idx, ok := LinearSearch(tc.s, tc.target)
			require.Equal(tt, tc.wantOk, ok)
			if ok {
				require.Equal(tt, tc.wantIdx, idx)
			}
		})
	}
}

func TestLinearSearch_Strings(t *testing.T) {
	fruits := []string{"mangoes", "apple", "apples", "bananas"}
	idx, ok := LinearSearch(fruits, "apples")
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = LinearSearch(fruits, "kiwi")
	require.False(t, ok)
}

func TestLinearSearchFunc(t *testing.T) {
	type employee struct {
		name string
		age  int
	}
	staff := []employee{{"p0", 10}, {"p1", 101}, {"p2", 35}}
	idx, ok := LinearSearchFunc(staff, func(e employee) bool { return e.age > 30 })
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = LinearSearchFunc(staff, nil)
	require.False(t, ok)
}
