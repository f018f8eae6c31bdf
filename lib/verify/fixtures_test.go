package verify

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInts(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	require.Empty(t, Ints(rng, 0, 0, 10))
	require.NotNil(t, Ints(rng, -1, 0, 10))

	res := Ints(rng, 200, -5, 5)
	require.Len(t, res, 200)
	for _, v := range res {
		require.GreaterOrEqual(t, v, -5)
		require.Less(t, v, 5)
	}
	require.Equal(t, []int{7, 7, 7}, Ints(rng, 3, 7, 7))
	require.True(t, slices.IsSorted(SortedInts(rng, 50, 0, 100)))
}

func TestIntsOf(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	testcases := []struct {
		shape Shape
		check func(t *testing.T, s []int)
	}{
		{ShapeEmpty, func(t *testing.T, s []int) { require.Empty(t, s) }},
		{ShapeSingle, func(t *testing.T, s []int) { require.Len(t, s, 1) }},
		{ShapeSorted, func(t *testing.T, s []int) { require.True(t, slices.IsSorted(s)) }},
		{ShapeReversed, func(t *testing.T, s []int) {
			r := slices.Clone(s)
			slices.Reverse(r)
			require.True(t, slices.IsSorted(r))
		}},
		{ShapeDuplicates, func(t *testing.T, s []int) {
			require.GreaterOrEqual(t, len(s), 2)
			for _, v := range s {
				require.Contains(t, []int{0, 1, 2}, v)
			}
		}},
		{ShapeNegatives, func(t *testing.T, s []int) {
			for _, v := range s {
				require.Negative(t, v)
			}
		}},
		{ShapeRandom, func(t *testing.T, s []int) { require.LessOrEqual(t, len(s), maxFixtureLen) }},
	}
	for _, tc := range testcases {
		t.Run(tc.shape.String(), func(tt *testing.T) {
			tc.check(tt, IntsOf(rng, tc.shape))
		})
	}
}

func TestStrings(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	require.Empty(t, Strings(rng, 0))
	res := Strings(rng, 12)
	require.Len(t, res, 12)
	for _, s := range res {
		require.NotEmpty(t, s)
	}
	require.True(t, slices.IsSorted(StringsOf(rng, ShapeSorted)))
	require.Len(t, StringsOf(rng, ShapeSingle), 1)
	require.Empty(t, StringsOf(rng, ShapeEmpty))
}

func TestShapeString(t *testing.T) {
	require.Equal(t, "duplicates", ShapeDuplicates.String())
	require.Equal(t, "unknown", Shape(200).String())
}
