package flist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListEqual(t *testing.T) {
	testCases := []struct {
		name string
		a, b []int
		want bool
	}{
		{"both empty", nil, nil, true},
		{"equal single", []int{1}, []int{1}, true},
		{"equal sequence", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"different value", []int{1, 2, 3}, []int{1, 2, 4}, false},
		{"different order", []int{1, 2}, []int{2, 1}, false},
		{"prefix is not equal", []int{1, 2, 3}, []int{1, 2}, false},
		{"empty vs non-empty", nil, []int{1}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := Of(tc.a...), Of(tc.b...)
			require.Equal(t, tc.want, Equal(a, b))
			require.Equal(t, tc.want, Equal(b, a))
		})
	}

	t.Run("reflexivity", func(t *testing.T) {
		l := Of(1, 2, 3)
		require.True(t, Equal(l, l))
		require.False(t, Less(l, l))
	})
}

func TestListCompare(t *testing.T) {
	testCases := []struct {
		name string
		a, b []int
		want int
	}{
		{"both empty", nil, nil, 0},
		{"equal sequences", []int{1, 2, 3}, []int{1, 2, 3}, 0},
		{"first difference decides", []int{1, 2, 3}, []int{1, 2, 4}, -1},
		{"prefix is less", []int{1, 2}, []int{1, 2, 3}, -1},
		{"empty is less than any", nil, []int{1}, -1},
		{"greater first element", []int{2}, []int{1, 9, 9}, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := Of(tc.a...), Of(tc.b...)
			require.Equal(t, tc.want, Compare(a, b))
			require.Equal(t, -tc.want, Compare(b, a))
		})
	}

	t.Run("less and derived relations", func(t *testing.T) {
		require.True(t, Less(Of(1, 2, 3), Of(1, 2, 4)))
		require.True(t, Less(Of(1, 2), Of(1, 2, 3)))
		require.True(t, Less(Of[int](), Of(1)))
		// a >= b is !Less(a, b)
		require.False(t, Less(Of(1, 2, 3), Of(1, 2, 3)))
	})

	t.Run("ordered strings", func(t *testing.T) {
		require.True(t, Less(Of("apple", "pie"), Of("apple", "tart")))
		require.Equal(t, 0, Compare(Of("a", "b"), Of("a", "b")))
	})
}

func TestListEqualFunc(t *testing.T) {
	a := Of("Alpha", "Beta")
	b := Of("alpha", "BETA")
	require.True(t, EqualFunc(a, b, strings.EqualFold))
	require.False(t, EqualFunc(a, Of("alpha"), strings.EqualFold))
}

func TestListCompareFunc(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	require.Equal(t, 1, CompareFunc(Of(1), Of(2), desc))
	require.Equal(t, -1, CompareFunc(Of(2), Of(1), desc))
	require.Equal(t, -1, CompareFunc(Of(1, 2), Of(1, 2, 3), desc))
	require.Equal(t, 0, CompareFunc(Of(1, 2), Of(1, 2), desc))
}

func TestListScenarioComparisons(t *testing.T) {
	require.True(t, Equal(Of(1, 2, 3), Of(1, 2, 3)))
	require.False(t, Equal(Of(1, 2, 3), Of(1, 2)))
	require.True(t, Less(Of(1, 2), Of(1, 2, 3)))
}
