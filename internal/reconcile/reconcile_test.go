package reconcile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	sampleLeft  = []int{3, 4, 2, 1, 3, 3}
	sampleRight = []int{4, 3, 5, 3, 9, 3}
)

func TestDistance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		left  []int
		right []int
		want  int
	}{
		{name: "sample", left: sampleLeft, right: sampleRight, want: 11},
		{name: "empty", left: nil, right: nil, want: 0},
		{name: "identical", left: []int{5, 1}, right: []int{1, 5}, want: 0},
		{name: "negative ids", left: []int{-3, 2}, right: []int{1, -1}, want: 3},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Distance(tc.left, tc.right)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestDistance_DoesNotSortInputs(t *testing.T) {
	t.Parallel()

	left := []int{3, 1, 2}
	right := []int{9, 8, 7}
	_, err := Distance(left, right)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 2}, left)
	require.Equal(t, []int{9, 8, 7}, right)
}

func TestSimilarity(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		left  []int
		right []int
		want  int
	}{
		{name: "sample", left: sampleLeft, right: sampleRight, want: 31},
		{name: "no overlap", left: []int{1, 2}, right: []int{3, 4}, want: 0},
		{name: "repeats on both sides", left: []int{2, 2}, right: []int{2, 2}, want: 8},
		{name: "empty", left: []int{}, right: []int{}, want: 0},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Similarity(tc.left, tc.right)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := Distance([]int{1}, []int{1, 2})
	require.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Similarity([]int{1, 2}, nil)
	require.ErrorIs(t, err, ErrLengthMismatch)
}
