// Package reconcile compares two lists of location IDs.
package reconcile

import (
	"errors"
	"fmt"
	"slices"
)

// ErrLengthMismatch is returned when the two lists differ in length.
var ErrLengthMismatch = errors.New("reconcile: lists differ in length")

func checkLengths(left, right []int) error {
	if len(left) != len(right) {
		return fmt.Errorf("%w: left has %d entries, right has %d", ErrLengthMismatch, len(left), len(right))
	}
	return nil
}

// Distance pairs the smallest left ID with the smallest right ID, the second
// smallest with the second smallest and so on, and sums the absolute
// differences of each pair. The inputs are not modified.
func Distance(left, right []int) (int, error) {
	if err := checkLengths(left, right); err != nil {
		return 0, err
	}
	l := slices.Clone(left)
	r := slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	sum := 0
	for i := range l {
		d := l[i] - r[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum, nil
}

// Similarity sums, over each distinct left ID v, v times the number of times v
// occurs on the left times the number of times it occurs on the right.
func Similarity(left, right []int) (int, error) {
	if err := checkLengths(left, right); err != nil {
		return 0, err
	}
	inLeft := frequencies(left)
	inRight := frequencies(right)

	score := 0
	for v, fl := range inLeft {
		if fr, ok := inRight[v]; ok {
			score += v * fl * fr
		}
	}
	return score, nil
}

func frequencies(ids []int) map[int]int {
	f := make(map[int]int, len(ids))
	for _, id := range ids {
		f[id]++
	}
	return f
}
