package report

// Report is an ordered sequence of levels. Levels may repeat.
type Report []int

// Diffs returns the successive differences of r: d[i] = r[i+1] - r[i].
// Reports shorter than two levels have no diffs.
func Diffs(r Report) []int {
	if len(r) < 2 {
		return nil
	}
	d := make([]int, len(r)-1)
	for i := range d {
		d[i] = r[i+1] - r[i]
	}
	return d
}

// without returns a copy of r with the level at index i removed.
func without(r Report, i int) Report {
	out := make(Report, 0, len(r)-1)
	out = append(out, r[:i]...)
	return append(out, r[i+1:]...)
}
