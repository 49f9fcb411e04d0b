package report

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDiffs(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		report Report
		want   []int
	}{
		{name: "empty", report: Report{}, want: nil},
		{name: "single level", report: Report{4}, want: nil},
		{name: "mixed", report: Report{7, 6, 4, 2, 1, 5}, want: []int{-1, -2, -2, -1, 4}},
		{name: "repeated", report: Report{3, 3}, want: []int{0}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Diffs(tc.report)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Diffs() mismatch (-want +got):\n%s", diff)
			}
			if len(tc.report) > 1 {
				require.Len(t, got, len(tc.report)-1)
			}
		})
	}
}

func TestWithout_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	r := Report{1, 2, 3, 4}
	got := without(r, 1)
	got[0] = 99

	require.Equal(t, Report{1, 2, 3, 4}, r)
	require.Equal(t, Report{99, 3, 4}, got)
}

func TestStepRule_Valid(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultRule.Valid())
	require.NoError(t, StepRule{MinStep: 2, MaxStep: 2}.Valid())
	require.ErrorIs(t, StepRule{MinStep: 0, MaxStep: 3}.Valid(), ErrInvalidStepRule)
	require.ErrorIs(t, StepRule{MinStep: 4, MaxStep: 3}.Valid(), ErrInvalidStepRule)
}

func TestStepRule_Strict(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		rule   StepRule
		report Report
		want   bool
	}{
		{name: "empty is safe", rule: DefaultRule, report: Report{}, want: true},
		{name: "single is safe", rule: DefaultRule, report: Report{42}, want: true},
		{name: "increasing", rule: DefaultRule, report: Report{1, 2, 3}, want: true},
		{name: "decreasing", rule: DefaultRule, report: Report{3, 2, 1}, want: true},
		{name: "flat step", rule: DefaultRule, report: Report{1, 1, 2}, want: false},
		{name: "step too large", rule: DefaultRule, report: Report{1, 2, 7, 8, 9}, want: false},
		{name: "direction change", rule: DefaultRule, report: Report{1, 3, 2, 4, 5}, want: false},
		{name: "negative levels", rule: DefaultRule, report: Report{-5, -3, 0}, want: true},
		{name: "wider rule accepts", rule: StepRule{MinStep: 1, MaxStep: 5}, report: Report{1, 2, 7, 8, 9}, want: true},
		{name: "narrow rule rejects small step", rule: StepRule{MinStep: 2, MaxStep: 3}, report: Report{1, 3, 4}, want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.rule.Strict(tc.report))
		})
	}
}
