package report

import "fmt"

const (
	// DefaultMinStep is the smallest accepted step magnitude.
	DefaultMinStep = 1
	// DefaultMaxStep is the largest accepted step magnitude.
	DefaultMaxStep = 3
)

// StepRule bounds the magnitude of every adjacent step, inclusive on both ends.
type StepRule struct {
	MinStep int
	MaxStep int
}

// DefaultRule accepts steps of magnitude 1 to 3.
var DefaultRule = StepRule{MinStep: DefaultMinStep, MaxStep: DefaultMaxStep}

// Valid reports whether the rule can ever be satisfied by a monotonic step.
// A zero lower bound would let equal neighbours pass, which breaks strict
// monotonicity.
func (s StepRule) Valid() error {
	if s.MinStep < 1 || s.MaxStep < s.MinStep {
		return fmt.Errorf("%w: min_step=%d max_step=%d (need 1 <= min_step <= max_step)",
			ErrInvalidStepRule, s.MinStep, s.MaxStep)
	}
	return nil
}

// Strict reports whether r is strictly increasing or strictly decreasing with
// every step magnitude inside the rule. Reports of length 0 or 1 are safe.
func (s StepRule) Strict(r Report) bool {
	if len(r) < 2 {
		return true
	}
	increasing := r[1] > r[0]
	for i := 1; i < len(r); i++ {
		d := r[i] - r[i-1]
		if !increasing {
			d = -d
		}
		if d < s.MinStep || d > s.MaxStep {
			return false
		}
	}
	return true
}
