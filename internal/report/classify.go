package report

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/specialistvlad/daygrid/internal/ctxlog"
)

// Tolerance is the number of levels the dampener may delete from a report
// before the strict check is applied.
type Tolerance uint

const (
	// Strict allows no deletions.
	Strict Tolerance = 0
	// Dampened allows a single deletion.
	Dampened Tolerance = 1
)

// Classifier couples a StepRule with a Tolerance. The zero value is not
// useful; use NewClassifier or a literal with DefaultRule.
type Classifier struct {
	Rule      StepRule
	Tolerance Tolerance
}

// NewClassifier returns a Classifier after validating rule.
func NewClassifier(rule StepRule, tolerance Tolerance) (*Classifier, error) {
	if err := rule.Valid(); err != nil {
		return nil, err
	}
	return &Classifier{Rule: rule, Tolerance: tolerance}, nil
}

// Classify reports whether r is safe under the default step rule with the
// given tolerance.
func Classify(r Report, tolerance Tolerance) bool {
	return Classifier{Rule: DefaultRule, Tolerance: tolerance}.Classify(r)
}

// CountSafe returns how many reports Classify accepts. The result does not
// depend on the order of reports.
func CountSafe(reports []Report, tolerance Tolerance) int {
	c := Classifier{Rule: DefaultRule, Tolerance: tolerance}
	n := 0
	for _, r := range reports {
		if c.Classify(r) {
			n++
		}
	}
	return n
}

// Classify reports whether r is safe: strictly safe as is, or strictly safe
// after deleting at most c.Tolerance levels.
func (c Classifier) Classify(r Report) bool {
	return c.safe(r, c.Tolerance)
}

func (c Classifier) safe(r Report, budget Tolerance) bool {
	if c.Rule.Strict(r) {
		return true
	}
	if budget == 0 {
		return false
	}
	for i := range r {
		if c.safe(without(r, i), budget-1) {
			return true
		}
	}
	return false
}

// CountSafe counts the safe reports using up to workers goroutines. With
// workers <= 1 the reports are classified on the calling goroutine. The only
// error returned is the context's.
func (c Classifier) CountSafe(ctx context.Context, reports []Report, workers int) (int, error) {
	logger := ctxlog.FromContext(ctx)
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	verdicts := make([]bool, len(reports))
	if workers <= 1 {
		for i, r := range reports {
			verdicts[i] = c.Classify(r)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range reports {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				verdicts[i] = c.Classify(reports[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
	}

	n := 0
	for i, ok := range verdicts {
		if ok {
			n++
		} else {
			logger.Debug("Report rejected.", "index", i, "levels", len(reports[i]))
		}
	}
	logger.Debug("Reports classified.", "total", len(reports), "safe", n,
		"tolerance", c.Tolerance, "min_step", c.Rule.MinStep, "max_step", c.Rule.MaxStep, "workers", workers)
	return n, nil
}
