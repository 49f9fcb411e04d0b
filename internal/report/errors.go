package report

import "errors"

// ErrInvalidStepRule is returned when a StepRule has a zero lower bound or a
// lower bound above its upper bound.
var ErrInvalidStepRule = errors.New("report: invalid step rule")
