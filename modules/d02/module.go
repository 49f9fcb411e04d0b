// Package d02 solves day 2: counting safe reports.
package d02

import (
	"context"
	"fmt"

	"github.com/specialistvlad/daygrid/internal/input"
	"github.com/specialistvlad/daygrid/internal/registry"
	"github.com/specialistvlad/daygrid/internal/report"
)

// Day is the puzzle day this module registers under.
const Day = 2

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers both parts with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Day, 1, SolveStrict)
	r.Register(Day, 2, SolveDampened)
}

// SolveStrict counts the reports that are safe without the dampener.
func SolveStrict(ctx context.Context, req registry.Request) (int, error) {
	return countSafe(ctx, req, report.Strict)
}

// SolveDampened counts the reports that are safe with the configured
// dampener tolerance.
func SolveDampened(ctx context.Context, req registry.Request) (int, error) {
	return countSafe(ctx, req, req.Settings.Tolerance)
}

func countSafe(ctx context.Context, req registry.Request, tolerance report.Tolerance) (int, error) {
	reports, err := input.ReadReports(ctx, req.InputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	c, err := report.NewClassifier(req.Settings.Rule, tolerance)
	if err != nil {
		return 0, err
	}
	return c.CountSafe(ctx, reports, req.Settings.Workers)
}
