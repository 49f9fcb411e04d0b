// Package d01 solves day 1: reconciling two lists of location IDs.
package d01

import (
	"context"
	"fmt"

	"github.com/specialistvlad/daygrid/internal/ctxlog"
	"github.com/specialistvlad/daygrid/internal/input"
	"github.com/specialistvlad/daygrid/internal/reconcile"
	"github.com/specialistvlad/daygrid/internal/registry"
)

// Day is the puzzle day this module registers under.
const Day = 1

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers both parts with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.Register(Day, 1, SolveDistance)
	r.Register(Day, 2, SolveSimilarity)
}

// SolveDistance returns the total distance between the sorted lists.
func SolveDistance(ctx context.Context, req registry.Request) (int, error) {
	left, right, err := input.ReadColumns(ctx, req.InputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read input lists: %w", err)
	}
	d, err := reconcile.Distance(left, right)
	if err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Debug("Distance computed.", "pairs", len(left), "distance", d)
	return d, nil
}

// SolveSimilarity returns the similarity score of the two lists.
func SolveSimilarity(ctx context.Context, req registry.Request) (int, error) {
	left, right, err := input.ReadColumns(ctx, req.InputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read input lists: %w", err)
	}
	s, err := reconcile.Similarity(left, right)
	if err != nil {
		return 0, err
	}
	ctxlog.FromContext(ctx).Debug("Similarity computed.", "pairs", len(left), "score", s)
	return s, nil
}
