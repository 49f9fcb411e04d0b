package app

import (
	"context"
	"fmt"
	"time"

	"github.com/specialistvlad/daygrid/internal/ctxlog"
	"github.com/specialistvlad/daygrid/internal/registry"
	"github.com/specialistvlad/daygrid/internal/settings"
)

// Run solves the configured day and part and returns the answer.
func (a *App) Run(ctx context.Context) (int, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctx = ctxlog.With(ctx, "day", a.config.Day, "part", a.config.Part)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	solve, err := a.registry.Lookup(a.config.Day, a.config.Part)
	if err != nil {
		return 0, err
	}

	s, err := settings.Load(ctx, a.config.ConfigPath)
	if err != nil {
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	if a.config.Workers > 0 {
		s.Workers = a.config.Workers
	}

	start := time.Now()
	answer, err := solve(ctx, registry.Request{InputPath: a.config.InputPath, Settings: s})
	if err != nil {
		return 0, fmt.Errorf("error while running part %d solver: %w", a.config.Part, err)
	}
	logger.Info("Solver finished.", "answer", answer, "elapsed", time.Since(start))

	return answer, nil
}
