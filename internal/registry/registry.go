package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/specialistvlad/daygrid/internal/settings"
)

var (
	// ErrUnknownDay is returned by Lookup for a day with no registered parts.
	ErrUnknownDay = errors.New("unknown day")
	// ErrUnknownPart is returned by Lookup for a part the day does not have.
	ErrUnknownPart = errors.New("not a valid part number")
)

// Request is everything a solver needs to compute its answer.
type Request struct {
	InputPath string
	Settings  settings.Settings
}

// Solver computes the answer for one part of one day.
type Solver func(ctx context.Context, req Request) (int, error)

// Module is implemented by every day package so it can register its parts.
type Module interface {
	Register(r *Registry)
}

// Registry holds the solvers of a single application instance.
type Registry struct {
	solvers map[int]map[int]Solver
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{solvers: make(map[int]map[int]Solver)}
}

// Register adds the solver for a day's part.
func (r *Registry) Register(day, part int, s Solver) {
	if s == nil {
		panic(fmt.Sprintf("nil solver for day %d part %d", day, part))
	}
	parts, ok := r.solvers[day]
	if !ok {
		parts = make(map[int]Solver)
		r.solvers[day] = parts
	}
	if _, exists := parts[part]; exists {
		panic(fmt.Sprintf("solver for day %d part %d already registered", day, part))
	}
	slog.Debug("Registering solver.", "day", day, "part", part)
	parts[part] = s
}

// Lookup returns the solver for a day's part.
func (r *Registry) Lookup(day, part int) (Solver, error) {
	parts, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	s, ok := parts[part]
	if !ok {
		return nil, fmt.Errorf("'%d' is %w for day %d", part, ErrUnknownPart, day)
	}
	return s, nil
}

// Parts returns the registered parts of a day in ascending order.
func (r *Registry) Parts(day int) []int {
	parts := make([]int, 0, len(r.solvers[day]))
	for p := range r.solvers[day] {
		parts = append(parts, p)
	}
	slices.Sort(parts)
	return parts
}

// Days returns the days that have at least one part, in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for d := range r.solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}
