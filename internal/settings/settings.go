package settings

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/daygrid/internal/ctxlog"
	"github.com/specialistvlad/daygrid/internal/fsutil"
	"github.com/specialistvlad/daygrid/internal/report"
	"github.com/zclconf/go-cty/cty"
)

// Settings tunes how solvers compute their answers.
type Settings struct {
	// Tolerance is the dampener budget used by the relaxed report check.
	Tolerance report.Tolerance
	// Rule bounds the step between adjacent levels.
	Rule report.StepRule
	// Workers bounds the goroutines used to classify reports.
	Workers int
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Tolerance: report.Dampened,
		Rule:      report.DefaultRule,
		Workers:   1,
	}
}

// fileRoot is the top level of a settings file.
type fileRoot struct {
	Classifier *classifierBlock `hcl:"classifier,block"`
	Workers    hcl.Expression   `hcl:"workers,optional"`
}

type classifierBlock struct {
	Tolerance hcl.Expression `hcl:"tolerance,optional"`
	MinStep   hcl.Expression `hcl:"min_step,optional"`
	MaxStep   hcl.Expression `hcl:"max_step,optional"`
}

// Load reads the settings at path, either a single file or a directory whose
// .hcl files are applied in lexical order, later files overriding earlier
// ones. An empty path yields Default().
func Load(ctx context.Context, path string) (Settings, error) {
	logger := ctxlog.FromContext(ctx)
	s := Default()
	if path == "" {
		logger.Debug("No settings file given, using defaults.")
		return s, nil
	}
	logger.Debug("Settings loader started.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return s, fmt.Errorf("failed to read settings %s: %w", path, err)
	}
	if len(files) == 0 {
		return s, fmt.Errorf("no .hcl settings files found at %s", path)
	}
	logger.Debug("Discovered settings files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := evalContext(Default())
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return s, fmt.Errorf("failed to parse settings file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return s, fmt.Errorf("failed to decode settings file %s: %w", file, diags)
		}

		if diags := root.apply(ctx, evalCtx, &s); diags.HasErrors() {
			return s, fmt.Errorf("invalid settings in %s: %w", file, diags)
		}
	}

	logger.Debug("Settings loaded.", "tolerance", s.Tolerance, "min_step", s.Rule.MinStep, "max_step", s.Rule.MaxStep, "workers", s.Workers)
	return s, nil
}

// evalContext exposes the built-in values to settings expressions.
func evalContext(s Settings) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"tolerance": cty.NumberUIntVal(uint64(s.Tolerance)),
				"min_step":  cty.NumberIntVal(int64(s.Rule.MinStep)),
				"max_step":  cty.NumberIntVal(int64(s.Rule.MaxStep)),
				"workers":   cty.NumberIntVal(int64(s.Workers)),
			}),
		},
	}
}

// apply evaluates every attribute present in the file, validates it and
// overrides the matching field of s.
func (r *fileRoot) apply(ctx context.Context, evalCtx *hcl.EvalContext, s *Settings) hcl.Diagnostics {
	var diags hcl.Diagnostics

	workers := s.Workers
	diags = append(diags, decodeInt(ctx, evalCtx, r.Workers, "workers", &workers)...)
	if isExprDefined(ctx, r.Workers, "workers") && workers < 1 {
		diags = append(diags, invalidValue(r.Workers, "workers", "must be at least 1"))
	}

	if r.Classifier == nil {
		s.Workers = workers
		return diags
	}
	c := r.Classifier

	tolerance := int(s.Tolerance)
	diags = append(diags, decodeInt(ctx, evalCtx, c.Tolerance, "tolerance", &tolerance)...)
	if tolerance < 0 {
		diags = append(diags, invalidValue(c.Tolerance, "tolerance", "must not be negative"))
	}

	rule := s.Rule
	diags = append(diags, decodeInt(ctx, evalCtx, c.MinStep, "min_step", &rule.MinStep)...)
	diags = append(diags, decodeInt(ctx, evalCtx, c.MaxStep, "max_step", &rule.MaxStep)...)
	if !diags.HasErrors() {
		if err := rule.Valid(); err != nil {
			subject := c.MaxStep
			if !isExprDefined(ctx, subject, "max_step") {
				subject = c.MinStep
			}
			diags = append(diags, invalidValue(subject, "step bounds", err.Error()))
		}
	}

	if diags.HasErrors() {
		return diags
	}
	s.Workers = workers
	s.Tolerance = report.Tolerance(tolerance)
	s.Rule = rule
	return diags
}
