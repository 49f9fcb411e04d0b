package settings

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/daygrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined reports whether an optional attribute was written in the
// file. gohcl fills omitted optional expressions with a zero-width
// placeholder, so a nil check alone is not enough.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	if expr == nil {
		return false
	}
	rng := expr.Range()
	defined := rng.End.Byte > rng.Start.Byte
	ctxlog.FromContext(ctx).Debug("Checked settings attribute.", "attribute", attrName, "hcl_range", rng.String(), "is_defined", defined)
	return defined
}

// decodeInt evaluates expr and stores it in dst. Absent or null attributes
// leave dst untouched.
func decodeInt(ctx context.Context, evalCtx *hcl.EvalContext, expr hcl.Expression, attrName string, dst *int) hcl.Diagnostics {
	if !isExprDefined(ctx, expr, attrName) {
		return nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() {
		return diags
	}

	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return append(diags, invalidValue(expr, attrName, fmt.Sprintf("a number is required, got %s", val.Type().FriendlyName())))
	}
	var out int
	if err := gocty.FromCtyValue(num, &out); err != nil {
		return append(diags, invalidValue(expr, attrName, fmt.Sprintf("a whole number is required: %s", err)))
	}
	*dst = out
	return diags
}

func invalidValue(expr hcl.Expression, attrName, detail string) *hcl.Diagnostic {
	d := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Invalid %s", attrName),
		Detail:   fmt.Sprintf("The %s setting is invalid: %s.", attrName, detail),
	}
	if expr != nil {
		d.Subject = expr.Range().Ptr()
	}
	return d
}
