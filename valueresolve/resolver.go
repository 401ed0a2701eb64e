package valueresolve

import "github.com/hollowcore/xform/internal/jsonptr"

// Resolve produces a concrete value from a decoded ValueSpec against ctx.
//
//   - a non-array object containing "valueFrom": the value is looked up via
//     dotted expression against ctx.
//   - a non-array object containing "literal": spec["literal"] is returned
//     verbatim.
//   - anything else: spec is returned as-is.
//
// valueFrom uses the dotted-expression grammar only; pointer syntax is not
// supported here (that is reserved for variable "get").
func Resolve(spec any, ctx any) any {
	obj, ok := spec.(map[string]any)
	if !ok {
		return spec
	}
	if expr, ok := obj["valueFrom"].(string); ok {
		v, _ := jsonptr.EvalDotted(ctx, expr)
		return v
	}
	if lit, ok := obj["literal"]; ok {
		return lit
	}
	return spec
}
