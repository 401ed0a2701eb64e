package vars

import (
	"strings"

	"github.com/hollowcore/xform/internal/jsonptr"
	"github.com/hollowcore/xform/pathresolve"
)

// Evaluate materializes declarations against the working context ctx
// (expected keys "event", "state", "vars"), merging over any vars already
// present in ctx and writing the merged map back into ctx["vars"] so that
// later declarations — and later pipeline stages — see it.
//
// Declarations are evaluated in their declared order, so a variable may
// reference an earlier one in the same Set via {vars.earlier}. Calling
// Evaluate a second time with branch-level declarations against a ctx
// whose "vars" already holds the top-level result implements the
// branch-merges-over-top rule of §4.5 for free: same name, later write,
// wins.
func Evaluate(declarations Set, ctx map[string]any) map[string]any {
	existing, _ := ctx["vars"].(map[string]any)
	merged := make(map[string]any, len(existing)+len(declarations))
	for k, v := range existing {
		merged[k] = v
	}
	ctx["vars"] = merged

	for _, decl := range declarations {
		merged[decl.Name] = evaluateOne(decl.Spec, ctx)
	}
	return merged
}

func evaluateOne(spec Spec, ctx map[string]any) any {
	if spec.HasValue {
		return spec.Value
	}
	if !spec.HasGet {
		return nil
	}
	if strings.HasPrefix(spec.Get, "/") {
		pointer := pathresolve.ToPointer(spec.Get, ctx)
		v, _ := jsonptr.Get(ctx, jsonptr.Split(pointer))
		return v
	}
	v, _ := jsonptr.EvalDotted(ctx, spec.Get)
	return v
}
