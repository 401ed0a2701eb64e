package planschema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hollowcore/xform/predicate"
)

// MetaSchemaJSON is the exact Transform Plan meta-schema from §6, bundled
// with the distribution and exposed verbatim for callers who wish to
// validate plans independently of this package.
//
//go:embed schema.json
var MetaSchemaJSON []byte

// Validator compiles the bundled meta-schema once and validates plans
// against it.
type Validator struct {
	engine   *predicate.Engine
	compiled predicate.Predicate
}

// Option configures a Validator at construction.
type Option func(*Validator)

// WithEngine substitutes an alternative predicate engine. The meta-schema
// is then compiled against the caller's instance, and PrecompileBranches
// warms that instance's cache.
func WithEngine(e *predicate.Engine) Option {
	return func(v *Validator) { v.engine = e }
}

// New compiles the bundled meta-schema exactly once and returns a ready
// Validator.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{}
	for _, opt := range opts {
		opt(v)
	}
	if v.engine == nil {
		v.engine = predicate.New()
	}

	var meta any
	if err := json.Unmarshal(MetaSchemaJSON, &meta); err != nil {
		return nil, fmt.Errorf("planschema: decoding bundled meta-schema: %w", err)
	}
	compiled, err := v.engine.Compile(meta)
	if err != nil {
		return nil, fmt.Errorf("planschema: compiling bundled meta-schema: %w", err)
	}
	v.compiled = compiled
	return v, nil
}

// Validate confirms plan conforms to the Transform Plan meta-schema, then
// eagerly precompiles every "if"/"preconditions" schema fragment the plan
// reaches via PrecompileBranches, so a plan with a malformed predicate
// fragment is rejected here rather than surfacing mid-Transform. On
// failure it returns the validator's diagnostic list; the Executor turns
// this into an InvalidPlan failure raised before any context access.
func (v *Validator) Validate(plan any) (valid bool, errs []string) {
	if !v.compiled.Test(plan) {
		return false, v.compiled.Errors()
	}
	if planMap, ok := plan.(map[string]any); ok {
		if err := v.PrecompileBranches(planMap); err != nil {
			return false, []string{fmt.Sprintf("precompiling predicate fragments: %v", err)}
		}
	}
	return true, nil
}

// PrecompileBranches eagerly compiles every "if" and "preconditions"
// schema fragment reachable from an already-structurally-valid plan,
// concurrently via errgroup. This only warms the predicate engine's
// compilation cache and surfaces malformed schema fragments early; it
// never evaluates a predicate against data, so it does not affect the
// Executor's strict sequential evaluation order (§5).
func (v *Validator) PrecompileBranches(plan map[string]any) error {
	fragments := collectSchemaFragments(plan)
	if len(fragments) == 0 {
		return nil
	}

	var g errgroup.Group
	for _, frag := range fragments {
		frag := frag
		g.Go(func() error {
			_, err := v.engine.Compile(frag)
			return err
		})
	}
	return g.Wait()
}

func collectSchemaFragments(plan map[string]any) []any {
	var out []any
	if pre, ok := plan["preconditions"]; ok {
		out = append(out, pre)
	}
	whenAny, _ := plan["when"].([]any)
	for _, b := range whenAny {
		branch, ok := b.(map[string]any)
		if !ok {
			continue
		}
		if ifSchema, ok := branch["if"]; ok {
			out = append(out, ifSchema)
		}
		for _, actionKey := range []string{"then", "else"} {
			action, ok := branch[actionKey].(map[string]any)
			if !ok {
				continue
			}
			if pre, ok := action["preconditions"]; ok {
				out = append(out, pre)
			}
		}
	}
	return out
}
