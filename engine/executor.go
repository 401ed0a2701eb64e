package engine

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hollowcore/xform/internal/jsonptr"
	"github.com/hollowcore/xform/pathresolve"
	"github.com/hollowcore/xform/planschema"
	"github.com/hollowcore/xform/predicate"
	"github.com/hollowcore/xform/valueresolve"
	"github.com/hollowcore/xform/vars"
	"github.com/hollowcore/xform/xformerrors"
)

// Engine ties the six components together into the pipeline of §4.6. It
// holds no per-call state: the compiled meta-schema and predicate cache
// are its only process-wide mutable resources (§5).
type Engine struct {
	logger     Logger
	predEngine *predicate.Engine
	validator  *planschema.Validator
	applier    PatchApplier
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithLogger substitutes the engine's Logger. The default is a NopLogger.
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithPredicateEngine substitutes the predicate engine used to compile
// branch "if" and "preconditions" fragments. Per §6's Options contract,
// an alternative instance must be draft-2020-12 capable.
func WithPredicateEngine(p *predicate.Engine) Option {
	return func(e *Engine) { e.predEngine = p }
}

// WithValidator substitutes the plan validator. The supplied validator is
// used as is (it compiled the meta-schema when it was built), and New
// then does not build or compile a default one.
func WithValidator(v *planschema.Validator) Option {
	return func(e *Engine) { e.validator = v }
}

// WithApplier substitutes the patch applier used for the APPLY stage. The
// default is NativeApplier.
func WithApplier(a PatchApplier) Option {
	return func(e *Engine) { e.applier = a }
}

// New constructs an Engine, compiling the bundled meta-schema exactly
// once unless WithValidator supplies an already-built one.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{logger: NopLogger{}}
	for _, opt := range opts {
		opt(e)
	}
	if e.predEngine == nil {
		e.predEngine = predicate.New()
	}
	if e.validator == nil {
		v, err := planschema.New(planschema.WithEngine(e.predEngine))
		if err != nil {
			return nil, fmt.Errorf("engine: constructing default validator: %w", err)
		}
		e.validator = v
	}
	if e.applier == nil {
		e.applier = NativeApplier{}
	}
	return e, nil
}

// ValidatePlan confirms planRaw conforms to the Transform Plan
// meta-schema, per §4.1. It performs no context access.
func (e *Engine) ValidatePlan(planRaw any) (bool, []string) {
	return e.validator.Validate(planRaw)
}

// Transform runs the full Executor pipeline of §4.6 against planRaw and
// ctxDoc. ctxDoc must contain "event" and "state" keys; "vars", if
// present, seeds the top-level variable evaluation.
func (e *Engine) Transform(planRaw any, ctxDoc map[string]any) (*Result, error) {
	correlationID := uuid.NewString()
	log := e.logger.With("correlationId", correlationID)

	// VALIDATE
	if valid, errs := e.validator.Validate(planRaw); !valid {
		log.Error("plan failed meta-schema validation", "violations", len(errs))
		return nil, &xformerrors.InvalidPlanError{Diagnostics: errs}
	}

	plan, err := decodePlan(planRaw)
	if err != nil {
		return nil, &xformerrors.InvalidPlanError{Diagnostics: []string{err.Error()}, Cause: err}
	}

	working := map[string]any{
		"event": ctxDoc["event"],
		"state": ctxDoc["state"],
	}
	if seed, ok := ctxDoc["vars"].(map[string]any); ok {
		working["vars"] = seed
	}

	// VARS_TOP
	vars.Evaluate(plan.Variables, working)
	log.Debug("top-level variables evaluated")

	// PRECONDS_TOP
	if plan.Preconditions != nil {
		ok, diags, err := e.testPredicate(plan.Preconditions, working)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Debug("top-level preconditions failed")
			return nil, &xformerrors.PreconditionFailedError{Scope: "top", Diagnostics: diags}
		}
	}

	// SELECT
	chosen, branchIndex, err := e.selectBranch(plan.When, working)
	if err != nil {
		return nil, err
	}
	if chosen == nil {
		log.Debug("no branch matched; no-op")
		return &Result{State: working["state"], Ops: []PreparedOperation{}, CorrelationID: correlationID}, nil
	}
	log.Debug("branch selected", "index", branchIndex)

	// VARS_BRANCH
	vars.Evaluate(chosen.Variables, working)

	// PRECONDS_BRANCH
	if chosen.Preconditions != nil {
		ok, diags, err := e.testPredicate(chosen.Preconditions, working)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Debug("branch preconditions failed", "index", branchIndex)
			return nil, &xformerrors.PreconditionFailedError{Scope: "branch", BranchIndex: branchIndex, Diagnostics: diags}
		}
	}

	// PREPARE
	prepared := prepareOps(chosen.Ops, working)

	// SNAPSHOT. All mutation from here on happens against a deep copy, not
	// the caller's own state container, so that an atomic failure leaves
	// the caller's container completely untouched without needing to
	// undo anything. writeBackState below is the only place that ever
	// mutates the caller's container, and only on a path that must be
	// observed.
	original := working["state"]
	state := jsonptr.DeepCopy(original)

	// MAP_SET
	for i, op := range chosen.Ops {
		if op.Op != "set" {
			continue
		}
		tokens := jsonptr.Split(prepared[i].Path)
		if err := jsonptr.EnsureParents(state, tokens); err != nil {
			mapErr := &xformerrors.ParentNotObjectError{Index: i, Path: prepared[i].Path}
			var nc *jsonptr.NonContainerError
			if errors.As(err, &nc) {
				mapErr.Segment = nc.Segment
			}
			log.Error("set operation could not reach its parent", "index", i, "path", prepared[i].Path)
			if !plan.Atomic {
				writeBackState(original, state)
				return &Result{State: state, Ops: nil, CorrelationID: correlationID}, mapErr
			}
			return &Result{State: original, Ops: nil, CorrelationID: correlationID}, mapErr
		}
		if jsonptr.Has(state, tokens) {
			prepared[i].Op = "replace"
		} else {
			prepared[i].Op = "add"
		}
	}

	// APPLY
	newState, failedIndex, applyErr := e.applier.Apply(state, prepared)
	if applyErr != nil {
		log.Error("operation failed", "index", failedIndex, "error", applyErr)
		if plan.Atomic {
			// original was never touched; the caller observes no partial
			// effect.
			return &Result{State: original, Ops: nil, CorrelationID: correlationID},
				&xformerrors.OpFailedError{Index: failedIndex, Op: prepared[failedIndex].Op, Path: prepared[failedIndex].Path, Message: applyErr.Error(), Cause: applyErr}
		}
		writeBackState(original, newState)
		return &Result{State: newState, Ops: prepared[:failedIndex], CorrelationID: correlationID},
			&xformerrors.OpFailedError{Index: failedIndex, Op: prepared[failedIndex].Op, Path: prepared[failedIndex].Path, Message: applyErr.Error(), Cause: applyErr}
	}
	writeBackState(original, newState)

	if opsJSON, marshalErr := marshalToJSON(prepared); marshalErr == nil {
		log.Debug("transform succeeded", "ops", len(prepared), "opsJSON", string(opsJSON))
	} else {
		log.Debug("transform succeeded", "ops", len(prepared))
	}
	return &Result{State: newState, Ops: prepared, CorrelationID: correlationID}, nil
}

func (e *Engine) testPredicate(schema any, ctx map[string]any) (bool, []string, error) {
	pred, err := e.predEngine.Compile(schema)
	if err != nil {
		return false, nil, fmt.Errorf("engine: compiling preconditions schema: %w", err)
	}
	if pred.Test(ctx) {
		return true, nil, nil
	}
	return false, pred.Errors(), nil
}

// selectBranch implements §4.6 step 4. It returns the chosen Action and
// its branch index, or (nil, -1, nil) if no branch matched and none
// carries an else.
func (e *Engine) selectBranch(branches []Branch, ctx map[string]any) (*Action, int, error) {
	for i := range branches {
		pred, err := e.predEngine.Compile(branches[i].If)
		if err != nil {
			return nil, -1, fmt.Errorf("engine: compiling branch %d \"if\": %w", i, err)
		}
		if pred.Test(ctx) {
			return &branches[i].Then, i, nil
		}
		if branches[i].Else != nil {
			return branches[i].Else, i, nil
		}
	}
	return nil, -1, nil
}

// prepareOps implements §4.6 step 7: resolve path/from via the Path
// Resolver and value via the Value Resolver, leaving op as given.
func prepareOps(ops []Operation, ctx map[string]any) []PreparedOperation {
	prepared := make([]PreparedOperation, len(ops))
	for i, op := range ops {
		p := PreparedOperation{Op: op.Op}
		if op.Path != "" {
			p.Path = pathresolve.ToPointer(op.Path, ctx)
		}
		if op.From != "" {
			p.From = pathresolve.ToPointer(op.From, ctx)
		}
		if op.Op != "remove" {
			p.Value = valueresolve.Resolve(op.Value, ctx)
		}
		prepared[i] = p
	}
	return prepared
}

// writeBackState mirrors src into the caller's own root container dst in
// place, so a caller holding a reference to the state document it passed
// into Transform observes exactly what Result.State reports — no more,
// no less. MAP_SET and APPLY mutate a deep copy rather than dst directly
// (see the SNAPSHOT comment in Transform), so without this step dst would
// never reflect a successful or non-atomic result. It is not called on an
// atomic failure, which is why dst keeps its original contents on that
// path. A JSON object root is the documented shape
// of a state document (§3); other root shapes can't be mutated through
// an interface value in place and are left to the caller to notice via
// the returned Result.State instead.
func writeBackState(dst, src any) {
	dstMap, ok := dst.(map[string]any)
	if !ok {
		return
	}
	for k := range dstMap {
		delete(dstMap, k)
	}
	if srcMap, ok := src.(map[string]any); ok {
		for k, v := range srcMap {
			dstMap[k] = v
		}
	}
}

