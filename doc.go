// Package xform implements a declarative, JSON-native state transformation
// engine: a Transform Plan describes, as data, how an incoming event
// should read and conditionally mutate a JSON state document, without any
// caller-written imperative code.
//
// # Overview
//
// The engine is organized around six collaborating components, each its
// own importable package:
//
//   - pathresolve: resolves path templates (dotted interpolation tokens,
//     JSON Pointer escaping) against a working context.
//   - valueresolve: resolves a ValueSpec (literal, valueFrom, or
//     passthrough) against the same context.
//   - vars: evaluates an ordered variable declaration mapping, merging
//     branch-level declarations over top-level ones.
//   - predicate: compiles JSON Schema fragments (branch "if",
//     "preconditions") into reusable, cacheable Predicates.
//   - planschema: validates a Transform Plan document against the bundled
//     meta-schema and precompiles its schema fragments.
//   - engine: the Plan Executor, which drives the full pipeline — plan
//     validation, variable evaluation, branch selection, operation
//     preparation, and transactional application with rollback — and
//     exposes the primary Engine type and its Transform method.
//
// This package wraps a package-level default *engine.Engine for callers
// who don't need custom options (a different PatchApplier, predicate
// engine, or Logger). Callers who do should construct their own
// engine.Engine with engine.New directly.
//
// # Quick Start
//
//	plan := map[string]any{...}
//	result, err := xform.Transform(plan, map[string]any{
//		"event": map[string]any{"groupId": "G1", "itemId": "I1", "add": true},
//		"state": map[string]any{"index": map[string]any{}},
//	})
//	if err != nil {
//		var failed *xformerrors.OpFailedError
//		if errors.As(err, &failed) {
//			log.Printf("operation %d failed: %s", failed.Index, failed.Message)
//		}
//		return
//	}
//	fmt.Println(result.State)
//
// # Command-Line Interface
//
// In addition to the library, xform provides a command-line interface:
//
//	# Validate a plan
//	xformctl validate plan.yaml
//
//	# Apply a plan to an event/state pair
//	xformctl apply plan.yaml --context ctx.yaml
//
//	# Print the bundled meta-schema
//	xformctl schema
//
// Install the CLI:
//
//	go install github.com/hollowcore/xform/cmd/xformctl@latest
package xform
