// Package engine implements the Plan Executor: the end-to-end pipeline
// described in §4.6 that drives plan validation, variable evaluation,
// branch selection, operation preparation, and transactional application
// with rollback.
//
// The exported entry point is Engine.Transform; a default Engine can be
// constructed with New and used directly, or the root xform package's
// package-level Transform/ValidatePlan wrap a package-level default
// instance for callers who don't need custom options.
package engine
