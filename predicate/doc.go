// Package predicate implements the Predicate Engine Adapter: it wraps an
// external JSON Schema validator so that branch "if" and "preconditions"
// fragments compile and apply uniformly, per §4.2.
//
// The default implementation is backed by
// github.com/santhosh-tekuri/jsonschema/v5 configured for draft 2020-12
// with allErrors semantics, matching the contract §4.2 requires of any
// validator collaborator.
package predicate
