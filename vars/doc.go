// Package vars implements the Variable Evaluator: it materializes a vars
// mapping from an ordered set of variable specifications, using the path
// resolver for pointer-form "get", per §4.5.
package vars
