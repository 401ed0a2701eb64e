package xformerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is(). One per kind in the taxonomy.
var (
	// ErrInvalidPlan indicates a plan failed meta-schema validation.
	ErrInvalidPlan = errors.New("invalid plan")

	// ErrPreconditionFailed indicates a preconditions predicate returned false.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrParentNotObject indicates a set operation's pointer traversed a
	// non-container value on the parent chain.
	ErrParentNotObject = errors.New("parent is not an object")

	// ErrOpFailed indicates the patch applier reported an error on a
	// primitive operation.
	ErrOpFailed = errors.New("operation failed")
)

// InvalidPlanError represents a plan that failed meta-schema validation.
// It is raised before any context access, per §7.
type InvalidPlanError struct {
	// Diagnostics lists the validator's reported violations, one per entry.
	Diagnostics []string
	// Cause is the underlying validator error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *InvalidPlanError) Error() string {
	msg := "invalid plan"
	if len(e.Diagnostics) > 0 {
		msg += fmt.Sprintf(": %d violation(s): %s", len(e.Diagnostics), e.Diagnostics[0])
		if len(e.Diagnostics) > 1 {
			msg += fmt.Sprintf(" (and %d more)", len(e.Diagnostics)-1)
		}
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InvalidPlanError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InvalidPlanError) Is(target error) bool {
	return target == ErrInvalidPlan
}

// PreconditionFailedError represents a top-level or branch preconditions
// predicate that returned false. No state mutation has occurred.
type PreconditionFailedError struct {
	// Scope is "top" or "branch", indicating where the preconditions live.
	Scope string
	// BranchIndex is the 0-based position of the branch, valid when Scope
	// is "branch".
	BranchIndex int
	// Diagnostics lists the predicate engine's reported violations.
	Diagnostics []string
}

// Error returns a human-readable error message.
func (e *PreconditionFailedError) Error() string {
	msg := "precondition failed"
	if e.Scope == "branch" {
		msg += fmt.Sprintf(" (branch %d)", e.BranchIndex)
	} else if e.Scope != "" {
		msg += fmt.Sprintf(" (%s)", e.Scope)
	}
	if len(e.Diagnostics) > 0 {
		msg += ": " + e.Diagnostics[0]
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *PreconditionFailedError) Is(target error) bool {
	return target == ErrPreconditionFailed
}

// ParentNotObjectError represents a set operation whose pointer traverses a
// non-container value on the parent chain. Raised before the patch applier
// is called for this operation.
type ParentNotObjectError struct {
	// Index is the 0-based position of the offending operation within its
	// action's ops sequence.
	Index int
	// Path is the fully-resolved pointer that could not be traversed.
	Path string
	// Segment is the pointer prefix, up to and including the segment, at
	// which a non-object value was found.
	Segment string
}

// Error returns a human-readable error message.
func (e *ParentNotObjectError) Error() string {
	return fmt.Sprintf("operation %d: parent of %q is not an object at segment %q", e.Index, e.Path, e.Segment)
}

// Is reports whether target matches this error type.
func (e *ParentNotObjectError) Is(target error) bool {
	return target == ErrParentNotObject
}

// OpFailedError represents a patch-applier failure on a primitive operation,
// e.g. a test mismatch or a remove of a nonexistent path.
type OpFailedError struct {
	// Index is the 0-based position of the offending operation within its
	// action's ops sequence.
	Index int
	// Op is the primitive operation that failed (add, replace, remove, test).
	Op string
	// Path is the fully-resolved pointer the operation targeted.
	Path string
	// Message is the applier's diagnostic.
	Message string
	// Cause is the underlying applier error, if any.
	Cause error
}

// Error returns a human-readable error message.
func (e *OpFailedError) Error() string {
	msg := fmt.Sprintf("operation %d (%s %s) failed", e.Index, e.Op, e.Path)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *OpFailedError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *OpFailedError) Is(target error) bool {
	return target == ErrOpFailed
}
