package xformerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidPlanError(t *testing.T) {
	t.Run("Error message with diagnostics", func(t *testing.T) {
		err := &InvalidPlanError{Diagnostics: []string{"when must have at least 1 items", "unknown property foo"}}
		assert.Equal(t, "invalid plan: 2 violation(s): when must have at least 1 items (and 1 more)", err.Error())
	})

	t.Run("Error message with no diagnostics", func(t *testing.T) {
		err := &InvalidPlanError{}
		assert.Equal(t, "invalid plan", err.Error())
	})

	t.Run("Is matches ErrInvalidPlan", func(t *testing.T) {
		err := &InvalidPlanError{}
		assert.True(t, errors.Is(err, ErrInvalidPlan))
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("schema compile failed")
		err := &InvalidPlanError{Cause: cause}
		assert.Equal(t, cause, err.Unwrap())
	})
}

func TestPreconditionFailedError(t *testing.T) {
	t.Run("Error message for branch scope", func(t *testing.T) {
		err := &PreconditionFailedError{Scope: "branch", BranchIndex: 2, Diagnostics: []string{"event.type required"}}
		assert.Equal(t, "precondition failed (branch 2): event.type required", err.Error())
	})

	t.Run("Error message for top scope", func(t *testing.T) {
		err := &PreconditionFailedError{Scope: "top"}
		assert.Equal(t, "precondition failed (top)", err.Error())
	})

	t.Run("Is matches ErrPreconditionFailed", func(t *testing.T) {
		err := &PreconditionFailedError{}
		assert.True(t, errors.Is(err, ErrPreconditionFailed))
	})
}

func TestParentNotObjectError(t *testing.T) {
	err := &ParentNotObjectError{Index: 1, Path: "/a/b/c", Segment: "b"}
	assert.Equal(t, `operation 1: parent of "/a/b/c" is not an object at segment "b"`, err.Error())
	assert.True(t, errors.Is(err, ErrParentNotObject))
}

func TestOpFailedError(t *testing.T) {
	t.Run("Error message with message and cause", func(t *testing.T) {
		cause := errors.New("value mismatch")
		err := &OpFailedError{Index: 3, Op: "test", Path: "/status", Message: "test failed", Cause: cause}
		assert.Equal(t, "operation 3 (test /status) failed: test failed: value mismatch", err.Error())
	})

	t.Run("Is matches ErrOpFailed", func(t *testing.T) {
		err := &OpFailedError{Op: "remove"}
		assert.True(t, errors.Is(err, ErrOpFailed))
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &OpFailedError{Cause: cause}
		assert.Equal(t, cause, err.Unwrap())
	})
}

func TestErrorsDoNotCrossMatch(t *testing.T) {
	var invalid error = &InvalidPlanError{}
	assert.False(t, errors.Is(invalid, ErrOpFailed))
	assert.False(t, errors.Is(invalid, ErrPreconditionFailed))
	assert.False(t, errors.Is(invalid, ErrParentNotObject))
}
