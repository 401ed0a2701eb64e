package engine

import (
	"fmt"

	"github.com/hollowcore/xform/internal/jsonptr"
)

// PatchApplier is the collaborator contract of §6: it accepts a target
// document and an ordered list of primitive operations (add, replace,
// remove, test — "set" never reaches an applier; the Executor maps it to
// add/replace before this point), applies them in order, and reports the
// position of the first failure. It must preserve all prior mutations up
// to a failing operation — the applier itself is non-atomic; any
// atomicity the caller observes comes from the Executor's snapshot/
// restore around the call, not from the applier.
type PatchApplier interface {
	// Apply applies ops against root in order, returning the resulting
	// root, the 0-based index of the first op that failed (or -1 if all
	// succeeded), and that op's diagnostic error.
	Apply(root any, ops []PreparedOperation) (newRoot any, failedIndex int, err error)
}

// NativeApplier is the default PatchApplier, built directly on
// internal/jsonptr. It is required to satisfy §8's non-atomic-partiality
// property, which a byte-marshal-round-trip applier (such as
// jsonpatchadapter) cannot: jsonptr mutates map/array containers in place
// as it goes, so a failure at position k leaves exactly ops 0..k-1
// reflected in the returned root.
type NativeApplier struct{}

// Apply implements PatchApplier.
func (NativeApplier) Apply(root any, ops []PreparedOperation) (any, int, error) {
	cur := root
	for i, op := range ops {
		next := cur
		var err error
		switch op.Op {
		case "add":
			next, err = jsonptr.Add(cur, jsonptr.Split(op.Path), op.Value)
		case "replace":
			next, err = jsonptr.Replace(cur, jsonptr.Split(op.Path), op.Value)
		case "remove":
			next, err = jsonptr.Remove(cur, jsonptr.Split(op.Path))
		case "test":
			err = applyTest(cur, op)
		default:
			err = fmt.Errorf("jsonptr: unsupported primitive operation %q", op.Op)
		}
		if err != nil {
			return cur, i, err
		}
		cur = next
	}
	return cur, -1, nil
}

// applyTest implements the "test" primitive. testKind (equality vs
// deepEqual) is carried on the source Operation for diagnostic and
// forward-compatibility purposes only (§9's Open Question); decoded JSON
// values are frequently map[string]any/[]any, which the == operator
// cannot compare without panicking, so both kinds are evaluated with the
// same structural comparison here.
func applyTest(root any, op PreparedOperation) error {
	actual, ok := jsonptr.Get(root, jsonptr.Split(op.Path))
	if !ok {
		return fmt.Errorf("jsonptr: test target %q does not exist", op.Path)
	}
	if !jsonptr.DeepEqual(actual, op.Value) {
		return fmt.Errorf("jsonptr: test failed at %q: value mismatch", op.Path)
	}
	return nil
}

var _ PatchApplier = NativeApplier{}
