// Package jsonpatchadapter provides an alternative engine.PatchApplier
// built on github.com/evanphx/json-patch/v5, for callers who want
// byte-level RFC 6902 semantics rather than the engine package's default
// in-memory NativeApplier.
//
// It round-trips the target document and the prepared operation list
// through JSON, hands the result to evanphx/json-patch's patch decoder,
// and applies it as a single unit. Because json-patch reports only
// whether the whole patch succeeded, this Applier cannot identify which
// operation failed or preserve a partial prefix — it is only suitable
// for atomic=true plans. Using it with an atomic=false plan violates
// §8's non-atomic-partiality property; callers needing that property
// must use engine.NativeApplier instead.
package jsonpatchadapter

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/hollowcore/xform/engine"
)

// Applier adapts evanphx/json-patch/v5 to the engine.PatchApplier
// contract.
type Applier struct{}

var _ engine.PatchApplier = Applier{}

// Apply encodes root and ops as an RFC 6902 document and patch, applies
// the patch as a single all-or-nothing unit, and decodes the result back
// into an any tree.
//
// On failure, failedIndex is always 0: json-patch does not report the
// position of the failing operation, only that the patch as a whole did
// not apply. Callers that need a precise failedIndex should use
// engine.NativeApplier.
func (Applier) Apply(root any, ops []engine.PreparedOperation) (any, int, error) {
	if len(ops) == 0 {
		return root, -1, nil
	}

	docBytes, err := json.Marshal(root)
	if err != nil {
		return root, 0, fmt.Errorf("jsonpatchadapter: encoding document: %w", err)
	}

	patchOps := make([]map[string]any, len(ops))
	for i, op := range ops {
		entry := map[string]any{"op": op.Op, "path": op.Path}
		switch op.Op {
		case "remove":
		default:
			entry["value"] = op.Value
		}
		patchOps[i] = entry
	}
	patchBytes, err := json.Marshal(patchOps)
	if err != nil {
		return root, 0, fmt.Errorf("jsonpatchadapter: encoding patch: %w", err)
	}

	patch, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return root, 0, fmt.Errorf("jsonpatchadapter: decoding patch: %w", err)
	}

	result, err := patch.Apply(docBytes)
	if err != nil {
		return root, 0, fmt.Errorf("jsonpatchadapter: applying patch: %w", err)
	}

	var newRoot any
	if err := json.Unmarshal(result, &newRoot); err != nil {
		return root, 0, fmt.Errorf("jsonpatchadapter: decoding patched document: %w", err)
	}
	return newRoot, -1, nil
}
