package engine

import (
	"encoding/json"
	"fmt"

	"github.com/hollowcore/xform/vars"
)

// Plan is the typed realization of §3's Plan entity. It is decoded from an
// already meta-schema-validated generic JSON document — decodePlan is the
// only place that performs this conversion, so every other stage of the
// pipeline works with concrete field access instead of map[string]any
// lookups.
type Plan struct {
	Atomic        bool     `json:"atomic"`
	Description   string   `json:"description,omitempty"`
	Variables     vars.Set `json:"variables,omitempty"`
	Preconditions any      `json:"preconditions,omitempty"`
	When          []Branch `json:"when"`
}

// Branch is §3's Branch entity.
type Branch struct {
	If   any     `json:"if"`
	Then Action  `json:"then"`
	Else *Action `json:"else,omitempty"`
}

// Action is §3's Action entity.
type Action struct {
	Preconditions any         `json:"preconditions,omitempty"`
	Variables     vars.Set    `json:"variables,omitempty"`
	Ops           []Operation `json:"ops"`
}

// Operation is §3's Operation entity, still holding its unresolved
// PathTemplate/ValueSpec forms.
type Operation struct {
	Op       string `json:"op"`
	Path     string `json:"path,omitempty"`
	From     string `json:"from,omitempty"`
	Value    any    `json:"value,omitempty"`
	TestKind string `json:"testKind,omitempty"`
}

// decodePlan converts an already-validated generic JSON plan document into
// the typed Plan model, round-tripping through encoding/json so that
// vars.Set's order-preserving UnmarshalJSON runs on every variables
// mapping in the document.
func decodePlan(raw any) (*Plan, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("engine: re-encoding plan for decode: %w", err)
	}
	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("engine: decoding plan: %w", err)
	}
	return &plan, nil
}

// PreparedOperation is §3's PreparedOperation entity: an Operation with
// its path/from/value fully resolved against a working context.
type PreparedOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path,omitempty"`
	From  string `json:"from,omitempty"`
	Value any    `json:"value,omitempty"`
}

// Result is returned by a successful (or branch-not-matched) Transform
// call, and alongside an OpFailed or ParentNotObject error.
type Result struct {
	// State is the resulting state document: the mutated root on success,
	// the unchanged root when no branch matched or an atomic plan failed,
	// or the partially mutated root when a non-atomic plan failed.
	State any
	// Ops is the primitive operation list that was applied, suitable for
	// audit logs or replay (§7).
	Ops []PreparedOperation
	// CorrelationID identifies this call across log lines and error
	// diagnostics.
	CorrelationID string
}
