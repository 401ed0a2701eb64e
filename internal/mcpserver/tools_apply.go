package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hollowcore/xform"
	"github.com/hollowcore/xform/engine"
)

type applyTransformInput struct {
	Plan  any `json:"plan" jsonschema:"The Transform Plan document to apply"`
	Event any `json:"event" jsonschema:"The incoming event document"`
	State any `json:"state" jsonschema:"The current state document"`
}

type applyTransformOutput struct {
	State         any                        `json:"state"`
	Ops           []engine.PreparedOperation `json:"ops"`
	CorrelationID string                     `json:"correlationId"`
}

func handleApplyTransform(_ context.Context, _ *mcp.CallToolRequest, input applyTransformInput) (*mcp.CallToolResult, applyTransformOutput, error) {
	plan := withAtomicDefault(input.Plan)
	result, err := xform.Transform(plan, map[string]any{"event": input.Event, "state": input.State})
	if err != nil {
		out := applyTransformOutput{}
		if result != nil {
			out.State = result.State
			out.Ops = result.Ops
			out.CorrelationID = result.CorrelationID
		}
		return errResult(err), out, nil
	}
	return nil, applyTransformOutput{
		State:         result.State,
		Ops:           result.Ops,
		CorrelationID: result.CorrelationID,
	}, nil
}

// withAtomicDefault fills in the plan's "atomic" field from the server's
// configured default when the submitted document omits it, since a
// client authoring a plan by hand may leave it unset.
func withAtomicDefault(plan any) any {
	m, ok := plan.(map[string]any)
	if !ok {
		return plan
	}
	if _, present := m["atomic"]; present {
		return plan
	}
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out["atomic"] = cfg.AtomicDefault
	return out
}
