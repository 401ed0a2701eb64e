package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hollowcore/xform"
)

type validatePlanInput struct {
	Plan any `json:"plan" jsonschema:"The Transform Plan document to validate"`
}

type validatePlanOutput struct {
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations,omitempty"`
}

func handleValidatePlan(_ context.Context, _ *mcp.CallToolRequest, input validatePlanInput) (*mcp.CallToolResult, validatePlanOutput, error) {
	valid, errs, err := xform.ValidatePlan(input.Plan)
	if err != nil {
		return errResult(err), validatePlanOutput{}, nil
	}
	if len(errs) > cfg.MaxDiagnostics {
		errs = errs[:cfg.MaxDiagnostics]
	}
	return nil, validatePlanOutput{Valid: valid, Violations: errs}, nil
}
