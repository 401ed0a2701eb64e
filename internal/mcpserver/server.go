// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the transform engine as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hollowcore/xform"
)

const serverInstructions = `xform MCP server — validates and applies declarative Transform Plans against an event/state pair.

Configuration: defaults are configurable via XFORM_* environment variables set in your MCP client config.

Key settings:
- XFORM_ATOMIC_DEFAULT (default: true) — used only when a submitted plan omits its own "atomic" field; an explicit value on the plan always wins.
- XFORM_MAX_DIAGNOSTICS (default: 50) — caps the number of violations returned by validate_plan.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "xform", Version: xform.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate_plan",
		Description: "Validate a Transform Plan document against the Transform Plan meta-schema. Returns whether the plan is valid and, if not, a list of violation diagnostics.",
	}, handleValidatePlan)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "apply_transform",
		Description: "Apply a Transform Plan to an event/state pair. Validates the plan, selects the matching branch, evaluates variables, and applies the resulting JSON Pointer operations to state. Returns the resulting state, the primitive operations applied, and a correlation id. On failure for an atomic plan, state is rolled back to its original value.",
	}, handleApplyTransform)
}

// errResult creates an MCP error result from an error, without leaking
// any caller-side filesystem detail into the message (none is
// applicable here since inputs arrive inline, not as file paths).
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
