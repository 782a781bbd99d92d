package transport

import (
	"context"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/purrstack/catbase/internal/engine"
)

// NewStdioServer wires every catalog entry onto an MCP server speaking the
// stdio framing. The handshake (identity, instructions, tools capability)
// comes from the engine; each wire handler delegates straight to
// Engine.CallTool.
//
// The library maps any error returned from a tool handler to a generic
// internal JSON-RPC error, which would erase the engine's taxonomy codes.
// Taxonomy failures are therefore encoded as error-flagged tool results with
// the code kept in the payload text; unknown tool names never reach these
// handlers and get the library's own method-not-found response.
func NewStdioServer(eng *engine.Engine) *server.MCPServer {
	info := eng.Info()
	s := server.NewMCPServer(
		info.Name,
		info.Version,
		// Tools capability with listChanged disabled: the catalog is
		// static, so there is never a change notification to send.
		server.WithToolCapabilities(false),
		server.WithInstructions(info.Instructions),
		server.WithRecovery(),
	)
	for _, tool := range eng.ListTools().Tools {
		s.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			result, err := eng.CallTool(ctx, req.Params.Name, req.GetArguments())
			if err != nil {
				var engErr *engine.Error
				if errors.As(err, &engErr) {
					return mcp.NewToolResultError(engErr.Error()), nil
				}
				return nil, err
			}
			return result, nil
		})
	}
	return s
}

// ServeStdio blocks serving the single stdio session until the stream closes
// or a fatal transport error occurs.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
