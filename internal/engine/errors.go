package engine

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// Error is a protocol-level failure with a JSON-RPC taxonomy code. The
// transports decide how to surface it (JSON-RPC error over stdio, HTTP
// status over HTTP); the engine itself never swallows one.
type Error struct {
	Code    int    `json:"code"`           // JSON-RPC error code
	Message string `json:"message"`        // Human-readable error message
	Data    any    `json:"data,omitempty"` // Optional machine-readable details
}

func (e *Error) Error() string {
	return fmt.Sprintf("engine error [%d]: %s", e.Code, e.Message)
}

// NewInvalidParams reports an argument bag that failed validation.
func NewInvalidParams(message string, data any) *Error {
	return &Error{Code: mcp.INVALID_PARAMS, Message: message, Data: data}
}

// NewMethodNotFound reports a tool name absent from the catalog.
func NewMethodNotFound(name string) *Error {
	return &Error{Code: mcp.METHOD_NOT_FOUND, Message: fmt.Sprintf("Unknown tool: %s", name)}
}

// NewInternal reports a server-side failure such as a result encoding error.
// It represents a bug, not caller misuse.
func NewInternal(message string) *Error {
	return &Error{Code: mcp.INTERNAL_ERROR, Message: message}
}
