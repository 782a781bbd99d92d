package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/purrstack/catbase/internal/logging"
	"github.com/purrstack/catbase/internal/schema"
)

// ServerInfo is the identity advertised during the session handshake.
type ServerInfo struct {
	Name         string
	Version      string
	Instructions string
}

// HandlerFunc executes a tool with validated arguments and returns the text
// payload of the result. Returning a *Error preserves its taxonomy code; any
// other error is reported as an internal error.
type HandlerFunc func(ctx context.Context, args schema.Args) (string, error)

// Entry couples one catalog descriptor with its handler. Keeping both in a
// single value is what guarantees the catalog and the handler map stay in
// lock-step.
type Entry struct {
	Name        string
	Description string
	Contract    schema.Contract
	Handler     HandlerFunc
}

// Engine is the tool registry and dispatcher. It is immutable after New and
// safe for concurrent use.
type Engine struct {
	info    ServerInfo
	entries []Entry
	byName  map[string]int
	logger  logging.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-call observability.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New builds an engine from the given catalog entries. It fails when an
// entry has no name, no handler, or a name that is already taken, so a
// constructed engine always satisfies the catalog/handler consistency
// property.
func New(info ServerInfo, entries []Entry, opts ...Option) (*Engine, error) {
	e := &Engine{
		info:    info,
		entries: entries,
		byName:  make(map[string]int, len(entries)),
		logger:  logging.NoOpLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}

	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if entry.Handler == nil {
			return nil, fmt.Errorf("tool %q has no handler", entry.Name)
		}
		if _, dup := e.byName[entry.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name %q", entry.Name)
		}
		e.byName[entry.Name] = i
	}
	return e, nil
}

// Info returns the handshake identity.
func (e *Engine) Info() ServerInfo { return e.info }

// ListTools returns the full catalog in wire shape, in construction order.
// The result is always a single page: the cursor is never produced and an
// incoming cursor is ignored. Repeated calls return the same sequence.
func (e *Engine) ListTools() mcp.ListToolsResult {
	tools := make([]mcp.Tool, 0, len(e.entries))
	for _, entry := range e.entries {
		tools = append(tools, descriptor(entry))
	}
	return mcp.ListToolsResult{Tools: tools}
}

// CallTool dispatches one invocation: catalog lookup, argument validation,
// handler execution, result wrapping. Each call is a single synchronous
// transaction with no cross-request state.
func (e *Engine) CallTool(ctx context.Context, name string, rawArgs map[string]any) (*mcp.CallToolResult, error) {
	callID := uuid.NewString()
	start := time.Now()
	e.logger.Debug("tool.call.start", "tool", name, "call_id", callID)

	idx, ok := e.byName[name]
	if !ok {
		e.logger.Warn("tool.call.unknown", "tool", name, "call_id", callID)
		return nil, NewMethodNotFound(name)
	}
	entry := e.entries[idx]

	args, err := schema.Validate(entry.Contract, rawArgs)
	if err != nil {
		e.logger.Warn("tool.call.validation_failed", "tool", name, "call_id", callID, "error", err.Error())
		var vErr *schema.ValidationError
		if errors.As(err, &vErr) {
			return nil, NewInvalidParams(err.Error(), vErr)
		}
		return nil, NewInvalidParams(err.Error(), nil)
	}

	text, err := entry.Handler(ctx, args)
	if err != nil {
		var engErr *Error
		if !errors.As(err, &engErr) {
			engErr = NewInternal(err.Error())
		}
		e.logger.Error("tool.call.error", "tool", name, "call_id", callID, "code", engErr.Code, "error", engErr.Message)
		return nil, engErr
	}

	e.logger.Info("tool.call.success", "tool", name, "call_id", callID, "duration_ms", time.Since(start).Milliseconds())
	return mcp.NewToolResultText(text), nil
}

// descriptor renders the catalog entry in the shape listTools advertises:
// an object schema with a properties mapping and a required list.
func descriptor(entry Entry) mcp.Tool {
	return mcp.Tool{
		Name:        entry.Name,
		Description: entry.Description,
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: entry.Contract.Properties(),
			Required:   entry.Contract.RequiredNames(),
		},
	}
}
