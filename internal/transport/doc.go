// Package transport adapts the dispatch engine to concrete wire surfaces:
// MCP over stdio (the default) and a plain HTTP facade. Both delegate to the
// same Engine methods, so dispatch behavior is identical regardless of how a
// request arrives.
package transport
