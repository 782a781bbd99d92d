// Package logging provides a minimal logging interface and adapters for the
// cat database server.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the engine and transports use for observability. This
// package includes:
//
//   - Logger interface for dependency injection
//   - SlogLogger adapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Output defaults to stderr: on the stdio transport, stdout belongs to the
// protocol stream and must never carry log lines.
package logging
