// Package engine implements the tool registry and request-dispatch protocol
// engine: a fixed, ordered catalog of schema-described tools, each bound to
// exactly one handler over the cat store.
//
// ListTools advertises the catalog in wire shape; CallTool looks the tool up,
// validates and coerces the raw argument bag, invokes the handler, and wraps
// the outcome in the protocol's result envelope. Failures carry a JSON-RPC
// taxonomy code (invalid params, method not found, internal error). A lookup
// that finds no matching record is a normal success whose text states the
// absence, not a protocol failure.
//
// The catalog and the handler binding are one structure, so a catalog entry
// without a handler cannot be constructed; New rejects duplicates and nil
// handlers.
package engine
