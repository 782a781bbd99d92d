// Package catdb contains the cat database: the Cat record, the read-side
// Store contract, and its concrete backends. Handlers depend on Store only
// and select an implementation (in-memory or Redis) at wiring time.
//
// Rationale: keeps the domain contract centralized while allowing pluggable
// backends to be added without touching the dispatch engine. All Store
// methods take a context and return an error so that backends with real I/O
// fit the same contract; the in-memory backend simply never fails.
package catdb
