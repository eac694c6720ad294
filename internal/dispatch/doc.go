// Package dispatch routes tool invocations and resource reads to handlers.
//
// The dispatcher is the core of the server: it resolves a tool name against
// the catalog, validates arguments against the published schema, runs the
// bound handler, and maps every outcome to either a single-text-block result
// or a typed error from the errors package. Construction fails unless the
// dispatch table and the tool catalog enumerate exactly the same names, so
// the two cannot drift apart at runtime.
//
// Per-request faults, including handler panics, are contained here and
// surfaced as ExecutionError; they never propagate past the dispatcher.
package dispatch
