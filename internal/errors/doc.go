// Package errors defines error types for the Better Auth MCP server.
//
// This package provides structured error types for the three failure classes
// the dispatcher surfaces: unknown tool names, unknown or malformed resource
// URIs, and runtime faults during handler execution. All error types support
// error unwrapping and can be checked using errors.Is and errors.As, and each
// carries the JSON-RPC error code it maps to at the protocol boundary.
package errors
