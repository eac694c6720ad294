package errors

import (
	"errors"
	"fmt"
)

// JSON-RPC 2.0 error codes surfaced at the protocol boundary.
const (
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternalError  = -32603
)

// DispatchError is the base interface for all dispatcher errors.
type DispatchError interface {
	error
	// Code returns the JSON-RPC error code this error maps to.
	Code() int
}

// Compile-time verification that all error types implement DispatchError.
var (
	_ DispatchError = (*UnknownToolError)(nil)
	_ DispatchError = (*UnknownResourceError)(nil)
	_ DispatchError = (*InvalidArgumentsError)(nil)
	_ DispatchError = (*ExecutionError)(nil)
)

// ErrCatalogMismatch indicates the tool registry and dispatch table
// enumerate different tool names. Construction fails on this condition.
var ErrCatalogMismatch = errors.New("tool registry and dispatch table diverge")

// genericFailure is surfaced when a runtime fault carries no message.
const genericFailure = "Unknown error"

// UnknownToolError indicates the client requested a tool name not in the registry.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("Unknown tool: %s", e.Name)
}

// Code implements DispatchError.
func (e *UnknownToolError) Code() int { return CodeMethodNotFound }

// UnknownResourceError indicates the client requested an unregistered
// resource URI, an unsupported URI scheme, or an unparsable URI.
type UnknownResourceError struct {
	URI    string
	Reason string
	Err    error
}

func (e *UnknownResourceError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.URI)
	}

	return fmt.Sprintf("Unknown resource: %s", e.URI)
}

func (e *UnknownResourceError) Unwrap() error {
	return e.Err
}

// Code implements DispatchError.
func (e *UnknownResourceError) Code() int { return CodeInvalidRequest }

// InvalidArgumentsError indicates tool arguments failed schema validation
// before the handler ran.
type InvalidArgumentsError struct {
	Tool string
	Err  error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Tool, e.Err)
}

func (e *InvalidArgumentsError) Unwrap() error {
	return e.Err
}

// Code implements DispatchError.
func (e *InvalidArgumentsError) Code() int { return CodeInvalidParams }

// ExecutionError indicates a runtime fault while handling a request.
// It wraps the underlying failure when one is available.
type ExecutionError struct {
	Op  string
	Err error
}

func (e *ExecutionError) Error() string {
	msg := genericFailure
	if e.Err != nil && e.Err.Error() != "" {
		msg = e.Err.Error()
	}

	if e.Op != "" {
		return fmt.Sprintf("%s failed: %s", e.Op, msg)
	}

	return msg
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Code implements DispatchError.
func (e *ExecutionError) Code() int { return CodeInternalError }
