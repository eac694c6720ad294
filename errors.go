package authmcp

import "github.com/wagiedev/better-auth-mcp/internal/errors"

// Re-export error types from internal package

// UnknownToolError indicates a requested tool name is not in the catalog.
type UnknownToolError = errors.UnknownToolError

// UnknownResourceError indicates an unregistered resource URI or an
// unsupported URI scheme.
type UnknownResourceError = errors.UnknownResourceError

// InvalidArgumentsError indicates tool arguments failed schema validation.
type InvalidArgumentsError = errors.InvalidArgumentsError

// ExecutionError indicates a runtime fault while handling a request.
type ExecutionError = errors.ExecutionError

// DispatchError is the base interface for all dispatcher errors.
type DispatchError = errors.DispatchError

// Re-export sentinel errors from internal package.

// ErrCatalogMismatch indicates the tool registry and dispatch table
// enumerate different tool names.
var ErrCatalogMismatch = errors.ErrCatalogMismatch
