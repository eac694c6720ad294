package catalog

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	dispatcherrors "github.com/wagiedev/better-auth-mcp/internal/errors"
)

// Validator checks tool arguments against the same schema descriptors the
// registry publishes, so discovery and validation cannot diverge.
type Validator struct {
	resolved map[string]*jsonschema.Resolved
}

// NewValidator resolves every tool schema in the catalog. It fails if any
// descriptor is not a valid JSON Schema, which makes a malformed catalog a
// startup error rather than a per-request surprise.
func NewValidator() (*Validator, error) {
	resolved := make(map[string]*jsonschema.Resolved, len(Tools()))

	for _, tool := range Tools() {
		schema, ok := tool.InputSchema.(*jsonschema.Schema)
		if !ok {
			return nil, fmt.Errorf("resolve schema for %s: input schema is %T, not *jsonschema.Schema", tool.Name, tool.InputSchema)
		}

		rs, err := schema.Resolve(nil)
		if err != nil {
			return nil, fmt.Errorf("resolve schema for %s: %w", tool.Name, err)
		}

		resolved[tool.Name] = rs
	}

	return &Validator{resolved: resolved}, nil
}

// Validate checks args against the named tool's input schema. A nil args map
// is validated as an empty object. Unknown tool names fail with
// UnknownToolError; schema violations fail with InvalidArgumentsError.
func (v *Validator) Validate(tool string, args map[string]any) error {
	rs, ok := v.resolved[tool]
	if !ok {
		return &dispatcherrors.UnknownToolError{Name: tool}
	}

	if args == nil {
		args = map[string]any{}
	}

	if err := rs.Validate(args); err != nil {
		return &dispatcherrors.InvalidArgumentsError{Tool: tool, Err: err}
	}

	return nil
}
