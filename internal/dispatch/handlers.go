package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/wagiedev/better-auth-mcp/internal/authcfg"
	"github.com/wagiedev/better-auth-mcp/internal/catalog"
)

// Handler bodies are deterministic acknowledgments: the domain logic behind
// each tool (project scanning, credential setup, migration planning, log
// analysis) is an external collaborator invoked behind this contract. The
// only durable effect lives in setupBetterAuth, which replaces the
// process-wide auth configuration wholesale.

func (d *Dispatcher) analyzeProject(_ context.Context, inv Invocation) (string, error) {
	path := stringArg(inv.Args, "projectPath")

	return fmt.Sprintf("Analyzed project at %s: ready for Better Auth integration.", path), nil
}

func (d *Dispatcher) setupBetterAuth(_ context.Context, inv Invocation) (string, error) {
	path := stringArg(inv.Args, "projectPath")
	cfg, _ := inv.Args["config"].(map[string]any)

	next := authcfg.Config{
		ProjectID:   stringArg(cfg, "projectId"),
		APIKey:      stringArg(cfg, "apiKey"),
		Environment: stringArg(cfg, "environment"),
	}

	// Wholesale replace: a setup call that omits environment (or any other
	// field) drops the previously stored value.
	d.config.Replace(next)

	if next.Environment == "" {
		return fmt.Sprintf("Better Auth set up for project %s at %s.", next.ProjectID, path), nil
	}

	return fmt.Sprintf("Better Auth set up for project %s at %s (environment %s).",
		next.ProjectID, path, next.Environment), nil
}

func (d *Dispatcher) analyzeCurrentAuth(_ context.Context, inv Invocation) (string, error) {
	path := stringArg(inv.Args, "projectPath")

	return fmt.Sprintf("Analyzed current authentication implementation at %s.", path), nil
}

func (d *Dispatcher) generateMigrationPlan(_ context.Context, inv Invocation) (string, error) {
	path := stringArg(inv.Args, "projectPath")
	from := stringArg(inv.Args, "currentAuthType")

	return fmt.Sprintf("Generated migration plan from %s to Better Auth for project at %s.", from, path), nil
}

func (d *Dispatcher) testAuthFlows(_ context.Context, inv Invocation) (string, error) {
	flows := stringSlice(inv.Args, "flows")

	return fmt.Sprintf("Tested auth flows: %s.", strings.Join(flows, ", ")), nil
}

func (d *Dispatcher) testSecurity(_ context.Context, inv Invocation) (string, error) {
	tests := stringSlice(inv.Args, "tests")
	if len(tests) == 0 {
		tests = enumStrings(catalog.SecurityTests)
	}

	return fmt.Sprintf("Ran security tests: %s.", strings.Join(tests, ", ")), nil
}

func (d *Dispatcher) analyzeLogs(_ context.Context, inv Invocation) (string, error) {
	timeRange := stringArg(inv.Args, "timeRange")

	return fmt.Sprintf("Analyzed auth logs for time range %s.", timeRange), nil
}

func (d *Dispatcher) monitorAuthFlows(_ context.Context, inv Invocation) (string, error) {
	duration := stringArg(inv.Args, "duration")

	return fmt.Sprintf("Monitoring auth flows for %s.", duration), nil
}

// stringArg extracts a string property, returning "" when absent. Handlers
// run after schema validation, so required properties are always present.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)

	return s
}

// stringSlice extracts an array-of-string property in its given order.
func stringSlice(args map[string]any, key string) []string {
	raw, _ := args[key].([]any)

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}

	return out
}

func enumStrings(enum []any) []string {
	out := make([]string, 0, len(enum))
	for _, v := range enum {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
