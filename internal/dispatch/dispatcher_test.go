package dispatch

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/wagiedev/better-auth-mcp/internal/authcfg"
	"github.com/wagiedev/better-auth-mcp/internal/catalog"
	dispatcherrors "github.com/wagiedev/better-auth-mcp/internal/errors"
)

func newDispatcher(t *testing.T) *Dispatcher {
	t.Helper()

	d, err := New(Options{})
	require.NoError(t, err)

	return d
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.Len(t, result.Content, 1, "results carry exactly one content block")

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "the single content block is text")

	return text.Text
}

// minimalArgs maps every catalog tool to minimally valid arguments.
var minimalArgs = map[string]map[string]any{
	catalog.ToolAnalyzeProject: {"projectPath": "/srv/app"},
	catalog.ToolSetupBetterAuth: {
		"projectPath": "/srv/app",
		"config":      map[string]any{"projectId": "p0", "apiKey": "k0"},
	},
	catalog.ToolAnalyzeCurrentAuth: {"projectPath": "/srv/app"},
	catalog.ToolGenerateMigrationPlan: {
		"projectPath":     "/srv/app",
		"currentAuthType": "next-auth",
	},
	catalog.ToolTestAuthFlows:    {"flows": []any{"login"}},
	catalog.ToolTestSecurity:     {},
	catalog.ToolAnalyzeLogs:      {"timeRange": "24h"},
	catalog.ToolMonitorAuthFlows: {"duration": "5m"},
}

func TestEveryCatalogToolIsCallable(t *testing.T) {
	d := newDispatcher(t)

	for _, name := range catalog.ToolNames() {
		t.Run(name, func(t *testing.T) {
			args, ok := minimalArgs[name]
			require.True(t, ok, "missing minimal arguments for %s", name)

			result, err := d.CallTool(context.Background(), name, args)
			require.NoError(t, err)
			require.NotEmpty(t, resultText(t, result))
		})
	}
}

func TestUnknownToolIsRejected(t *testing.T) {
	d := newDispatcher(t)

	_, err := d.CallTool(context.Background(), "does_not_exist", map[string]any{})

	var toolErr *dispatcherrors.UnknownToolError
	require.ErrorAs(t, err, &toolErr)
	require.Equal(t, "does_not_exist", toolErr.Name)
	require.Equal(t, dispatcherrors.CodeMethodNotFound, toolErr.Code())
}

func TestInvalidArgumentsRejectedBeforeSideEffects(t *testing.T) {
	d := newDispatcher(t)

	_, err := d.CallTool(context.Background(), catalog.ToolSetupBetterAuth, map[string]any{
		"projectPath": "/srv/app",
		"config":      map[string]any{"projectId": "p1"}, // apiKey missing
	})

	var argErr *dispatcherrors.InvalidArgumentsError
	require.ErrorAs(t, err, &argErr)
	require.False(t, d.Config().Snapshot().Configured(), "rejected call must not touch the config")
	require.Zero(t, d.Events().Len(), "rejected call must not be recorded as activity")
}

func TestConfigReplaceSemantics(t *testing.T) {
	d := newDispatcher(t)
	ctx := context.Background()

	_, err := d.CallTool(ctx, catalog.ToolSetupBetterAuth, map[string]any{
		"projectPath": "/srv/app",
		"config":      map[string]any{"projectId": "p1", "apiKey": "k1"},
	})
	require.NoError(t, err)

	body := readResourceText(t, d, catalog.ConfigURI)
	require.JSONEq(t, `{"projectId":"p1","apiKey":"k1"}`, body)

	_, err = d.CallTool(ctx, catalog.ToolSetupBetterAuth, map[string]any{
		"projectPath": "/srv/app",
		"config":      map[string]any{"projectId": "p2", "apiKey": "k2", "environment": "prod"},
	})
	require.NoError(t, err)

	body = readResourceText(t, d, catalog.ConfigURI)
	require.JSONEq(t, `{"projectId":"p2","apiKey":"k2","environment":"prod"}`, body)
	require.NotContains(t, body, "p1", "first payload must not leak into the second")
	require.NotContains(t, body, "k1")
}

func TestAuthFlowsEchoedInOrder(t *testing.T) {
	d := newDispatcher(t)

	result, err := d.CallTool(context.Background(), catalog.ToolTestAuthFlows, map[string]any{
		"flows": []any{"login", "2fa"},
	})
	require.NoError(t, err)
	require.Equal(t, "Tested auth flows: login, 2fa.", resultText(t, result))
}

func TestSecurityDefaultsToAllChecks(t *testing.T) {
	d := newDispatcher(t)

	result, err := d.CallTool(context.Background(), catalog.ToolTestSecurity, nil)
	require.NoError(t, err)
	require.Equal(t,
		"Ran security tests: password-policy, rate-limiting, session-management.",
		resultText(t, result))
}

func TestHandlerFaultIsContained(t *testing.T) {
	t.Run("handler error surfaces as ExecutionError", func(t *testing.T) {
		d := newDispatcher(t)
		d.handlers[catalog.ToolAnalyzeLogs] = func(context.Context, Invocation) (string, error) {
			return "", errors.New("log backend unavailable")
		}

		_, err := d.CallTool(context.Background(), catalog.ToolAnalyzeLogs, map[string]any{
			"timeRange": "24h",
		})

		var execErr *dispatcherrors.ExecutionError
		require.ErrorAs(t, err, &execErr)
		require.Contains(t, execErr.Error(), "log backend unavailable")
	})

	t.Run("handler panic surfaces as ExecutionError", func(t *testing.T) {
		d := newDispatcher(t)
		d.handlers[catalog.ToolAnalyzeLogs] = func(context.Context, Invocation) (string, error) {
			panic("corrupted index")
		}

		_, err := d.CallTool(context.Background(), catalog.ToolAnalyzeLogs, map[string]any{
			"timeRange": "24h",
		})

		var execErr *dispatcherrors.ExecutionError
		require.ErrorAs(t, err, &execErr)
		require.Contains(t, execErr.Error(), "corrupted index")
	})

	t.Run("a fault leaves config and later calls unaffected", func(t *testing.T) {
		d := newDispatcher(t)
		ctx := context.Background()

		_, err := d.CallTool(ctx, catalog.ToolSetupBetterAuth, map[string]any{
			"projectPath": "/srv/app",
			"config":      map[string]any{"projectId": "p1", "apiKey": "k1"},
		})
		require.NoError(t, err)

		d.handlers[catalog.ToolAnalyzeLogs] = func(context.Context, Invocation) (string, error) {
			panic("corrupted index")
		}
		_, err = d.CallTool(ctx, catalog.ToolAnalyzeLogs, map[string]any{"timeRange": "1h"})
		require.Error(t, err)

		require.Equal(t, authcfg.Config{ProjectID: "p1", APIKey: "k1"}, d.Config().Snapshot())

		result, err := d.CallTool(ctx, catalog.ToolAnalyzeProject, map[string]any{
			"projectPath": "/srv/app",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resultText(t, result))
	})
}

func TestCatalogBijectionCheck(t *testing.T) {
	d := newDispatcher(t)

	require.NoError(t, d.checkCatalog())

	t.Run("missing handler fails", func(t *testing.T) {
		delete(d.handlers, catalog.ToolAnalyzeLogs)

		err := d.checkCatalog()
		require.ErrorIs(t, err, dispatcherrors.ErrCatalogMismatch)
		require.Contains(t, err.Error(), catalog.ToolAnalyzeLogs)
	})

	t.Run("extra handler fails", func(t *testing.T) {
		d := newDispatcher(t)
		d.handlers["undeclared_tool"] = func(context.Context, Invocation) (string, error) {
			return "", nil
		}

		err := d.checkCatalog()
		require.ErrorIs(t, err, dispatcherrors.ErrCatalogMismatch)
		require.Contains(t, err.Error(), "undeclared_tool")
	})
}

func TestInvocationsAreRecorded(t *testing.T) {
	d := newDispatcher(t)

	_, err := d.CallTool(context.Background(), catalog.ToolAnalyzeProject, map[string]any{
		"projectPath": "/srv/app",
	})
	require.NoError(t, err)

	entries := d.Events().Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "info", entries[0].Level)
	require.Contains(t, entries[0].Message, catalog.ToolAnalyzeProject)
	require.NotEmpty(t, entries[0].ID)
}

func readResourceText(t *testing.T, d *Dispatcher, uri string) string {
	t.Helper()

	result, err := d.ReadResource(context.Background(), uri)
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	require.Equal(t, uri, result.Contents[0].URI)

	return result.Contents[0].Text
}
