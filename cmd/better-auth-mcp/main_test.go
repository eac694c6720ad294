package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToolsSubcommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"tools"})

	require.NoError(t, root.Execute())

	listing := out.String()
	for _, name := range []string{
		"analyze_project", "setup_better_auth", "analyze_current_auth",
		"generate_migration_plan", "test_auth_flows", "test_security",
		"analyze_logs", "monitor_auth_flows",
	} {
		require.Contains(t, listing, name)
	}
}

func TestResourcesSubcommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"resources"})

	require.NoError(t, root.Execute())

	listing := out.String()
	require.Contains(t, listing, "better-auth://config")
	require.Contains(t, listing, "application/json")
	require.Contains(t, listing, "better-auth://logs")
	require.Contains(t, listing, "text/plain")
}

func TestServeRejectsMissingConfigFile(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"serve", "--config", "/nonexistent/better-auth.toml"})

	require.Error(t, root.Execute())
}

func TestServeRejectsBadLogLevel(t *testing.T) {
	t.Setenv("BETTER_AUTH_LOG_LEVEL", "verbose")

	root := newRootCmd()
	root.SetArgs([]string{"serve"})

	require.Error(t, root.Execute())
}
