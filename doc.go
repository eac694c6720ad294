// Package authmcp implements an MCP server for Better Auth migration tooling.
//
// The server exposes a fixed catalog of tools (project analysis, Better Auth
// setup, migration planning, auth flow and security testing, log analysis)
// and two read-only resources (the current configuration and recent auth
// activity) over the Model Context Protocol.
//
// # Basic Usage
//
// Create a server and run it over stdio:
//
//	srv, err := authmcp.New(
//	    authmcp.WithLogger(slog.Default()),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := srv.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Embedded Usage
//
// The server is also usable without a transport; tool calls and resource
// reads go through the same dispatch path the protocol uses:
//
//	result, err := srv.CallTool(ctx, "analyze_project", map[string]any{
//	    "projectPath": "/srv/app",
//	})
//
// Failures are typed: UnknownToolError for names outside the catalog,
// InvalidArgumentsError for schema violations, UnknownResourceError for bad
// resource URIs, and ExecutionError for runtime faults. Each maps to a fixed
// JSON-RPC error code at the protocol boundary.
//
// Tool handlers are deterministic acknowledgment stubs: the domain logic
// behind each tool is an external collaborator invoked behind the dispatch
// contract. The only durable effect is setup_better_auth replacing the
// process-wide configuration, which the better-auth://config resource reads
// back.
package authmcp
