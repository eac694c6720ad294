package authmcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wagiedev/better-auth-mcp/internal/authcfg"
	"github.com/wagiedev/better-auth-mcp/internal/catalog"
	"github.com/wagiedev/better-auth-mcp/internal/dispatch"
	"github.com/wagiedev/better-auth-mcp/internal/logstore"
)

// serverName identifies this server in the MCP initialize handshake.
const serverName = "better-auth-mcp"

// defaultVersion is advertised when WithVersion is not given.
const defaultVersion = "1.0.0"

// Server is a Better Auth MCP server: the tool/resource catalogs, the
// dispatcher, and a stdio transport binding.
type Server struct {
	log        *slog.Logger
	version    string
	config     *authcfg.Store
	events     *logstore.Store
	dispatcher *dispatch.Dispatcher
}

// New creates a Server. It fails if the tool catalog and the dispatch table
// diverge or a catalog schema does not resolve, so a malformed build cannot
// start serving.
func New(opts ...Option) (*Server, error) {
	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	version := options.Version
	if version == "" {
		version = defaultVersion
	}

	config := authcfg.NewStore()
	if options.InitialConfig.Configured() {
		config.Replace(options.InitialConfig)
	}

	events := logstore.NewStore()

	dispatcher, err := dispatch.New(dispatch.Options{
		Logger: log,
		Config: config,
		Events: events,
	})
	if err != nil {
		return nil, fmt.Errorf("build dispatcher: %w", err)
	}

	return &Server{
		log:        log,
		version:    version,
		config:     config,
		events:     events,
		dispatcher: dispatcher,
	}, nil
}

// Name returns the server name used in the MCP handshake.
func (s *Server) Name() string { return serverName }

// Version returns the advertised server version.
func (s *Server) Version() string { return s.version }

// Tools returns the tool catalog in its fixed declaration order.
func (s *Server) Tools() []*mcp.Tool { return catalog.Tools() }

// Resources returns the resource catalog in its fixed declaration order.
func (s *Server) Resources() []*mcp.Resource { return catalog.Resources() }

// CallTool invokes a catalog tool directly, without a transport.
func (s *Server) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	return s.dispatcher.CallTool(ctx, name, args)
}

// ReadResource reads a catalog resource directly, without a transport.
func (s *Server) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	return s.dispatcher.ReadResource(ctx, uri)
}

// Run serves MCP over stdio until ctx is done or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.log.Info("starting server", "name", serverName, "version", s.version,
		"tools", len(catalog.Tools()), "resources", len(catalog.Resources()))

	return s.mcpServer().Run(ctx, &mcp.StdioTransport{})
}

// mcpServer builds the official SDK server and binds every catalog entry to
// the dispatcher. The SDK answers tools/list and resources/list from the
// registered descriptors and rejects unknown tool names at the wire; the
// dispatcher repeats those checks for embedded callers.
func (s *Server) mcpServer() *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: s.version}, nil)

	for _, tool := range catalog.Tools() {
		srv.AddTool(tool, s.toolHandler(tool.Name))
	}

	for _, res := range catalog.Resources() {
		srv.AddResource(res, s.resourceHandler())
	}

	return srv
}

// toolHandler adapts the dispatcher to the SDK's low-level tool handler.
// Dispatcher failures become isError results carrying the taxonomy message,
// so a fault in one call never tears down the session.
func (s *Server) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := parseArguments(req)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid arguments for %s: %v", name, err)), nil
		}

		result, err := s.dispatcher.CallTool(ctx, name, args)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		return result, nil
	}
}

// resourceHandler adapts the dispatcher to the SDK's resource handler.
func (s *Server) resourceHandler() mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return s.dispatcher.ReadResource(ctx, req.Params.URI)
	}
}

// parseArguments unmarshals tool call arguments into a map. Absent
// arguments parse as an empty map.
func parseArguments(req *mcp.CallToolRequest) (map[string]any, error) {
	if req == nil || req.Params == nil || len(req.Params.Arguments) == 0 {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return nil, fmt.Errorf("unmarshal arguments: %w", err)
	}

	return args, nil
}

// errorResult creates a CallToolResult indicating an error.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}
