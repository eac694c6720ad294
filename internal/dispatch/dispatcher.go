package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"

	"github.com/wagiedev/better-auth-mcp/internal/authcfg"
	"github.com/wagiedev/better-auth-mcp/internal/catalog"
	dispatcherrors "github.com/wagiedev/better-auth-mcp/internal/errors"
	"github.com/wagiedev/better-auth-mcp/internal/logstore"
)

// Handler executes one tool invocation and returns the confirmation text for
// the result's single content block.
type Handler func(ctx context.Context, inv Invocation) (string, error)

// Invocation is the request-scoped view a handler receives. Arguments have
// already passed schema validation.
type Invocation struct {
	ID   string
	Tool string
	Args map[string]any
}

// Options configures a Dispatcher. All fields are optional: a nil logger
// discards output and nil stores are created fresh.
type Options struct {
	Logger *slog.Logger
	Config *authcfg.Store
	Events *logstore.Store
}

// Dispatcher routes tool calls and resource reads.
type Dispatcher struct {
	log       *slog.Logger
	validator *catalog.Validator
	config    *authcfg.Store
	events    *logstore.Store
	handlers  map[string]Handler
}

// New builds a dispatcher and verifies that the dispatch table and the tool
// catalog enumerate exactly the same names. A mismatch is a programming
// error and fails construction with ErrCatalogMismatch.
func New(opts Options) (*Dispatcher, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	config := opts.Config
	if config == nil {
		config = authcfg.NewStore()
	}

	events := opts.Events
	if events == nil {
		events = logstore.NewStore()
	}

	validator, err := catalog.NewValidator()
	if err != nil {
		return nil, err
	}

	d := &Dispatcher{
		log:       log,
		validator: validator,
		config:    config,
		events:    events,
	}
	d.handlers = map[string]Handler{
		catalog.ToolAnalyzeProject:        d.analyzeProject,
		catalog.ToolSetupBetterAuth:       d.setupBetterAuth,
		catalog.ToolAnalyzeCurrentAuth:    d.analyzeCurrentAuth,
		catalog.ToolGenerateMigrationPlan: d.generateMigrationPlan,
		catalog.ToolTestAuthFlows:         d.testAuthFlows,
		catalog.ToolTestSecurity:          d.testSecurity,
		catalog.ToolAnalyzeLogs:           d.analyzeLogs,
		catalog.ToolMonitorAuthFlows:      d.monitorAuthFlows,
	}

	if err := d.checkCatalog(); err != nil {
		return nil, err
	}

	return d, nil
}

// checkCatalog asserts the registry/dispatch-table bijection.
func (d *Dispatcher) checkCatalog() error {
	names := catalog.ToolNames()

	for _, name := range names {
		if _, ok := d.handlers[name]; !ok {
			return fmt.Errorf("%w: %q has no handler", dispatcherrors.ErrCatalogMismatch, name)
		}
	}

	if len(d.handlers) != len(names) {
		extra := make([]string, 0, len(d.handlers))
		declared := make(map[string]bool, len(names))
		for _, name := range names {
			declared[name] = true
		}

		for name := range d.handlers {
			if !declared[name] {
				extra = append(extra, name)
			}
		}

		sort.Strings(extra)

		return fmt.Errorf("%w: handlers not in catalog: %v", dispatcherrors.ErrCatalogMismatch, extra)
	}

	return nil
}

// Config returns the dispatcher's auth configuration store.
func (d *Dispatcher) Config() *authcfg.Store {
	return d.config
}

// Events returns the dispatcher's event log.
func (d *Dispatcher) Events() *logstore.Store {
	return d.events
}

// CallTool resolves name, validates args against the tool's schema, and runs
// the handler. On success the result carries exactly one text content block.
// Failures are UnknownToolError, InvalidArgumentsError, or ExecutionError.
func (d *Dispatcher) CallTool(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := d.handlers[name]
	if !ok {
		d.log.Error("unknown tool requested", "tool", name)

		return nil, &dispatcherrors.UnknownToolError{Name: name}
	}

	if err := d.validator.Validate(name, args); err != nil {
		d.log.Error("argument validation failed", "tool", name, "error", err)

		return nil, err
	}

	inv := Invocation{
		ID:   ulid.Make().String(),
		Tool: name,
		Args: args,
	}

	d.log.Info("executing tool", "tool", name, "invocation", inv.ID)

	text, err := d.run(ctx, handler, inv)
	if err != nil {
		d.log.Error("tool execution failed", "tool", name, "invocation", inv.ID, "error", err)
		d.record(inv.ID, "error", fmt.Sprintf("%s: %v", name, err))

		return nil, err
	}

	d.record(inv.ID, "info", fmt.Sprintf("%s: %s", name, text))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil
}

// run executes a handler with panic containment. A panic surfaces as an
// ExecutionError like any other handler fault.
func (d *Dispatcher) run(ctx context.Context, handler Handler, inv Invocation) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &dispatcherrors.ExecutionError{Op: inv.Tool, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	text, err = handler(ctx, inv)
	if err != nil {
		return "", &dispatcherrors.ExecutionError{Op: inv.Tool, Err: err}
	}

	return text, nil
}

// ReadResource serves a catalog resource by URI. The scheme must match the
// catalog scheme and the host must name a registered resource.
func (d *Dispatcher) ReadResource(_ context.Context, uri string) (*mcp.ReadResourceResult, error) {
	host, err := catalog.ParseResourceURI(uri)
	if err != nil {
		d.log.Error("resource read rejected", "uri", uri, "error", err)

		return nil, err
	}

	switch host {
	case catalog.HostConfig:
		body, err := d.config.JSON()
		if err != nil {
			execErr := &dispatcherrors.ExecutionError{Op: "resources/read", Err: err}
			d.log.Error("config resource read failed", "uri", uri, "error", execErr)

			return nil, execErr
		}

		return resourceText(catalog.ConfigURI, "application/json", body), nil

	case catalog.HostLogs:
		return resourceText(catalog.LogsURI, "text/plain", d.events.Render()), nil

	default:
		err := &dispatcherrors.UnknownResourceError{URI: uri, Reason: "Unknown resource"}
		d.log.Error("resource read rejected", "uri", uri, "error", err)

		return nil, err
	}
}

// record appends an entry to the event log backing the logs resource.
func (d *Dispatcher) record(id, level, message string) {
	d.events.Append(logstore.Entry{
		ID:      id,
		Time:    time.Now(),
		Level:   level,
		Message: message,
	})
}

func resourceText(uri, mimeType, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{URI: uri, MIMEType: mimeType, Text: text},
		},
	}
}
