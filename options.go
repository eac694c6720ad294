package authmcp

import (
	"log/slog"

	"github.com/wagiedev/better-auth-mcp/internal/authcfg"
)

// AuthConfig is the Better Auth project configuration exposed by the
// better-auth://config resource and replaced by setup_better_auth.
type AuthConfig = authcfg.Config

// serverOptions collects the configuration applied by Option values.
type serverOptions struct {
	Logger        *slog.Logger
	Version       string
	InitialConfig AuthConfig
}

// Option configures a Server using the functional options pattern.
type Option func(*serverOptions)

// applyOptions applies functional options to a serverOptions struct.
func applyOptions(opts []Option) *serverOptions {
	options := &serverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	return options
}

// WithLogger sets the logger for server diagnostics.
// If not set, logging is disabled (silent operation).
func WithLogger(logger *slog.Logger) Option {
	return func(o *serverOptions) {
		o.Logger = logger
	}
}

// WithVersion overrides the version advertised in the MCP handshake.
func WithVersion(version string) Option {
	return func(o *serverOptions) {
		o.Version = version
	}
}

// WithInitialConfig seeds the configuration state at startup, as if
// setup_better_auth had already run with this payload. The bootstrap layer
// uses this to inject environment-sourced configuration; the dispatcher
// itself never reads the environment.
func WithInitialConfig(cfg AuthConfig) Option {
	return func(o *serverOptions) {
		o.InitialConfig = cfg
	}
}
