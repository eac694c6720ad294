package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Environment variables recognized at startup.
const (
	EnvProjectID   = "BETTER_AUTH_PROJECT_ID"
	EnvAPIKey      = "BETTER_AUTH_API_KEY"
	EnvEnvironment = "BETTER_AUTH_ENVIRONMENT"
	EnvLogLevel    = "BETTER_AUTH_LOG_LEVEL"
)

// Config is the launch configuration for the server binary.
type Config struct {
	ProjectID   string `toml:"project_id"`
	APIKey      string `toml:"api_key"`
	Environment string `toml:"environment"`
	LogLevel    string `toml:"log_level"`
}

// Load reads configuration from the TOML file at path, then applies
// environment overrides. An empty path skips the file; a path that does not
// exist is an error, since the operator asked for it explicitly.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	return cfg, nil
}

// applyEnv overrides file values with environment values when set.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvProjectID); v != "" {
		cfg.ProjectID = v
	}

	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	}

	if v := os.Getenv(EnvEnvironment); v != "" {
		cfg.Environment = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// ParseLevel maps a verbosity name to a slog level. An empty name means
// info; unknown names are an error.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", name)
	}
}

// NewLogger builds a text logger at the given level. The server binary
// writes logs to stderr: stdout carries the protocol.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
