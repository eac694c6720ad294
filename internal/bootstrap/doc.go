// Package bootstrap loads launch configuration for the server binary.
//
// Configuration comes from an optional TOML file overridden by BETTER_AUTH_*
// environment variables, and is read exactly once at startup. The values are
// handed to the core only as an initial config seed and a log level; the
// dispatcher never reads the environment itself.
package bootstrap
