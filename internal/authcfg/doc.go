// Package authcfg holds the process-wide Better Auth configuration.
//
// The configuration is a single record with one writer (the setup_better_auth
// tool) and one reader (the config resource). It starts empty, is replaced
// wholesale on each setup call, and is never persisted. The store guards the
// record with a mutex so a transport that parallelizes request handling can
// never observe a partially written config.
package authcfg
