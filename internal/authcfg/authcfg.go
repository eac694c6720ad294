package authcfg

import (
	"encoding/json"
	"sync"
)

// Config is the Better Auth project configuration. All fields are optional;
// the zero value is the Unconfigured state.
type Config struct {
	ProjectID   string `json:"projectId,omitempty"`
	APIKey      string `json:"apiKey,omitempty"`
	Environment string `json:"environment,omitempty"`
}

// Configured reports whether any field has been set.
func (c Config) Configured() bool {
	return c != Config{}
}

// Store owns the process-wide Config. The zero value is not usable; create
// one with NewStore and inject it into the dispatcher.
type Store struct {
	mu  sync.RWMutex
	cfg Config
}

// NewStore creates an empty (Unconfigured) store.
func NewStore() *Store {
	return &Store{}
}

// Replace swaps the entire configuration. This is deliberately not a merge:
// fields omitted from cfg are dropped, including a previously set API key.
func (s *Store) Replace(cfg Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// Snapshot returns a copy of the current configuration.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cfg
}

// JSON renders the current configuration as pretty-printed JSON.
func (s *Store) JSON() (string, error) {
	cfg := s.Snapshot()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", err
	}

	return string(data), nil
}
