package logstore

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// placeholder is returned by Render when no entries have been recorded yet.
const placeholder = "No auth activity recorded."

// maxEntries caps the in-memory log. Older entries are dropped first.
const maxEntries = 1000

// Entry is a single recorded auth event.
type Entry struct {
	ID      string
	Time    time.Time
	Level   string
	Message string
}

// Store is a bounded, append-only in-memory event log.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append records an entry, evicting the oldest when the cap is reached.
func (s *Store) Append(e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= maxEntries {
		s.entries = s.entries[1:]
	}

	s.entries = append(s.entries, e)
}

// Entries returns a copy of the recorded entries in append order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)

	return out
}

// Len returns the number of recorded entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Render formats the log as plain text, one entry per line. An empty store
// renders a placeholder body so the logs resource always has content.
func (s *Store) Render() string {
	entries := s.Entries()
	if len(entries) == 0 {
		return placeholder
	}

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s [%s] %s (%s)\n",
			e.Time.UTC().Format(time.RFC3339), e.Level, e.Message, e.ID)
	}

	return b.String()
}
