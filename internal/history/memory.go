package history

import (
	"sync"
	"time"

	"artag/internal/artag"
	"artag/internal/model"
)

// MemoryStore is an in-memory implementation of the HistoryStore interface,
// useful for testing. This implementation is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	entries []model.ScanEntry

	// RecordErr, when set, is returned by Record. Lets tests exercise the
	// history-failure path of the scan flow.
	RecordErr error
}

// NewMemoryStore creates a new in-memory history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record prepends an entry, dedupes by artwork id, caps retention.
func (s *MemoryStore) Record(title string, artworkID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.RecordErr != nil {
		return s.RecordErr
	}

	s.entries = push(s.entries, title, artworkID, at)
	return nil
}

// LoadRecent returns the display window and aggregates.
func (s *MemoryStore) LoadRecent() (*artag.RecentScans, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return summarize(s.entries), nil
}

// All returns a copy of every stored entry, newest first, for use in tests.
func (s *MemoryStore) All() []model.ScanEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ScanEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Compile-time check that MemoryStore implements artag.HistoryStore
var _ artag.HistoryStore = (*MemoryStore)(nil)
