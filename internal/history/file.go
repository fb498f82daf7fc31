package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"artag/internal/artag"
	"artag/internal/model"
)

// FileStore is a JSON-file-backed implementation of the HistoryStore
// interface. The file is read on first use and cached; writes go through
// a temp file + rename so a crash never leaves a partial file behind.
type FileStore struct {
	path string

	mu      sync.Mutex
	entries []model.ScanEntry
	loaded  bool
}

// NewFileStore creates a history store backed by the given file path.
// The file is created on first Record.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Record prepends an entry, dedupes by artwork id and persists.
func (s *FileStore) Record(title string, artworkID string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return err
	}

	s.entries = push(s.entries, title, artworkID, at)
	return s.saveLocked()
}

// LoadRecent returns the display window and aggregates.
func (s *FileStore) LoadRecent() (*artag.RecentScans, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadLocked(); err != nil {
		return nil, err
	}
	return summarize(s.entries), nil
}

func (s *FileStore) loadLocked() error {
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.entries = nil
			s.loaded = true
			return nil
		}
		return fmt.Errorf("reading history file: %w", err)
	}

	var entries []model.ScanEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing history file: %w", err)
	}

	s.entries = entries
	s.loaded = true
	return nil
}

func (s *FileStore) saveLocked() error {
	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-history-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write history: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// Compile-time check that FileStore implements artag.HistoryStore
var _ artag.HistoryStore = (*FileStore)(nil)
