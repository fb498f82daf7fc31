package history

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"artag/internal/artag"
)

func at(min int) time.Time {
	return time.Date(2025, 3, 10, 9, min, 0, 0, time.UTC)
}

func TestMemoryStore_RecordAndLoad(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Record("Sunset", "a1", at(0)); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := s.Record("Blue Field", "a2", at(1)); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	recent, err := s.LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error: %v", err)
	}

	if recent.TotalScans != 2 {
		t.Errorf("TotalScans = %d, want 2", recent.TotalScans)
	}
	if recent.DistinctArtworks != 2 {
		t.Errorf("DistinctArtworks = %d, want 2", recent.DistinctArtworks)
	}
	if recent.Entries[0].ArtworkTitle != "Blue Field" {
		t.Errorf("newest entry = %q, want Blue Field", recent.Entries[0].ArtworkTitle)
	}
}

func TestMemoryStore_DedupeMovesToFront(t *testing.T) {
	s := NewMemoryStore()

	s.Record("Sunset", "a1", at(0))
	s.Record("Blue Field", "a2", at(1))
	s.Record("Sunset", "a1", at(2))

	recent, err := s.LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error: %v", err)
	}

	if recent.TotalScans != 2 {
		t.Errorf("TotalScans = %d, want 2 (rescan must not duplicate)", recent.TotalScans)
	}
	if recent.Entries[0].ArtworkID != "a1" {
		t.Errorf("front entry = %s, want rescanned a1", recent.Entries[0].ArtworkID)
	}
	if !recent.Entries[0].Timestamp.Equal(at(2)) {
		t.Errorf("front timestamp = %v, want the rescan time", recent.Entries[0].Timestamp)
	}
}

func TestMemoryStore_CapAndDisplayWindow(t *testing.T) {
	s := NewMemoryStore()

	for i := 0; i < 13; i++ {
		s.Record(fmt.Sprintf("Piece %d", i), fmt.Sprintf("a%d", i), at(i))
	}

	recent, err := s.LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error: %v", err)
	}

	if recent.TotalScans != artag.MaxHistoryEntries {
		t.Errorf("TotalScans = %d, want capped at %d", recent.TotalScans, artag.MaxHistoryEntries)
	}
	if len(recent.Entries) != artag.RecentDisplayCount {
		t.Errorf("display entries = %d, want %d", len(recent.Entries), artag.RecentDisplayCount)
	}
	if recent.Entries[0].ArtworkID != "a12" {
		t.Errorf("newest = %s, want a12", recent.Entries[0].ArtworkID)
	}

	// The oldest entries fell off the cap.
	all := s.All()
	if all[len(all)-1].ArtworkID != "a3" {
		t.Errorf("oldest retained = %s, want a3", all[len(all)-1].ArtworkID)
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")

	s := NewFileStore(path)
	if err := s.Record("Sunset", "a1", at(0)); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := s.Record("Blue Field", "a2", at(1)); err != nil {
		t.Fatalf("Record() error: %v", err)
	}

	// A fresh store over the same file sees the data.
	reopened := NewFileStore(path)
	recent, err := reopened.LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error: %v", err)
	}

	if recent.TotalScans != 2 {
		t.Errorf("TotalScans = %d, want 2", recent.TotalScans)
	}
	if recent.Entries[0].ArtworkTitle != "Blue Field" {
		t.Errorf("newest = %q, want Blue Field", recent.Entries[0].ArtworkTitle)
	}
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))

	recent, err := s.LoadRecent()
	if err != nil {
		t.Fatalf("LoadRecent() error: %v", err)
	}
	if recent.TotalScans != 0 || len(recent.Entries) != 0 {
		t.Errorf("recent = %+v, want empty", recent)
	}
}

func TestFileStore_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}

	s := NewFileStore(path)
	if _, err := s.LoadRecent(); err == nil {
		t.Error("LoadRecent() on corrupt file succeeded, want error")
	}
}
