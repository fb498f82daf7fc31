package artag

import (
	"time"

	"artag/internal/model"
)

// History store sizing: at most MaxHistoryEntries are retained, of which the
// most recent RecentDisplayCount are surfaced for display.
const (
	MaxHistoryEntries  = 10
	RecentDisplayCount = 5
)

// RecentScans is the display window over the stored scan history plus
// aggregates computed over the full stored list.
type RecentScans struct {
	Entries          []model.ScanEntry // up to RecentDisplayCount, newest first
	TotalScans       int               // all stored entries
	DistinctArtworks int               // unique artwork ids among stored entries
}

// HistoryStore persists recent scan results locally. A single writer at a
// time is assumed; only one scan can be in flight per controller.
type HistoryStore interface {
	// Record prepends an entry, removes any prior entry for the same artwork
	// and truncates to MaxHistoryEntries before persisting.
	Record(title string, artworkID string, at time.Time) error

	// LoadRecent returns the display window and aggregates.
	LoadRecent() (*RecentScans, error)
}
