// Package history persists recent scan results locally. The stored list is
// newest-first, deduplicated by artwork id, and capped at
// artag.MaxHistoryEntries.
package history

import (
	"time"

	"artag/internal/artag"
	"artag/internal/model"
)

// push prepends a new entry, removing any prior entry for the same artwork
// (move-to-front) and truncating to the retention cap.
func push(entries []model.ScanEntry, title, artworkID string, at time.Time) []model.ScanEntry {
	next := make([]model.ScanEntry, 0, len(entries)+1)
	next = append(next, model.ScanEntry{
		ArtworkTitle: title,
		ArtworkID:    artworkID,
		Timestamp:    at,
	})
	for _, e := range entries {
		if e.ArtworkID == artworkID {
			continue
		}
		next = append(next, e)
	}
	if len(next) > artag.MaxHistoryEntries {
		next = next[:artag.MaxHistoryEntries]
	}
	return next
}

// summarize builds the display window and aggregates over the stored list.
func summarize(entries []model.ScanEntry) *artag.RecentScans {
	display := entries
	if len(display) > artag.RecentDisplayCount {
		display = display[:artag.RecentDisplayCount]
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		seen[e.ArtworkID] = struct{}{}
	}

	out := make([]model.ScanEntry, len(display))
	copy(out, display)

	return &artag.RecentScans{
		Entries:          out,
		TotalScans:       len(entries),
		DistinctArtworks: len(seen),
	}
}
