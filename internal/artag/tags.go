package artag

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"artag/internal/model"
)

// FindTagByUID returns the tag record for a UID, or nil when the UID has
// never been seen.
func (s *RegistryService) FindTagByUID(ctx context.Context, uid string) (*model.NFCTag, error) {
	t, err := s.database.FindTagByUID(ctx, NormalizeUID(uid))
	if err != nil {
		return nil, fmt.Errorf("finding tag: %w", err)
	}
	return t, nil
}

// ResolveTag looks a scanned UID up and, when the tag is bound, fetches the
// associated artwork. An unknown UID, an unbound tag, or a binding whose
// artwork no longer exists all resolve to a nil artwork.
func (s *RegistryService) ResolveTag(ctx context.Context, uid string) (*model.NFCTag, *model.Artwork, error) {
	t, err := s.FindTagByUID(ctx, uid)
	if err != nil {
		return nil, nil, err
	}
	if t == nil || !t.IsBound || !t.ArtworkID.Valid {
		return t, nil, nil
	}

	a, err := s.database.FindArtworkByID(ctx, t.ArtworkID.String)
	if err != nil {
		return nil, nil, fmt.Errorf("finding artwork for tag: %w", err)
	}
	return t, a, nil
}

// LinkTag binds a tag UID to an artwork, creating the tag record if this is
// the first time the UID is seen and rebinding it otherwise.
func (s *RegistryService) LinkTag(ctx context.Context, uid string, artworkID string) error {
	a, err := s.GetArtwork(ctx, artworkID)
	if err != nil {
		return err
	}

	normalized := NormalizeUID(uid)
	if normalized == "" {
		return fmt.Errorf("tag uid is required")
	}

	now := s.clock.Now()
	t, err := s.database.FindTagByUID(ctx, normalized)
	if err != nil {
		return fmt.Errorf("finding tag: %w", err)
	}
	if t == nil {
		t = &model.NFCTag{UID: normalized, CreatedAt: now}
	}
	t.IsBound = true
	t.ArtworkID = sql.NullString{String: a.ID, Valid: true}
	t.UpdatedAt = now

	if err := s.database.UpsertTag(ctx, t); err != nil {
		return fmt.Errorf("saving tag: %w", err)
	}

	s.logger.Info("tag linked", "uid", normalized, "artwork", a.ID)
	return nil
}

// UnlinkTag releases a tag's binding. The tag record survives unbound.
func (s *RegistryService) UnlinkTag(ctx context.Context, uid string) error {
	normalized := NormalizeUID(uid)
	t, err := s.database.FindTagByUID(ctx, normalized)
	if err != nil {
		return fmt.Errorf("finding tag: %w", err)
	}
	if t == nil {
		return fmt.Errorf("tag %s: %w", normalized, ErrNotFound)
	}

	t.IsBound = false
	t.ArtworkID = sql.NullString{}
	t.UpdatedAt = s.clock.Now()

	if err := s.database.UpsertTag(ctx, t); err != nil {
		return fmt.Errorf("saving tag: %w", err)
	}

	s.logger.Info("tag unlinked", "uid", normalized)
	return nil
}

// NormalizeUID canonicalizes a tag UID the way readers report them:
// uppercase hex without separators.
func NormalizeUID(uid string) string {
	uid = strings.ReplaceAll(uid, ":", "")
	uid = strings.ReplaceAll(uid, " ", "")
	return strings.ToUpper(strings.TrimSpace(uid))
}
