package artag

import (
	"context"

	"artag/internal/model"
)

// Database provides typed row access for profiles, artworks, certificates
// and NFC tags. Lookups return (nil, nil) when no row matches; errors are
// reserved for query failures, so absence and failure stay distinguishable.
type Database interface {
	// Profile operations

	// CreateProfile inserts a new profile. The caller assigns the ID.
	CreateProfile(ctx context.Context, p *model.UserProfile) error

	// FindProfileByID returns a profile by primary key.
	FindProfileByID(ctx context.Context, id string) (*model.UserProfile, error)

	// FindProfileByUsername returns a profile by its unique username.
	FindProfileByUsername(ctx context.Context, username string) (*model.UserProfile, error)

	// UpdateProfile updates username, full name, bio and avatar URL.
	UpdateProfile(ctx context.Context, p *model.UserProfile) error

	// UpdateProfilePassword replaces the stored password hash.
	UpdateProfilePassword(ctx context.Context, id string, passwordHash string) error

	// Artwork operations

	// CreateArtwork inserts a new artwork. The caller assigns the ID.
	CreateArtwork(ctx context.Context, a *model.Artwork) error

	// FindArtworkByID returns an artwork by primary key.
	FindArtworkByID(ctx context.Context, id string) (*model.Artwork, error)

	// ListArtworksByOwner returns all artworks for an owner, newest first.
	ListArtworksByOwner(ctx context.Context, ownerID string) ([]*model.Artwork, error)

	// UpdateArtwork updates the mutable artwork fields (not status).
	UpdateArtwork(ctx context.Context, a *model.Artwork) error

	// UpdateArtworkStatus sets the artwork status.
	UpdateArtworkStatus(ctx context.Context, id string, status string) error

	// DeleteArtwork deletes an artwork. Certificates cascade; bound tags
	// are released by the schema (ON DELETE SET NULL) but their is_bound
	// flag must be cleared by the caller first.
	DeleteArtwork(ctx context.Context, id string) error

	// Certificate operations

	// CreateCertificate inserts a new certificate.
	CreateCertificate(ctx context.Context, c *model.Certificate) error

	// FindCertificateByDisplayID returns a certificate by its display id
	// (the "COA-..." string, not the row UUID).
	FindCertificateByDisplayID(ctx context.Context, certificateID string) (*model.Certificate, error)

	// ListCertificatesByArtwork returns an artwork's certificates, newest first.
	ListCertificatesByArtwork(ctx context.Context, artworkID string) ([]*model.Certificate, error)

	// CountCertificatesByArtwork returns how many certificates an artwork has.
	CountCertificatesByArtwork(ctx context.Context, artworkID string) (int, error)

	// DeleteCertificate deletes a certificate by row id.
	DeleteCertificate(ctx context.Context, id string) error

	// Tag operations

	// FindTagByUID returns a tag by its hardware UID.
	FindTagByUID(ctx context.Context, uid string) (*model.NFCTag, error)

	// UpsertTag inserts the tag or, when the UID already exists, updates its
	// binding. UIDs are immutable; tags are never deleted.
	UpsertTag(ctx context.Context, t *model.NFCTag) error

	// UnbindTagsForArtwork clears the binding of every tag attached to the
	// given artwork.
	UnbindTagsForArtwork(ctx context.Context, artworkID string) error

	// Close closes the database connection.
	Close() error
}
