package artag

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"artag/internal/model"
)

// RegistryService is the orchestration layer that coordinates the database
// and media store to perform the high-level registry operations the CLI
// needs: profile editing, artwork CRUD, certificate issuance and tag binding.
type RegistryService struct {
	database Database
	media    MediaStore
	logger   Logger
	clock    Clock
	idgen    IDGenerator
}

// NewRegistryService creates a new RegistryService with the provided
// dependencies.
func NewRegistryService(database Database, media MediaStore, logger Logger, clock Clock, idgen IDGenerator) *RegistryService {
	return &RegistryService{
		database: database,
		media:    media,
		logger:   logger,
		clock:    clock,
		idgen:    idgen,
	}
}

// ProfileUpdate carries the optional profile fields of an update. Nil fields
// are left unchanged.
type ProfileUpdate struct {
	Username *string
	FullName *string
	Bio      *string
}

// GetProfile returns the profile with the given id.
func (s *RegistryService) GetProfile(ctx context.Context, id string) (*model.UserProfile, error) {
	p, err := s.database.FindProfileByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}
	return p, nil
}

// UpdateProfile applies a partial update to the profile. Username changes
// are checked for uniqueness before writing; the unique index backs this up.
func (s *RegistryService) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*model.UserProfile, error) {
	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil && *upd.Username != p.Username {
		existing, err := s.database.FindProfileByUsername(ctx, *upd.Username)
		if err != nil {
			return nil, fmt.Errorf("checking username: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("username %q: %w", *upd.Username, ErrUsernameTaken)
		}
		p.Username = *upd.Username
	}
	if upd.FullName != nil {
		p.FullName = *upd.FullName
	}
	if upd.Bio != nil {
		p.Bio = *upd.Bio
	}

	p.UpdatedAt = s.clock.Now()
	if err := s.database.UpdateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	s.logger.Info("profile updated", "profile", p.ID)
	return p, nil
}

// SetAvatar uploads a new avatar image and deletes the previous one.
func (s *RegistryService) SetAvatar(ctx context.Context, id string, filename string, r io.Reader, size int64) (*model.UserProfile, error) {
	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	name := s.objectName(p.ID, filename)
	url, err := s.media.PutObject(ctx, FolderAvatars, name, r, size)
	if err != nil {
		return nil, fmt.Errorf("uploading avatar: %w", err)
	}

	if p.AvatarURL != "" {
		if err := s.media.DeleteObject(ctx, p.AvatarURL); err != nil {
			s.logger.Warn("deleting previous avatar failed", "url", p.AvatarURL, "error", err)
		}
	}

	p.AvatarURL = url
	p.UpdatedAt = s.clock.Now()
	if err := s.database.UpdateProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("updating profile: %w", err)
	}

	return p, nil
}

// ArtworkDraft carries the fields of a new artwork. NFCTagUID, when set,
// links the tag to the artwork immediately after creation — this is the
// "create new artwork and link" follow-up after a not-found scan.
type ArtworkDraft struct {
	Title      string
	Artist     string
	Year       string
	Medium     string
	Dimensions string
	NFCTagUID  string
}

// ArtworkUpdate carries the optional artwork fields of an update. Nil fields
// are left unchanged. Status is not updatable here: it is owned by the
// certificate issue/revoke call sites.
type ArtworkUpdate struct {
	Title      *string
	Artist     *string
	Year       *string
	Medium     *string
	Dimensions *string
}

// CreateArtwork registers a new artwork for the owner. New artworks start
// unverified; status only flips through certificate issuance.
func (s *RegistryService) CreateArtwork(ctx context.Context, ownerID string, draft ArtworkDraft) (*model.Artwork, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("artwork title is required")
	}

	now := s.clock.Now()
	a := &model.Artwork{
		ID:         s.idgen.New(),
		OwnerID:    ownerID,
		Title:      draft.Title,
		Artist:     draft.Artist,
		Year:       draft.Year,
		Medium:     draft.Medium,
		Dimensions: draft.Dimensions,
		Status:     model.StatusUnverified,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.database.CreateArtwork(ctx, a); err != nil {
		return nil, fmt.Errorf("creating artwork: %w", err)
	}

	if draft.NFCTagUID != "" {
		if err := s.LinkTag(ctx, draft.NFCTagUID, a.ID); err != nil {
			return nil, fmt.Errorf("linking tag to new artwork: %w", err)
		}
	}

	s.logger.Info("artwork created", "artwork", a.ID, "title", a.Title)
	return a, nil
}

// AttachImage uploads an image for the artwork and stores its public URL,
// replacing and deleting any previous image.
func (s *RegistryService) AttachImage(ctx context.Context, artworkID string, filename string, r io.Reader, size int64) (*model.Artwork, error) {
	a, err := s.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, err
	}

	name := s.objectName(a.ID, filename)
	url, err := s.media.PutObject(ctx, FolderArtworkImages, name, r, size)
	if err != nil {
		return nil, fmt.Errorf("uploading image: %w", err)
	}

	if a.ImageURL != "" {
		if err := s.media.DeleteObject(ctx, a.ImageURL); err != nil {
			s.logger.Warn("deleting previous image failed", "url", a.ImageURL, "error", err)
		}
	}

	a.ImageURL = url
	a.UpdatedAt = s.clock.Now()
	if err := s.database.UpdateArtwork(ctx, a); err != nil {
		return nil, fmt.Errorf("updating artwork: %w", err)
	}

	return a, nil
}

// GetArtwork returns the artwork with the given id.
func (s *RegistryService) GetArtwork(ctx context.Context, id string) (*model.Artwork, error) {
	a, err := s.database.FindArtworkByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding artwork: %w", err)
	}
	if a == nil {
		return nil, fmt.Errorf("artwork %s: %w", id, ErrNotFound)
	}
	return a, nil
}

// ListArtworks returns all of the owner's artworks, newest first.
func (s *RegistryService) ListArtworks(ctx context.Context, ownerID string) ([]*model.Artwork, error) {
	return s.database.ListArtworksByOwner(ctx, ownerID)
}

// UpdateArtwork applies a partial update to the artwork's descriptive fields.
func (s *RegistryService) UpdateArtwork(ctx context.Context, id string, upd ArtworkUpdate) (*model.Artwork, error) {
	a, err := s.GetArtwork(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		if strings.TrimSpace(*upd.Title) == "" {
			return nil, fmt.Errorf("artwork title is required")
		}
		a.Title = *upd.Title
	}
	if upd.Artist != nil {
		a.Artist = *upd.Artist
	}
	if upd.Year != nil {
		a.Year = *upd.Year
	}
	if upd.Medium != nil {
		a.Medium = *upd.Medium
	}
	if upd.Dimensions != nil {
		a.Dimensions = *upd.Dimensions
	}

	a.UpdatedAt = s.clock.Now()
	if err := s.database.UpdateArtwork(ctx, a); err != nil {
		return nil, fmt.Errorf("updating artwork: %w", err)
	}
	return a, nil
}

// DeleteArtwork removes the artwork, its certificates (schema cascade), its
// stored image, and releases any bound tags. Tag rows themselves survive:
// UIDs are never deleted, only unbound.
func (s *RegistryService) DeleteArtwork(ctx context.Context, id string) error {
	a, err := s.GetArtwork(ctx, id)
	if err != nil {
		return err
	}

	if err := s.database.UnbindTagsForArtwork(ctx, a.ID); err != nil {
		return fmt.Errorf("unbinding tags: %w", err)
	}

	if a.ImageURL != "" {
		if err := s.media.DeleteObject(ctx, a.ImageURL); err != nil {
			s.logger.Warn("deleting artwork image failed", "url", a.ImageURL, "error", err)
		}
	}

	if err := s.database.DeleteArtwork(ctx, a.ID); err != nil {
		return fmt.Errorf("deleting artwork: %w", err)
	}

	s.logger.Info("artwork deleted", "artwork", a.ID)
	return nil
}

// objectName builds a collision-free object name scoped to the owning row:
// <rowID>-<random>.<ext>.
func (s *RegistryService) objectName(rowID string, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return rowID + "-" + s.idgen.New() + ext
}
