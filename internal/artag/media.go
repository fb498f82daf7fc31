package artag

import (
	"context"
	"io"
)

// Media store folders. Objects are addressed by folder-scoped paths.
const (
	FolderArtworkImages = "artwork_images"
	FolderAvatars       = "avatars"
)

// MediaStore provides object storage for images. All operations stream
// through io.Reader so large images are never held in memory whole.
type MediaStore interface {
	// PutObject stores an object under folder/name and returns its public URL.
	// size is the number of bytes that will be read from r.
	PutObject(ctx context.Context, folder string, name string, r io.Reader, size int64) (string, error)

	// DeleteObject removes the object a previously returned public URL points
	// to. Deleting an unknown URL is not an error.
	DeleteObject(ctx context.Context, publicURL string) error

	// ValidateSetup verifies that the store is accessible and properly
	// configured.
	ValidateSetup() error
}
