package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"artag/internal/artag"
)

// FileSystemStore is a filesystem-based implementation of the MediaStore
// interface. Objects are stored in a directory structure:
//
//	<root>/
//	  artwork_images/
//	    <name>
//	  avatars/
//	    <name>
//
// Public URLs are formed by joining baseURL with "<folder>/<name>".
type FileSystemStore struct {
	root    string
	baseURL string
}

// NewFileSystemStore creates a new filesystem media store rooted at the given path.
func NewFileSystemStore(root, baseURL string) (*FileSystemStore, error) {
	for _, folder := range []string{artag.FolderArtworkImages, artag.FolderAvatars} {
		if err := os.MkdirAll(filepath.Join(root, folder), 0755); err != nil {
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}
	}

	return &FileSystemStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// PutObject stores an object and returns its public URL.
// Writing the same folder/name pair again replaces the object.
func (s *FileSystemStore) PutObject(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error) {
	if err := validateObjectPath(folder, name); err != nil {
		return "", err
	}

	destPath := filepath.Join(s.root, folder, name)
	if err := s.writeFile(destPath, r, size); err != nil {
		return "", err
	}

	return s.baseURL + "/" + folder + "/" + name, nil
}

// DeleteObject removes the object behind a public URL previously returned
// by PutObject. Deleting an object that no longer exists is not an error.
func (s *FileSystemStore) DeleteObject(ctx context.Context, publicURL string) error {
	rel, ok := strings.CutPrefix(publicURL, s.baseURL+"/")
	if !ok {
		return fmt.Errorf("url %q is not served by this store", publicURL)
	}

	folder, name, ok := strings.Cut(rel, "/")
	if !ok {
		return fmt.Errorf("url %q has no folder component", publicURL)
	}
	if err := validateObjectPath(folder, name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.root, folder, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// ValidateSetup verifies that the store directories are accessible.
func (s *FileSystemStore) ValidateSetup() error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("media root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("media root is not a directory: %s", s.root)
	}

	for _, folder := range []string{artag.FolderArtworkImages, artag.FolderAvatars} {
		dir := filepath.Join(s.root, folder)
		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("media directory not accessible: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("media path is not a directory: %s", dir)
		}
	}

	return nil
}

// writeFile writes data from r to the specified path using atomic write (temp file + rename).
func (s *FileSystemStore) writeFile(destPath string, r io.Reader, expectedSize int64) error {
	// Create temp file in the same directory to ensure atomic rename works
	dir := filepath.Dir(destPath)
	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on failure
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	written, err := io.Copy(tmpFile, r)
	if err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if written != expectedSize {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", expectedSize, written)
	}

	// Atomic rename
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

// validateObjectPath rejects names that would escape the store directories.
func validateObjectPath(folder, name string) error {
	if folder != artag.FolderArtworkImages && folder != artag.FolderAvatars {
		return fmt.Errorf("unknown media folder: %s", folder)
	}
	if name == "" || strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return fmt.Errorf("invalid object name: %q", name)
	}
	return nil
}

// Compile-time check that FileSystemStore implements artag.MediaStore
var _ artag.MediaStore = (*FileSystemStore)(nil)
