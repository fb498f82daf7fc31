package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"artag/internal/artag"
)

// MemoryStore is an in-memory implementation of the MediaStore interface,
// useful for testing. This implementation is safe for concurrent use.
type MemoryStore struct {
	objects map[string][]byte // "folder/name" -> data
	mu      sync.RWMutex
}

// NewMemoryStore creates a new in-memory media store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[string][]byte),
	}
}

// PutObject stores an object and returns a memory:// URL for it.
func (m *MemoryStore) PutObject(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error) {
	if err := validateObjectPath(folder, name); err != nil {
		return "", err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read object: %w", err)
	}
	if int64(len(data)) != size {
		return "", fmt.Errorf("size mismatch: expected %d bytes, got %d", size, len(data))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[folder+"/"+name] = data
	return "memory://" + folder + "/" + name, nil
}

// DeleteObject removes an object by its memory:// URL.
// Deleting an object that no longer exists is not an error.
func (m *MemoryStore) DeleteObject(ctx context.Context, publicURL string) error {
	key, ok := strings.CutPrefix(publicURL, "memory://")
	if !ok {
		return fmt.Errorf("url %q is not served by this store", publicURL)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, key)
	return nil
}

// ValidateSetup always succeeds for in-memory store.
func (m *MemoryStore) ValidateSetup() error {
	return nil
}

// Object returns the stored data for a folder/name pair, for use in tests.
func (m *MemoryStore) Object(folder, name string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.objects[folder+"/"+name]
	return data, ok
}

// Len returns the number of stored objects.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.objects)
}

// Compile-time check that MemoryStore implements artag.MediaStore
var _ artag.MediaStore = (*MemoryStore)(nil)
