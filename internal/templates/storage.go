package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage abstracts the key/value persistence layer behind the catalogue.
// The whole catalogue is one value; partial writes are never observable.
type Storage interface {
	// GetItem returns the stored value for a key, or ok=false when the key
	// has never been written.
	GetItem(key string) (value []byte, ok bool, err error)
	// SetItem replaces the stored value for a key atomically.
	SetItem(key string, value []byte) error
}

// MemStorage is an in-memory Storage used in tests and ephemeral sessions.
type MemStorage struct {
	items map[string][]byte
}

// NewMemStorage creates an empty in-memory storage.
func NewMemStorage() *MemStorage {
	return &MemStorage{items: make(map[string][]byte)}
}

// GetItem implements Storage.
func (m *MemStorage) GetItem(key string) ([]byte, bool, error) {
	value, ok := m.items[key]
	return value, ok, nil
}

// SetItem implements Storage.
func (m *MemStorage) SetItem(key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	m.items[key] = stored
	return nil
}

// FileStorage persists each key as a JSON file under a directory.
type FileStorage struct {
	dir string
}

// NewFileStorage creates a file-backed storage rooted at dir, creating the
// directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", dir, err)
	}
	return &FileStorage{dir: dir}, nil
}

// path maps a storage key to a file path. Keys are already well-known
// identifiers; separators are sanitized anyway.
func (f *FileStorage) path(key string) string {
	name := strings.NewReplacer("/", "_", string(filepath.Separator), "_").Replace(key)
	return filepath.Join(f.dir, name+".json")
}

// GetItem implements Storage.
func (f *FileStorage) GetItem(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", f.path(key), err)
	}
	return data, true, nil
}

// SetItem implements Storage. The value is written to a temp file and
// renamed into place so a crashed write never leaves a torn catalogue.
func (f *FileStorage) SetItem(key string, value []byte) error {
	target := f.path(key)
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	return nil
}

// Compile-time interface checks
var (
	_ Storage = (*MemStorage)(nil)
	_ Storage = (*FileStorage)(nil)
)
