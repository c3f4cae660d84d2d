package theme

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a stored stylesheet doesn't exist.
var ErrNotFound = errors.New("theme: stylesheet not found")

// Store is the interface for stylesheet publishing backends.
// Implement this interface to push generated CSS to S3, a CDN, or any
// other destination.
type Store interface {
	// Put stores the CSS under the theme name and returns its location.
	Put(name string, css []byte) (location string, err error)

	// Open reads back a stored stylesheet.
	Open(name string) ([]byte, error)
}

// DiskStore publishes stylesheets to a local directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates a DiskStore rooted at dir, creating it if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &DiskStore{dir: dir}, nil
}

// Put writes <dir>/<name>.css and returns its path.
func (s *DiskStore) Put(name string, css []byte) (string, error) {
	path := filepath.Join(s.dir, name+".css")
	if err := os.WriteFile(path, css, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Open reads <dir>/<name>.css.
func (s *DiskStore) Open(name string) ([]byte, error) {
	css, err := os.ReadFile(filepath.Join(s.dir, name+".css"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return css, err
}

// Publish renders the theme and stores it in one step.
func Publish(t *Theme, store Store) (string, error) {
	return store.Put(t.Name(), []byte(t.CSS()))
}
