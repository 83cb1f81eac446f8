package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/shelf/pkg/catalog"
	"github.com/google/renameio/v2"
)

// FileStore keeps the encoded state in a single file. Saves go through a
// temporary file that is synced and renamed over the target, so a crash leaves
// either the previous or the new content, never a truncated file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. The file is not touched until the
// first Load or Save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	return &FileStore{path: path}, nil
}

// Path returns the file the store writes to.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads and decodes the file. A missing file returns ErrNoState.
func (s *FileStore) Load(ctx context.Context) (*catalog.State, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	return Decode(data)
}

// Save encodes state and atomically replaces the file.
func (s *FileStore) Save(ctx context.Context, state *catalog.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := Encode(state)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", s.path, err)
		}
	}

	if err := renameio.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}
	return nil
}

// Close is a no-op; the file is not held open between calls.
func (s *FileStore) Close() error {
	return nil
}
