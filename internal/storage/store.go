// Package storage persists a catalog.State. Every backend stores the same
// encoded blob: base64 of the JSON document.
package storage

import (
	"context"
	"errors"

	"github.com/dyluth/shelf/pkg/catalog"
)

var (
	// ErrNoState is returned by Load when nothing has been saved yet.
	ErrNoState = errors.New("no saved state")

	// ErrCorrupt is returned by Load when the saved blob cannot be decoded.
	ErrCorrupt = errors.New("saved state is corrupt")
)

// Store loads and saves the full inventory state.
type Store interface {
	Load(ctx context.Context) (*catalog.State, error)
	Save(ctx context.Context, state *catalog.State) error
	Close() error
}

// IsNoState returns true if err indicates that no state has been saved.
func IsNoState(err error) bool {
	return errors.Is(err, ErrNoState)
}
