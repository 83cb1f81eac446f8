package storage

import (
	"context"
	"sync"

	"github.com/dyluth/shelf/pkg/catalog"
)

// MemoryStore holds the encoded state in process memory. Everything is lost
// when the process exits.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(ctx context.Context) (*catalog.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blob == nil {
		return nil, ErrNoState
	}
	return Decode(s.blob)
}

func (s *MemoryStore) Save(ctx context.Context, state *catalog.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = data
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
