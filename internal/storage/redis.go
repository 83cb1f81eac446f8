package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/dyluth/shelf/pkg/catalog"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the encoded state under a single key, namespaced by
// library name so several catalogs can share one Redis server.
type RedisStore struct {
	rdb     *redis.Client
	library string
}

// NewRedisStore connects a store for the named library.
// Returns an error if library is empty.
func NewRedisStore(redisOpts *redis.Options, library string) (*RedisStore, error) {
	if library == "" {
		return nil, fmt.Errorf("library name cannot be empty")
	}

	return &RedisStore{
		rdb:     redis.NewClient(redisOpts),
		library: library,
	}, nil
}

// InventoryKey returns the Redis key holding a library's state.
// Pattern: shelf:{library}:inventory
func InventoryKey(library string) string {
	return fmt.Sprintf("shelf:%s:inventory", library)
}

// Ping verifies Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// Load fetches and decodes the state. A missing key returns ErrNoState.
func (s *RedisStore) Load(ctx context.Context) (*catalog.State, error) {
	data, err := s.rdb.Get(ctx, InventoryKey(s.library)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoState
		}
		return nil, fmt.Errorf("failed to read inventory from Redis: %w", err)
	}

	return Decode(data)
}

// Save encodes state and overwrites the key. A single SET is atomic on the server.
func (s *RedisStore) Save(ctx context.Context, state *catalog.State) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, InventoryKey(s.library), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write inventory to Redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
