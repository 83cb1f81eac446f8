package storage

import (
	"fmt"

	"github.com/dyluth/shelf/internal/config"
	"github.com/redis/go-redis/v9"
)

// Open builds the backend selected by cfg.
func Open(cfg *config.ShelfConfig) (Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendFile:
		return NewFileStore(cfg.Storage.Path)
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.Storage.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		return NewRedisStore(opts, cfg.Library)
	case config.BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}
