package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dyluth/shelf/pkg/catalog"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "shelf.yml"

// Storage backends
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ShelfConfig represents the top-level shelf.yml configuration
type ShelfConfig struct {
	Version string         `yaml:"version"`
	Library string         `yaml:"library,omitempty"` // Namespace for shared backends, default "main"
	Storage *StorageConfig `yaml:"storage,omitempty"`
	Search  *SearchConfig  `yaml:"search,omitempty"`
	Log     *LogConfig     `yaml:"log,omitempty"`
}

// StorageConfig selects where the inventory is persisted
type StorageConfig struct {
	Backend  string `yaml:"backend"`             // file, redis or memory
	Path     string `yaml:"path,omitempty"`      // Required for file backend
	RedisURL string `yaml:"redis_url,omitempty"` // Required for redis backend
}

// SearchConfig controls how search terms are interpreted
type SearchConfig struct {
	Mode string `yaml:"mode"` // literal or pattern
}

// LogConfig controls the session log file
type LogConfig struct {
	File  string `yaml:"file,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// Default returns the configuration used when no shelf.yml exists.
func Default() *ShelfConfig {
	c := &ShelfConfig{Version: "1.0"}
	// Validate only fills defaults on an empty config, it cannot fail here
	_ = c.Validate()
	return c
}

// Validate performs strict validation on the configuration and fills in defaults
func (c *ShelfConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Library == "" {
		c.Library = "main"
	}
	if strings.ContainsAny(c.Library, ": \t\n") {
		return fmt.Errorf("library name '%s' must not contain ':' or whitespace", c.Library)
	}

	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}

	if c.Search == nil {
		c.Search = &SearchConfig{}
	}
	mode, err := catalog.ParseSearchMode(c.Search.Mode)
	if err != nil {
		return fmt.Errorf("search.mode: invalid value '%s' (must be 'literal' or 'pattern')", c.Search.Mode)
	}
	c.Search.Mode = string(mode)

	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}

	return nil
}

// Validate checks the storage section and applies backend defaults
func (s *StorageConfig) Validate() error {
	if s.Backend == "" {
		s.Backend = BackendFile
	}

	switch s.Backend {
	case BackendFile:
		if s.Path == "" {
			s.Path = "inventory.dat"
		}
		s.Path = expandHome(s.Path)
	case BackendRedis:
		if s.RedisURL == "" {
			return fmt.Errorf("storage.redis_url is required for the redis backend")
		}
		if !strings.HasPrefix(s.RedisURL, "redis://") && !strings.HasPrefix(s.RedisURL, "rediss://") {
			return fmt.Errorf("storage.redis_url must start with redis:// or rediss://, got %s", s.RedisURL)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid storage.backend: %s (must be 'file', 'redis' or 'memory')", s.Backend)
	}

	return nil
}

// Validate checks the log section and applies defaults
func (l *LogConfig) Validate() error {
	if l.File == "" {
		l.File = filepath.Join("~", ".shelf", "logs", "shelf.log")
	}
	l.File = expandHome(l.File)

	if l.Level == "" {
		l.Level = "info"
	}
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level: %s (must be 'debug', 'info', 'warn' or 'error')", l.Level)
	}

	return nil
}

// Load reads and validates shelf.yml from the specified path
func Load(path string) (*ShelfConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config ShelfConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// LoadOrDefault behaves like Load but returns Default() when the file does not exist.
func LoadOrDefault(path string) (*ShelfConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// WriteDefault writes a commented default shelf.yml to path.
// Refuses to overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
	}

	if err := os.WriteFile(path, []byte(defaultTemplate), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	// The template must always load cleanly
	if _, err := Load(path); err != nil {
		return fmt.Errorf("generated configuration is invalid: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

const defaultTemplate = `# shelf library catalog configuration
version: "1.0"

# Namespace used by shared backends (redis key shelf:<library>:inventory)
library: main

storage:
  # file | redis | memory (memory discards everything on exit)
  backend: file
  path: inventory.dat
  # redis_url: redis://localhost:6379/0

search:
  # literal: case-insensitive substring, pattern: case-insensitive regular expression
  mode: literal

log:
  file: ~/.shelf/logs/shelf.log
  level: info
`
