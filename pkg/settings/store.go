package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store persists Settings as a YAML file on disk.
type Store struct {
	path string
}

// NewStore creates a store bound to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads from and writes to.
func (s *Store) Path() string { return s.path }

// Load reads settings from disk, or returns defaults when the file does not
// exist. Environment variables referenced as ${VAR} or $VAR are expanded
// before parsing, so model names or prompt fragments can be kept in the
// environment (e.g. loaded from a .env file) rather than committed in the
// config.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path) //nolint:gosec // path is caller-provided configuration, not user input
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return Settings{}, fmt.Errorf("settings: load: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	// Start from defaults so fields absent from the file keep their
	// baseline values.
	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return Settings{}, fmt.Errorf("settings: parse: %w", err)
	}

	return cfg, nil
}

// Save writes the whole settings object, creating parent directories as
// needed. Callers persist on every change rather than batching.
func (s *Store) Save(cfg Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}

	return nil
}
