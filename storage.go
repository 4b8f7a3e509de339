package ggapp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Storage is the key/value state handed to apps implementing Saver.
// Values live in memory until Flush writes them out.
type Storage interface {
	// GetString returns the stored value for key.
	GetString(key string) (string, bool)

	// SetString stores a value for key.
	SetString(key, value string)

	// Flush writes pending changes. A no-op when nothing changed.
	Flush() error
}

// stateFile is the on-disk name of the persisted state.
const stateFile = "state.yaml"

// fileStorage persists key/value state as YAML under the user config
// directory, one subdirectory per application name.
type fileStorage struct {
	path   string
	values map[string]string
	dirty  bool
}

// openFileStorage loads (or initializes) persisted state for an app.
// A corrupt or unreadable state file starts fresh rather than failing:
// persistence problems must never stop the application.
func openFileStorage(appName string) (*fileStorage, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	return openFileStorageAt(filepath.Join(dir, appName, stateFile)), nil
}

// openFileStorageAt loads state from an explicit path.
func openFileStorageAt(path string) *fileStorage {
	st := &fileStorage{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			Logger().Warn("ggapp: cannot read persisted state", "path", path, "error", err)
		}
		return st
	}
	if err := yaml.Unmarshal(data, &st.values); err != nil {
		Logger().Warn("ggapp: persisted state is invalid, starting fresh",
			"path", path, "error", err)
		st.values = make(map[string]string)
	}
	return st
}

// GetString returns the stored value for key.
func (s *fileStorage) GetString(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// SetString stores a value for key.
func (s *fileStorage) SetString(key, value string) {
	s.values[key] = value
	s.dirty = true
}

// Flush writes the state file if anything changed.
func (s *fileStorage) Flush() error {
	if !s.dirty {
		return nil
	}
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	s.dirty = false
	return nil
}
