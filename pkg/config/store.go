package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store provides persistence for configuration data.
type Store interface {
	// Load loads the configuration from disk
	Load() error

	// Save saves the configuration to disk
	Save() error

	// GetSection retrieves configuration data for a specific section
	GetSection(sectionID string) (map[string]interface{}, error)

	// SetSection stores configuration data for a specific section
	SetSection(sectionID string, data map[string]interface{}) error

	// GetAll retrieves all configuration data
	GetAll() (map[string]map[string]interface{}, error)

	// SetAll stores all configuration data
	SetAll(data map[string]map[string]interface{}) error
}

// FileStore implements Store using a YAML file.
type FileStore struct {
	path string
	data map[string]map[string]interface{}
	mu   sync.RWMutex
}

// NewFileStore creates a new file-based configuration store.
// If path is empty, defaults to ~/.sitecheck/config.yaml
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".sitecheck", "config.yaml")
	}

	store := &FileStore{
		path: path,
		data: make(map[string]map[string]interface{}),
	}

	// Try to load existing config, but don't fail if it doesn't exist
	if err := store.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	return store, nil
}

// Path returns the file path backing this store.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the configuration file from disk.
func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	data := make(map[string]map[string]interface{})
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	s.data = data
	return nil
}

// Save writes the configuration file to disk, creating the parent
// directory if needed.
func (s *FileStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := yaml.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetSection retrieves configuration data for a specific section.
// Returns an empty map if the section does not exist.
func (s *FileStore) GetSection(sectionID string) (map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if data, exists := s.data[sectionID]; exists {
		out := make(map[string]interface{}, len(data))
		for k, v := range data {
			out[k] = v
		}
		return out, nil
	}
	return make(map[string]interface{}), nil
}

// SetSection stores configuration data for a specific section.
func (s *FileStore) SetSection(sectionID string, data map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[sectionID] = data
	return nil
}

// GetAll retrieves all configuration data.
func (s *FileStore) GetAll() (map[string]map[string]interface{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]map[string]interface{}, len(s.data))
	for id, section := range s.data {
		sectionCopy := make(map[string]interface{}, len(section))
		for k, v := range section {
			sectionCopy[k] = v
		}
		out[id] = sectionCopy
	}
	return out, nil
}

// SetAll stores all configuration data.
func (s *FileStore) SetAll(data map[string]map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
	return nil
}
