// Package credentials reads and writes the local YAML credential file that
// lets the user skip interactive login on subsequent sessions.
//
// Absence of the file is a normal state, reported as ErrNotFound rather than
// a failure, and callers fall back to prompting.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNotFound means no usable credential file exists.
	ErrNotFound = errors.New("credentials file not found")

	// ErrAlreadyPopulated means the file exists and overwrite was not requested.
	ErrAlreadyPopulated = errors.New("credentials file already populated")
)

// Credentials is the locally cached login material. First and last name are
// only present when the file was written by the init flow.
type Credentials struct {
	Email     string `yaml:"email"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name,omitempty"`
	LastName  string `yaml:"last_name,omitempty"`
}

// Store reads and writes a single credential record at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the credential file.
func (s *Store) Path() string { return s.path }

// Load returns the persisted record. A missing or unparseable file yields
// ErrNotFound so the caller can prompt interactively.
func (s *Store) Load() (*Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var c Credentials
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, ErrNotFound
	}
	if c.Email == "" && c.Username == "" {
		return nil, ErrNotFound
	}
	return &c, nil
}

// Save writes the record. An existing file is left untouched and
// ErrAlreadyPopulated returned unless overwrite is set. The containing
// directory is created if needed.
func (s *Store) Save(c *Credentials, overwrite bool) error {
	if _, err := os.Stat(s.path); err == nil && !overwrite {
		return ErrAlreadyPopulated
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create profiles dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}
	return nil
}
