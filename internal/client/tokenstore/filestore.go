// Package tokenstore persists the session token between CLI runs so a user
// stays logged in until the token expires or is cleared.
package tokenstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/recipeasy/internal/common"
)

const (
	defaultDirName  = ".recipeasy"
	defaultFileName = "token"

	dirMode  = 0o700
	fileMode = 0o600
)

// FileStore keeps the token in a single file readable only by the owner.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path. An empty path resolves to
// the default location under the user's home directory.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, defaultDirName, defaultFileName)
	}
	return &FileStore{path: path}, nil
}

// Save writes the token, creating the parent directory if needed.
func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), dirMode); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), fileMode); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

// Load returns the saved token, or common.ErrNotFound when none exists.
func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("reading token: %w", err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", common.ErrNotFound
	}
	return token, nil
}

// Clear removes the saved token. Clearing an absent token is not an error.
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}
