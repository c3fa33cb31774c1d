package banksdk

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken is returned by a TokenStore when no token has been saved.
var ErrNoToken = errors.New("banksdk: no stored token")

// TokenStore persists a bearer token between sessions so a SessionContext
// can restore authentication without asking for credentials again.
type TokenStore interface {
	// Load returns the stored token, or ErrNoToken when none exists.
	Load() (string, error)

	// Save persists the token, replacing any previous one.
	Save(token string) error

	// Clear removes the stored token. Clearing an empty store is not an error.
	Clear() error
}

// FileTokenStore keeps the token in a single file, created with owner-only
// permissions.
type FileTokenStore struct {
	Path string
}

func (s *FileTokenStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", err
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (s *FileTokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryTokenStore keeps the token in memory. Useful for tests and for
// callers that do not want persistence.
type MemoryTokenStore struct {
	token string
}

func (s *MemoryTokenStore) Load() (string, error) {
	if s.token == "" {
		return "", ErrNoToken
	}
	return s.token, nil
}

func (s *MemoryTokenStore) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.token = ""
	return nil
}
