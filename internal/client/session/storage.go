package session

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// TokenStorage persists the auth token between program runs.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStorage keeps the token in a plain file readable only by the owner.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Load returns the persisted token. A missing file is not an error:
// it simply means no session was saved.
func (s *FileStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStorage) Save(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// MemoryStorage is an in-memory TokenStorage for tests.
type MemoryStorage struct {
	token string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (string, error) {
	return s.token, nil
}

func (s *MemoryStorage) Save(token string) error {
	s.token = token
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.token = ""
	return nil
}
