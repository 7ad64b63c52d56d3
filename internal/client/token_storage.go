package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// tokenKey is the fixed key the bearer token is persisted under. Presence of
// a value under this key is the sole signal for "is a session active".
const tokenKey = "access_token"

// TokenStorage holds the bearer token between calls.
type TokenStorage interface {
	Token() (string, bool)
	Save(token string) error
	Clear() error
}

// MemoryStorage keeps the token in memory, for tests and short-lived tools.
type MemoryStorage struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStorage creates an empty in-memory token store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

// FileStorage persists the token as JSON in a file, so a session survives
// process restarts.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage creates a file-backed token store at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var stored map[string]string
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", false
	}
	token := stored[tokenKey]
	return token, token != ""
}

func (s *FileStorage) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(map[string]string{tokenKey: token})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
