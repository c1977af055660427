package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"restate-gateway/internal/core/port"
	"sync"
	"time"
)

// FileStore хранит секрет сессии в JSON-файле (права 0600). Сам по себе
// используется только при SESSION_KEYRING=false, иначе служит запасным
// хранилищем для KeyringStore.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileRecord struct {
	Secret  string    `json:"secret"`
	SavedAt time.Time `json:"savedAt"`
}

func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path cannot be empty")
	}
	return &FileStore{path: path}, nil
}

var _ port.SessionStore = (*FileStore)(nil)

// Load возвращает пустую строку, если файла еще нет.
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}

	var rec fileRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return "", fmt.Errorf("failed to decode session file %s: %w", s.path, err)
	}
	return rec.Secret, nil
}

func (s *FileStore) Save(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if secret == "" {
		return s.remove()
	}

	raw, err := json.Marshal(fileRecord{Secret: secret, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}

	// Пишем во временный файл и переименовываем, чтобы не оставить битый файл.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove()
}

func (s *FileStore) remove() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
