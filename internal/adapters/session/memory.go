package session

import (
	"restate-gateway/internal/core/port"
	"sync"
)

// MemoryStore хранит секрет сессии в памяти процесса. Используется
// HTTP-сервером и тестами.
type MemoryStore struct {
	mu     sync.RWMutex
	secret string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

var _ port.SessionStore = (*MemoryStore)(nil)

func (s *MemoryStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.secret, nil
}

func (s *MemoryStore) Save(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.secret = secret
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Save("")
}
