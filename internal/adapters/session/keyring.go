package session

import (
	"errors"
	"fmt"
	"restate-gateway/internal/core/port"
	"sync"

	"github.com/zalando/go-keyring"
)

// KeyringStore хранит секрет сессии в системном хранилище ключей
// (Keychain, Secret Service, Credential Manager). Если хранилище недоступно,
// например на сервере без D-Bus, секрет уходит в fallback.
type KeyringStore struct {
	mu       sync.Mutex
	service  string
	user     string
	fallback port.SessionStore
}

// NewKeyringStore: service - имя приложения, user - проект бэкенда, чтобы
// сессии разных проектов не перетирали друг друга. fallback может быть nil.
func NewKeyringStore(service, user string, fallback port.SessionStore) (*KeyringStore, error) {
	if service == "" || user == "" {
		return nil, fmt.Errorf("keyring service and user are required")
	}
	return &KeyringStore{service: service, user: user, fallback: fallback}, nil
}

var _ port.SessionStore = (*KeyringStore)(nil)

// Load читает секрет из keyring; если там пусто или keyring недоступен,
// пробует fallback (туда мог попасть секрет, сохраненный без keyring).
func (s *KeyringStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	secret, err := keyring.Get(s.service, s.user)
	if err == nil {
		return secret, nil
	}
	if s.fallback != nil {
		return s.fallback.Load()
	}
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return "", fmt.Errorf("failed to read session from keyring: %w", err)
}

func (s *KeyringStore) Save(secret string) error {
	if secret == "" {
		return s.Clear()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := keyring.Set(s.service, s.user, secret); err != nil {
		if s.fallback == nil {
			return fmt.Errorf("failed to write session to keyring: %w", err)
		}
		return s.fallback.Save(secret)
	}

	// Секрет уже в keyring, открытая копия больше не нужна
	if s.fallback != nil {
		return s.fallback.Clear()
	}
	return nil
}

func (s *KeyringStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	if err := keyring.Delete(s.service, s.user); err != nil && !errors.Is(err, keyring.ErrNotFound) && s.fallback == nil {
		errs = append(errs, fmt.Errorf("failed to delete session from keyring: %w", err))
	}
	if s.fallback != nil {
		if err := s.fallback.Clear(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
