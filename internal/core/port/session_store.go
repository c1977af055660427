package port

// SessionStore хранит секрет сессии между запросами к бэкенду.
type SessionStore interface {
	Load() (string, error)
	Save(secret string) error
	Clear() error
}
