package port

import (
	"context"
	"restate-gateway/internal/core/domain"
)

// AccountPort - контракт для работы с учетной записью и сессиями на стороне бэкенда.
type AccountPort interface {
	// CreateOAuth2Token возвращает URL, который нужно открыть в браузере,
	// чтобы пройти авторизацию у провайдера. После успеха провайдер
	// перенаправляет на successURL с параметрами secret и userId.
	CreateOAuth2Token(ctx context.Context, provider domain.OAuthProvider, successURL string) (string, error)
	// CreateSession обменивает пару userId/secret на сессию.
	CreateSession(ctx context.Context, userID, secret string) (*domain.Session, error)
	// DeleteSession удаляет сессию; domain.CurrentSession - текущую.
	DeleteSession(ctx context.Context, sessionID string) error
	// Get возвращает учетную запись текущей сессии.
	Get(ctx context.Context) (*domain.Account, error)
}
