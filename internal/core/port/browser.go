package port

import (
	"context"
	"restate-gateway/internal/core/domain"
)

// RedirectURIPort строит URI, на который провайдер вернет пользователя после авторизации.
type RedirectURIPort interface {
	CreateURL(path string) string
}

// AuthBrowserPort открывает внешнюю браузерную сессию авторизации и ждет
// возврата на redirectURL.
type AuthBrowserPort interface {
	OpenAuthSession(ctx context.Context, authURL, redirectURL string) (domain.BrowserResult, error)
}
