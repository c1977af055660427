package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
	"time"
)

// Account реализует port.AccountPort поверх REST API /account.
type Account struct {
	client *Client
}

func NewAccount(client *Client) *Account {
	return &Account{client: client}
}

var _ port.AccountPort = (*Account)(nil)

// CreateOAuth2Token строит URL начала OAuth-авторизации. Запрос по нему
// выполняет браузер, а не этот клиент.
func (a *Account) CreateOAuth2Token(_ context.Context, provider domain.OAuthProvider, successURL string) (string, error) {
	if provider == "" {
		return "", fmt.Errorf("oauth provider is required")
	}

	params := url.Values{}
	params.Set("project", a.client.projectID)
	if successURL != "" {
		params.Set("success", successURL)
	}

	return a.client.buildURL("/account/tokens/oauth2/"+url.PathEscape(string(provider)), params), nil
}

// CreateSession обменивает userId/secret на сессию и сохраняет ее секрет.
func (a *Account) CreateSession(ctx context.Context, userID, secret string) (*domain.Session, error) {
	const op = "create session"
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "AppwriteAccount",
		"method":    "CreateSession",
		"user_id":   userID,
	})

	resp, err := a.client.doRequest(ctx, op, http.MethodPost, "/account/sessions/token", nil,
		createSessionRequest{UserID: userID, Secret: secret})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var dto sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, &domain.BackendError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	cookie := resp.Header.Get(headerFallbackCookie)
	if cookie == "" && dto.Secret != "" {
		cookie = a.client.sessionCookie(dto.Secret)
	}
	if cookie == "" {
		return nil, &domain.BackendError{Op: op, Err: fmt.Errorf("response carries no session secret")}
	}
	if err := a.client.sessions.Save(cookie); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	logger.Debug("Session created", port.Fields{"session_id": dto.ID})
	return toDomainSession(dto), nil
}

// DeleteSession удаляет сессию на бэкенде; для текущей сессии также
// очищает локально сохраненный секрет.
func (a *Account) DeleteSession(ctx context.Context, sessionID string) error {
	resp, err := a.client.doRequest(ctx, "delete session", http.MethodDelete, "/account/sessions/"+url.PathEscape(sessionID), nil, nil)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if sessionID == domain.CurrentSession {
		if err := a.client.sessions.Clear(); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}
	return nil
}

func (a *Account) Get(ctx context.Context) (*domain.Account, error) {
	var account domain.Account
	if err := a.client.getJSON(ctx, "get account", "/account", nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// sessionCookie собирает значение X-Fallback-Cookies из секрета сессии.
func (c *Client) sessionCookie(secret string) string {
	raw, _ := json.Marshal(map[string]string{"a_session_" + c.projectID: secret})
	return string(raw)
}

func toDomainSession(dto sessionResponse) *domain.Session {
	session := &domain.Session{
		ID:       dto.ID,
		UserID:   dto.UserID,
		Provider: dto.Provider,
		Current:  dto.Current,
	}
	if expire, err := time.Parse(time.RFC3339, dto.Expire); err == nil {
		session.Expire = expire
	}
	return session
}
