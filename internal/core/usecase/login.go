package usecase

import (
	"context"
	"fmt"
	"net/url"
	"restate-gateway/internal/contextkeys"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port"
)

type LoginUseCase struct {
	account  port.AccountPort
	redirect port.RedirectURIPort
	browser  port.AuthBrowserPort
	provider domain.OAuthProvider
}

func NewLoginUseCase(account port.AccountPort, redirect port.RedirectURIPort, browser port.AuthBrowserPort) *LoginUseCase {
	return &LoginUseCase{
		account:  account,
		redirect: redirect,
		browser:  browser,
		provider: domain.OAuthProviderGoogle,
	}
}

// Execute проводит OAuth-авторизацию через внешний браузер и создает сессию.
// Любая ошибка логируется и превращается в false.
func (uc *LoginUseCase) Execute(ctx context.Context) bool {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "Login",
		"provider": string(uc.provider),
	})
	ucLogger.Info("Use case started: attempting OAuth login", nil)

	userID, err := uc.login(ctx)
	if err != nil {
		ucLogger.Error("Login failed", err, nil)
		return false
	}

	ucLogger.Info("Use case finished: session created", port.Fields{"user_id": userID})
	return true
}

func (uc *LoginUseCase) login(ctx context.Context) (string, error) {
	redirectURI := uc.redirect.CreateURL("/")

	authURL, err := uc.account.CreateOAuth2Token(ctx, uc.provider, redirectURI)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrOAuthTokenFailed, err)
	}
	if authURL == "" {
		return "", domain.ErrOAuthTokenFailed
	}

	result, err := uc.browser.OpenAuthSession(ctx, authURL, redirectURI)
	if err != nil {
		return "", fmt.Errorf("auth session failed: %w", err)
	}
	if result.Type != domain.BrowserResultSuccess {
		return "", fmt.Errorf("%w: result type %q", domain.ErrAuthFlowNotCompleted, result.Type)
	}

	userID, secret, err := parseCallback(result.URL)
	if err != nil {
		return "", err
	}

	session, err := uc.account.CreateSession(ctx, userID, secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrSessionNotCreated, err)
	}
	if session == nil {
		return "", domain.ErrSessionNotCreated
	}

	return userID, nil
}

// parseCallback достает userId и secret из URL, на который вернулся браузер.
func parseCallback(callbackURL string) (userID, secret string, err error) {
	u, err := url.Parse(callbackURL)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", domain.ErrMissingCallbackParams, err)
	}

	params := u.Query()
	secret = params.Get("secret")
	userID = params.Get("userId")
	if secret == "" || userID == "" {
		return "", "", domain.ErrMissingCallbackParams
	}
	return userID, secret, nil
}
