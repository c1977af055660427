package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrIncompleteConfig      = errors.New("appwrite configuration is incomplete")
	ErrOAuthTokenFailed      = errors.New("create OAuth2 token failed")
	ErrAuthFlowNotCompleted  = errors.New("auth session was not completed")
	ErrMissingCallbackParams = errors.New("callback url is missing secret or userId")
	ErrSessionNotCreated     = errors.New("failed to create session")
	ErrInvalidDocument       = errors.New("document does not match property schema")
)

// BackendError - ошибка, полученная от бэкенда или при обращении к нему.
// StatusCode == 0 означает, что ответ не был получен (сеть, таймаут).
type BackendError struct {
	Op         string
	StatusCode int
	Type       string
	Message    string
	Err        error
}

func (e *BackendError) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status %d", e.StatusCode)
	}
	if e.Type != "" {
		fmt.Fprintf(&b, " (%s)", e.Type)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// IsUnauthenticated reports whether err means "no user is logged in":
// HTTP 401 or a backend message about missing scopes.
func IsUnauthenticated(err error) bool {
	if err == nil {
		return false
	}
	var backendErr *BackendError
	if errors.As(err, &backendErr) && backendErr.StatusCode == http.StatusUnauthorized {
		return true
	}
	return strings.Contains(err.Error(), "missing scopes")
}
