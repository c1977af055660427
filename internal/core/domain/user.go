package domain

import "time"

// Account - учетная запись текущего пользователя в том виде, в каком ее отдает бэкенд.
type Account struct {
	ID                string                 `json:"$id"`
	CreatedAt         time.Time              `json:"$createdAt"`
	UpdatedAt         time.Time              `json:"$updatedAt"`
	Name              string                 `json:"name"`
	Email             string                 `json:"email"`
	Phone             string                 `json:"phone"`
	Status            bool                   `json:"status"`
	Registration      time.Time              `json:"registration"`
	EmailVerification bool                   `json:"emailVerification"`
	PhoneVerification bool                   `json:"phoneVerification"`
	Labels            []string               `json:"labels"`
	Prefs             map[string]interface{} `json:"prefs"`
}

// UserProfile - учетная запись, обогащенная сгенерированным аватаром.
// Не кэшируется: собирается заново при каждом запросе.
type UserProfile struct {
	Account
	Avatar string `json:"avatar"`
}

// Session - активная сессия пользователя.
type Session struct {
	ID       string    `json:"$id"`
	UserID   string    `json:"userId"`
	Provider string    `json:"provider"`
	Expire   time.Time `json:"expire"`
	Current  bool      `json:"current"`
}

// CurrentSession - идентификатор, которым бэкенд обозначает сессию текущего клиента.
const CurrentSession = "current"

// OAuthProvider - провайдер внешней авторизации.
type OAuthProvider string

const OAuthProviderGoogle OAuthProvider = "google"

// BrowserResultType - исход внешней браузерной сессии авторизации.
type BrowserResultType string

const (
	BrowserResultSuccess BrowserResultType = "success"
	BrowserResultCancel  BrowserResultType = "cancel"
	BrowserResultDismiss BrowserResultType = "dismiss"
	BrowserResultLocked  BrowserResultType = "locked"
)

// BrowserResult is what the external browser session hands back. URL is only
// set for a successful flow and carries the callback query parameters.
type BrowserResult struct {
	Type BrowserResultType
	URL  string
}
