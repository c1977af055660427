package usecase

import (
	"context"
	"errors"
	"net/http"
	"restate-gateway/internal/core/domain"
	"sync"
)

var errBackendDown = &domain.BackendError{Op: "list documents", Err: errors.New("dial tcp: connection refused")}

// fakeAccount реализует port.AccountPort с настраиваемыми ответами и счетчиками вызовов.
type fakeAccount struct {
	mu sync.Mutex

	tokenURL string
	tokenErr error

	session    *domain.Session
	sessionErr error

	deleteErr error

	account    *domain.Account
	accountErr error

	createSessionArgs [][2]string
	deletedSessions   []string
	tokenRedirects    []string
	getCalls          int
}

func (f *fakeAccount) CreateOAuth2Token(_ context.Context, _ domain.OAuthProvider, successURL string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokenRedirects = append(f.tokenRedirects, successURL)
	return f.tokenURL, f.tokenErr
}

func (f *fakeAccount) CreateSession(_ context.Context, userID, secret string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createSessionArgs = append(f.createSessionArgs, [2]string{userID, secret})
	return f.session, f.sessionErr
}

func (f *fakeAccount) DeleteSession(_ context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletedSessions = append(f.deletedSessions, sessionID)
	return f.deleteErr
}

func (f *fakeAccount) Get(context.Context) (*domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.accountErr != nil {
		return nil, f.accountErr
	}
	return f.account, nil
}

type fakeAvatars struct {
	err   error
	names []string
}

func (f *fakeAvatars) GetInitials(_ context.Context, name string) (string, error) {
	f.names = append(f.names, name)
	if f.err != nil {
		return "", f.err
	}
	return "https://backend.test/v1/avatars/initials?name=" + name, nil
}

// fakeDocuments записывает запросы и возвращает заранее заданный результат.
type fakeDocuments struct {
	properties []domain.Property
	property   *domain.Property
	err        error

	listQueries [][]domain.Query
	getIDs      []string
}

func (f *fakeDocuments) ListProperties(_ context.Context, queries []domain.Query) ([]domain.Property, error) {
	f.listQueries = append(f.listQueries, queries)
	if f.err != nil {
		return nil, f.err
	}
	return f.properties, nil
}

func (f *fakeDocuments) GetProperty(_ context.Context, id string) (*domain.Property, error) {
	f.getIDs = append(f.getIDs, id)
	if f.err != nil {
		return nil, f.err
	}
	return f.property, nil
}

type fakeRedirect struct{ base string }

func (f fakeRedirect) CreateURL(path string) string { return f.base + path }

type fakeBrowser struct {
	result domain.BrowserResult
	err    error

	openedURLs []string
}

func (f *fakeBrowser) OpenAuthSession(_ context.Context, authURL, _ string) (domain.BrowserResult, error) {
	f.openedURLs = append(f.openedURLs, authURL)
	return f.result, f.err
}

func unauthorizedErr() error {
	return &domain.BackendError{
		Op:         "get account",
		StatusCode: http.StatusUnauthorized,
		Type:       "general_unauthorized_scope",
		Message:    "User (role: guests) missing scope (account)",
	}
}
