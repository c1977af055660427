package usecase

import (
	"context"
	"errors"
	"restate-gateway/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginFixture() (*fakeAccount, *fakeBrowser, *LoginUseCase) {
	account := &fakeAccount{
		tokenURL: "https://backend.test/v1/account/tokens/oauth2/google?project=p",
		session:  &domain.Session{ID: "s1", UserID: "u1"},
	}
	browser := &fakeBrowser{result: domain.BrowserResult{
		Type: domain.BrowserResultSuccess,
		URL:  "http://127.0.0.1:8787/?secret=top&userId=u1",
	}}
	uc := NewLoginUseCase(account, fakeRedirect{base: "http://127.0.0.1:8787"}, browser)
	return account, browser, uc
}

func TestLogin_Success(t *testing.T) {
	account, browser, uc := newLoginFixture()

	require.True(t, uc.Execute(context.Background()))
	assert.Equal(t, []string{"http://127.0.0.1:8787/"}, account.tokenRedirects)
	assert.Equal(t, []string{account.tokenURL}, browser.openedURLs)
	assert.Equal(t, [][2]string{{"u1", "top"}}, account.createSessionArgs)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *fakeAccount, b *fakeBrowser)
	}{
		{"token error", func(a *fakeAccount, _ *fakeBrowser) { a.tokenErr = errors.New("boom") }},
		{"empty token url", func(a *fakeAccount, _ *fakeBrowser) { a.tokenURL = "" }},
		{"browser error", func(_ *fakeAccount, b *fakeBrowser) { b.err = errors.New("no browser") }},
		{"user cancelled", func(_ *fakeAccount, b *fakeBrowser) { b.result = domain.BrowserResult{Type: domain.BrowserResultCancel} }},
		{"dismissed", func(_ *fakeAccount, b *fakeBrowser) { b.result = domain.BrowserResult{Type: domain.BrowserResultDismiss} }},
		{"missing secret", func(_ *fakeAccount, b *fakeBrowser) { b.result.URL = "http://127.0.0.1:8787/?userId=u1" }},
		{"missing userId", func(_ *fakeAccount, b *fakeBrowser) { b.result.URL = "http://127.0.0.1:8787/?secret=top" }},
		{"session error", func(a *fakeAccount, _ *fakeBrowser) { a.sessionErr = unauthorizedErr() }},
		{"nil session", func(a *fakeAccount, _ *fakeBrowser) { a.session = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, browser, uc := newLoginFixture()
			tt.mutate(account, browser)

			assert.NotPanics(t, func() {
				assert.False(t, uc.Execute(context.Background()))
			})
		})
	}
}

func TestParseCallback(t *testing.T) {
	userID, secret, err := parseCallback("myapp://callback?secret=s&userId=u")
	require.NoError(t, err)
	assert.Equal(t, "u", userID)
	assert.Equal(t, "s", secret)

	_, _, err = parseCallback("myapp://callback?secret=s")
	assert.ErrorIs(t, err, domain.ErrMissingCallbackParams)

	_, _, err = parseCallback("://bad url")
	assert.ErrorIs(t, err, domain.ErrMissingCallbackParams)
}

func TestLogout(t *testing.T) {
	account := &fakeAccount{}
	assert.True(t, NewLogoutUseCase(account).Execute(context.Background()))
	assert.Equal(t, []string{"current"}, account.deletedSessions)

	account.deleteErr = unauthorizedErr()
	assert.False(t, NewLogoutUseCase(account).Execute(context.Background()))
}

func TestCheckAuthStatus(t *testing.T) {
	t.Run("active session", func(t *testing.T) {
		account := &fakeAccount{account: &domain.Account{ID: "u1"}}
		uc := NewCheckAuthStatusUseCase(account)

		first := uc.Execute(context.Background())
		second := uc.Execute(context.Background())
		assert.True(t, first)
		assert.Equal(t, first, second)
		assert.Equal(t, 2, account.getCalls)
	})

	t.Run("no session", func(t *testing.T) {
		uc := NewCheckAuthStatusUseCase(&fakeAccount{accountErr: unauthorizedErr()})

		first := uc.Execute(context.Background())
		second := uc.Execute(context.Background())
		assert.False(t, first)
		assert.Equal(t, first, second)
	})
}

func TestGetCurrentUser(t *testing.T) {
	t.Run("profile with avatar", func(t *testing.T) {
		account := &fakeAccount{account: &domain.Account{ID: "u1", Name: "Jane Doe", Email: "jane@example.com"}}
		avatars := &fakeAvatars{}

		profile := NewGetCurrentUserUseCase(account, avatars).Execute(context.Background())

		require.NotNil(t, profile)
		assert.Equal(t, "u1", profile.ID)
		assert.Equal(t, "jane@example.com", profile.Email)
		assert.Equal(t, "https://backend.test/v1/avatars/initials?name=Jane Doe", profile.Avatar)
		assert.Equal(t, []string{"Jane Doe"}, avatars.names)
	})

	t.Run("not recomputed from cache", func(t *testing.T) {
		account := &fakeAccount{account: &domain.Account{ID: "u1", Name: "A"}}
		uc := NewGetCurrentUserUseCase(account, &fakeAvatars{})
		uc.Execute(context.Background())
		uc.Execute(context.Background())
		assert.Equal(t, 2, account.getCalls)
	})

	t.Run("401 gives nil", func(t *testing.T) {
		uc := NewGetCurrentUserUseCase(&fakeAccount{accountErr: unauthorizedErr()}, &fakeAvatars{})
		assert.Nil(t, uc.Execute(context.Background()))
	})

	t.Run("missing scopes message gives nil", func(t *testing.T) {
		uc := NewGetCurrentUserUseCase(&fakeAccount{accountErr: errors.New("User (role: guests) missing scopes ([account])")}, &fakeAvatars{})
		assert.Nil(t, uc.Execute(context.Background()))
	})

	t.Run("other error gives nil", func(t *testing.T) {
		uc := NewGetCurrentUserUseCase(&fakeAccount{accountErr: errBackendDown}, &fakeAvatars{})
		assert.Nil(t, uc.Execute(context.Background()))
	})

	t.Run("empty id gives nil", func(t *testing.T) {
		avatars := &fakeAvatars{}
		uc := NewGetCurrentUserUseCase(&fakeAccount{account: &domain.Account{Name: "Ghost"}}, avatars)
		assert.Nil(t, uc.Execute(context.Background()))
		assert.Empty(t, avatars.names)
	})

	t.Run("avatar error gives nil", func(t *testing.T) {
		uc := NewGetCurrentUserUseCase(&fakeAccount{account: &domain.Account{ID: "u1"}}, &fakeAvatars{err: errors.New("boom")})
		assert.Nil(t, uc.Execute(context.Background()))
	})
}

func TestPropertyDataGateway_BackendUnreachable(t *testing.T) {
	gateway := NewPropertyDataGateway(Backend{
		Account:   &fakeAccount{accountErr: errBackendDown, tokenErr: errBackendDown, deleteErr: errBackendDown},
		Documents: &fakeDocuments{err: errBackendDown},
		Avatars:   &fakeAvatars{},
		Redirect:  fakeRedirect{base: "http://127.0.0.1:1"},
		Browser:   &fakeBrowser{},
	})
	ctx := context.Background()

	assert.False(t, gateway.Login(ctx))
	assert.False(t, gateway.Logout(ctx))
	assert.False(t, gateway.CheckAuthStatus(ctx))
	assert.Nil(t, gateway.GetCurrentUser(ctx))

	latest := gateway.GetLatestProperties(ctx)
	require.Len(t, latest, 2)
	assert.Equal(t, "Luxury Villa", latest[0].Name)
	assert.Equal(t, "Modern Apartment", latest[1].Name)

	assert.Len(t, gateway.GetProperties(ctx, domain.QuerySpec{Filter: domain.FilterAll}), 4)
	require.NotNil(t, gateway.GetPropertyByID(ctx, "2"))
	assert.Nil(t, gateway.GetPropertyByID(ctx, "9"))
}
