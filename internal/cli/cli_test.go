package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"restate-gateway/internal"
	"restate-gateway/internal/core/domain"
	"restate-gateway/internal/core/port/usecases_port"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	authenticated bool
	loginOK       bool
	lastSpec      domain.QuerySpec
}

func (g *fakeGateway) Login(context.Context) bool           { return g.loginOK }
func (g *fakeGateway) Logout(context.Context) bool          { return true }
func (g *fakeGateway) CheckAuthStatus(context.Context) bool { return g.authenticated }
func (g *fakeGateway) GetCurrentUser(context.Context) *domain.UserProfile {
	if !g.authenticated {
		return nil
	}
	return &domain.UserProfile{Account: domain.Account{ID: "u1", Name: "Jane Doe"}, Avatar: "https://avatar"}
}
func (g *fakeGateway) GetLatestProperties(context.Context) []domain.Property {
	return domain.MockProperties()[:2]
}
func (g *fakeGateway) GetProperties(_ context.Context, spec domain.QuerySpec) []domain.Property {
	g.lastSpec = spec
	return nil
}
func (g *fakeGateway) GetPropertyByID(_ context.Context, id string) *domain.Property {
	if id != "1" {
		return nil
	}
	p := domain.MockProperties()[0]
	return &p
}

type fakeRuntime struct {
	gateway *fakeGateway
	mode    internal.SessionMode
	served  bool
	closed  bool
}

func (r *fakeRuntime) Gateway() usecases_port.PropertyDataGateway   { return r.gateway }
func (r *fakeRuntime) Context(ctx context.Context) context.Context { return ctx }
func (r *fakeRuntime) Serve(context.Context) error                 { r.served = true; return nil }
func (r *fakeRuntime) Close() error                                { r.closed = true; return nil }

func run(t *testing.T, rt *fakeRuntime, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(func(envPath string, mode internal.SessionMode) (Runtime, error) {
		rt.mode = mode
		return rt, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPropertiesLatest(t *testing.T) {
	rt := &fakeRuntime{gateway: &fakeGateway{}}
	out, err := run(t, rt, "properties", "latest")
	require.NoError(t, err)
	assert.True(t, rt.closed)

	var props []domain.Property
	require.NoError(t, json.Unmarshal([]byte(out), &props))
	require.Len(t, props, 2)
	assert.Equal(t, "Luxury Villa", props[0].Name)
}

func TestPropertiesList_Flags(t *testing.T) {
	gw := &fakeGateway{}
	out, err := run(t, &fakeRuntime{gateway: gw}, "properties", "list", "--filter", "Villa", "--query", "ocean", "--limit", "2")
	require.NoError(t, err)

	assert.Equal(t, domain.QuerySpec{Filter: "Villa", Query: "ocean", Limit: 2}, gw.lastSpec)
	assert.JSONEq(t, `[]`, out)
}

func TestPropertiesList_NormalizesFilter(t *testing.T) {
	gw := &fakeGateway{}
	_, err := run(t, &fakeRuntime{gateway: gw}, "properties", "list", "--filter", "villa")
	require.NoError(t, err)
	assert.Equal(t, "Villa", gw.lastSpec.Filter)

	_, err = run(t, &fakeRuntime{gateway: gw}, "properties", "list", "--filter", "all")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, gw.lastSpec.Filter)
}

func TestPropertiesList_DefaultsToAll(t *testing.T) {
	gw := &fakeGateway{}
	_, err := run(t, &fakeRuntime{gateway: gw}, "properties", "list")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, gw.lastSpec.Filter)
	assert.Zero(t, gw.lastSpec.Limit)
}

func TestPropertiesList_NegativeLimit(t *testing.T) {
	_, err := run(t, &fakeRuntime{gateway: &fakeGateway{}}, "properties", "list", "--limit", "-1")
	assert.Error(t, err)
}

func TestPropertiesGet(t *testing.T) {
	out, err := run(t, &fakeRuntime{gateway: &fakeGateway{}}, "properties", "get", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"Luxury Villa"`)

	_, err = run(t, &fakeRuntime{gateway: &fakeGateway{}}, "properties", "get", "42")
	assert.Error(t, err)
}

func TestAuthCommands(t *testing.T) {
	out, err := run(t, &fakeRuntime{gateway: &fakeGateway{}}, "status")
	require.NoError(t, err)
	assert.JSONEq(t, `{"authenticated":false}`, out)

	_, err = run(t, &fakeRuntime{gateway: &fakeGateway{}}, "whoami")
	assert.ErrorIs(t, err, errNotLoggedIn)

	out, err = run(t, &fakeRuntime{gateway: &fakeGateway{authenticated: true}}, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, `"avatar": "https://avatar"`)

	_, err = run(t, &fakeRuntime{gateway: &fakeGateway{loginOK: false}}, "login")
	assert.ErrorIs(t, err, errLoginFailed)

	rt := &fakeRuntime{gateway: &fakeGateway{loginOK: true}}
	_, err = run(t, rt, "login")
	require.NoError(t, err)
	assert.Equal(t, internal.SessionFile, rt.mode)

	_, err = run(t, &fakeRuntime{gateway: &fakeGateway{}}, "logout")
	assert.NoError(t, err)
}

func TestServe_UsesMemorySessions(t *testing.T) {
	rt := &fakeRuntime{gateway: &fakeGateway{}}
	_, err := run(t, rt, "serve")
	require.NoError(t, err)
	assert.True(t, rt.served)
	assert.Equal(t, internal.SessionMemory, rt.mode)
}

func TestFactoryError(t *testing.T) {
	root := NewRootCmd(func(string, internal.SessionMode) (Runtime, error) {
		return nil, errors.New("config broken")
	})
	root.SetArgs([]string{"status"})
	root.SetOut(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	assert.EqualError(t, err, "config broken")
}
