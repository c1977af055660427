package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func newKeyringWithFile(t *testing.T) (*KeyringStore, *FileStore) {
	t.Helper()
	file, err := NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	store, err := NewKeyringStore("restate-gateway", "p1", file)
	require.NoError(t, err)
	return store, file
}

func TestKeyringStore_UsesKeyring(t *testing.T) {
	keyring.MockInit()
	store, file := newKeyringWithFile(t)

	require.NoError(t, store.Save(`{"a_session_p1":"abc"}`))

	inKeyring, err := keyring.Get("restate-gateway", "p1")
	require.NoError(t, err)
	assert.Equal(t, `{"a_session_p1":"abc"}`, inKeyring)

	onDisk, err := file.Load()
	require.NoError(t, err)
	assert.Empty(t, onDisk, "secret must not be written in plain text when keyring works")

	secret, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"a_session_p1":"abc"}`, secret)

	require.NoError(t, store.Clear())
	_, err = keyring.Get("restate-gateway", "p1")
	assert.ErrorIs(t, err, keyring.ErrNotFound)
}

func TestKeyringStore_MovesPlainTextSecretIntoKeyring(t *testing.T) {
	keyring.MockInit()
	store, file := newKeyringWithFile(t)
	require.NoError(t, file.Save("old-secret"))

	// Старый секрет из файла виден, пока в keyring ничего нет
	secret, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "old-secret", secret)

	require.NoError(t, store.Save("new-secret"))
	onDisk, _ := file.Load()
	assert.Empty(t, onDisk)
}

func TestKeyringStore_FallsBackToFile(t *testing.T) {
	keyring.MockInitWithError(errors.New("secret service unavailable"))
	store, file := newKeyringWithFile(t)

	require.NoError(t, store.Save("secret-1"))

	onDisk, err := file.Load()
	require.NoError(t, err)
	assert.Equal(t, "secret-1", onDisk)

	secret, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "secret-1", secret)

	require.NoError(t, store.Clear())
	onDisk, _ = file.Load()
	assert.Empty(t, onDisk)
}

func TestKeyringStore_NoFallback(t *testing.T) {
	keyring.MockInitWithError(errors.New("secret service unavailable"))
	store, err := NewKeyringStore("restate-gateway", "p1", nil)
	require.NoError(t, err)

	assert.Error(t, store.Save("secret"))
	_, err = store.Load()
	assert.Error(t, err)
}

func TestNewKeyringStore_RequiresNames(t *testing.T) {
	_, err := NewKeyringStore("", "p1", nil)
	assert.Error(t, err)
}
