package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ourbigday/bigday/internal/api"
)

func authServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestLoginInstallsAndPersists(t *testing.T) {
	srv := authServer(t, `{"token":"tok-abc","email":"ana@example.com","role":"Admin","displayName":"Ana"}`)
	path := tempPath(t)
	store := NewStoreAt(api.New(srv.URL), path)

	require.NoError(t, store.Login(context.Background(), "ana@example.com", "pw"))

	sess := store.Current()
	require.NotNil(t, sess)
	require.Equal(t, "tok-abc", sess.Token)
	require.Equal(t, RoleAdmin, sess.User.Role)
	require.Equal(t, "Ana", sess.User.DisplayName)
	require.Equal(t, "tok-abc", store.Token())

	// the token never hits the disk in plaintext
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(data), "tok-abc")
}

func TestLoginFallbacks(t *testing.T) {
	srv := authServer(t, `{"token":"tok","email":"","role":"","displayName":""}`)
	store := NewStoreAt(api.New(srv.URL), tempPath(t))

	require.NoError(t, store.Login(context.Background(), "typed@example.com", "pw"))

	sess := store.Current()
	require.Equal(t, "typed@example.com", sess.User.Email)
	require.Equal(t, RoleFamily, sess.User.Role)
	require.Equal(t, "typed@example.com", sess.User.DisplayName)
}

func TestRegisterDisplayNameFallback(t *testing.T) {
	srv := authServer(t, `{"token":"tok","email":"b@example.com","role":"Family","displayName":""}`)
	store := NewStoreAt(api.New(srv.URL), tempPath(t))

	require.NoError(t, store.Register(context.Background(), "b@example.com", "pw", "Bea"))
	require.Equal(t, "Bea", store.Current().User.DisplayName)
}

func TestRejectedLoginLeavesStoreUnchanged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("Invalid credentials"))
	}))
	t.Cleanup(srv.Close)
	path := tempPath(t)
	store := NewStoreAt(api.New(srv.URL), path)

	require.Error(t, store.Login(context.Background(), "a", "b"))
	require.Nil(t, store.Current())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestRestoreRoundTrip(t *testing.T) {
	srv := authServer(t, `{"token":"tok-xyz","email":"c@example.com","role":"Family","displayName":"Cho"}`)
	path := tempPath(t)
	first := NewStoreAt(api.New(srv.URL), path)
	require.NoError(t, first.Login(context.Background(), "c@example.com", "pw"))

	second := NewStoreAt(api.New(srv.URL), path)
	sess := second.Restore()
	require.NotNil(t, sess)
	require.Equal(t, "tok-xyz", sess.Token)
	require.Equal(t, "Cho", sess.User.DisplayName)
	require.Equal(t, RoleFamily, sess.User.Role)
}

func TestRestoreMissingFile(t *testing.T) {
	store := NewStoreAt(api.New("http://localhost:0"), tempPath(t))
	require.Nil(t, store.Restore())
	require.Nil(t, store.Current())
}

func TestRestoreDiscardsMalformedFile(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	store := NewStoreAt(api.New("http://localhost:0"), path)
	require.Nil(t, store.Restore())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestRestoreDiscardsUndecryptableToken(t *testing.T) {
	path := tempPath(t)
	blob := `{"token":"bm90LXNlYWxlZA==","user":{"email":"x@example.com","role":"Admin","displayName":"X"}}`
	require.NoError(t, os.WriteFile(path, []byte(blob), 0o600))

	store := NewStoreAt(api.New("http://localhost:0"), path)
	require.Nil(t, store.Restore())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestLogoutIsIdempotent(t *testing.T) {
	srv := authServer(t, `{"token":"tok","email":"d@example.com","role":"Admin","displayName":"D"}`)
	path := tempPath(t)
	store := NewStoreAt(api.New(srv.URL), path)
	require.NoError(t, store.Login(context.Background(), "d@example.com", "pw"))

	store.Logout()
	require.Nil(t, store.Current())
	require.Empty(t, store.Token())
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// a second logout is a no-op
	store.Logout()
	require.Nil(t, store.Current())
}
