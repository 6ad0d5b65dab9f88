package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-foodie-storefront/backend"
	"go-foodie-storefront/models"
	"go-foodie-storefront/storage"
)

func newCredStore(t *testing.T) *storage.CredentialStore {
	t.Helper()
	creds, err := storage.Open(t.TempDir() + "/state.db")
	require.NoError(t, err)
	t.Cleanup(func() { creds.Close() })
	return creds
}

func newAuth(t *testing.T, creds *storage.CredentialStore, sid string, handler http.Handler) *Auth {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	auth := NewAuth(creds, sid)
	api := backend.New(srv.URL, auth)
	api.OnUnauthorized(auth.Invalidate)
	auth.Bind(api)
	auth.Rehydrate()
	return auth
}

func loginHandler(token string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"` + token + `","user":{"_id":"u1","name":"Asha","email":"asha@example.com","role":"user"}}`))
	})
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestLoginPersistsCredential(t *testing.T) {
	creds := newCredStore(t)
	auth := newAuth(t, creds, "sid-1", loginHandler("tok-1"))

	err := auth.Login(context.Background(), models.LoginForm{Email: "asha@example.com", Password: "pw"})
	require.NoError(t, err)

	assert.True(t, auth.Authenticated())
	assert.Equal(t, "tok-1", auth.Token())
	assert.Equal(t, "Asha", auth.Profile().Name)

	// Both durable entries must exist together.
	token, profile, err := creds.Load("sid-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	require.NotNil(t, profile)
	assert.Equal(t, "asha@example.com", profile.Email)
}

func TestFailedLoginKeepsExistingCredential(t *testing.T) {
	creds := newCredStore(t)
	require.NoError(t, creds.Save("sid-1", "old-token", &models.Profile{ID: "u1", Name: "Asha"}))

	auth := newAuth(t, creds, "sid-1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}))

	err := auth.Login(context.Background(), models.LoginForm{Email: "asha@example.com", Password: "bad"})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", auth.Err())

	// The rehydrated credential survives the rejected attempt.
	assert.Equal(t, "old-token", auth.Token())
	token, _, err := creds.Load("sid-1")
	require.NoError(t, err)
	assert.Equal(t, "old-token", token)
}

func TestLogoutClearsEverythingAndIsIdempotent(t *testing.T) {
	creds := newCredStore(t)
	auth := newAuth(t, creds, "sid-1", loginHandler("tok-1"))
	require.NoError(t, auth.Login(context.Background(), models.LoginForm{Email: "a@b.c", Password: "pw"}))

	auth.Logout()
	auth.Logout()

	assert.False(t, auth.Authenticated())
	assert.Empty(t, auth.Token())
	assert.Nil(t, auth.Profile())

	token, profile, err := creds.Load("sid-1")
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, profile)
}

func TestUnauthorizedResponseInvalidatesCredential(t *testing.T) {
	creds := newCredStore(t)
	require.NoError(t, creds.Save("sid-1", "revoked-token", &models.Profile{ID: "u1", Name: "Asha"}))

	auth := newAuth(t, creds, "sid-1", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	}))
	require.Equal(t, "revoked-token", auth.Token())

	err := auth.RefreshProfile(context.Background())
	require.Error(t, err)

	assert.False(t, auth.Authenticated())
	token, _, err := creds.Load("sid-1")
	require.NoError(t, err)
	assert.Empty(t, token, "the 401 hook clears both durable entries")
}

func TestRehydrateRestoresCredentialAcrossInstances(t *testing.T) {
	creds := newCredStore(t)
	first := newAuth(t, creds, "sid-1", loginHandler("tok-1"))
	require.NoError(t, first.Login(context.Background(), models.LoginForm{Email: "a@b.c", Password: "pw"}))

	second := newAuth(t, creds, "sid-1", loginHandler("unused"))
	assert.True(t, second.Authenticated())
	assert.Equal(t, "tok-1", second.Token())
	assert.Equal(t, "Asha", second.Profile().Name)
}

func TestRehydrateDiscardsExpiredToken(t *testing.T) {
	creds := newCredStore(t)
	expired := signedToken(t, time.Now().Add(-time.Hour))
	require.NoError(t, creds.Save("sid-1", expired, &models.Profile{ID: "u1", Name: "Asha"}))

	auth := newAuth(t, creds, "sid-1", loginHandler("unused"))

	assert.False(t, auth.Authenticated())
	token, _, err := creds.Load("sid-1")
	require.NoError(t, err)
	assert.Empty(t, token, "an expired cached token is dropped, not kept until the first 401")
}

func TestRehydrateKeepsUnexpiredToken(t *testing.T) {
	creds := newCredStore(t)
	live := signedToken(t, time.Now().Add(time.Hour))
	require.NoError(t, creds.Save("sid-1", live, &models.Profile{ID: "u1", Name: "Asha"}))

	auth := newAuth(t, creds, "sid-1", loginHandler("unused"))
	assert.True(t, auth.Authenticated())
	assert.Equal(t, live, auth.Token())
}
