package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gugan-zemuria/notes-app/internal/client/api"
	"github.com/gugan-zemuria/notes-app/internal/logging"
)

// newAuthBackend serves just enough of the auth surface to test credential
// persistence: signin issues session cookies, /auth/user honors them.
func newAuthBackend(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/api/auth/signin", func(w http.ResponseWriter, req *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: api.AccessTokenCookie, Value: "srv-at", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: api.RefreshTokenCookie, Value: "srv-rt", Path: "/"})
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"id": "u1", "email": "a@b.c"},
		})
	})
	r.Get("/api/auth/user", func(w http.ResponseWriter, req *http.Request) {
		for _, c := range req.Cookies() {
			if c.Name == api.AccessTokenCookie && c.Value == "srv-at" {
				_ = json.NewEncoder(w).Encode(map[string]any{
					"user": map[string]string{"id": "u1", "email": "a@b.c"},
				})
				return
			}
		}
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "no session"})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

// A signin followed by a process restart (fresh transport, same credential
// store) must come back authenticated: the server-issued cookies are
// persisted and rehydrated into the new jar.
func TestSignIn_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	srv := newAuthBackend(t)
	store := &memStore{}

	client1, err := api.NewHTTPClient(srv.URL+"/api", time.Second, logging.NewNop())
	require.NoError(t, err)
	b1 := New(client1, store, client1, logging.NewNop(), Options{})

	s, err := b1.SignIn(ctx, "a@b.c", "pw")
	require.NoError(t, err)
	require.True(t, s.Authenticated())

	saved, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "srv-at", saved.AccessToken)
	assert.Equal(t, "srv-rt", saved.RefreshToken)

	// "restart": a brand-new client with an empty jar, same store
	client2, err := api.NewHTTPClient(srv.URL+"/api", time.Second, logging.NewNop())
	require.NoError(t, err)
	b2 := New(client2, store, client2, logging.NewNop(), Options{})

	s2, err := b2.Bootstrap(ctx)
	require.NoError(t, err)
	assert.True(t, s2.Authenticated())
	assert.Equal(t, "a@b.c", s2.Identity.Email)
}
