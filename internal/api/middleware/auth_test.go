package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gatherhub/server/internal/auth"
	"github.com/stretchr/testify/require"
)

func TestAuthAttachesIdentity(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour, "gatherhub")
	token, err := tokens.Issue("user-1", "one@example.com")
	require.NoError(t, err)

	var got auth.Identity
	var ok bool
	handler := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = auth.IdentityFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	require.Equal(t, "user-1", got.UserID)
	require.Equal(t, "one@example.com", got.Email)
}

func TestAuthPassesThroughAnonymously(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour, "gatherhub")

	for name, header := range map[string]string{
		"no header":     "",
		"wrong scheme":  "Basic dXNlcjpwYXNz",
		"invalid token": "Bearer not-a-jwt",
	} {
		called := false
		var identified bool
		handler := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			_, identified = auth.IdentityFrom(r.Context())
		}))

		req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.True(t, called, "%s: request must not be blocked", name)
		require.False(t, identified, "%s: no identity expected", name)
		require.Equal(t, http.StatusOK, rec.Code, name)
	}
}
