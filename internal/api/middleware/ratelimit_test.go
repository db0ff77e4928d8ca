package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gatherhub/server/internal/config"
	"github.com/stretchr/testify/require"
)

func limitedHandler(perMinute int) http.Handler {
	return RateLimit(config.RateLimitConfig{PublicPerMinute: perMinute})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)
}

func doRequest(handler http.Handler, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRateLimitThrottlesPerClient(t *testing.T) {
	handler := limitedHandler(2)

	require.Equal(t, http.StatusOK, doRequest(handler, "/graphql", "10.0.0.1:1111").Code)
	require.Equal(t, http.StatusOK, doRequest(handler, "/graphql", "10.0.0.1:2222").Code)

	rec := doRequest(handler, "/graphql", "10.0.0.1:3333")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "60", rec.Header().Get("Retry-After"))

	// A different client address has its own bucket.
	require.Equal(t, http.StatusOK, doRequest(handler, "/graphql", "10.0.0.2:1111").Code)
}

func TestRateLimitIgnoresOtherPaths(t *testing.T) {
	handler := limitedHandler(1)

	require.Equal(t, http.StatusOK, doRequest(handler, "/graphql", "10.0.0.1:1111").Code)
	for i := 0; i < 5; i++ {
		require.Equal(t, http.StatusOK, doRequest(handler, "/healthz", "10.0.0.1:1111").Code)
	}
}

func TestRateLimitDisabledWhenNonPositive(t *testing.T) {
	handler := limitedHandler(0)
	for i := 0; i < 10; i++ {
		require.Equal(t, http.StatusOK, doRequest(handler, "/graphql", "10.0.0.1:1111").Code)
	}
}
