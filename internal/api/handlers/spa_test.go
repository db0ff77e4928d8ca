package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSPAServesRealFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html>app</html>")
	writeFile(t, dir, "app.js", "console.log('hi')")

	handler := SPA(dir)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "console.log('hi')", rec.Body.String())
}

func TestSPAFallsBackToIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "index.html", "<html>app</html>")

	handler := SPA(dir)

	for _, path := range []string{"/", "/events/123", "/deeply/nested/route"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, "<html>app</html>", rec.Body.String(), path)
	}
}

func TestSPAWithoutIndex(t *testing.T) {
	handler := SPA(t.TempDir())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
