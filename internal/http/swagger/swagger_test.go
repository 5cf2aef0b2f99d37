package swagger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, spec []byte, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, spec)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestUITitleFromSpec(t *testing.T) {
	t.Parallel()

	rec := serve(t, []byte("openapi: 3.0.3\ninfo:\n  title: Wheel API\n"), "/swagger")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "<title>Wheel API · API</title>")
	require.Contains(t, rec.Body.String(), "openapi.yml")
}

func TestUIDefaultTitle(t *testing.T) {
	t.Parallel()

	for _, spec := range [][]byte{nil, []byte("openapi: 3.0.3"), []byte(":\n\t- broken")} {
		rec := serve(t, spec, "/swagger")
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "<title>Randomizer · API</title>")
	}
}

func TestSpecEndpoint(t *testing.T) {
	t.Parallel()

	rec := serve(t, []byte("openapi: 3.0.3"), "/swagger/openapi.yml")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))
	require.Equal(t, "openapi: 3.0.3", rec.Body.String())

	rec = serve(t, nil, "/swagger/openapi.yml")
	require.Equal(t, http.StatusNoContent, rec.Code)
}
