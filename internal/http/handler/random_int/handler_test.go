package randomint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"randomizer-tools/internal/domain"
)

type stubUseCase struct {
	min, max int
}

func (s *stubUseCase) RandomInt(ctx context.Context, min, max int) (int, error) {
	s.min, s.max = min, max
	if min >= max {
		return 0, fmt.Errorf("%w: empty range", domain.ErrInvalidArgument)
	}
	return min, nil
}

func newRouter(useCase UseCase) chi.Router {
	router := chi.NewRouter()
	New(useCase).Register(router)
	return router
}

func TestHandler_Success(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	req := httptest.NewRequest(http.MethodGet, "/int?min=-5&max=10", nil)
	rec := httptest.NewRecorder()

	newRouter(useCase).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, -5, useCase.min)
	require.Equal(t, 10, useCase.max)
	var body map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, -5, body["value"])
}

func TestHandler_ValidatesQuery(t *testing.T) {
	t.Parallel()

	for _, target := range []string{"/int", "/int?min=1", "/int?min=a&max=2"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()

		newRouter(&stubUseCase{}).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestHandler_EmptyRange(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/int?min=3&max=3", nil)
	rec := httptest.NewRecorder()

	newRouter(&stubUseCase{}).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "INVALID_ARGUMENT")
}
