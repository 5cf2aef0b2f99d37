package diceroll

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
	sides, count int
}

func (s *stubUseCase) RollDice(ctx context.Context, sides, count int) (domain.DiceRoll, error) {
	s.sides, s.count = sides, count
	if sides < 2 {
		return domain.DiceRoll{}, fmt.Errorf("%w: too few sides", domain.ErrInvalidArgument)
	}
	rolls := make([]int, count)
	for i := range rolls {
		rolls[i] = sides
	}
	return domain.DiceRoll{Sides: sides, Rolls: rolls, Total: sides * count}, nil
}

func serve(useCase UseCase, target string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	New(useCase).Register(router)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_DefaultsToSingleSixSidedDie(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	rec := serve(useCase, "/dice")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 6, useCase.sides)
	require.Equal(t, 1, useCase.count)
	require.JSONEq(t, `{"sides":6,"rolls":[6],"total":6}`, rec.Body.String())
}

func TestHandler_PassesParams(t *testing.T) {
	t.Parallel()

	useCase := &stubUseCase{}
	rec := serve(useCase, "/dice?sides=20&count=3")

	require.Equal(t, http.StatusOK, rec.Code)
	var roll domain.DiceRoll
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roll))
	require.Equal(t, 60, roll.Total)
	require.Len(t, roll.Rolls, 3)
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()

	require.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "/dice?sides=one").Code)
	require.Equal(t, http.StatusBadRequest, serve(&stubUseCase{}, "/dice?sides=1").Code)
}
