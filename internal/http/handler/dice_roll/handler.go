package diceroll

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/http/handler/common"
	"randomizer-tools/internal/random"
)

// Handler бросает кости. Без параметров бросается одна шестигранная кость.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт GET /random/dice.
func (h *Handler) Register(router chi.Router) {
	router.Get("/dice", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	sides, err := common.QueryInt(r, "sides", random.DefaultDiceSides)
	if err != nil {
		return err
	}
	count, err := common.QueryInt(r, "count", 1)
	if err != nil {
		return err
	}
	roll, err := h.useCase.RollDice(r.Context(), sides, count)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, roll)
	return nil
}
