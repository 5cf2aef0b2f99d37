package randomint

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/http/handler/common"
)

// Handler отдаёт случайное число из полуоткрытого диапазона.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт GET /random/int.
func (h *Handler) Register(router chi.Router) {
	router.Get("/int", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	lower, err := common.RequiredQueryInt(r, "min")
	if err != nil {
		return err
	}
	upper, err := common.RequiredQueryInt(r, "max")
	if err != nil {
		return err
	}
	value, err := h.useCase.RandomInt(r.Context(), lower, upper)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string]int{"value": value})
	return nil
}
