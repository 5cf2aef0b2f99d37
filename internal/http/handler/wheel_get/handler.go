package wheelget

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/http/handler/common"
)

// Handler реализует HTTP-эндпоинт получения колеса.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

func (h *Handler) Register(router chi.Router) {
	router.Get("/get", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	wheelID, err := common.RequiredQuery(r, "wheel_id")
	if err != nil {
		return err
	}
	wheel, err := h.useCase.GetWheel(r.Context(), wheelID)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string]domain.Wheel{"wheel": wheel})
	return nil
}
