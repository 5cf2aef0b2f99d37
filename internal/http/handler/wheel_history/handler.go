package wheelhistory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/http/handler/common"
)

// Handler отдаёт последние вращения колеса, новые первыми.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт GET /wheel/history.
func (h *Handler) Register(router chi.Router) {
	router.Get("/history", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	wheelID, err := common.RequiredQuery(r, "wheel_id")
	if err != nil {
		return err
	}
	limit, err := common.QueryInt(r, "limit", 0)
	if err != nil {
		return err
	}
	spins, err := h.useCase.WheelHistory(r.Context(), wheelID, limit)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string][]domain.Spin{"spins": common.NonNilSpins(spins)})
	return nil
}
