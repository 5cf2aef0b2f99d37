package wheelspin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/http/handler/common"
)

type request struct {
	WheelID      string `json:"wheel_id"`
	RemoveWinner bool   `json:"remove_winner"`
}

// Handler крутит колесо и возвращает победителя.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт POST /wheel/spin.
func (h *Handler) Register(router chi.Router) {
	router.Post("/spin", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.WheelID == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "wheel_id обязателен")
	}
	spin, err := h.useCase.SpinWheel(r.Context(), req.WheelID, req.RemoveWinner)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string]domain.Spin{"spin": spin})
	return nil
}
