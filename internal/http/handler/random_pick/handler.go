package randompick

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/http/handler/common"
)

// Handler выбирает случайный элемент списка.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт POST /random/pick.
func (h *Handler) Register(router chi.Router) {
	router.Post("/pick", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req common.ItemsRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	item, err := h.useCase.PickItem(r.Context(), req.Items)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"item": item})
	return nil
}
