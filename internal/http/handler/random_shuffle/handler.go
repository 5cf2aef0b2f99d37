package randomshuffle

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/http/handler/common"
)

// Handler перемешивает список. Пустой список возвращается как есть.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт POST /random/shuffle.
func (h *Handler) Register(router chi.Router) {
	router.Post("/shuffle", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req common.ItemsRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	items, err := h.useCase.ShuffleItems(r.Context(), req.Items)
	if err != nil {
		return err
	}
	if items == nil {
		items = []string{}
	}
	common.RespondJSON(w, http.StatusOK, map[string][]string{"items": items})
	return nil
}
