package wheelcreate

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/http/handler/common"
)

type request struct {
	Name    string                `json:"name"`
	Entries []common.EntryRequest `json:"entries"`
}

// Handler отвечает за HTTP-слой создания колеса.
type Handler struct {
	useCase UseCase
}

// New создаёт новый feature-handler.
func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт POST /wheel/create.
func (h *Handler) Register(router chi.Router) {
	router.Post("/create", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.Name == "" {
		return common.NewBadRequestError("VALIDATION_ERROR", "name обязателен")
	}
	wheel, err := h.useCase.CreateWheel(r.Context(), req.Name, common.ToDomainEntries(req.Entries))
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusCreated, map[string]domain.Wheel{"wheel": wheel})
	return nil
}
