package randomteams

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/http/handler/common"
)

type request struct {
	Items     []string `json:"items"`
	TeamCount int      `json:"team_count"`
}

// Handler делит список на случайные команды.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт POST /random/teams.
func (h *Handler) Register(router chi.Router) {
	router.Post("/teams", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	var req request
	if err := common.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.TeamCount == 0 {
		return common.NewBadRequestError("VALIDATION_ERROR", "team_count обязателен")
	}
	teams, err := h.useCase.SplitTeams(r.Context(), req.Items, req.TeamCount)
	if err != nil {
		return err
	}
	common.RespondJSON(w, http.StatusOK, map[string][][]string{"teams": teams})
	return nil
}
