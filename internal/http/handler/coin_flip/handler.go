package coinflip

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/http/handler/common"
)

type response struct {
	Heads bool            `json:"heads"`
	Side  domain.CoinSide `json:"side"`
}

// Handler подбрасывает монету.
type Handler struct {
	useCase UseCase
}

func New(useCase UseCase) *Handler {
	return &Handler{useCase: useCase}
}

// Register вешает эндпоинт GET /random/coin.
func (h *Handler) Register(router chi.Router) {
	router.Get("/coin", common.WithErrorHandling(h.handle))
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request) error {
	side := h.useCase.FlipCoin(r.Context())
	common.RespondJSON(w, http.StatusOK, response{Heads: side == domain.CoinHeads, Side: side})
	return nil
}
