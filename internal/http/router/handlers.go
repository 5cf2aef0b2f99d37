package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coinflip "randomizer-tools/internal/http/handler/coin_flip"
	"randomizer-tools/internal/http/handler/common"
	diceroll "randomizer-tools/internal/http/handler/dice_roll"
	randomint "randomizer-tools/internal/http/handler/random_int"
	randompick "randomizer-tools/internal/http/handler/random_pick"
	randomshuffle "randomizer-tools/internal/http/handler/random_shuffle"
	randomteams "randomizer-tools/internal/http/handler/random_teams"
	wheelcreate "randomizer-tools/internal/http/handler/wheel_create"
	wheelget "randomizer-tools/internal/http/handler/wheel_get"
	wheelhistory "randomizer-tools/internal/http/handler/wheel_history"
	wheelshuffle "randomizer-tools/internal/http/handler/wheel_shuffle"
	wheelspin "randomizer-tools/internal/http/handler/wheel_spin"
	"randomizer-tools/internal/http/middleware"
	"randomizer-tools/internal/http/swagger"
	"randomizer-tools/internal/service"
)

// Handler агрегирует HTTP-эндпоинты.
type Handler struct {
	service     *service.Service
	swaggerSpec []byte
}

func New(service *service.Service, spec []byte) *Handler {
	return &Handler{service: service, swaggerSpec: spec}
}

// Router возвращает готовый chi.Router со всеми зарегистрированными маршрутами и middleware.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	// Порядок важен: PanicMiddleware должен видеть request ID.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.PanicMiddleware)
	r.Use(middleware.LoggerMiddleware)
	r.Use(middleware.MetricsMiddleware)
	swagger.RegisterRoutes(r, h.swaggerSpec)

	r.Get("/health", h.health)
	r.Handle("/metrics", promhttp.Handler())

	h.registerRandomRoutes(r)
	h.registerWheelRoutes(r)

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.HealthCheck(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "health check failed", "error", err)
		common.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// registerRandomRoutes подключает операции без состояния.
func (h *Handler) registerRandomRoutes(r chi.Router) {
	r.Route("/random", func(router chi.Router) {
		randomint.New(h.service).Register(router)
		randompick.New(h.service).Register(router)
		randomshuffle.New(h.service).Register(router)
		coinflip.New(h.service).Register(router)
		diceroll.New(h.service).Register(router)
		randomteams.New(h.service).Register(router)
	})
}

// registerWheelRoutes подключает операции над сохранёнными колёсами.
func (h *Handler) registerWheelRoutes(r chi.Router) {
	r.Route("/wheel", func(router chi.Router) {
		wheelcreate.New(h.service).Register(router)
		wheelget.New(h.service).Register(router)
		wheelspin.New(h.service).Register(router)
		wheelshuffle.New(h.service).Register(router)
		wheelhistory.New(h.service).Register(router)
	})
}
