package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"randomizer-tools/internal/metrics"
)

// MetricsMiddleware учитывает каждый запрос в HTTP-метриках.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			// обработчик ничего не записал, net/http ответит 200
			status = http.StatusOK
		}
		metrics.ObserveHTTPRequest(metrics.HTTPRequest{
			Method:       r.Method,
			Endpoint:     getEndpoint(r),
			Status:       status,
			Duration:     time.Since(start),
			RequestSize:  r.ContentLength,
			ResponseSize: ww.BytesWritten(),
		})
	})
}

// getEndpoint возвращает шаблон маршрута chi, а без него реальный путь.
// Вызывать только после next.ServeHTTP: до маршрутизации шаблон пуст.
func getEndpoint(r *http.Request) string {
	if r == nil {
		return "/"
	}
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	if path := r.URL.Path; path != "" {
		return path
	}
	return "/"
}
