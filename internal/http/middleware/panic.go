package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	chimw "github.com/go-chi/chi/v5/middleware"

	"randomizer-tools/internal/http/handler/common"
)

// PanicMiddleware превращает панику обработчика в ответ 500 с кодом UNKNOWN.
// http.ErrAbortHandler пробрасывается дальше: им обрывают соединение намеренно.
func PanicMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			slog.ErrorContext(r.Context(), "panic recovered",
				"request_id", chimw.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			common.RespondJSON(w, http.StatusInternalServerError, common.APIError{
				Error: common.APIErrorBody{Code: "UNKNOWN", Message: "internal server error"},
			})
		}()
		next.ServeHTTP(w, r)
	})
}
