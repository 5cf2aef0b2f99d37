package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"randomizer-tools/internal/logging"
)

// LoggerMiddleware кладёт в контекст поля запроса и пишет его начало и конец.
func LoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := chimw.GetReqID(r.Context())
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := logging.WithLogRequestID(r.Context(), requestID)
		ctx = logging.WithLogRequestPath(ctx, r.URL.Path)
		ctx = logging.WithLogRequestMethod(ctx, r.Method)
		slog.InfoContext(ctx, "request started")

		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		ctx = logging.WithLogRequestStatus(ctx, status)
		ctx = logging.WithLogRequestDuration(ctx, time.Since(start).String())
		if status >= http.StatusInternalServerError {
			slog.WarnContext(ctx, "request finished")
			return
		}
		slog.InfoContext(ctx, "request finished")
	})
}
