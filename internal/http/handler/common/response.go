package common

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"randomizer-tools/internal/domain"
	"randomizer-tools/internal/logging"
)

type APIError struct {
	Error APIErrorBody `json:"error"`
}

type APIErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondJSON отправляет JSON-ответ с указанным статус-кодом.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// HTTPError описывает контролируемую HTTP-ошибку.
type HTTPError struct {
	status  int
	code    string
	message string
}

func (e *HTTPError) Error() string {
	return e.message
}

// NewHTTPError создаёт новую HTTP-ошибку.
func NewHTTPError(status int, code, message string) *HTTPError {
	return &HTTPError{
		status:  status,
		code:    code,
		message: message,
	}
}

// NewBadRequestError создаёт 400 ошибку.
func NewBadRequestError(code, message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, code, message)
}

// WithErrorHandling оборачивает обработчик, централизуя выдачу ошибок.
func WithErrorHandling(fn func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				RespondJSON(w, httpErr.status, APIError{
					Error: APIErrorBody{Code: httpErr.code, Message: httpErr.message},
				})
				return
			}
			WriteDomainError(w, r, err)
		}
	}
}

// domainErrors сопоставляет доменные ошибки с HTTP-ответами. Порядок значим:
// побеждает первая ошибка, найденная в цепочке через errors.Is.
var domainErrors = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrInvalidArgument, http.StatusBadRequest, "INVALID_ARGUMENT"},
	{domain.ErrWheelNotFound, http.StatusNotFound, "NOT_FOUND"},
	{domain.ErrWheelExists, http.StatusConflict, "WHEEL_EXISTS"},
	{domain.ErrEntryNotFound, http.StatusConflict, "ENTRY_NOT_FOUND"},
}

// WriteDomainError преобразует ошибку сервиса в HTTP-ответ.
// Неизвестные ошибки отдаются как 500 без подробностей.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := logging.ErrorCtx(r.Context(), err)
	requestID := chimw.GetReqID(ctx)

	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			slog.DebugContext(ctx, "request rejected", "request_id", requestID, "code", m.code, "error", err)
			RespondJSON(w, m.status, APIError{Error: APIErrorBody{Code: m.code, Message: err.Error()}})
			return
		}
	}

	slog.ErrorContext(ctx, "unhandled service error", "request_id", requestID, "error", err)
	RespondJSON(w, http.StatusInternalServerError, APIError{
		Error: APIErrorBody{Code: "INTERNAL_ERROR", Message: "internal server error"},
	})
}
