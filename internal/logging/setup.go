package logging

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel переводит уровень из конфигурации в slog.Level. Неизвестное значение даёт info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewJSONLogger создаёт JSON-логгер, дополняющий записи полями из контекста.
func NewJSONLogger(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(NewLoggerImpl(handler))
}
