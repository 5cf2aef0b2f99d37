package logging

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"runtime"
	"strings"
)

type keyType int

const key = keyType(0)

// logCtx содержит контекстную информацию для логирования.
// Каждое ненулевое поле попадает в запись лога под именем поля в нижнем регистре.
type logCtx struct {
	RequestID       string
	Status          int
	RequestDuration string
	Method          string
	Path            string
	Operation       string
	WheelID         string
	WheelName       string
	EntriesCount    int
}

// LoggerImpl оборачивает slog.Handler для добавления контекстной информации.
type LoggerImpl struct {
	next slog.Handler
}

func NewLoggerImpl(next slog.Handler) *LoggerImpl {
	return &LoggerImpl{next: next}
}

// Enabled проверяет, включён ли указанный уровень логирования.
func (h *LoggerImpl) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle добавляет в запись поля из контекста и место вызова.
func (h *LoggerImpl) Handle(ctx context.Context, rec slog.Record) error {
	if c, ok := ctx.Value(key).(logCtx); ok {
		v := reflect.ValueOf(c)
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			if field := v.Field(i); !field.IsZero() {
				rec.Add(strings.ToLower(t.Field(i).Name), field.Interface())
			}
		}
	}

	if rec.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{rec.PC}).Next()
		rec.Add("source", fmt.Sprintf("%s:%d", frame.File, frame.Line))
	}

	return h.next.Handle(ctx, rec)
}

func (h *LoggerImpl) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LoggerImpl{next: h.next.WithAttrs(attrs)}
}

func (h *LoggerImpl) WithGroup(name string) slog.Handler {
	return &LoggerImpl{next: h.next.WithGroup(name)}
}
