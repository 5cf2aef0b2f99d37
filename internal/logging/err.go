package logging

import (
	"context"
	"errors"
	"reflect"
)

// contextError запоминает поля логирования, действовавшие там, где ошибка возникла.
type contextError struct {
	err    error
	fields logCtx
}

func (e *contextError) Error() string { return e.err.Error() }

func (e *contextError) Unwrap() error { return e.err }

// WrapError привязывает к err поля логирования из ctx. Повторная обёртка не создаётся,
// поля внешнего вызова только дописываются к уже сохранённым.
func WrapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	fields, _ := ctx.Value(key).(logCtx)

	var ce *contextError
	if errors.As(err, &ce) {
		ce.fields = merge(ce.fields, fields)
		return err
	}
	return &contextError{err: err, fields: fields}
}

// ErrorCtx возвращает ctx, дополненный полями, сохранёнными в ошибке.
// Поля из ошибки имеют приоритет: они описывают место сбоя точнее.
func ErrorCtx(ctx context.Context, err error) context.Context {
	var ce *contextError
	if !errors.As(err, &ce) {
		return ctx
	}
	current, _ := ctx.Value(key).(logCtx)
	return context.WithValue(ctx, key, merge(ce.fields, current))
}

// merge заполняет пустые поля primary значениями из fallback.
func merge(primary, fallback logCtx) logCtx {
	p := reflect.ValueOf(&primary).Elem()
	f := reflect.ValueOf(fallback)
	for i := 0; i < p.NumField(); i++ {
		if p.Field(i).IsZero() {
			p.Field(i).Set(f.Field(i))
		}
	}
	return primary
}
