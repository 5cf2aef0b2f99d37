package logging

import "context"

// with копирует текущий logCtx из ctx, применяет изменение и кладёт результат обратно.
func with(ctx context.Context, update func(*logCtx)) context.Context {
	c, _ := ctx.Value(key).(logCtx)
	update(&c)
	return context.WithValue(ctx, key, c)
}

// WithLogRequestID добавляет request ID в контекст.
func WithLogRequestID(ctx context.Context, requestID string) context.Context {
	return with(ctx, func(c *logCtx) { c.RequestID = requestID })
}

// WithLogRequestPath добавляет путь запроса в контекст.
func WithLogRequestPath(ctx context.Context, path string) context.Context {
	return with(ctx, func(c *logCtx) { c.Path = path })
}

// WithLogRequestMethod добавляет метод запроса в контекст.
func WithLogRequestMethod(ctx context.Context, method string) context.Context {
	return with(ctx, func(c *logCtx) { c.Method = method })
}

// WithLogRequestStatus добавляет статус ответа в контекст.
func WithLogRequestStatus(ctx context.Context, status int) context.Context {
	return with(ctx, func(c *logCtx) { c.Status = status })
}

// WithLogRequestDuration добавляет длительность запроса в контекст.
func WithLogRequestDuration(ctx context.Context, duration string) context.Context {
	return with(ctx, func(c *logCtx) { c.RequestDuration = duration })
}

// WithLogOperation добавляет имя операции рандомизации (pick, shuffle, teams...).
func WithLogOperation(ctx context.Context, operation string) context.Context {
	return with(ctx, func(c *logCtx) { c.Operation = operation })
}

// WithLogWheelID добавляет ID колеса в контекст.
func WithLogWheelID(ctx context.Context, wheelID string) context.Context {
	return with(ctx, func(c *logCtx) { c.WheelID = wheelID })
}

// WithLogWheelName добавляет имя колеса в контекст.
func WithLogWheelName(ctx context.Context, name string) context.Context {
	return with(ctx, func(c *logCtx) { c.WheelName = name })
}

// WithLogEntriesCount добавляет количество записей (элементов списка) в контекст.
func WithLogEntriesCount(ctx context.Context, cnt int) context.Context {
	return with(ctx, func(c *logCtx) { c.EntriesCount = cnt })
}
