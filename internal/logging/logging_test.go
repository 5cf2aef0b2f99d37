package logging

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	records []slog.Record
	enabled bool
}

func (h *stubHandler) Enabled(context.Context, slog.Level) bool {
	return h.enabled
}

func (h *stubHandler) Handle(_ context.Context, rec slog.Record) error {
	h.records = append(h.records, rec.Clone())
	return nil
}

func (h *stubHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *stubHandler) WithGroup(string) slog.Handler {
	return h
}

func recordAttrs(rec slog.Record) map[string]any {
	attrs := map[string]any{}
	rec.Attrs(func(attr slog.Attr) bool {
		attrs[attr.Key] = attr.Value.Any()
		return true
	})
	return attrs
}

func TestLoggerImplHandleAddsContextFields(t *testing.T) {
	base := &stubHandler{enabled: true}
	logger := NewLoggerImpl(base)

	ctx := WithLogRequestID(context.Background(), "req")
	ctx = WithLogOperation(ctx, "shuffle")
	ctx = WithLogEntriesCount(ctx, 4)

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "msg", 0)
	require.NoError(t, logger.Handle(ctx, rec))

	require.Len(t, base.records, 1)
	attrs := recordAttrs(base.records[0])
	require.Equal(t, "req", attrs["requestid"])
	require.Equal(t, "shuffle", attrs["operation"])
	require.EqualValues(t, 4, attrs["entriescount"])
	require.NotContains(t, attrs, "wheelid")
	require.NotContains(t, attrs, "source")
}

func TestLoggerImplAddsSource(t *testing.T) {
	base := &stubHandler{enabled: true}
	slog.New(NewLoggerImpl(base)).Info("with caller")

	require.Len(t, base.records, 1)
	source, ok := recordAttrs(base.records[0])["source"].(string)
	require.True(t, ok)
	require.Contains(t, source, "logging_test.go")
}

func TestLoggerImplEnabledDelegates(t *testing.T) {
	base := &stubHandler{enabled: true}
	logger := NewLoggerImpl(base)
	require.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	base.enabled = false
	require.False(t, logger.Enabled(context.Background(), slog.LevelInfo))
}

func TestLoggerImplWithersWrapHandler(t *testing.T) {
	logger := NewLoggerImpl(&stubHandler{})
	require.IsType(t, &LoggerImpl{}, logger.WithAttrs(nil))
	require.IsType(t, &LoggerImpl{}, logger.WithGroup("grp"))
}
