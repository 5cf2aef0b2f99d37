package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	require.Equal(t, slog.LevelError, ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, ParseLevel("info"))
	require.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewJSONLoggerWritesContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, "debug")

	ctx := WithLogOperation(context.Background(), "coin")
	logger.DebugContext(ctx, "draw completed")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "draw completed", rec["msg"])
	require.Equal(t, "coin", rec["operation"])
}

func TestNewJSONLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, "warn")

	logger.Info("hidden")

	require.Zero(t, buf.Len())
}
