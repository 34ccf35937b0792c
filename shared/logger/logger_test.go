package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

func TestFromContext(t *testing.T) {
	t.Run("falls back to global logger", func(t *testing.T) {
		assert.Same(t, Log, FromContext(context.Background()))
	})

	t.Run("returns attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "abc")
		ctx := IntoContext(context.Background(), l)

		FromContext(ctx).Info("hello")

		assert.Contains(t, buf.String(), "request_id=abc")
	})
}

func TestInitializeWriterJSON(t *testing.T) {
	prev := Log
	t.Cleanup(func() {
		Log = prev
		slog.SetDefault(prev)
	})

	var buf bytes.Buffer
	InitializeWriter(&buf, "debug", true)
	Log.Debug("visible", "k", "v")

	assert.Contains(t, buf.String(), `"msg":"visible"`)
	assert.Contains(t, buf.String(), `"k":"v"`)
}
