package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guard/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")
		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("text formatter", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter())
		log.Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("last formatter wins", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithTextFormatter(),
			logger.WithJSONFormatter(),
		)
		log.Info("hello")
		assert.Equal(t, "hello", decode(t, buf)["msg"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		assert.Empty(t, buf.String())
		log.Warn("kept")
		assert.Equal(t, "kept", decode(t, buf)["msg"])
	})

	t.Run("handler options override level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelError),
			logger.WithHandlerOptions(&slog.HandlerOptions{Level: slog.LevelDebug}),
		)
		log.Debug("visible")
		assert.Equal(t, "visible", decode(t, buf)["msg"])
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithAttr(logger.Component("guard.catalog")),
		)
		log.Info("msg")
		assert.Equal(t, "guard.catalog", decode(t, buf)["component"])
	})
}

func TestSetAsDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decode(t, buf)["msg"])
}

func TestWithFormatPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() {
		logger.New(logger.WithFormat(logger.Format("xml")))
	})
}
