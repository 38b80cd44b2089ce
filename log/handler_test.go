package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler_WritesSingleLine(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf))

	logger.Info("delivering notification", "request_id", "abc", "status", 204)

	line := buf.String()
	assert.Contains(t, line, `level=INFO`)
	assert.Contains(t, line, `msg="delivering notification"`)
	assert.Contains(t, line, "request_id=abc")
	assert.Contains(t, line, "status=204")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
}

func TestHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, WithLevel(slog.LevelWarn)))

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "visible")
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf)).With("module", "pamnotify")

	logger.Info("hello")

	assert.Contains(t, buf.String(), "module=pamnotify")
}

func TestHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf)).WithGroup("relay")

	logger.Info("hello", "status", 503)

	assert.Contains(t, buf.String(), "relay.status=503")
}

func TestHandler_NilWriterFallsBackToStderr(t *testing.T) {
	h := NewHandler(nil)
	assert.NotNil(t, h.out)
}
