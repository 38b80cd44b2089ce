// Package log provides structured logging (slog) for code hosted inside an
// authentication framework's process. The handler writes single-line
// key=value records to an injected writer (stderr by default) and never
// touches stdout, which belongs to the interactive session.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Handler implements slog.Handler for host-embedded code.
type Handler struct {
	opts  handlerConfig
	mu    *sync.Mutex
	out   io.Writer
	attrs []slog.Attr
	group string
}

// HandlerOption configures the Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Level
	addSource bool
}

func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level: slog.LevelInfo,
	}
}

// WithLevel sets the minimum log level to report.
func WithLevel(level slog.Level) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource enables reporting of source location (file/line).
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewHandler creates a Handler writing to out with the given options.
// A nil writer falls back to stderr.
func NewHandler(out io.Writer, opts ...HandlerOption) *Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if out == nil {
		out = os.Stderr
	}
	return &Handler{opts: cfg, out: out, mu: &sync.Mutex{}}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level
}

// Handle writes one record as a single line.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s level=%s msg=%q",
		record.Time.Format(time.RFC3339), record.Level, record.Message)

	if h.opts.addSource && record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		fmt.Fprintf(&b, " source=%s:%d", frame.File, frame.Line)
	}

	for _, a := range h.attrs {
		appendAttr(&b, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve())
}

// WithAttrs returns a new Handler that includes the given attributes.
// Keys are qualified with the open group at the time they are added.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandler := *h
	newHandler.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		newHandler.attrs = append(newHandler.attrs, a)
	}
	return &newHandler
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	newHandler := *h
	if name != "" {
		if h.group != "" {
			newHandler.group = h.group + "." + name
		} else {
			newHandler.group = name
		}
	}
	return &newHandler
}
