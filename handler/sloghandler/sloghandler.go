package sloghandler

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/philipp01105/ulog/core"
	"github.com/philipp01105/ulog/logger"
)

// Handler implements slog.Handler on top of a *logger.Logger.
type Handler struct {
	logger *logger.Logger
	// attrs holds WithAttrs attributes already rendered as text
	attrs string
	group string
}

// New creates a slog.Handler that forwards records to l.
func New(l *logger.Logger) *Handler {
	return &Handler{logger: l}
}

// Enabled reports whether any of the logger's handlers accepts the level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(slogLevelToCore(level))
}

// Handle renders the message and attributes and records them through the logger.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	buf := make([]byte, 0, len(record.Message)+len(h.attrs)+32)
	buf = append(buf, record.Message...)
	buf = append(buf, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.group, a)
		return true
	})

	return h.logger.Forward(slogLevelToCore(record.Level), functionName(record.PC), string(buf))
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := []byte(h.attrs)
	for _, a := range attrs {
		buf = appendAttr(buf, h.group, a)
	}
	return &Handler{
		logger: h.logger,
		attrs:  string(buf),
		group:  h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{
		logger: h.logger,
		attrs:  h.attrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr renders a as " group.key=value", flattening nested groups.
func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			buf = appendAttr(buf, key, ga)
		}
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, key...)
	buf = append(buf, '=')
	return fmt.Append(buf, a.Value.Any())
}

// functionName resolves the short name of the function at pc, or "".
func functionName(pc uintptr) string {
	if pc == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
	return core.ShortFunction(frame.Function)
}
