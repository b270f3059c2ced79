package logger

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/philipp01105/ulog/core"
	"github.com/philipp01105/ulog/handler"
)

// callerSkip is the frame distance from log to the user's code when
// entering through a Logger method
const callerSkip = 2

// Logger fans records out to an ordered, fixed list of handlers.
type Logger struct {
	name          string
	handlers      []*handler.Handler
	includeCaller bool
}

// New creates a Logger. Without handlers it gets a single terminal
// handler at InfoLevel with the default format.
func New(name string, handlers ...*handler.Handler) *Logger {
	if len(handlers) == 0 {
		handlers = []*handler.Handler{handler.MustNew(handler.Config{})}
	}
	hs := make([]*handler.Handler, len(handlers))
	copy(hs, handlers)
	return &Logger{name: name, handlers: hs}
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	name          string
	handlers      []*handler.Handler
	includeCaller bool
	// built holds the handlers created by WithHandlerConfig
	built []*handler.Handler
	err   error
}

// NewBuilder creates a new logger builder
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// WithHandler appends handlers in order
func (b *Builder) WithHandler(hs ...*handler.Handler) *Builder {
	b.handlers = append(b.handlers, hs...)
	return b
}

// WithHandlerConfig builds a handler from cfg and appends it. A
// construction error is reported by Build.
func (b *Builder) WithHandlerConfig(cfg handler.Config) *Builder {
	h, err := handler.New(cfg)
	if err != nil {
		b.err = multierr.Append(b.err, err)
		return b
	}
	b.handlers = append(b.handlers, h)
	b.built = append(b.built, h)
	return b
}

// WithCaller fills in the calling function's name for records logged
// without an explicit one
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance. If any handler config failed, the
// handlers the builder created from configs are closed and the error
// returned. Handlers passed to WithHandler stay owned by the caller.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		for _, h := range b.built {
			_ = h.Close()
		}
		return nil, b.err
	}
	l := New(b.name, b.handlers...)
	l.includeCaller = b.includeCaller
	return l, nil
}

// Name returns the logger name substituted for &(name)%
func (l *Logger) Name() string {
	return l.name
}

// Handlers returns the logger's handlers in dispatch order
func (l *Logger) Handlers() []*handler.Handler {
	hs := make([]*handler.Handler, len(l.handlers))
	copy(hs, l.handlers)
	return hs
}

// Enabled reports whether any handler accepts records at level
func (l *Logger) Enabled(level core.Level) bool {
	for _, h := range l.handlers {
		if h.Enabled(level) {
			return true
		}
	}
	return false
}

// Record sends one record to every handler in order. A failing handler
// does not stop delivery to the rest; all failures are combined and
// returned, and multierr.Errors splits them again.
func (l *Logger) Record(level core.Level, fn string, parts ...any) error {
	return l.log(callerSkip, level, fn, parts)
}

// Forward is Record for adapters that receive records from another
// logging frontend. It never looks up the caller, since the stack above
// an adapter belongs to the frontend; fn is passed through as given.
func (l *Logger) Forward(level core.Level, fn string, parts ...any) error {
	return l.dispatch(level, fn, parts)
}

// log is the internal logging method; skip locates the user's frame
func (l *Logger) log(skip int, level core.Level, fn string, parts []any) error {
	if fn == "" && l.includeCaller {
		fn = core.CallerFunction(skip)
	}
	return l.dispatch(level, fn, parts)
}

func (l *Logger) dispatch(level core.Level, fn string, parts []any) error {
	var errs error
	for i, h := range l.handlers {
		if err := h.Record(level, l.name, fn, parts...); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("handler %d: %w", i, err))
		}
	}
	return errs
}

// Debug logs a debug message
func (l *Logger) Debug(parts ...any) error {
	return l.log(callerSkip, core.DebugLevel, "", parts)
}

// Info logs an info message
func (l *Logger) Info(parts ...any) error {
	return l.log(callerSkip, core.InfoLevel, "", parts)
}

// Warn logs a warning message
func (l *Logger) Warn(parts ...any) error {
	return l.log(callerSkip, core.WarnLevel, "", parts)
}

// Error logs an error message
func (l *Logger) Error(parts ...any) error {
	return l.log(callerSkip, core.ErrorLevel, "", parts)
}

// Critical logs a critical message
func (l *Logger) Critical(parts ...any) error {
	return l.log(callerSkip, core.CriticalLevel, "", parts)
}

// DebugFn logs a debug message attributed to function fn
func (l *Logger) DebugFn(fn string, parts ...any) error {
	return l.log(callerSkip, core.DebugLevel, fn, parts)
}

// InfoFn logs an info message attributed to function fn
func (l *Logger) InfoFn(fn string, parts ...any) error {
	return l.log(callerSkip, core.InfoLevel, fn, parts)
}

// WarnFn logs a warning message attributed to function fn
func (l *Logger) WarnFn(fn string, parts ...any) error {
	return l.log(callerSkip, core.WarnLevel, fn, parts)
}

// ErrorFn logs an error message attributed to function fn
func (l *Logger) ErrorFn(fn string, parts ...any) error {
	return l.log(callerSkip, core.ErrorLevel, fn, parts)
}

// CriticalFn logs a critical message attributed to function fn
func (l *Logger) CriticalFn(fn string, parts ...any) error {
	return l.log(callerSkip, core.CriticalLevel, fn, parts)
}

// Close closes every handler and returns the combined errors
func (l *Logger) Close() error {
	var errs error
	for _, h := range l.handlers {
		errs = multierr.Append(errs, h.Close())
	}
	return errs
}
