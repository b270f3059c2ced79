package handler

import (
	"errors"
	"fmt"
	"sync"

	"github.com/philipp01105/ulog/core"
	"github.com/philipp01105/ulog/formatter"
)

var (
	// ErrInvalidDirection is returned for a Direction other than ToTerminal or ToFile.
	ErrInvalidDirection = errors.New("invalid handler direction")
	// ErrClosed is returned by Record after Close.
	ErrClosed = errors.New("handler closed")
)

// unknownFunction is rendered for &(fnname)% when no function name is given
const unknownFunction = "unknownfn"

// sink is the destination of rendered lines
type sink interface {
	write(p []byte) error
	close() error
}

// Handler renders records with its template and writes them to one sink.
//
// A Handler serializes its own Record calls, so one Handler may be used
// from several goroutines. It must not be shared between Loggers that
// expect independent sinks; each file Handler owns its file exclusively.
type Handler struct {
	level     core.Level
	color     bool
	direction Direction
	clock     core.Clock
	template  *formatter.Template
	fields    []formatter.FieldKind
	sink      sink
	stats     *Stats

	mu     sync.Mutex // guards everything below and all sink I/O
	buf    []byte
	values []string
	closed bool
}

// New creates a Handler. The template is compiled and, for ToFile, the
// file is opened before New returns; on error no Handler is created.
func New(cfg Config) (*Handler, error) {
	applyDefaults(&cfg)

	if cfg.Direction != ToTerminal && cfg.Direction != ToFile {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(cfg.Direction))
	}

	tmpl, err := formatter.Compile(cfg.Format)
	if err != nil {
		return nil, err
	}

	h := &Handler{
		level:     cfg.Level,
		color:     *cfg.Colorful && cfg.Direction == ToTerminal,
		direction: cfg.Direction,
		clock:     cfg.Clock,
		template:  tmpl,
		fields:    tmpl.Fields(),
		stats:     NewStats(),
		buf:       make([]byte, 0, 256),
		values:    make([]string, 0, tmpl.NumFields()),
	}

	switch cfg.Direction {
	case ToFile:
		fs, err := newFileSink(cfg.Filename, cfg.MaxFileSize, cfg.Sync, h.stats)
		if err != nil {
			return nil, err
		}
		h.sink = fs
	default:
		h.sink = newConsoleSink(cfg.Writer)
	}

	return h, nil
}

// MustNew is like New but panics on error.
func MustNew(cfg Config) *Handler {
	h, err := New(cfg)
	if err != nil {
		panic(err)
	}
	return h
}

// Record renders one record and writes it to the sink. Records below the
// handler level are dropped without any I/O. fn is the function name for
// &(fnname)%; "" renders as "unknownfn".
//
// A failed file truncation returns a *core.SinkError and a failed write a
// *core.WriteError. Nothing is retried.
func (h *Handler) Record(level core.Level, name, fn string, parts ...any) error {
	if level < h.level {
		h.stats.IncrementFiltered()
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	h.values = h.values[:0]
	var msg string
	msgDone := false
	for _, kind := range h.fields {
		switch kind {
		case formatter.FieldMessage:
			if !msgDone {
				msg = joinParts(parts)
				msgDone = true
			}
			h.values = append(h.values, msg)
		case formatter.FieldLevel:
			h.values = append(h.values, level.Name(h.color))
		case formatter.FieldTime:
			h.values = append(h.values, h.clock.Now())
		case formatter.FieldName:
			h.values = append(h.values, name)
		case formatter.FieldFunction:
			if fn == "" {
				fn = unknownFunction
			}
			h.values = append(h.values, fn)
		}
	}

	h.buf = h.template.Render(h.buf[:0], h.values)
	if err := h.sink.write(h.buf); err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementProcessed()
	return nil
}

// joinParts concatenates the message parts with no separator. Strings are
// used as-is, anything else goes through fmt.Sprint.
func joinParts(parts []any) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		if s, ok := parts[0].(string); ok {
			return s
		}
		return fmt.Sprint(parts[0])
	}

	b := make([]byte, 0, 64)
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b = append(b, v...)
		default:
			b = fmt.Append(b, v)
		}
	}
	return string(b)
}

// Enabled reports whether records at level pass the threshold
func (h *Handler) Enabled(level core.Level) bool {
	return level >= h.level
}

// Level returns the minimum level written
func (h *Handler) Level() core.Level {
	return h.level
}

// Direction returns the sink kind
func (h *Handler) Direction() Direction {
	return h.direction
}

// Template returns the compiled format string
func (h *Handler) Template() *formatter.Template {
	return h.template
}

// Stats returns a snapshot of the current statistics
func (h *Handler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close releases the sink. It is safe to call more than once; later
// Record calls return ErrClosed.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil // Already closed
	}
	h.closed = true
	return h.sink.close()
}
