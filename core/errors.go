package core

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTemplate reports a format string with an unterminated placeholder.
	ErrMalformedTemplate = errors.New("malformed template")
	// ErrSinkUnavailable reports a log file that cannot be opened, created or truncated.
	ErrSinkUnavailable = errors.New("sink unavailable")
	// ErrRecordWrite reports an I/O failure while writing a rendered record.
	ErrRecordWrite = errors.New("record write failure")
)

// TemplateError describes where a format string failed to compile.
type TemplateError struct {
	Format string
	// Offset is the byte index of the unterminated "&(" token
	Offset int
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("%v: unterminated placeholder at offset %d in %q", ErrMalformedTemplate, e.Offset, e.Format)
}

// Is reports whether target is ErrMalformedTemplate
func (e *TemplateError) Is(target error) bool {
	return target == ErrMalformedTemplate
}

// SinkError wraps the failure to open or truncate a log file.
type SinkError struct {
	// Op is the operation that failed ("open", "truncate", "probe")
	Op   string
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrSinkUnavailable, e.Op, e.Path, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause
func (e *SinkError) Unwrap() []error {
	return []error{ErrSinkUnavailable, e.Err}
}

// WriteError wraps an I/O failure while writing or flushing a record.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: %v", ErrRecordWrite, e.Err)
}

// Unwrap exposes both the sentinel and the underlying cause
func (e *WriteError) Unwrap() []error {
	return []error{ErrRecordWrite, e.Err}
}
