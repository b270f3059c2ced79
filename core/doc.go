// Package core defines the shared types used across ulog.
//
// It provides the Level type with its fixed numeric values (DEBUG=10
// through CRITICAL=50) and the level-name table used when rendering,
// the Clock capability that supplies the text of the &(time)%
// placeholder, and the error taxonomy returned by handlers and loggers.
//
// Errors are typed so callers can branch with errors.Is:
//
//	ErrMalformedTemplate  a format string has an unterminated "&(" token
//	ErrSinkUnavailable    a log file cannot be opened or truncated
//	ErrRecordWrite        writing a rendered record failed
//
// SinkError and WriteError also unwrap to the underlying I/O error.
package core
