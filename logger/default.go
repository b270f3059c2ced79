package logger

import (
	"sync"

	"github.com/philipp01105/ulog/core"
)

// DefaultName is the name of the package-level logger
const DefaultName = "root"

var (
	defaultLogger = New(DefaultName)
	defaultMu     sync.RWMutex
)

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(parts ...any) error {
	return Default().log(callerSkip, core.DebugLevel, "", parts)
}

// Info logs an info message using the default logger
func Info(parts ...any) error {
	return Default().log(callerSkip, core.InfoLevel, "", parts)
}

// Warn logs a warning message using the default logger
func Warn(parts ...any) error {
	return Default().log(callerSkip, core.WarnLevel, "", parts)
}

// Error logs an error message using the default logger
func Error(parts ...any) error {
	return Default().log(callerSkip, core.ErrorLevel, "", parts)
}

// Critical logs a critical message using the default logger
func Critical(parts ...any) error {
	return Default().log(callerSkip, core.CriticalLevel, "", parts)
}
