package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Level represents the severity level of a log record.
// The numeric values are stable and may be stored or compared by callers.
type Level int

const (
	// DebugLevel for detailed debugging information
	DebugLevel Level = 10
	// InfoLevel for general informational messages (default)
	InfoLevel Level = 20
	// WarnLevel for warning messages
	WarnLevel Level = 30
	// ErrorLevel for error messages
	ErrorLevel Level = 40
	// CriticalLevel for failures the program may not survive
	CriticalLevel Level = 50
)

const colorReset = "\033[0m"

// pre-colored level names so the terminal path is a single lookup
var coloredNames = map[Level]string{
	DebugLevel:    "\033[37mDEBUG" + colorReset,
	InfoLevel:     "\033[97mINFO" + colorReset,
	WarnLevel:     "\033[93mWARN" + colorReset,
	ErrorLevel:    "\033[35mERROR" + colorReset,
	CriticalLevel: "\033[91mCRITICAL" + colorReset,
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "LEVEL(" + strconv.Itoa(int(l)) + ")"
	}
}

// Name returns the display name of the level, wrapped in ANSI color
// codes when color is true. Levels outside the known set are never colored.
func (l Level) Name(color bool) string {
	if color {
		if s, ok := coloredNames[l]; ok {
			return s
		}
	}
	return l.String()
}

// ParseLevel converts a level name or decimal value to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "CRITICAL":
		return CriticalLevel, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return InfoLevel, fmt.Errorf("unknown level %q", s)
	}
	return Level(n), nil
}
