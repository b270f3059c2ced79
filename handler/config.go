package handler

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipp01105/ulog/core"
)

// Direction selects the sink a Handler writes to
type Direction int

const (
	// ToFile writes to a size-capped file that is truncated when full
	ToFile Direction = 100
	// ToTerminal writes to standard output (or Config.Writer)
	ToTerminal Direction = 200
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case ToFile:
		return "file"
	case ToTerminal:
		return "term"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDirection converts "term"/"terminal"/"stdout" or "file" to a Direction
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "term", "terminal", "stdout":
		return ToTerminal, nil
	case "file":
		return ToFile, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

const (
	// DefaultFormat is used when Config.Format is empty
	DefaultFormat = "&(time)% - &(level)% - &(name)% - &(msg)%"
	// DefaultFilename is used for file handlers without a Filename
	DefaultFilename = "logging.log"
	// DefaultMaxFileSize is the size cap applied when MaxFileSize is 0
	DefaultMaxFileSize int64 = 4096
)

// Config holds configuration for a Handler
type Config struct {
	// Level is the minimum level written (default: InfoLevel). Zero
	// selects the default, so no threshold below DebugLevel is available;
	// use DebugLevel to accept every standard level.
	Level core.Level
	// Colorful colors level names on terminal sinks (default: true).
	// Files never receive color codes.
	Colorful *bool
	// Format is the template (default: DefaultFormat)
	Format string
	// Clock supplies the &(time)% text (default: core.EpochClock)
	Clock core.Clock
	// Direction selects the sink (default: ToTerminal)
	Direction Direction
	// Filename is the log file path for ToFile (default: DefaultFilename)
	Filename string
	// MaxFileSize is the size cap in bytes for ToFile
	// (0 = DefaultMaxFileSize, negative = never truncate)
	MaxFileSize int64
	// Writer receives terminal output (default: os.Stdout). Ignored for ToFile.
	Writer io.Writer
	// Sync calls fsync after every file write
	Sync bool
}

// Bool returns a pointer to v, for Config.Colorful
func Bool(v bool) *bool {
	return &v
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Level == 0 {
		cfg.Level = core.InfoLevel
	}
	if cfg.Colorful == nil {
		cfg.Colorful = Bool(true)
	}
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	if cfg.Clock == nil {
		cfg.Clock = core.EpochClock{}
	}
	if cfg.Direction == 0 {
		cfg.Direction = ToTerminal
	}
	if cfg.Direction == ToFile {
		if cfg.Filename == "" {
			cfg.Filename = DefaultFilename
		}
		if cfg.MaxFileSize == 0 {
			cfg.MaxFileSize = DefaultMaxFileSize
		}
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// Environment variable suffixes read by ConfigFromEnv
const (
	envLevel     = "LEVEL"
	envFormat    = "FORMAT"
	envColor     = "COLOR"
	envDirection = "DIRECTION"
	envFile      = "FILE"
	envMaxSize   = "MAX_SIZE"
	envSync      = "SYNC"
)

// ConfigFromEnv returns base with fields overridden by environment
// variables named prefix+LEVEL, FORMAT, COLOR, DIRECTION, FILE, MAX_SIZE
// and SYNC. Unset or empty variables leave the base value alone; a value
// that does not parse is an error naming the variable.
func ConfigFromEnv(prefix string, base Config) (Config, error) {
	cfg := base
	lookup := func(key string) (string, bool) {
		v, ok := os.LookupEnv(prefix + key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := lookup(envLevel); ok {
		level, err := core.ParseLevel(v)
		if err != nil {
			return base, errors.Wrapf(err, "parse %s%s", prefix, envLevel)
		}
		cfg.Level = level
	}
	if v, ok := lookup(envFormat); ok {
		cfg.Format = v
	}
	if v, ok := lookup(envColor); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return base, errors.Wrapf(err, "parse %s%s", prefix, envColor)
		}
		cfg.Colorful = Bool(b)
	}
	if v, ok := lookup(envDirection); ok {
		d, err := ParseDirection(v)
		if err != nil {
			return base, errors.Wrapf(err, "parse %s%s", prefix, envDirection)
		}
		cfg.Direction = d
	}
	if v, ok := lookup(envFile); ok {
		cfg.Filename = v
	}
	if v, ok := lookup(envMaxSize); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return base, errors.Wrapf(err, "parse %s%s", prefix, envMaxSize)
		}
		cfg.MaxFileSize = n
	}
	if v, ok := lookup(envSync); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return base, errors.Wrapf(err, "parse %s%s", prefix, envSync)
		}
		cfg.Sync = b
	}
	return cfg, nil
}
