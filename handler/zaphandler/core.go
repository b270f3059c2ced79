package zaphandler

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/ulog/core"
	"github.com/philipp01105/ulog/logger"
)

type ulogCore struct {
	logger *logger.Logger
	fields []zapcore.Field
}

// NewCore returns a zapcore.Core that records every entry through l.
func NewCore(l *logger.Logger) zapcore.Core {
	return &ulogCore{logger: l}
}

// Enabled reports whether any of the logger's handlers accepts the level.
func (c *ulogCore) Enabled(level zapcore.Level) bool {
	return c.logger.Enabled(zapLevelToCore(level))
}

// With returns a Core carrying additional context fields.
func (c *ulogCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	return &ulogCore{
		logger: c.logger,
		fields: append(newFields, fields...),
	}
}

// Check adds the core to the checked entry when the level is enabled.
func (c *ulogCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return ce.AddCore(entry, c)
	}
	return ce
}

// Write renders the entry and records it through the logger.
func (c *ulogCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	msg := entry.Message
	if len(c.fields) > 0 || len(fields) > 0 {
		buf := make([]byte, 0, len(msg)+64)
		buf = append(buf, msg...)
		buf = appendFields(buf, c.fields, fields)
		msg = string(buf)
	}

	var fn string
	if entry.Caller.Defined {
		fn = core.ShortFunction(entry.Caller.Function)
	}
	return c.logger.Forward(zapLevelToCore(entry.Level), fn, msg)
}

// Sync is a no-op; handlers flush every record as it is written.
func (c *ulogCore) Sync() error {
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level.
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.CriticalLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
