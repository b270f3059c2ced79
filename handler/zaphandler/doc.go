// Package zaphandler provides a zapcore.Core backed by a ulog Logger,
// so code instrumented with go.uber.org/zap can write through ulog
// handlers.
//
// Context and call-site fields are encoded with a zapcore map encoder
// and appended to the message as " key=value" text, in the order they
// were added. DPanic, Panic and Fatal entries are recorded at CRITICAL;
// zap itself still panics or exits after writing them.
package zaphandler
