// Package logger is the public API of ulog. Most users only need to
// import this package and, for custom outputs, package handler.
//
// A Logger has a name and an ordered list of handlers, both fixed at
// construction. Every call fans out to all handlers in order:
//
//	term := handler.MustNew(handler.Config{Level: logger.DebugLevel})
//	file, err := handler.New(handler.Config{
//	    Direction:   handler.ToFile,
//	    Filename:    "/flash/app.log",
//	    MaxFileSize: 8192,
//	    Level:       logger.WarnLevel,
//	})
//	...
//	log := logger.New("sensor", term, file)
//	log.Info("temperature=", 21.5)
//	log.ErrorFn("readADC", "timeout after ", 3, " tries")
//
// Message parts are concatenated without a separator. The *Fn variants
// supply the text for the &(fnname)% placeholder; the Builder's
// WithCaller option fills it from the call stack instead.
//
// Logging methods return an error. A handler that fails does not stop
// delivery to the others; the failures are combined with
// go.uber.org/multierr and returned once every handler has been tried.
//
// The package initializes a default Logger named "root" with one
// terminal handler at InfoLevel. The package-level functions Debug,
// Info, Warn, Error and Critical delegate to it.
package logger
