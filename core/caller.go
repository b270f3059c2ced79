package core

import (
	"runtime"
	"strings"
)

// CallerFunction returns the name of the function skip frames above its
// caller, trimmed to the last import path element ("main.run",
// "server.(*Conn).Close"). skip=0 names the function calling CallerFunction.
// It returns "" when the frame cannot be resolved.
func CallerFunction(skip int) string {
	pc, _, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return ShortFunction(fn.Name())
}

// ShortFunction strips the import path from a fully qualified function name.
func ShortFunction(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
