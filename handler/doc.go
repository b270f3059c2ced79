// Package handler renders log records and writes them to a sink.
//
// A Handler is built once from a Config and owns exactly one sink:
//
//   - ToTerminal writes each line to os.Stdout (or Config.Writer) as
//     soon as it is rendered. Level names may be colored.
//   - ToFile appends to a single file capped at MaxFileSize bytes.
//     Level names are never colored in files.
//
// Records below the handler's level are dropped before any rendering
// or I/O; this threshold is the only filter.
//
// File rotation is check-before-write. Before each record the handler
// probes for a byte at offset MaxFileSize. If one exists, the file is
// reopened truncated and the record becomes its first line; otherwise
// the record is appended. A file therefore never grows more than one
// record past its cap, and there are no numbered backups.
//
// Failures are returned, never swallowed: a template that does not
// compile or a file that cannot be opened fails New, a truncation
// failure returns a *core.SinkError from Record, and a write failure a
// *core.WriteError. Nothing is retried.
//
// Each Handler holds a mutex around rendering and sink writes, so its
// Record method may be called concurrently. Two Handlers pointed at the
// same file are not coordinated with each other.
package handler
