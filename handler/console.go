package handler

import (
	"io"

	"github.com/philipp01105/ulog/core"
)

// consoleSink writes each rendered line straight to its writer with no
// buffering of its own.
type consoleSink struct {
	writer io.Writer
}

func newConsoleSink(w io.Writer) *consoleSink {
	return &consoleSink{writer: w}
}

func (s *consoleSink) write(p []byte) error {
	if _, err := s.writer.Write(p); err != nil {
		return &core.WriteError{Err: err}
	}
	return nil
}

// close is a no-op; the handler never owns standard output.
func (s *consoleSink) close() error {
	return nil
}
