package handler

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/philipp01105/ulog/core"
)

const fileFlags = os.O_CREATE | os.O_RDWR | os.O_APPEND

// fileSink writes to a single log file that is truncated once it grows
// past maxSize. There is never more than one file on disk.
type fileSink struct {
	filename string
	file     *os.File
	maxSize  int64
	sync     bool
	stats    *Stats
	probe    [1]byte
}

// newFileSink opens filename for appending, creating it and its parent
// directory when missing.
func newFileSink(filename string, maxSize int64, sync bool, stats *Stats) (*fileSink, error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &core.SinkError{Op: "open", Path: filename, Err: errors.Wrap(err, "create log directory")}
	}

	file, err := os.OpenFile(filename, fileFlags, 0644)
	if err != nil {
		return nil, &core.SinkError{Op: "open", Path: filename, Err: err}
	}

	return &fileSink{
		filename: filename,
		file:     file,
		maxSize:  maxSize,
		sync:     sync,
		stats:    stats,
	}, nil
}

// write truncates the file if needed, then writes p and flushes it
func (s *fileSink) write(p []byte) error {
	if err := s.rotateIfNeeded(); err != nil {
		return err
	}

	if _, err := s.file.Write(p); err != nil {
		return &core.WriteError{Err: err}
	}
	if s.sync {
		if err := s.file.Sync(); err != nil {
			return &core.WriteError{Err: errors.Wrap(err, "sync")}
		}
	}
	return nil
}

// rotateIfNeeded probes for a byte at offset maxSize. If one exists the
// file has outgrown its cap and is reopened empty. ReadAt leaves the
// write offset untouched, so a file that still has room needs no undo.
func (s *fileSink) rotateIfNeeded() error {
	if s.maxSize <= 0 {
		return nil
	}

	n, err := s.file.ReadAt(s.probe[:], s.maxSize)
	if n == 0 {
		if err != nil && err != io.EOF {
			return &core.SinkError{Op: "probe", Path: s.filename, Err: errors.Wrap(err, "read size probe")}
		}
		return nil
	}

	return s.truncate()
}

// truncate replaces the active handle with a freshly truncated one.
// The old handle stays active if the reopen fails.
func (s *fileSink) truncate() error {
	file, err := os.OpenFile(s.filename, fileFlags|os.O_TRUNC, 0644)
	if err != nil {
		return &core.SinkError{Op: "truncate", Path: s.filename, Err: err}
	}

	old := s.file
	s.file = file
	// the new handle is already active, a failed close only leaks the old descriptor
	_ = old.Close()

	s.stats.IncrementRotations()
	return nil
}

// close syncs and closes the underlying file.
func (s *fileSink) close() error {
	if s.file == nil {
		return nil
	}
	syncErr := s.file.Sync()
	closeErr := s.file.Close()
	s.file = nil
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}
