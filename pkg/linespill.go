// Package pkg provides utilities for incflat.
package pkg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// LineSpill is an append-only text buffer backed by a temp file. Writes are
// held on disk until WriteTo replays them, so large outputs never sit in
// memory.
type LineSpill interface {
	io.Writer
	io.WriterTo
	Len() uint64
	Path() string
	Close() error
}

type lineSpillImpl struct {
	path   string
	file   *os.File
	buf    *bufio.Writer
	mu     sync.Mutex
	length uint64
	closed bool
}

// Write implements io.Writer. Len counts the newline bytes written.
func (s *lineSpillImpl) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, fmt.Errorf("write to closed spill %s", s.path)
	}

	n, err := s.buf.Write(p)
	s.length += uint64(bytes.Count(p[:n], []byte{'\n'}))

	if err != nil {
		slog.Error("failed to write spill", "path", s.path, "error", err)
		return n, fmt.Errorf("failed to write spill: %w", err)
	}

	return n, nil
}

// Path implements LineSpill.
func (s *lineSpillImpl) Path() string {
	return s.path
}

// Len implements LineSpill.
func (s *lineSpillImpl) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

// WriteTo replays everything written so far to w.
func (s *lineSpillImpl) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, fmt.Errorf("replay of closed spill %s", s.path)
	}

	if err := s.buf.Flush(); err != nil {
		slog.Error("failed to flush spill", "path", s.path, "error", err)
		return 0, fmt.Errorf("failed to flush spill: %w", err)
	}

	file, err := os.Open(s.path)
	if err != nil {
		slog.Error("failed to open spill for replay", "path", s.path, "error", err)
		return 0, fmt.Errorf("failed to open spill: %w", err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Error("failed to close spill reader", "path", s.path, "error", err)
		}
	}()

	n, err := io.Copy(w, file)
	if err != nil {
		return n, fmt.Errorf("failed to replay spill: %w", err)
	}

	slog.Debug("replayed spill", "path", s.path, "lines", s.length, "bytes", n)

	return n, nil
}

// Close releases the backing file and removes it.
func (s *lineSpillImpl) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true

	if err := s.file.Close(); err != nil {
		slog.Error("failed to close spill", "path", s.path, "error", err)
		return err
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove spill", "path", s.path, "error", err)
		return err
	}

	slog.Debug("closed spill", "path", s.path, "lines", s.length)

	return nil
}

// NewLineSpill creates a spill file in dir, or in the system temp directory
// when dir is empty.
func NewLineSpill(dir string) (LineSpill, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		slog.Error("failed to create spill directory", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "incflat-spill-*.txt")
	if err != nil {
		slog.Error("failed to create spill file", "path", dir, "error", err)
		return nil, fmt.Errorf("failed to create spill file: %w", err)
	}

	slog.Debug("created spill", "path", file.Name())

	return &lineSpillImpl{
		path: file.Name(),
		file: file,
		buf:  bufio.NewWriter(file),
	}, nil
}
