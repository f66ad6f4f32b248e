package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	m "incflat.dev/pkg/incflat/internal/model"
)

const lockSuffix = ".lock"

// OutputAdapter opens flattened-output destinations. Every destination is
// guarded by an exclusive lock on "<path>.lock" so two runs never interleave
// writes to the same file.
type OutputAdapter interface {
	// Create truncates path and returns a writer that holds the lock until Close.
	Create(path m.Path) (io.WriteCloser, error)

	// Commit replaces path with the contents of src in one rename.
	Commit(path m.Path, src io.WriterTo) error
}

// LocalOutputAdapter writes destinations to the local filesystem.
type LocalOutputAdapter struct{}

// NewLocalOutputAdapter constructs a LocalOutputAdapter.
func NewLocalOutputAdapter() *LocalOutputAdapter {
	return &LocalOutputAdapter{}
}

type lockedFile struct {
	*os.File
	lock *flock.Flock
}

func (f *lockedFile) Close() error {
	closeErr := f.File.Close()

	if err := f.lock.Unlock(); err != nil {
		slog.Error("failed to release output lock", "path", f.lock.Path(), "error", err)

		if closeErr == nil {
			closeErr = fmt.Errorf("failed to release lock on %s: %w", f.lock.Path(), err)
		}
	}

	return closeErr
}

// Create opens path for writing.
func (a *LocalOutputAdapter) Create(path m.Path) (io.WriteCloser, error) {
	target := string(path)

	if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create directory for %s: %w", target, err)
	}

	lock, err := acquire(target)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - destination is chosen by the operator
	file, err := os.Create(target)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("failed to create %s: %w", target, err)
	}

	slog.Debug("opened output", "path", target)

	return &lockedFile{File: file, lock: lock}, nil
}

// Commit writes src to a temp file next to path and renames it into place.
func (a *LocalOutputAdapter) Commit(path m.Path, src io.WriterTo) error {
	target := string(path)
	dir := filepath.Dir(target)

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	lock, err := acquire(target)
	if err != nil {
		return err
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			slog.Error("failed to release output lock", "path", lock.Path(), "error", err)
		}
	}()

	tmp, err := os.CreateTemp(dir, ".incflat-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	committed := false

	defer func() {
		if committed {
			return
		}

		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := src.WriteTo(tmp); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", target, err)
	}

	committed = true

	slog.Debug("committed output", "path", target)

	return nil
}

func acquire(target string) (*flock.Flock, error) {
	lock := flock.New(target + lockSuffix)
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock on %s: %w", lock.Path(), err)
	}

	return lock, nil
}
