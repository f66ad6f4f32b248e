// Package adapter contains filesystem and output adapters for the incflat CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	m "incflat.dev/pkg/incflat/internal/model"
)

// ErrIsDirectory is returned when a directory is opened as a source file.
var ErrIsDirectory = errors.New("is a directory")

// SourceFSAdapter abstracts the filesystem reads the flattener performs. It
// hides direct `os` access so resolution can be tested against an in-memory
// tree.
type SourceFSAdapter interface {
	// Open opens a regular file for reading. Directories are rejected.
	Open(path m.Path) (io.ReadCloser, error)

	// ReadFile loads a file and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file, creating parent directories.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Canonical returns an absolute, cleaned form of path. Symlinks are not
	// resolved.
	Canonical(path m.Path) (m.Path, error)

	// JoinPath joins path elements into a single, cleaned path.
	JoinPath(elem ...string) m.Path

	// Concat appends name to dir with one separator and no cleaning, so "."
	// and ".." steps are left for the filesystem to resolve. An empty dir
	// yields name unchanged.
	Concat(dir m.Path, name string) m.Path

	// Dir returns everything before the last separator of path, without
	// cleaning. A bare file name has an empty Dir.
	Dir(path m.Path) m.Path
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of an afero.Fs.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter over the real filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter over fs. Tests pass an
// afero.NewMemMapFs().
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// Open opens path for reading.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	f, err := a.fs.Open(string(path))
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("open %s: %w", path, ErrIsDirectory)
	}

	return f, nil
}

// ReadFile loads file contents.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return afero.ReadFile(a.fs, string(path))
}

// WriteFile writes content to path, creating missing parent directories.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	if err := a.fs.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return afero.WriteFile(a.fs, string(path), content, perm)
}

// Canonical returns the absolute, cleaned path.
func (a *LocalSourceFSAdapter) Canonical(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

// Concat appends name to dir.
func (a *LocalSourceFSAdapter) Concat(dir m.Path, name string) m.Path {
	d := string(dir)
	if d == "" {
		return m.Path(name)
	}

	if os.IsPathSeparator(d[len(d)-1]) {
		return m.Path(d + name)
	}

	return m.Path(d + string(filepath.Separator) + name)
}

// Dir returns the unclean directory part of path.
func (a *LocalSourceFSAdapter) Dir(path m.Path) m.Path {
	p := string(path)

	i := len(p) - 1
	for i >= 0 && !os.IsPathSeparator(p[i]) {
		i--
	}

	switch {
	case i < 0:
		return ""
	case i == 0:
		return m.Path(p[:1])
	default:
		return m.Path(p[:i])
	}
}
