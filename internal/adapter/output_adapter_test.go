package adapter

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "incflat.dev/pkg/incflat/internal/model"
)

func TestLocalOutputAdapter_Create(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out", "a.cpp")

	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o750))
	require.NoError(t, os.WriteFile(target, []byte("stale content that is longer\n"), 0o644))

	out := NewLocalOutputAdapter()

	w, err := out.Create(m.Path(target))
	require.NoError(t, err)

	lock := flock.New(target + lockSuffix)
	locked, err := lock.TryLock()
	require.NoError(t, err)
	assert.False(t, locked, "destination is locked while open")

	_, err = io.WriteString(w, "fresh\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	locked, err = lock.TryLock()
	require.NoError(t, err)
	assert.True(t, locked, "lock is released on close")
	require.NoError(t, lock.Unlock())

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", string(data))
}

func TestLocalOutputAdapter_CreateMakesParentDirs(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "c.txt")

	w, err := NewLocalOutputAdapter().Create(m.Path(target))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, err = os.Stat(target)
	require.NoError(t, err)
}

func TestLocalOutputAdapter_Commit(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.cpp")
	require.NoError(t, os.WriteFile(target, []byte("old\n"), 0o600))

	err := NewLocalOutputAdapter().Commit(m.Path(target), strings.NewReader("new\ncontent\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new\ncontent\n", string(data))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	assertNoTempFiles(t, dir)
}

type failingSource struct{}

func (failingSource) WriteTo(w io.Writer) (int64, error) {
	n, _ := io.WriteString(w, "partial")
	return int64(n), errors.New("source broke")
}

func TestLocalOutputAdapter_CommitFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.cpp")
	require.NoError(t, os.WriteFile(target, []byte("old\n"), 0o644))

	err := NewLocalOutputAdapter().Commit(m.Path(target), failingSource{})
	require.ErrorContains(t, err, "source broke")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old\n", string(data))

	assertNoTempFiles(t, dir)
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, entry := range entries {
		assert.False(t, strings.HasPrefix(entry.Name(), ".incflat-"), "leftover temp file %s", entry.Name())
	}
}
