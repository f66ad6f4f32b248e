package pkg

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineSpill(t *testing.T) {
	t.Run("NewLineSpill in custom dir", func(t *testing.T) {
		dir := t.TempDir()

		spill, err := NewLineSpill(dir)
		require.NoError(t, err)
		defer spill.Close()

		require.Contains(t, spill.Path(), dir)
		require.Equal(t, uint64(0), spill.Len())
	})

	t.Run("NewLineSpill defaults to temp dir", func(t *testing.T) {
		spill, err := NewLineSpill("")
		require.NoError(t, err)
		defer spill.Close()

		require.Contains(t, spill.Path(), "incflat-spill-")
	})

	t.Run("Write counts lines and WriteTo replays them", func(t *testing.T) {
		spill, err := NewLineSpill(t.TempDir())
		require.NoError(t, err)
		defer spill.Close()

		_, err = spill.Write([]byte("first\nsec"))
		require.NoError(t, err)
		_, err = spill.Write([]byte("ond\nthird\n"))
		require.NoError(t, err)

		require.Equal(t, uint64(3), spill.Len())

		var out bytes.Buffer

		n, err := spill.WriteTo(&out)
		require.NoError(t, err)
		require.Equal(t, int64(len("first\nsecond\nthird\n")), n)
		require.Equal(t, "first\nsecond\nthird\n", out.String())

		out.Reset()
		_, err = spill.WriteTo(&out)
		require.NoError(t, err)
		require.Equal(t, "first\nsecond\nthird\n", out.String(), "replay is repeatable")
	})

	t.Run("Close removes the backing file", func(t *testing.T) {
		spill, err := NewLineSpill(t.TempDir())
		require.NoError(t, err)

		path := spill.Path()
		require.NoError(t, spill.Close())
		require.NoError(t, spill.Close(), "second close is a no-op")

		_, err = os.Stat(path)
		require.True(t, os.IsNotExist(err))
	})

	t.Run("closed spill rejects writes and replays", func(t *testing.T) {
		spill, err := NewLineSpill(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, spill.Close())

		_, err = spill.Write([]byte("late\n"))
		require.Error(t, err)

		_, err = spill.WriteTo(&bytes.Buffer{})
		require.Error(t, err)
	})
}
