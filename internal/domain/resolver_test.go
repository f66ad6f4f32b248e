package domain

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"incflat.dev/pkg/incflat/internal/adapter"
	m "incflat.dev/pkg/incflat/internal/model"
)

func newMemSource(t *testing.T, files map[string]string) *adapter.LocalSourceFSAdapter {
	t.Helper()

	fs := adapter.NewSourceFSAdapter(afero.NewMemMapFs())
	for path, content := range files {
		require.NoError(t, fs.WriteFile(m.Path(path), []byte(content), 0o644))
	}

	return fs
}

func resolveContent(t *testing.T, file io.ReadCloser) string {
	t.Helper()

	defer file.Close()

	data, err := io.ReadAll(file)
	require.NoError(t, err)

	return string(data)
}

func TestResolver_QuotedPrefersIncludingDirectory(t *testing.T) {
	fs := newMemSource(t, map[string]string{
		"src/x.h": "local\n",
		"inc/x.h": "search\n",
	})
	resolver := NewResolver(fs, nil)

	path, file, err := resolver.Resolve(context.Background(),
		m.SourceContext{Path: "src/a.cpp", Line: 1},
		m.Directive{Kind: m.IncludeQuoted, Name: "x.h"},
		m.SearchPaths{"inc"})

	require.NoError(t, err)
	assert.Equal(t, m.Path("src/x.h"), path)
	assert.Equal(t, "local\n", resolveContent(t, file))
}

func TestResolver_QuotedFallsBackToSearchPathsInOrder(t *testing.T) {
	fs := newMemSource(t, map[string]string{
		"inc2/x.h": "second\n",
		"inc3/x.h": "third\n",
	})
	resolver := NewResolver(fs, nil)

	path, file, err := resolver.Resolve(context.Background(),
		m.SourceContext{Path: "src/a.cpp", Line: 1},
		m.Directive{Kind: m.IncludeQuoted, Name: "x.h"},
		m.SearchPaths{"inc1", "inc2", "inc3"})

	require.NoError(t, err)
	assert.Equal(t, m.Path("inc2/x.h"), path)
	assert.Equal(t, "second\n", resolveContent(t, file))
}

func TestResolver_BracketedIgnoresIncludingDirectory(t *testing.T) {
	recorder := &diagnosticRecorder{}
	fs := newMemSource(t, map[string]string{
		"src/x.h": "local\n",
	})
	resolver := NewResolver(fs, recorder)

	_, file, err := resolver.Resolve(context.Background(),
		m.SourceContext{Path: "src/a.cpp", Line: 4},
		m.Directive{Kind: m.IncludeBracketed, Name: "x.h"},
		nil)

	assert.Nil(t, file)
	require.ErrorIs(t, err, ErrUnresolvedInclude)

	var unresolved *UnresolvedIncludeError
	require.ErrorAs(t, err, &unresolved)
	assert.Equal(t, m.Diagnostic{Name: "x.h", File: "src/a.cpp", Line: 4}, unresolved.Diagnostic)
	assert.Equal(t, []m.Diagnostic{unresolved.Diagnostic}, recorder.diagnostics)
}

func TestResolver_SkipsDirectoryCandidates(t *testing.T) {
	fs := newMemSource(t, map[string]string{
		"inc1/x.h/placeholder": "",
		"inc2/x.h":             "file\n",
	})
	resolver := NewResolver(fs, nil)

	path, file, err := resolver.Resolve(context.Background(),
		m.SourceContext{Path: "a.cpp", Line: 1},
		m.Directive{Kind: m.IncludeBracketed, Name: "x.h"},
		m.SearchPaths{"inc1", "inc2"})

	require.NoError(t, err)
	assert.Equal(t, m.Path("inc2/x.h"), path)
	assert.Equal(t, "file\n", resolveContent(t, file))
}

func TestResolver_AbsoluteNameIsUsedAsIs(t *testing.T) {
	fs := newMemSource(t, map[string]string{
		"/opt/shared/x.h": "abs\n",
	})
	resolver := NewResolver(fs, nil)

	path, file, err := resolver.Resolve(context.Background(),
		m.SourceContext{Path: "src/a.cpp", Line: 1},
		m.Directive{Kind: m.IncludeBracketed, Name: "/opt/shared/x.h"},
		m.SearchPaths{"inc"})

	require.NoError(t, err)
	assert.Equal(t, m.Path("/opt/shared/x.h"), path)
	assert.Equal(t, "abs\n", resolveContent(t, file))
}

func TestResolver_NilReporterOnlyReturnsError(t *testing.T) {
	resolver := NewResolver(newMemSource(t, nil), nil)

	_, _, err := resolver.Resolve(context.Background(),
		m.SourceContext{Path: "a.cpp", Line: 2},
		m.Directive{Kind: m.IncludeQuoted, Name: "missing.h"},
		nil)

	assert.EqualError(t, err, "unknown include file missing.h at file a.cpp at line 2")
}

func TestResolver_DotDotThroughMissingDirectoryFails(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.h"), []byte("B\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "dir1"), 0o750))

	resolver := NewResolver(adapter.NewLocalSourceFSAdapter(), nil)
	from := m.SourceContext{Path: m.Path(filepath.Join(root, "a.cpp")), Line: 1}

	_, _, err := resolver.Resolve(context.Background(), from,
		m.Directive{Kind: m.IncludeQuoted, Name: "nosuchdir/../b.h"}, nil)
	require.ErrorIs(t, err, ErrUnresolvedInclude)

	path, file, err := resolver.Resolve(context.Background(), from,
		m.Directive{Kind: m.IncludeQuoted, Name: "dir1/../b.h"}, nil)
	require.NoError(t, err)
	assert.Equal(t, m.Path(root+"/dir1/../b.h"), path)
	assert.Equal(t, "B\n", resolveContent(t, file))
}

func TestResolver_KeepsDotPrefixOfIncludingFile(t *testing.T) {
	recorder := &diagnosticRecorder{}
	resolver := NewResolver(newMemSource(t, map[string]string{"b.h": "b\n"}), recorder)

	path, file, err := resolver.Resolve(context.Background(),
		m.SourceContext{Path: "./a.cpp", Line: 1},
		m.Directive{Kind: m.IncludeQuoted, Name: "b.h"},
		nil)
	require.NoError(t, err)
	assert.Equal(t, m.Path("./b.h"), path)
	assert.Equal(t, "b\n", resolveContent(t, file))

	_, _, err = resolver.Resolve(context.Background(),
		m.SourceContext{Path: "./a.cpp", Line: 3},
		m.Directive{Kind: m.IncludeQuoted, Name: "c.h"},
		nil)
	require.ErrorIs(t, err, ErrUnresolvedInclude)
	assert.Equal(t, []m.Diagnostic{{Name: "c.h", File: "./a.cpp", Line: 3}}, recorder.diagnostics)
}
