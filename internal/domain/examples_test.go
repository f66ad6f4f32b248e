package domain

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"incflat.dev/pkg/incflat/internal/adapter"
	"incflat.dev/pkg/incflat/internal/controller"
	m "incflat.dev/pkg/incflat/internal/model"
)

var exampleDir = filepath.Join("..", "..", "examples", "cpp")

func examplePath(elem ...string) m.Path {
	return m.Path(filepath.Join(append([]string{exampleDir}, elem...)...))
}

func exampleSearchPaths() m.SearchPaths {
	return m.SearchPaths{examplePath("sources", "include1"), examplePath("sources", "include2")}
}

func TestExamples_FailingRootOnDisk(t *testing.T) {
	recorder := &diagnosticRecorder{}

	var out bytes.Buffer

	stats, err := NewFlattener(adapter.NewLocalSourceFSAdapter(), recorder).Flatten(context.Background(), ExpandArgs{
		Root:        examplePath("sources", "a.cpp"),
		SearchPaths: exampleSearchPaths(),
		Output:      &out,
	})

	require.ErrorIs(t, err, ErrUnresolvedInclude)
	assert.Equal(t, selfTestExpected, out.String())
	assert.Equal(t, 13, stats.Lines)
	assert.Equal(t, []m.Diagnostic{{Name: "dummy.txt", File: examplePath("sources", "a.cpp"), Line: 8}}, recorder.diagnostics)
}

func TestExamples_CheckCommittedOutput(t *testing.T) {
	fs := adapter.NewLocalSourceFSAdapter()

	var stdout bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)

	ui := controller.NewSimpleUI(cmd)
	workflow := NewWorkflow(fs, adapter.NewLocalOutputAdapter(), adapter.NewManifestStore(), ui, NewFlattener(fs, ui))

	err := workflow.Check(context.Background(), CheckArgs{
		Root:        examplePath("sources", "ok.cpp"),
		Expected:    examplePath("ok.flat.cpp"),
		SearchPaths: exampleSearchPaths(),
	})

	require.NoError(t, err, stdout.String())
	assert.Contains(t, stdout.String(), "is up to date")
}
