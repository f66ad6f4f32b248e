package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "incflat.dev/pkg/incflat/internal/model"
)

func newBufferedUI(t *testing.T) (*SimpleUI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var stdout, stderr bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	return NewSimpleUI(cmd), &stdout, &stderr
}

func TestSimpleUI_DisplayDiagnosticGoesToStderr(t *testing.T) {
	ui, stdout, stderr := newBufferedUI(t)

	ui.DisplayDiagnostic(context.Background(), m.Diagnostic{Name: "dummy.txt", File: "sources/a.cpp", Line: 8})

	assert.Empty(t, stdout.String())
	assert.Equal(t, "unknown include file dummy.txt at file sources/a.cpp at line 8\n", stderr.String())
}

func TestSimpleUI_DisplayFlattenResult(t *testing.T) {
	tests := []struct {
		name   string
		result m.FlattenResult
		want   string
	}{
		{
			name:   "stream output stays silent",
			result: m.FlattenResult{Root: "a.cpp", Status: m.Flattened, Lines: 3},
			want:   "",
		},
		{
			name:   "file output success",
			result: m.FlattenResult{Root: "a.cpp", Output: "out/a.cpp", Status: m.Flattened, Lines: 13, Includes: 5},
			want:   "ok a.cpp -> out/a.cpp (13 lines, 5 includes)\n",
		},
		{
			name:   "file output failure",
			result: m.FlattenResult{Root: "a.cpp", Output: "out/a.cpp", Status: m.Failed, Err: errors.New("boom")},
			want:   "FAIL a.cpp: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, stdout, stderr := newBufferedUI(t)

			ui.DisplayFlattenResult(context.Background(), tt.result)

			assert.Empty(t, stdout.String())
			assert.Equal(t, tt.want, stderr.String())
		})
	}
}

func TestSimpleUI_DisplaySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("single result has no summary", func(t *testing.T) {
		ui, _, stderr := newBufferedUI(t)
		ui.DisplaySummary(ctx, []m.FlattenResult{{Status: m.Flattened}})
		assert.Empty(t, stderr.String())
	})

	t.Run("all succeeded", func(t *testing.T) {
		ui, _, stderr := newBufferedUI(t)
		ui.DisplaySummary(ctx, []m.FlattenResult{{Status: m.Flattened}, {Status: m.Flattened}})
		assert.Equal(t, "Flattened 2 of 2 file(s)\n", stderr.String())
	})

	t.Run("some failed", func(t *testing.T) {
		ui, _, stderr := newBufferedUI(t)
		ui.DisplaySummary(ctx, []m.FlattenResult{{Status: m.Flattened}, {Status: m.Failed}, {Status: m.Failed}})
		assert.Equal(t, "Flattened 1 of 3 file(s), 2 failed\n", stderr.String())
	})
}

func TestSimpleUI_DisplayIncludeTree(t *testing.T) {
	ui, stdout, _ := newBufferedUI(t)

	edges := []m.IncludeEdge{
		{From: "src/a.cpp", Line: 2, Kind: m.IncludeQuoted, Name: "dir1/b.h", Resolved: "src/dir1/b.h", Depth: 1},
		{From: "src/dir1/b.h", Line: 5, Kind: m.IncludeBracketed, Name: "std1.h", Resolved: "include1/std1.h", Depth: 2},
	}

	err := ui.DisplayIncludeTree(context.Background(), "src/a.cpp", edges)
	require.NoError(t, err)

	got := stdout.String()
	assert.True(t, strings.HasPrefix(got, "src/a.cpp\n"))

	for _, want := range []string{"DEPTH", "RESOLVED", `"dir1/b.h"`, "<std1.h>", "include1/std1.h", "TOTAL 2"} {
		assert.Contains(t, got, want)
	}
}

func TestSimpleUI_DisplayIncludeTree_CancelledContext(t *testing.T) {
	ui, stdout, _ := newBufferedUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayIncludeTree(ctx, "a.cpp", nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, stdout.String())
}

func TestSimpleUI_DisplayCheckResult(t *testing.T) {
	t.Run("up to date", func(t *testing.T) {
		ui, stdout, _ := newBufferedUI(t)
		ui.DisplayCheckResult(context.Background(), "a.flat", "")
		assert.Equal(t, "ok a.flat is up to date\n", stdout.String())
	})

	t.Run("out of date", func(t *testing.T) {
		ui, stdout, _ := newBufferedUI(t)
		ui.DisplayCheckResult(context.Background(), "a.flat", "-old\n+new\n")
		assert.Equal(t, "FAIL a.flat is out of date\n-old\n+new\n", stdout.String())
	})
}

func TestSimpleUI_DisplaySelfTestResult(t *testing.T) {
	ui, stdout, _ := newBufferedUI(t)

	ui.DisplaySelfTestResult(context.Background(), true, "")
	ui.DisplaySelfTestResult(context.Background(), false, "diagnostic mismatch\n")

	assert.Equal(t, "PASS self-test\nFAIL self-test\ndiagnostic mismatch\n", stdout.String())
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestStartOptions(t *testing.T) {
	assert.Equal(t, StartConfig{mode: ModeSingle, total: 1}, newStartConfig())
	assert.Equal(t, StartConfig{mode: ModeBatch, total: 3}, newStartConfig(WithBatchMode(3)))
	assert.Equal(t, StartConfig{mode: ModeSingle, total: 1}, newStartConfig(WithBatchMode(3), WithSingleMode()))
}
