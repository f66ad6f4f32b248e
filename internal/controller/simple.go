package controller

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "incflat.dev/pkg/incflat/internal/model"
)

// SimpleUI implements UI using the cobra command's writers. Reports go to the
// command's stdout; progress and diagnostics go to its stderr.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex

	okColor   *color.Color
	failColor *color.Color
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:       cmd,
		okColor:   color.New(color.FgGreen),
		failColor: color.New(color.FgRed, color.Bold),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// DisplayDiagnostic prints an unresolved-include diagnostic.
func (s *SimpleUI) DisplayDiagnostic(_ context.Context, diagnostic m.Diagnostic) {
	s.errPrintf("%s\n", diagnostic.String())
}

// DisplayFlattenStarted is silent; results are reported on completion.
func (s *SimpleUI) DisplayFlattenStarted(_ context.Context, _ m.Path) {}

// DisplayFlattenResult reports the outcome of a root written to a file.
// Stream output gets no status line so it stays clean for pipes.
func (s *SimpleUI) DisplayFlattenResult(ctx context.Context, result m.FlattenResult) {
	if ctx.Err() != nil || result.Output == "" {
		return
	}

	if result.Status == m.Failed {
		s.errPrintf("%s %s: %v\n", s.failColor.Sprint("FAIL"), result.Root, result.Err)
		return
	}

	s.errPrintf("%s %s -> %s (%d lines, %d includes)\n",
		s.okColor.Sprint("ok"), result.Root, result.Output, result.Lines, result.Includes)
}

// DisplaySummary prints totals for batch runs.
func (s *SimpleUI) DisplaySummary(ctx context.Context, results []m.FlattenResult) {
	if ctx.Err() != nil || len(results) < 2 {
		return
	}

	failed := 0

	for _, result := range results {
		if result.Status == m.Failed {
			failed++
		}
	}

	summary := fmt.Sprintf("Flattened %d of %d file(s)", len(results)-failed, len(results))
	if failed > 0 {
		s.errPrintf("%s, %s\n", summary, s.failColor.Sprintf("%d failed", failed))
		return
	}

	s.errPrintf("%s\n", summary)
}

// DisplayIncludeTree renders the resolved includes as a table.
func (s *SimpleUI) DisplayIncludeTree(ctx context.Context, root m.Path, edges []m.IncludeEdge) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.outPrintf("%s\n%s", root, renderIncludeTable(edges))

	return nil
}

func renderIncludeTable(edges []m.IncludeEdge) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Depth", "From", "Line", "Include", "Resolved"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, edge := range edges {
		table.Append([]string{
			fmt.Sprintf("%d", edge.Depth),
			string(edge.From),
			fmt.Sprintf("%d", edge.Line),
			formatDirective(edge),
			string(edge.Resolved),
		})
	}

	table.SetFooter([]string{"", "", "", fmt.Sprintf("Total %d", len(edges)), ""})
	table.Render()

	return tableBuffer.String()
}

func formatDirective(edge m.IncludeEdge) string {
	if edge.Kind == m.IncludeBracketed {
		return "<" + edge.Name + ">"
	}

	return `"` + edge.Name + `"`
}

// DisplayCheckResult prints the diff against the expected file, if any.
func (s *SimpleUI) DisplayCheckResult(ctx context.Context, expected m.Path, diff string) {
	if ctx.Err() != nil {
		return
	}

	if diff == "" {
		s.outPrintf("%s %s is up to date\n", s.okColor.Sprint("ok"), expected)
		return
	}

	s.outPrintf("%s %s is out of date\n%s", s.failColor.Sprint("FAIL"), expected, diff)
}

// DisplaySelfTestResult prints the self-test verdict.
func (s *SimpleUI) DisplaySelfTestResult(ctx context.Context, passed bool, details string) {
	if ctx.Err() != nil {
		return
	}

	if passed {
		s.outPrintf("%s self-test\n", s.okColor.Sprint("PASS"))
		return
	}

	s.outPrintf("%s self-test\n%s", s.failColor.Sprint("FAIL"), details)
}

func (s *SimpleUI) outPrintf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errPrintf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
