package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "incflat.dev/pkg/incflat/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// TUI shows live batch progress with Bubble Tea on the command's stderr.
// Outside batch mode it behaves like SimpleUI.
type TUI struct {
	*SimpleUI

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd)}
}

// Start launches the progress program in batch mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options...)
	if cfg.mode != ModeBatch {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(
		newBatchModel(cfg.total),
		tea.WithOutput(t.cmd.ErrOrStderr()),
		tea.WithInput(nil),
		tea.WithContext(ctx),
	)
	t.done = make(chan struct{})

	program := t.program
	done := t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("Progress display stopped", "error", err)
		}
	}()

	return nil
}

// Close stops the progress program and waits for its final frame.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program, t.done = nil, nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(batchDoneMsg{})
	<-done
}

func (t *TUI) active() *tea.Program {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program
}

// DisplayDiagnostic adds the diagnostic to the progress view.
func (t *TUI) DisplayDiagnostic(ctx context.Context, diagnostic m.Diagnostic) {
	if program := t.active(); program != nil {
		program.Send(diagnosticMsg{diagnostic: diagnostic})
		return
	}

	t.SimpleUI.DisplayDiagnostic(ctx, diagnostic)
}

// DisplayFlattenStarted marks root as running.
func (t *TUI) DisplayFlattenStarted(ctx context.Context, root m.Path) {
	if program := t.active(); program != nil {
		program.Send(rootStartedMsg{root: root})
		return
	}

	t.SimpleUI.DisplayFlattenStarted(ctx, root)
}

// DisplayFlattenResult marks root as finished.
func (t *TUI) DisplayFlattenResult(ctx context.Context, result m.FlattenResult) {
	if program := t.active(); program != nil {
		program.Send(rootFinishedMsg{result: result})
		return
	}

	t.SimpleUI.DisplayFlattenResult(ctx, result)
}

// DisplaySummary is rendered by the progress view itself in batch mode.
func (t *TUI) DisplaySummary(ctx context.Context, results []m.FlattenResult) {
	if t.active() != nil {
		return
	}

	t.SimpleUI.DisplaySummary(ctx, results)
}

type rootStartedMsg struct {
	root m.Path
}

type rootFinishedMsg struct {
	result m.FlattenResult
}

type diagnosticMsg struct {
	diagnostic m.Diagnostic
}

type batchDoneMsg struct{}

// batchModel is the Bubble Tea model for batch progress.
type batchModel struct {
	spinner     spinner.Model
	total       int
	running     []m.Path
	results     []m.FlattenResult
	diagnostics []m.Diagnostic
	finished    bool
}

func newBatchModel(total int) batchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return batchModel{
		spinner: s,
		total:   total,
	}
}

func (bm batchModel) Init() tea.Cmd {
	return bm.spinner.Tick
}

func (bm batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rootStartedMsg:
		bm.running = append(bm.running, msg.root)
		return bm, nil

	case rootFinishedMsg:
		bm.running = removePath(bm.running, msg.result.Root)
		bm.results = append(bm.results, msg.result)

		return bm, nil

	case diagnosticMsg:
		bm.diagnostics = append(bm.diagnostics, msg.diagnostic)
		return bm, nil

	case batchDoneMsg:
		bm.finished = true
		return bm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		bm.spinner, cmd = bm.spinner.Update(msg)

		return bm, cmd
	}

	return bm, nil
}

func removePath(paths []m.Path, target m.Path) []m.Path {
	out := paths[:0]

	for _, p := range paths {
		if p != target {
			out = append(out, p)
		}
	}

	return out
}

func (bm batchModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("incflat: %d/%d file(s)", len(bm.results), bm.total)))
	b.WriteString("\n\n")

	for _, result := range bm.results {
		if result.Status == m.Failed {
			fmt.Fprintf(&b, "  %s %s: %v\n", failStyle.Render("✗"), result.Root, result.Err)
			continue
		}

		fmt.Fprintf(&b, "  %s %s %s\n", okStyle.Render("✓"), result.Root,
			dimStyle.Render(fmt.Sprintf("-> %s (%d lines, %d includes)", result.Output, result.Lines, result.Includes)))
	}

	for _, root := range bm.running {
		fmt.Fprintf(&b, "  %s %s\n", bm.spinner.View(), root)
	}

	if len(bm.diagnostics) > 0 {
		b.WriteString("\n")

		for _, diagnostic := range bm.diagnostics {
			fmt.Fprintf(&b, "  %s\n", failStyle.Render(diagnostic.String()))
		}
	}

	if bm.finished {
		b.WriteString("\n")
		b.WriteString(bm.summary())
		b.WriteString("\n")
	}

	return b.String()
}

func (bm batchModel) summary() string {
	failed := 0

	for _, result := range bm.results {
		if result.Status == m.Failed {
			failed++
		}
	}

	line := fmt.Sprintf("Flattened %d of %d file(s)", len(bm.results)-failed, bm.total)
	if failed > 0 {
		return line + ", " + failStyle.Render(fmt.Sprintf("%d failed", failed))
	}

	return okStyle.Render(line)
}
