// Package controller provides the operator-facing output of the flattener.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "incflat.dev/pkg/incflat/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSingle StartMode = iota
	ModeBatch
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	total int
}

// WithSingleMode is used when one root is flattened, possibly to stdout.
func WithSingleMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSingle
		c.total = 1
	}
}

// WithBatchMode is used when total roots are flattened into an output directory.
func WithBatchMode(total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
		c.total = total
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSingle, total: 1}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines how progress, diagnostics and reports reach the operator.
// Implementations must be safe for concurrent use: batch runs report from
// several goroutines.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayDiagnostic(ctx context.Context, diagnostic m.Diagnostic)
	DisplayFlattenStarted(ctx context.Context, root m.Path)
	// DisplayFlattenResult must show the error of a failed result that has
	// an Output path; stream results may stay silent.
	DisplayFlattenResult(ctx context.Context, result m.FlattenResult)
	DisplaySummary(ctx context.Context, results []m.FlattenResult)
	DisplayIncludeTree(ctx context.Context, root m.Path, edges []m.IncludeEdge) error
	DisplayCheckResult(ctx context.Context, expected m.Path, diff string)
	DisplaySelfTestResult(ctx context.Context, passed bool, details string)
}

// NewUI returns the TUI when attached to a terminal and the line-oriented UI
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
