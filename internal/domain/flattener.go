package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"incflat.dev/pkg/incflat/internal/adapter"
	m "incflat.dev/pkg/incflat/internal/model"
)

// ExpandArgs configures a single flatten of one root file.
type ExpandArgs struct {
	Root        m.Path
	SearchPaths m.SearchPaths
	Output      io.Writer

	// DetectCycles fails with IncludeCycleError instead of recursing forever
	// when a file is reached again through its own include chain.
	DetectCycles bool
	// MaxDepth bounds include nesting. Zero means unlimited.
	MaxDepth int

	Observer IncludeObserver
}

// FlattenStats summarises what a flatten produced, including partial runs.
type FlattenStats struct {
	Lines    int
	Includes int
}

// Flattener expands every include directive of a root file into Output.
type Flattener interface {
	// Flatten returns nil when every include resolved. On failure the lines
	// produced before the failing directive have already reached Output.
	Flatten(ctx context.Context, args ExpandArgs) (FlattenStats, error)
}

type flattener struct {
	fsAdapter adapter.SourceFSAdapter
	resolver  Resolver
}

// NewFlattener constructs a Flattener that reads through fsAdapter and sends
// unresolved-include diagnostics to reporter.
func NewFlattener(fsAdapter adapter.SourceFSAdapter, reporter DiagnosticReporter) Flattener {
	return &flattener{
		fsAdapter: fsAdapter,
		resolver:  NewResolver(fsAdapter, reporter),
	}
}

func (f *flattener) Flatten(ctx context.Context, args ExpandArgs) (stats FlattenStats, err error) {
	if err := ctx.Err(); err != nil {
		return FlattenStats{}, err
	}

	file, err := f.fsAdapter.Open(args.Root)
	if err != nil {
		slog.Error("Failed to open root file", "root", args.Root, "error", err)
		return FlattenStats{}, fmt.Errorf("%w: %s: %w", ErrRootUnreadable, args.Root, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close root file", "root", args.Root, "error", closeErr)
		}
	}()

	out := NewAccumulator(args.Output)
	exp := &expander{
		fsAdapter:    f.fsAdapter,
		resolver:     f.resolver,
		out:          out,
		searchPaths:  args.SearchPaths,
		observer:     args.Observer,
		detectCycles: args.DetectCycles,
		maxDepth:     args.MaxDepth,
		onChain:      map[m.Path]struct{}{},
	}

	// Partial output is flushed on failure too.
	defer func() {
		stats = FlattenStats{Lines: out.Lines(), Includes: exp.includes}

		if flushErr := out.Flush(); flushErr != nil && err == nil {
			err = fmt.Errorf("flush output: %w", flushErr)
		}
	}()

	if args.DetectCycles {
		leave, pushErr := exp.push(args.Root, m.Diagnostic{File: args.Root})
		if pushErr != nil {
			return stats, pushErr
		}

		defer leave()
	}

	slog.Debug("Flattening root", "root", args.Root, "searchPaths", len(args.SearchPaths))

	return stats, exp.expand(ctx, m.SourceContext{Path: args.Root}, file)
}
