// Package domain implements include resolution and the flatten workflows.
package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/sync/errgroup"
	"incflat.dev/pkg/incflat/internal/adapter"
	"incflat.dev/pkg/incflat/internal/controller"
	m "incflat.dev/pkg/incflat/internal/model"
	"incflat.dev/pkg/incflat/pkg"
)

// StdoutPath selects the command's standard output as the destination.
const StdoutPath m.Path = "-"

// Tree output formats.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// GuardArgs are the opt-in recursion guards shared by every workflow.
type GuardArgs struct {
	DetectCycles bool
	MaxDepth     int
}

// FlattenArgs contains the arguments for flattening one or more root files.
type FlattenArgs struct {
	GuardArgs
	Roots       []m.Path
	SearchPaths m.SearchPaths
	// Output is the destination of a single root. Empty or StdoutPath writes
	// to Stdout.
	Output m.Path
	// OutDir receives one file per root, named after the root's base name.
	OutDir  m.Path
	Stdout  io.Writer
	Atomic  bool
	Threads int
}

// TreeArgs contains the arguments for reporting the include tree of a root.
type TreeArgs struct {
	GuardArgs
	Root        m.Path
	SearchPaths m.SearchPaths
	Format      string
	Stdout      io.Writer
}

// CheckArgs contains the arguments for comparing a root's flattened output
// with an existing file.
type CheckArgs struct {
	GuardArgs
	Root        m.Path
	Expected    m.Path
	SearchPaths m.SearchPaths
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Flatten(ctx context.Context, args FlattenArgs) error
	Tree(ctx context.Context, args TreeArgs) error
	Check(ctx context.Context, args CheckArgs) error
	SelfTest(ctx context.Context) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.OutputAdapter
	adapter.ManifestStore
	controller.UI

	flattener Flattener
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	outputAdapter adapter.OutputAdapter,
	manifestStore adapter.ManifestStore,
	ui controller.UI,
	flattener Flattener,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		OutputAdapter:   outputAdapter,
		ManifestStore:   manifestStore,
		UI:              ui,
		flattener:       flattener,
	}
}

type flattenJob struct {
	root   m.Path
	output m.Path
}

func (w *workflow) Flatten(ctx context.Context, args FlattenArgs) error {
	log := slog.With("run", uuid.NewString())

	jobs, err := w.planJobs(args)
	if err != nil {
		log.Error("Invalid flatten arguments", "error", err)
		return err
	}

	mode := controller.WithSingleMode()
	if args.OutDir != "" {
		mode = controller.WithBatchMode(len(jobs))
	}

	if err := w.Start(ctx, mode); err != nil {
		log.Error("Failed to start UI", "error", err)
		return err
	}

	log.Info("Flatten started", "roots", len(jobs), "threads", args.Threads, "atomic", args.Atomic)

	results := make([]m.FlattenResult, len(jobs))

	var group errgroup.Group
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, job := range jobs {
		group.Go(func() error {
			results[i] = w.runJob(ctx, log, job, args)
			return nil
		})
	}

	_ = group.Wait()

	w.DisplaySummary(ctx, results)
	w.Close(ctx)

	var errs []error

	// Failures of file destinations are shown by DisplayFlattenResult.
	shown := true

	for _, result := range results {
		if result.Err != nil {
			errs = append(errs, result.Err)
			shown = shown && result.Output != ""
		}
	}

	log.Info("Flatten finished", "roots", len(jobs), "failed", len(errs))

	switch {
	case len(errs) == 0:
		return nil
	case len(jobs) == 1:
		err = errs[0]
	default:
		err = fmt.Errorf("%d of %d file(s) failed: %w", len(errs), len(jobs), errors.Join(errs...))
	}

	if shown {
		return Reported(err)
	}

	return err
}

// planJobs assigns a destination to every root.
func (w *workflow) planJobs(args FlattenArgs) ([]flattenJob, error) {
	if len(args.Roots) == 0 {
		return nil, errors.New("no root file given")
	}

	if args.OutDir == "" {
		if len(args.Roots) > 1 {
			return nil, errors.New("several root files need an output directory")
		}

		output := args.Output
		if output == StdoutPath {
			output = ""
		}

		return []flattenJob{{root: args.Roots[0], output: output}}, nil
	}

	if args.Output != "" {
		return nil, errors.New("an output file and an output directory cannot both be set")
	}

	jobs := make([]flattenJob, 0, len(args.Roots))
	seen := make(map[m.Path]m.Path, len(args.Roots))

	for _, root := range args.Roots {
		output := w.JoinPath(string(args.OutDir), filepath.Base(string(root)))
		if other, dup := seen[output]; dup {
			return nil, fmt.Errorf("%s and %s would both be written to %s", other, root, output)
		}

		seen[output] = root
		jobs = append(jobs, flattenJob{root: root, output: output})
	}

	return jobs, nil
}

func (w *workflow) runJob(ctx context.Context, log *slog.Logger, job flattenJob, args FlattenArgs) m.FlattenResult {
	start := time.Now()

	w.DisplayFlattenStarted(ctx, job.root)

	stats, err := w.flattenTo(ctx, job, args)

	result := m.FlattenResult{
		Root:     job.root,
		Output:   job.output,
		Lines:    stats.Lines,
		Includes: stats.Includes,
		Status:   m.Flattened,
		Err:      err,
		Duration: time.Since(start),
	}

	if err != nil {
		result.Status = m.Failed
		log.Error("Flatten failed", "root", job.root, "output", job.output, "error", err)
	} else {
		log.Info("Flattened", "root", job.root, "output", job.output, "lines", stats.Lines, "includes", stats.Includes, "duration", result.Duration)
	}

	w.DisplayFlattenResult(ctx, result)

	return result
}

// flattenTo opens the job's destination only once its root is known to be
// readable, so an unreadable root never truncates an existing output.
func (w *workflow) flattenTo(ctx context.Context, job flattenJob, args FlattenArgs) (FlattenStats, error) {
	root, err := w.Open(job.root)
	if err != nil {
		return FlattenStats{}, fmt.Errorf("%w: %s: %w", ErrRootUnreadable, job.root, err)
	}

	_ = root.Close()

	expand := ExpandArgs{
		Root:         job.root,
		SearchPaths:  args.SearchPaths,
		DetectCycles: args.DetectCycles,
		MaxDepth:     args.MaxDepth,
	}

	if args.Atomic {
		return w.flattenAtomic(ctx, job, args, expand)
	}

	if job.output == "" {
		expand.Output = args.Stdout
		return w.flattener.Flatten(ctx, expand)
	}

	dest, err := w.Create(job.output)
	if err != nil {
		return FlattenStats{}, err
	}

	expand.Output = dest
	stats, err := w.flattener.Flatten(ctx, expand)

	if closeErr := dest.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close %s: %w", job.output, closeErr)
	}

	return stats, err
}

// flattenAtomic buffers output in a spill and publishes it only on success.
func (w *workflow) flattenAtomic(ctx context.Context, job flattenJob, args FlattenArgs, expand ExpandArgs) (FlattenStats, error) {
	spill, err := pkg.NewLineSpill("")
	if err != nil {
		return FlattenStats{}, err
	}

	defer func() {
		if err := spill.Close(); err != nil {
			slog.Warn("failed to discard spill", "path", spill.Path(), "error", err)
		}
	}()

	expand.Output = spill

	stats, err := w.flattener.Flatten(ctx, expand)
	if err != nil {
		slog.Debug("discarding buffered output", "root", job.root, "lines", spill.Len())
		return stats, err
	}

	if job.output == "" {
		if _, err := spill.WriteTo(args.Stdout); err != nil {
			return stats, fmt.Errorf("write output: %w", err)
		}

		return stats, nil
	}

	return stats, w.Commit(job.output, spill)
}

func (w *workflow) Tree(ctx context.Context, args TreeArgs) error {
	var edges []m.IncludeEdge

	_, err := w.flattener.Flatten(ctx, ExpandArgs{
		Root:         args.Root,
		SearchPaths:  args.SearchPaths,
		Output:       io.Discard,
		DetectCycles: args.DetectCycles,
		MaxDepth:     args.MaxDepth,
		Observer: func(edge m.IncludeEdge) {
			edges = append(edges, edge)
		},
	})
	if err != nil {
		slog.Error("Failed to build include tree", "root", args.Root, "error", err)
		return err
	}

	switch args.Format {
	case "", FormatTable:
		return w.DisplayIncludeTree(ctx, args.Root, edges)
	case FormatYAML:
		return w.WriteManifest(args.Stdout, m.IncludeManifest{
			Root:        args.Root,
			SearchPaths: args.SearchPaths,
			Includes:    edges,
		})
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", args.Format, FormatTable, FormatYAML)
	}
}

func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	var actual bytes.Buffer

	_, err := w.flattener.Flatten(ctx, ExpandArgs{
		Root:         args.Root,
		SearchPaths:  args.SearchPaths,
		Output:       &actual,
		DetectCycles: args.DetectCycles,
		MaxDepth:     args.MaxDepth,
	})
	if err != nil {
		slog.Error("Failed to flatten for check", "root", args.Root, "error", err)
		return err
	}

	expected, err := w.ReadFile(args.Expected)
	if err != nil {
		slog.Error("Failed to read expected output", "path", args.Expected, "error", err)
		return fmt.Errorf("read %s: %w", args.Expected, err)
	}

	diff, err := unifiedDiff(string(expected), actual.String(), string(args.Expected), string(args.Root)+" (flattened)")
	if err != nil {
		return err
	}

	w.DisplayCheckResult(ctx, args.Expected, diff)

	if diff != "" {
		return fmt.Errorf("%w: %s", ErrOutOfDate, args.Expected)
	}

	return nil
}

func unifiedDiff(expected, actual, fromFile, toFile string) (string, error) {
	if expected == actual {
		return "", nil
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("diff: %w", err)
	}

	return diff, nil
}
