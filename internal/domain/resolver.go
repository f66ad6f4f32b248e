package domain

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"incflat.dev/pkg/incflat/internal/adapter"
	m "incflat.dev/pkg/incflat/internal/model"
)

// DiagnosticReporter receives unresolved-include diagnostics as soon as they
// are produced.
type DiagnosticReporter interface {
	DisplayDiagnostic(ctx context.Context, diagnostic m.Diagnostic)
}

// Resolver turns an include directive into an opened file.
type Resolver interface {
	// Resolve returns the path that satisfied directive together with the file
	// opened from it. The caller owns the returned reader. On failure the
	// diagnostic has already been reported and an *UnresolvedIncludeError is
	// returned.
	Resolve(ctx context.Context, from m.SourceContext, directive m.Directive, searchPaths m.SearchPaths) (m.Path, io.ReadCloser, error)
}

type resolver struct {
	fsAdapter adapter.SourceFSAdapter
	reporter  DiagnosticReporter
}

// NewResolver constructs a Resolver reading through fsAdapter. reporter may be
// nil, in which case diagnostics are only logged.
func NewResolver(fsAdapter adapter.SourceFSAdapter, reporter DiagnosticReporter) Resolver {
	return &resolver{
		fsAdapter: fsAdapter,
		reporter:  reporter,
	}
}

func (r *resolver) Resolve(ctx context.Context, from m.SourceContext, directive m.Directive, searchPaths m.SearchPaths) (m.Path, io.ReadCloser, error) {
	if directive.Kind == m.IncludeQuoted {
		local := r.join(r.fsAdapter.Dir(from.Path), directive.Name)

		file, err := r.fsAdapter.Open(local)
		if err == nil {
			return local, file, nil
		}

		slog.Debug("local include candidate rejected", "candidate", local, "error", err)
	}

	for _, dir := range searchPaths {
		candidate := r.join(dir, directive.Name)

		file, err := r.fsAdapter.Open(candidate)
		if err != nil {
			slog.Debug("search path candidate rejected", "candidate", candidate, "error", err)
			continue
		}

		return candidate, file, nil
	}

	diagnostic := m.Diagnostic{
		Name: directive.Name,
		File: from.Path,
		Line: from.Line,
	}

	slog.Error("Unresolved include", "name", diagnostic.Name, "file", diagnostic.File, "line", diagnostic.Line)

	if r.reporter != nil {
		r.reporter.DisplayDiagnostic(ctx, diagnostic)
	}

	return "", nil, &UnresolvedIncludeError{Diagnostic: diagnostic}
}

// join places name under dir unless name is already absolute. The result is
// not cleaned: "missing/../x.h" must fail when "missing" does not exist.
func (r *resolver) join(dir m.Path, name string) m.Path {
	if filepath.IsAbs(name) {
		return m.Path(name)
	}

	return r.fsAdapter.Concat(dir, name)
}
