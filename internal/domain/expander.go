package domain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"incflat.dev/pkg/incflat/internal/adapter"
	m "incflat.dev/pkg/incflat/internal/model"
)

// IncludeObserver is called once for every include that resolved, before the
// included file is expanded.
type IncludeObserver func(edge m.IncludeEdge)

// expander holds the state of one top-level flatten. It is not safe for
// concurrent use; every root gets its own.
type expander struct {
	fsAdapter   adapter.SourceFSAdapter
	resolver    Resolver
	out         *Accumulator
	searchPaths m.SearchPaths
	observer    IncludeObserver

	detectCycles bool
	maxDepth     int
	chain        []m.Path
	onChain      map[m.Path]struct{}

	includes int
}

// expand scans src line by line. Plain lines go to the accumulator; include
// lines are resolved and expanded in place before the scan continues. The
// first failure stops the scan and is returned unchanged to every caller
// above.
func (e *expander) expand(ctx context.Context, src m.SourceContext, r io.Reader) error {
	reader := bufio.NewReader(r)

	for {
		line, ok, err := readLine(reader)
		if err != nil {
			return fmt.Errorf("read %s: %w", src.Path, err)
		}

		if !ok {
			return nil
		}

		src.Line++

		directive, isInclude := Classify(line)
		if !isInclude {
			if err := e.out.AppendLine(line); err != nil {
				return fmt.Errorf("write output: %w", err)
			}

			continue
		}

		if err := e.descend(ctx, src, directive); err != nil {
			return err
		}
	}
}

func (e *expander) descend(ctx context.Context, src m.SourceContext, directive m.Directive) error {
	if e.maxDepth > 0 && src.Depth >= e.maxDepth {
		slog.Error("Include depth limit reached", "name", directive.Name, "file", src.Path, "line", src.Line, "maxDepth", e.maxDepth)

		return fmt.Errorf("%w (%d): %s at file %s at line %d",
			ErrMaxDepthExceeded, e.maxDepth, directive.Name, src.Path, src.Line)
	}

	path, file, err := e.resolver.Resolve(ctx, src, directive, e.searchPaths)
	if err != nil {
		return err
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.Warn("failed to close include", "path", path, "error", err)
		}
	}()

	if e.detectCycles {
		leave, err := e.push(path, m.Diagnostic{Name: directive.Name, File: src.Path, Line: src.Line})
		if err != nil {
			return err
		}

		defer leave()
	}

	e.includes++

	if e.observer != nil {
		e.observer(m.IncludeEdge{
			From:     src.Path,
			Line:     src.Line,
			Kind:     directive.Kind,
			Name:     directive.Name,
			Resolved: path,
			Depth:    src.Depth + 1,
		})
	}

	slog.Debug("expanding include", "name", directive.Name, "resolved", path, "depth", src.Depth+1)

	return e.expand(ctx, m.SourceContext{Path: path, Depth: src.Depth + 1}, file)
}

// push records path on the active include chain and returns the function
// that removes it again.
func (e *expander) push(path m.Path, at m.Diagnostic) (func(), error) {
	canonical, err := e.fsAdapter.Canonical(path)
	if err != nil {
		return nil, fmt.Errorf("canonical path for %s: %w", path, err)
	}

	if _, seen := e.onChain[canonical]; seen {
		chain := append(append([]m.Path{}, e.chain...), canonical)

		slog.Error("Include cycle detected", "name", at.Name, "file", at.File, "line", at.Line)

		return nil, &IncludeCycleError{At: at, Chain: chain}
	}

	e.onChain[canonical] = struct{}{}
	e.chain = append(e.chain, canonical)

	return func() {
		delete(e.onChain, canonical)
		e.chain = e.chain[:len(e.chain)-1]
	}, nil
}

// readLine returns the next line without its terminator. A final line with no
// trailing newline is still returned; ok is false once input is exhausted.
func readLine(r *bufio.Reader) (string, bool, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}

	if line == "" && err != nil {
		return "", false, nil
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, true, nil
}
