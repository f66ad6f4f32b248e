package domain

import (
	"errors"
	"fmt"
	"strings"

	m "incflat.dev/pkg/incflat/internal/model"
)

var (
	// ErrUnresolvedInclude is returned when no candidate path for an include
	// could be opened.
	ErrUnresolvedInclude = errors.New("unresolved include")
	// ErrRootUnreadable is returned when the top-level file cannot be opened.
	ErrRootUnreadable = errors.New("root file unreadable")
	// ErrIncludeCycle is returned when cycle detection is enabled and a file
	// includes itself through the current chain.
	ErrIncludeCycle = errors.New("include cycle")
	// ErrMaxDepthExceeded is returned when a depth limit is set and nesting
	// goes past it.
	ErrMaxDepthExceeded = errors.New("maximum include depth exceeded")
	// ErrOutOfDate is returned by Check when the expected file differs.
	ErrOutOfDate = errors.New("flattened output is out of date")
	// ErrSelfTestFailed is returned when the built-in fixture does not produce
	// the expected result.
	ErrSelfTestFailed = errors.New("self-test failed")
	// ErrReported marks a failure the UI has already shown to the operator.
	ErrReported = errors.New("already reported")
)

type reportedError struct {
	err error
}

// Reported wraps err so that errors.Is(err, ErrReported) holds while the
// original kind stays matchable.
func Reported(err error) error {
	if err == nil {
		return nil
	}

	return &reportedError{err: err}
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() []error {
	return []error{e.err, ErrReported}
}

// UnresolvedIncludeError carries the location of the include that failed.
type UnresolvedIncludeError struct {
	Diagnostic m.Diagnostic
}

func (e *UnresolvedIncludeError) Error() string {
	return e.Diagnostic.String()
}

// Is reports ErrUnresolvedInclude as the error kind.
func (e *UnresolvedIncludeError) Is(target error) bool {
	return target == ErrUnresolvedInclude
}

// IncludeCycleError names the include that closed a cycle and the chain of
// files that led to it.
type IncludeCycleError struct {
	At    m.Diagnostic
	Chain []m.Path
}

func (e *IncludeCycleError) Error() string {
	chain := make([]string, 0, len(e.Chain))
	for _, p := range e.Chain {
		chain = append(chain, string(p))
	}

	return fmt.Sprintf("include cycle on %s at file %s at line %d: %s",
		e.At.Name, e.At.File, e.At.Line, strings.Join(chain, " -> "))
}

// Is reports ErrIncludeCycle as the error kind.
func (e *IncludeCycleError) Is(target error) bool {
	return target == ErrIncludeCycle
}
