package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"incflat.dev/pkg/incflat/internal/adapter"
	m "incflat.dev/pkg/incflat/internal/model"
)

const selfTestRoot m.Path = "sources/a.cpp"

var selfTestSearchPaths = m.SearchPaths{"sources/include1", "sources/include2"}

// selfTestFixture mirrors a small C++ tree. a.cpp ends with an include that
// no search path provides, so the run must fail at line 8 after emitting
// everything above it. b.h deliberately has no trailing newline.
var selfTestFixture = []struct {
	path    m.Path
	content string
}{
	{"sources/a.cpp", "// this comment before include\n" +
		"#include \"dir1/b.h\"\n" +
		"// text between b.h and c.h\n" +
		"#include \"dir1/d.h\"\n" +
		"\n" +
		"int SayHello() {\n" +
		"    cout << \"hello, world!\" << endl;\n" +
		"#   include<dummy.txt>\n" +
		"}\n"},
	{"sources/dir1/b.h", "// text from b.h before include\n" +
		"#include \"subdir/c.h\"\n" +
		"// text from b.h after include"},
	{"sources/dir1/subdir/c.h", "// text from c.h before include\n" +
		"#include <std1.h>\n" +
		"// text from c.h after include\n"},
	{"sources/dir1/d.h", "// text from d.h before include\n" +
		"#include \"lib/std2.h\"\n" +
		"// text from d.h after include\n"},
	{"sources/include1/std1.h", "// std1\n"},
	{"sources/include2/lib/std2.h", "// std2\n"},
}

const selfTestExpected = "// this comment before include\n" +
	"// text from b.h before include\n" +
	"// text from c.h before include\n" +
	"// std1\n" +
	"// text from c.h after include\n" +
	"// text from b.h after include\n" +
	"// text between b.h and c.h\n" +
	"// text from d.h before include\n" +
	"// std2\n" +
	"// text from d.h after include\n" +
	"\n" +
	"int SayHello() {\n" +
	"    cout << \"hello, world!\" << endl;\n"

var selfTestDiagnostic = m.Diagnostic{Name: "dummy.txt", File: selfTestRoot, Line: 8}

// diagnosticRecorder collects diagnostics instead of displaying them.
type diagnosticRecorder struct {
	mu          sync.Mutex
	diagnostics []m.Diagnostic
}

func (r *diagnosticRecorder) DisplayDiagnostic(_ context.Context, diagnostic m.Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.diagnostics = append(r.diagnostics, diagnostic)
}

// SelfTest flattens a built-in fixture held in memory and verifies the
// partial output and the diagnostic of its failing include.
func (w *workflow) SelfTest(ctx context.Context) error {
	fixture := adapter.NewSourceFSAdapter(afero.NewMemMapFs())

	for _, file := range selfTestFixture {
		if err := fixture.WriteFile(file.path, []byte(file.content), 0o644); err != nil {
			return fmt.Errorf("write fixture %s: %w", file.path, err)
		}
	}

	recorder := &diagnosticRecorder{}

	var out bytes.Buffer

	_, err := NewFlattener(fixture, recorder).Flatten(ctx, ExpandArgs{
		Root:        selfTestRoot,
		SearchPaths: selfTestSearchPaths,
		Output:      &out,
	})

	var problems []string

	var unresolved *UnresolvedIncludeError

	switch {
	case err == nil:
		problems = append(problems, "flatten succeeded, want unresolved include")
	case !errors.As(err, &unresolved):
		problems = append(problems, fmt.Sprintf("flatten failed with %v, want unresolved include", err))
	case unresolved.Diagnostic != selfTestDiagnostic:
		problems = append(problems, fmt.Sprintf("diagnostic %q, want %q", unresolved.Diagnostic, selfTestDiagnostic))
	}

	if len(recorder.diagnostics) != 1 {
		problems = append(problems, fmt.Sprintf("%d diagnostics reported, want 1", len(recorder.diagnostics)))
	}

	diff, diffErr := unifiedDiff(selfTestExpected, out.String(), "expected", "flattened")
	if diffErr != nil {
		return diffErr
	}

	if diff != "" {
		problems = append(problems, diff)
	}

	passed := len(problems) == 0
	w.DisplaySelfTestResult(ctx, passed, strings.Join(problems, "\n")+"\n")

	if !passed {
		slog.Error("Self-test failed", "problems", len(problems))
		return ErrSelfTestFailed
	}

	slog.Info("Self-test passed")

	return nil
}
