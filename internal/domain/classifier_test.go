package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	m "incflat.dev/pkg/incflat/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		want      m.Directive
		isInclude bool
	}{
		{"quoted", `#include "dir1/b.h"`, m.Directive{Kind: m.IncludeQuoted, Name: "dir1/b.h"}, true},
		{"bracketed", `#include <std1.h>`, m.Directive{Kind: m.IncludeBracketed, Name: "std1.h"}, true},
		{"spaces after hash and no space before bracket", `#   include<dummy.txt>`, m.Directive{Kind: m.IncludeBracketed, Name: "dummy.txt"}, true},
		{"leading and trailing whitespace", "  \t#include \"x.h\"  \t", m.Directive{Kind: m.IncludeQuoted, Name: "x.h"}, true},
		{"vertical tab padding", "\v#include\v<v.h>\v", m.Directive{Kind: m.IncludeBracketed, Name: "v.h"}, true},
		{"form feed padding", "\f#\finclude \"f.h\"", m.Directive{Kind: m.IncludeQuoted, Name: "f.h"}, true},
		{"name with spaces", `#include "my file.h"`, m.Directive{Kind: m.IncludeQuoted, Name: "my file.h"}, true},
		{"absolute name", `#include </usr/include/x.h>`, m.Directive{Kind: m.IncludeBracketed, Name: "/usr/include/x.h"}, true},
		{"trailing comment", `#include "x.h" // why`, m.Directive{}, false},
		{"code before directive", `int x; #include "x.h"`, m.Directive{}, false},
		{"empty quoted name", `#include ""`, m.Directive{}, false},
		{"empty bracketed name", `#include <>`, m.Directive{}, false},
		{"mixed delimiters", `#include "x.h>`, m.Directive{}, false},
		{"misspelled keyword", `#includes "x.h"`, m.Directive{}, false},
		{"upper case keyword", `#INCLUDE "x.h"`, m.Directive{}, false},
		{"other directive", `#define X 1`, m.Directive{}, false},
		{"commented out", `// #include "x.h"`, m.Directive{}, false},
		{"empty line", ``, m.Directive{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.line)
			assert.Equal(t, tt.isInclude, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
