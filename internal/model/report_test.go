package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Name: "dummy.txt", File: "sources/a.cpp", Line: 8}
	assert.Equal(t, "unknown include file dummy.txt at file sources/a.cpp at line 8", d.String())
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "quoted", IncludeQuoted.String())
	assert.Equal(t, "bracketed", IncludeBracketed.String())
	assert.Equal(t, "unknown", IncludeKind(9).String())

	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "flattened", Flattened.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "unknown", FlattenStatus(9).String())
}

func TestIncludeEdge_YAML(t *testing.T) {
	out, err := yaml.Marshal(IncludeEdge{
		From:     "a.cpp",
		Line:     2,
		Kind:     IncludeBracketed,
		Name:     "std1.h",
		Resolved: "include1/std1.h",
		Depth:    1,
	})
	require.NoError(t, err)

	assert.Equal(t, "from: a.cpp\nline: 2\nkind: bracketed\nname: std1.h\nresolved: include1/std1.h\ndepth: 1\n", string(out))
}
