// Package model defines the data structures shared by the flattener layers.
package model

// Path represents a file system path.
type Path string

// IncludeKind distinguishes the two accepted directive forms.
type IncludeKind int

const (
	// IncludeQuoted is `#include "NAME"`, resolved next to the including file first.
	IncludeQuoted IncludeKind = iota
	// IncludeBracketed is `#include <NAME>`, resolved through the search paths only.
	IncludeBracketed
)

func (k IncludeKind) String() string {
	switch k {
	case IncludeQuoted:
		return "quoted"
	case IncludeBracketed:
		return "bracketed"
	default:
		return "unknown"
	}
}

// MarshalYAML renders the kind by name in include manifests.
func (k IncludeKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

// Directive is an include extracted from a single line.
type Directive struct {
	Kind IncludeKind
	Name string
}

// SourceContext is the file currently being scanned.
// Line is 1-based and local to Path; Depth is 0 for the root file.
type SourceContext struct {
	Path  Path
	Line  int
	Depth int
}

// SearchPaths is the ordered list of include directories. First match wins.
type SearchPaths []Path
