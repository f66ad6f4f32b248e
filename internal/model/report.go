package model

import (
	"fmt"
	"time"
)

// Diagnostic identifies an include that could not be resolved.
type Diagnostic struct {
	Name string
	File Path
	Line int
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("unknown include file %s at file %s at line %d", d.Name, d.File, d.Line)
}

// IncludeEdge records one successfully resolved include.
type IncludeEdge struct {
	From     Path        `yaml:"from"`
	Line     int         `yaml:"line"`
	Kind     IncludeKind `yaml:"kind"`
	Name     string      `yaml:"name"`
	Resolved Path        `yaml:"resolved"`
	Depth    int         `yaml:"depth"`
}

// FlattenStatus is the outcome of flattening one root file.
type FlattenStatus int

const (
	// Pending means the root has not finished yet.
	Pending FlattenStatus = iota
	// Flattened means every include resolved and the output is complete.
	Flattened
	// Failed means flattening stopped early.
	Failed
)

func (s FlattenStatus) String() string {
	switch s {
	case Pending:
		return "pending"
	case Flattened:
		return "flattened"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// FlattenResult holds the outcome of flattening one root file.
type FlattenResult struct {
	Root     Path
	Output   Path // empty when written to a stream
	Lines    int
	Includes int
	Status   FlattenStatus
	Err      error
	Duration time.Duration
}

// IncludeManifest is the serialisable include tree of one root file.
type IncludeManifest struct {
	Root        Path          `yaml:"root"`
	SearchPaths []Path        `yaml:"search_paths"`
	Includes    []IncludeEdge `yaml:"includes"`
}
