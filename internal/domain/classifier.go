package domain

import (
	"regexp"

	m "incflat.dev/pkg/incflat/internal/model"
)

// space is the whitespace class used around directives. It includes '\v',
// which RE2's \s leaves out.
const space = `[\t\n\v\f\r ]*`

// Both patterns must match the whole line. Whitespace is allowed around the
// directive, after '#', and before the opening delimiter.
var (
	quotedIncludePattern    = regexp.MustCompile(`^` + space + `#` + space + `include` + space + `"([^"]+)"` + space + `$`)
	bracketedIncludePattern = regexp.MustCompile(`^` + space + `#` + space + `include` + space + `<([^>]+)>` + space + `$`)
)

// Classify reports whether line is an include directive and, if so, which
// kind and which file it names. Any other line, including a directive that
// shares the line with other text, is plain content.
func Classify(line string) (m.Directive, bool) {
	if match := quotedIncludePattern.FindStringSubmatch(line); match != nil {
		return m.Directive{Kind: m.IncludeQuoted, Name: match[1]}, true
	}

	if match := bracketedIncludePattern.FindStringSubmatch(line); match != nil {
		return m.Directive{Kind: m.IncludeBracketed, Name: match[1]}, true
	}

	return m.Directive{}, false
}
