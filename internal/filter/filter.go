// Package filter selects file names against an ordered set of wildcard
// patterns with OR semantics.
//
// A Filter holds its own copy of the patterns and a case rule resolved
// at construction. It is immutable afterwards and safe to share across
// concurrently running directory walks.
package filter

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bethropolis/wildfind/internal/wildcard"
)

// Verdict is the traversal-control signal a Filter hands back to a
// directory walker. Both values mean "keep walking": the filter decides
// selection only and never prunes subtrees or stops a walk on its own.
type Verdict int

const (
	// NotSelected means the entry matched no pattern. Not an error.
	NotSelected Verdict = iota
	// Selected means the entry matched at least one pattern.
	Selected
)

func (v Verdict) String() string {
	if v == Selected {
		return "selected"
	}
	return "not selected"
}

// Filter matches names against one or more wildcard patterns.
type Filter struct {
	patterns []string
	mode     wildcard.CaseMode
}

// New creates a Filter from zero or more patterns. The pattern values
// are copied, so later changes to the caller's slice do not reach the
// filter. With no patterns the filter rejects every name.
func New(mode wildcard.CaseMode, patterns ...string) *Filter {
	return &Filter{
		patterns: append([]string(nil), patterns...),
		mode:     mode.Resolve(),
	}
}

// NewList creates a Filter from a pattern slice. A nil slice is a
// construction error; an empty non-nil slice is legal and yields a
// filter that rejects every name.
func NewList(patterns []string, mode wildcard.CaseMode) (*Filter, error) {
	if patterns == nil {
		return nil, fmt.Errorf("filter: pattern list must not be nil")
	}
	return New(mode, patterns...), nil
}

// Accept reports whether name matches at least one of the filter's
// patterns. It is a pure function of the filter's state and name.
func (f *Filter) Accept(name string) bool {
	for _, p := range f.patterns {
		if wildcard.Match(name, p, f.mode) {
			return true
		}
	}
	return false
}

// AcceptEntry reports whether a directory entry's name matches.
func (f *Filter) AcceptEntry(d fs.DirEntry) bool {
	return f.Accept(d.Name())
}

// AcceptIn reports whether name matches. The parent directory is
// ignored; it exists for walkers that hand entries over as (dir, name)
// pairs.
func (f *Filter) AcceptIn(dir, name string) bool {
	return f.Accept(name)
}

// Check matches the final component of path and reports the traversal
// verdict. An empty path is matched as the empty name, which is a
// legitimate target (it matches the empty pattern and "*").
func (f *Filter) Check(path string) Verdict {
	var name string
	if path != "" {
		name = filepath.Base(path)
	}
	if f.Accept(name) {
		return Selected
	}
	return NotSelected
}

// Patterns returns a copy of the stored patterns in insertion order.
func (f *Filter) Patterns() []string {
	return append([]string(nil), f.patterns...)
}

// CaseSensitive reports the resolved case rule.
func (f *Filter) CaseSensitive() bool {
	return f.mode.IsSensitive()
}

// String renders the filter for diagnostics, e.g.
// filter.Filter(*.go,*.md). The form is informational only.
func (f *Filter) String() string {
	var b strings.Builder
	b.WriteString("filter.Filter(")
	b.WriteString(strings.Join(f.patterns, ","))
	b.WriteString(")")
	return b.String()
}
