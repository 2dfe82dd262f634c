package wildcard

import (
	"fmt"
	"runtime"
	"strings"
)

// CaseMode selects how letter case is treated when literal pattern
// characters are compared against name characters.
type CaseMode int

const (
	// Sensitive compares characters exactly.
	Sensitive CaseMode = iota
	// Insensitive case-folds both sides before comparing.
	Insensitive
	// System stands for the host platform's native file-name case rule.
	// It is meant to be resolved once, at filter construction, via
	// Resolve; the resolved value is what a filter should store.
	System
)

// systemSensitive is fixed at program start. Windows and macOS file
// systems treat names case-insensitively by convention.
var systemSensitive = runtime.GOOS != "windows" && runtime.GOOS != "darwin"

// IsSensitive reports whether the mode compares case-sensitively,
// resolving System against the host platform.
func (m CaseMode) IsSensitive() bool {
	if m == System {
		return systemSensitive
	}
	return m == Sensitive
}

// Resolve maps the mode to the concrete rule it stands for: Sensitive
// and Insensitive return themselves, System returns the platform
// default.
func (m CaseMode) Resolve() CaseMode {
	if m.IsSensitive() {
		return Sensitive
	}
	return Insensitive
}

func (m CaseMode) String() string {
	switch m {
	case Sensitive:
		return "sensitive"
	case Insensitive:
		return "insensitive"
	case System:
		return "system"
	default:
		return fmt.Sprintf("CaseMode(%d)", int(m))
	}
}

// ParseCaseMode converts a user-supplied mode name ("sensitive",
// "insensitive" or "system", any letter case) into a CaseMode.
func ParseCaseMode(s string) (CaseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sensitive":
		return Sensitive, nil
	case "insensitive":
		return Insensitive, nil
	case "system":
		return System, nil
	}
	return Sensitive, fmt.Errorf("wildcard: unknown case mode %q (want sensitive, insensitive or system)", s)
}
