// Package printer handles output formatting and display of matches
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
)

// Printer writes matched paths to the configured output destination.
// It is safe for concurrent use by the walker's delivery workers.
type Printer struct {
	mu          sync.Mutex
	output      io.Writer
	count       atomic.Int64
	useColors   bool
	jsonOutput  bool
	jsonStarted bool
	nulOutput   bool

	matchColor *color.Color
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:     os.Stdout,
		useColors:  true,
		matchColor: color.New(color.FgCyan, color.Bold),
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode: matches are emitted as one JSON
// array of path strings.
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// WithNul enables NUL-separated output for consumption by xargs -0.
func (p *Printer) WithNul(enabled bool) *Printer {
	p.nulOutput = enabled
	return p
}

// PrintMatch outputs one matched path in the configured format.
func (p *Printer) PrintMatch(relativePath string) {
	p.count.Add(1)

	p.mu.Lock()
	defer p.mu.Unlock()

	switch {
	case p.jsonOutput:
		if !p.jsonStarted {
			fmt.Fprint(p.output, "[\n")
			p.jsonStarted = true
		} else {
			fmt.Fprint(p.output, ",\n")
		}

		encoded, err := json.Marshal(relativePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			return
		}
		fmt.Fprintf(p.output, "  %s", encoded)
	case p.nulOutput:
		fmt.Fprintf(p.output, "%s\x00", relativePath)
	default:
		if p.useColors {
			p.matchColor.Fprintln(p.output, relativePath)
		} else {
			fmt.Fprintf(p.output, "%s\n", relativePath)
		}
	}
}

// Finalize completes any pending operations (like closing JSON array)
func (p *Printer) Finalize() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.jsonOutput {
		if p.jsonStarted {
			fmt.Fprint(p.output, "\n]\n")
		} else {
			fmt.Fprint(p.output, "[]\n")
		}
	}
}

// GetCount returns the number of matches printed
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}
