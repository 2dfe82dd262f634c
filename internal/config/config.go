// Package config loads CLI configuration from command-line flags
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-isatty"
)

// Config holds all application configuration settings
type Config struct {
	// Directory settings
	RootDir string

	// Match settings
	Patterns []string
	CaseMode string

	// Logging settings
	Verbose     bool
	Quiet       bool
	LogLevel    string
	NoColor     bool
	UseColors   bool
	OutputFile  string
	ShowSkipped bool

	// Processing settings
	Concurrent   bool
	MaxWorkers   int
	ShowProgress bool
	Timeout      time.Duration

	// Exclusion settings
	NoIgnore   bool
	SkipHidden bool

	// Output format
	JSONOutput bool
	NulOutput  bool

	// Version info
	ShowVersion bool
	Version     string
}

// New creates a new Config with values from command-line flags
func New() *Config {
	c := &Config{
		Version: "1.0.0",
	}

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] PATTERN...\n\n", os.Args[0])
		fmt.Fprintf(flag.CommandLine.Output(),
			"Walks a directory tree and prints files whose names match one of the\n"+
				"given wildcard patterns ('*' = any run of characters, '?' = one character).\n\nFlags:\n")
		flag.PrintDefaults()
	}

	flag.StringVar(&c.RootDir, "dir", ".", "The root directory to scan")
	flag.StringVar(&c.CaseMode, "case", "sensitive", "Case rule for matching: sensitive, insensitive or system")
	flag.BoolVar(&c.Verbose, "verbose", false, "Enable verbose logging (DEBUG, WARN, ERROR)")
	flag.BoolVar(&c.Quiet, "quiet", false, "Suppress INFO messages (only show WARN, ERROR)")
	flag.StringVar(&c.LogLevel, "log-level", "INFO", "Set the logging level (DEBUG, INFO, WARN, ERROR)")
	flag.BoolVar(&c.Concurrent, "concurrent", false, "Enable concurrent match delivery")
	flag.IntVar(&c.MaxWorkers, "workers", runtime.NumCPU(), "Max number of concurrent workers (defaults to number of CPU cores)")
	flag.BoolVar(&c.NoIgnore, "no-ignore", false, "Do not honor .gitignore rules or skip .git directories")
	flag.BoolVar(&c.SkipHidden, "skip-hidden", false, "Skip hidden files/directories (starting with '.')")
	flag.BoolVar(&c.NoColor, "no-color", false, "Disable color output")
	flag.StringVar(&c.OutputFile, "output", "", "Output to file instead of stdout")
	flag.BoolVar(&c.ShowProgress, "progress", false, "Show progress information")
	flag.DurationVar(&c.Timeout, "timeout", 0, "Maximum execution time (e.g., '30s', '5m')")
	flag.BoolVar(&c.ShowSkipped, "show-skipped", false, "Show a list of skipped files/directories and reasons at the end")
	flag.BoolVar(&c.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&c.JSONOutput, "json", false, "Output matches as a JSON array of paths")
	flag.BoolVar(&c.NulOutput, "0", false, "Separate matches with NUL bytes (for xargs -0)")

	flag.Parse()

	c.Patterns = flag.Args()

	// Determine if colors should be used
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd()) && c.OutputFile == ""

	return c
}
