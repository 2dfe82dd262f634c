// Package app wires configuration, filter, walker and output together
package app

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/wildfind/internal/config"
	"github.com/bethropolis/wildfind/internal/filter"
	"github.com/bethropolis/wildfind/internal/ignore"
	"github.com/bethropolis/wildfind/internal/logger"
	"github.com/bethropolis/wildfind/internal/printer"
	"github.com/bethropolis/wildfind/internal/summary"
	"github.com/bethropolis/wildfind/internal/walker"
	"github.com/bethropolis/wildfind/internal/wildcard"
	"github.com/fatih/color"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	// Set up output destination
	var output io.Writer = os.Stdout
	if cfg.OutputFile != "" {
		file, err := os.Create(cfg.OutputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to create output file: %v\n", err)
			os.Exit(1)
		}
		// Note: file will be closed by main function
		output = file
	}

	// Set up logger
	log := logger.New(os.Stderr, cfg.Verbose, cfg.UseColors)

	// Apply log level if specified (overrides verbose/quiet flags)
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: output,
	}
}

// Run executes the main application logic
func (a *App) Run() {
	startTime := time.Now()

	if a.cfg.ShowVersion {
		fmt.Printf("wildfind version %s\n", a.cfg.Version)
		os.Exit(0)
	}

	// Handle timeout if specified
	var ctx context.Context
	var cancel context.CancelFunc

	if a.cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), a.cfg.Timeout)
		defer cancel()

		go func() {
			<-ctx.Done()
			if ctx.Err() == context.DeadlineExceeded {
				fmt.Fprintf(os.Stderr, "\nTimeout of %v reached. Exiting.\n", a.cfg.Timeout)
				os.Exit(1)
			}
		}()
	} else {
		ctx, cancel = context.WithCancel(context.Background())
		defer cancel()
	}

	// Helper for info messages, suppressed by quiet flag
	infoLog := func(format string, args ...interface{}) {
		if !a.cfg.Quiet {
			a.log.Info(format, args...)
		}
	}

	// --- Pattern and case-mode validation ---
	if len(a.cfg.Patterns) == 0 {
		a.log.Error("No patterns given. Usage: wildfind [flags] PATTERN...")
		os.Exit(2)
	}

	caseMode, err := wildcard.ParseCaseMode(a.cfg.CaseMode)
	if err != nil {
		a.log.Error("Invalid -case value: %v", err)
		os.Exit(2)
	}

	flt, err := filter.NewList(a.cfg.Patterns, caseMode)
	if err != nil {
		a.log.Error("Error building filter: %v", err)
		os.Exit(2)
	}

	if a.log.Verbose() {
		a.log.Debug("Verbose mode enabled")
		a.log.Debug("Color output: %v", a.cfg.UseColors)
		a.log.Debug("Directory: %s", a.cfg.RootDir)
		a.log.Debug("Filter: %s (case-sensitive: %v)", flt, flt.CaseSensitive())
		a.log.Debug("Concurrent mode: %v (workers: %d)", a.cfg.Concurrent, a.cfg.MaxWorkers)
		a.log.Debug("Exclusion settings: skip-hidden=%v, no-ignore=%v",
			a.cfg.SkipHidden, a.cfg.NoIgnore)
	}

	// --- Directory validation ---
	absRootDir, err := filepath.Abs(a.cfg.RootDir)
	if err != nil {
		a.log.Error("Invalid root directory path '%s': %v", a.cfg.RootDir, err)
		os.Exit(1)
	}

	dirInfo, err := os.Stat(absRootDir)
	if err != nil {
		if os.IsNotExist(err) {
			a.log.Error("Root directory '%s' not found.", absRootDir)
		} else {
			a.log.Error("Could not access root directory '%s': %v", absRootDir, err)
		}
		os.Exit(1)
	}
	if !dirInfo.IsDir() {
		a.log.Error("Specified path '%s' is not a directory.", absRootDir)
		os.Exit(1)
	}

	infoLog("Matching %d pattern(s) under %s (%s case rule).",
		len(a.cfg.Patterns), absRootDir, caseMode.Resolve())

	// --- Initialize exclusion rules ---
	excl, err := ignore.New(absRootDir,
		ignore.WithLogger(a.log),
		ignore.WithSkipHidden(a.cfg.SkipHidden),
		ignore.WithSkipGit(!a.cfg.NoIgnore),
		ignore.WithDisabled(a.cfg.NoIgnore),
	)
	if err != nil {
		a.log.Error("Error initializing exclusion rules: %v", err)
		os.Exit(1)
	}

	// --- Create the printer ---
	p := printer.New()
	p.WithOutput(a.Output)
	p.WithColors(a.cfg.UseColors)

	if a.cfg.JSONOutput {
		a.log.Debug("JSON output mode enabled")
		p.WithJSON(true)
		p.WithColors(false)
	} else if a.cfg.NulOutput {
		p.WithNul(true)
		p.WithColors(false)
	}

	// --- Set up walk options ---
	walkOptions := []walker.Option{
		walker.WithLogger(a.log),
		walker.WithConcurrency(a.cfg.Concurrent),
		walker.WithMaxWorkers(a.cfg.MaxWorkers),
		walker.WithContext(ctx),
	}

	if a.cfg.ShowProgress {
		walkOptions = append(walkOptions, walker.WithProgress(func(stats walker.ProgressStats) {
			if a.cfg.Quiet {
				return
			}
			if stats.CurrentPath != "" {
				path := stats.CurrentPath
				if len(path) > 40 {
					path = "..." + path[len(path)-37:]
				}
				fmt.Fprintf(os.Stderr, "\rMatching: %-40s | Files: %d/%d | Dirs: %d",
					path, stats.MatchedFiles, stats.TotalFiles, stats.TotalDirs)
			} else {
				fmt.Fprintf(os.Stderr, "\rScanning... | Files: %d/%d | Dirs: %d",
					stats.MatchedFiles, stats.TotalFiles, stats.TotalDirs)
			}
		}))
	}

	// --- Walk ---
	skippedItems, walkErr := walker.Walk(absRootDir, flt, excl,
		func(relativePath string, d fs.DirEntry) error {
			p.PrintMatch(relativePath)
			return nil
		},
		walkOptions...,
	)

	if a.cfg.ShowProgress && !a.cfg.Quiet {
		fmt.Fprint(os.Stderr, "\n")
	}

	p.Finalize()

	if walkErr != nil && walkErr != context.Canceled && walkErr != context.DeadlineExceeded {
		a.log.Error("Walk finished with error: %v", walkErr)
	}

	summary.DisplayResults(a.log, p.GetCount(), time.Since(startTime), a.cfg.Quiet)
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, skippedItems, os.Stderr, a.cfg.Quiet)
	}
}
