package walker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bethropolis/wildfind/internal/filter"
	"github.com/bethropolis/wildfind/internal/ignore"
)

// Walk traverses the directory tree rooted at rootDir and hands every
// file whose base name flt selects to walkFn. Directories are never
// selected; they are descended into unless excl prunes them. excl may
// be nil, in which case nothing is excluded.
//
// It returns the list of skipped items and any critical error.
func Walk(rootDir string, flt *filter.Filter, excl *ignore.Matcher, walkFn WalkFunc, opts ...Option) ([]SkippedItem, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return []SkippedItem{{Path: rootDir, Reason: ReasonSkippedPathError, IsDir: true}},
			fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}

	tracker := NewSkippedTracker(64)

	var stats struct {
		totalFiles   atomic.Int64
		matchedFiles atomic.Int64
		skippedFiles atomic.Int64
		totalDirs    atomic.Int64
		skippedDirs  atomic.Int64
	}

	if options.ProgressFn != nil {
		progressCtx, progressCancel := context.WithCancel(context.Background())
		defer progressCancel()

		go func() {
			ticker := time.NewTicker(300 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-progressCtx.Done():
					return
				case <-ticker.C:
					options.ProgressFn(ProgressStats{
						TotalFiles:   stats.totalFiles.Load(),
						MatchedFiles: stats.matchedFiles.Load(),
						SkippedFiles: stats.skippedFiles.Load(),
						TotalDirs:    stats.totalDirs.Load(),
						SkippedDirs:  stats.skippedDirs.Load(),
					})
				}
			}
		}()
	}

	options.Logger.Debug("walker.Walk started. Root: %s, Filter: %s, Concurrent: %v, Workers: %d",
		absRootDir, flt, options.Concurrent, options.MaxWorkers)

	// Shared per-entry logic for both walk modes. The bool reports
	// whether the entry was selected by the filter.
	processEntry := func(path string, d fs.DirEntry, err error) (error, bool) {
		select {
		case <-options.Context.Done():
			return options.Context.Err(), false
		default:
		}

		isDir := d != nil && d.IsDir()

		if isDir {
			stats.totalDirs.Add(1)
		} else {
			stats.totalFiles.Add(1)
		}

		relativePath, relErr := filepath.Rel(absRootDir, path)
		if relErr != nil {
			options.Logger.Error("walker: path calculation failed for %q: %v", path, relErr)
			tracker.Track(path, ReasonSkippedPathError, isDir)
			if isDir {
				stats.skippedDirs.Add(1)
			} else {
				stats.skippedFiles.Add(1)
			}
			return nil, false
		}

		if err != nil {
			reason := ReasonSkippedWalkError
			if os.IsPermission(err) {
				reason = ReasonSkippedPermError
			}
			options.Logger.Error("walker: walk error for %q: %v", relativePath, err)
			tracker.Track(relativePath, reason, isDir)
			if isDir {
				stats.skippedDirs.Add(1)
				if reason == ReasonSkippedPermError {
					return filepath.SkipDir, false
				}
			} else {
				stats.skippedFiles.Add(1)
			}
			return nil, false
		}

		// The root itself is neither matched nor excluded.
		if path == absRootDir || relativePath == "." {
			return nil, false
		}

		if excl != nil && excl.Excluded(relativePath, isDir) {
			tracker.Track(relativePath, ReasonExcludedRule, isDir)
			if isDir {
				stats.skippedDirs.Add(1)
				return filepath.SkipDir, false
			}
			stats.skippedFiles.Add(1)
			return nil, false
		}

		if isDir {
			options.Logger.Debug("walker: descending into %q", relativePath)
			return nil, false
		}

		switch flt.Check(relativePath) {
		case filter.Selected:
			options.Logger.Debug("walker: %q selected", relativePath)
			stats.matchedFiles.Add(1)
			return nil, true
		default:
			return nil, false
		}
	}

	if options.Concurrent {
		var wg sync.WaitGroup
		matches := make(chan matchedEntry, options.MaxWorkers*2)

		options.Logger.Debug("walker: starting %d delivery workers", options.MaxWorkers)
		for i := 0; i < options.MaxWorkers; i++ {
			wg.Add(1)
			go deliveryWorker(i+1, matches, &wg, options, walkFn)
		}

		done := make(chan error, 1)
		walkFinished := make(chan struct{})

		go func() {
			walkErr := filepath.WalkDir(absRootDir, func(path string, d fs.DirEntry, err error) error {
				controlErr, selected := processEntry(path, d, err)
				if controlErr != nil {
					return controlErr
				}

				if selected {
					relativePath, relErr := filepath.Rel(absRootDir, path)
					if relErr != nil {
						options.Logger.Error("walker: relative path for queueing %q: %v", path, relErr)
						tracker.Track(path, ReasonSkippedPathError, false)
						stats.skippedFiles.Add(1)
						return nil
					}

					select {
					case <-options.Context.Done():
						return options.Context.Err()
					case matches <- matchedEntry{relativePath, d}:
					}
				}
				return nil
			})

			done <- walkErr
			close(walkFinished)
		}()

		select {
		case <-options.Context.Done():
			options.Logger.Debug("walker: context cancelled, waiting for traversal to stop")
			<-walkFinished
		case <-walkFinished:
			options.Logger.Debug("walker: traversal completed")
		}

		close(matches)
		wg.Wait()

		var walkErr error
		select {
		case walkErr = <-done:
		default:
			walkErr = fmt.Errorf("walker: internal error - missing walk result")
		}

		options.Logger.Debug("walker: total walk time: %s", time.Since(startTime))
		return tracker.Items(), walkErr
	}

	// Sequential walk.
	walkErr := filepath.WalkDir(absRootDir, func(path string, d fs.DirEntry, err error) error {
		controlErr, selected := processEntry(path, d, err)
		if controlErr != nil {
			return controlErr
		}

		if selected {
			relativePath, relErr := filepath.Rel(absRootDir, path)
			if relErr != nil {
				options.Logger.Error("walker: relative path for delivery %q: %v", path, relErr)
				tracker.Track(path, ReasonSkippedPathError, false)
				stats.skippedFiles.Add(1)
				return nil
			}
			deliver(relativePath, d, options, walkFn)
		}
		return nil
	})

	options.Logger.Debug("walker: total walk time: %s", time.Since(startTime))
	return tracker.Items(), walkErr
}
