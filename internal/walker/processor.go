package walker

import (
	"io/fs"
	"sync"
)

// matchedEntry travels from the traversal goroutine to the delivery
// workers in concurrent mode.
type matchedEntry struct {
	relativePath string
	entry        fs.DirEntry
}

// deliver hands one selected entry to the walk callback.
func deliver(relativePath string, d fs.DirEntry, options WalkOptions, walkFn WalkFunc) {
	if options.ProgressFn != nil {
		options.ProgressFn(ProgressStats{
			CurrentPath: relativePath,
		})
	}

	if err := walkFn(relativePath, d); err != nil {
		options.Logger.Error("walker: callback returned error for [%s]: %v", relativePath, err)
	}
}

// deliveryWorker is the goroutine function for concurrent delivery.
func deliveryWorker(
	id int,
	matches <-chan matchedEntry,
	wg *sync.WaitGroup,
	options WalkOptions,
	walkFn WalkFunc,
) {
	defer wg.Done()
	options.Logger.Debug("worker %d: started", id)

	for item := range matches {
		select {
		case <-options.Context.Done():
			options.Logger.Debug("worker %d: received cancellation signal", id)
			return
		default:
			deliver(item.relativePath, item.entry, options, walkFn)
		}
	}

	options.Logger.Debug("worker %d: finished", id)
}
