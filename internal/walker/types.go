// Package walker handles directory traversal and delivery of selected
// entries.
package walker

import (
	"io/fs"
	"sync"
)

// WalkFunc receives each selected entry: in walk order when the walk is
// sequential, in arbitrary order when it is concurrent.
type WalkFunc func(relativePath string, d fs.DirEntry) error

// SkippedReason clarifies why a file/directory was left out of the walk.
type SkippedReason string

const (
	ReasonExcludedRule     SkippedReason = "Excluded (Ignore Rule)"
	ReasonSkippedPermError SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedPathError SkippedReason = "Skipped (Path Calculation Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items across goroutines.
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return st.items
}
