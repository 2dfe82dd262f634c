package walker

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/wildfind/internal/filter"
	"github.com/bethropolis/wildfind/internal/ignore"
	"github.com/bethropolis/wildfind/internal/wildcard"
)

// writeTree creates the given files (relative paths, forward slashes)
// under root.
func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

// collectMatches runs Walk and returns the matched relative paths in
// sorted slash form.
func collectMatches(t *testing.T, root string, flt *filter.Filter, excl *ignore.Matcher, opts ...Option) []string {
	t.Helper()

	var mu sync.Mutex
	var got []string
	_, err := Walk(root, flt, excl, func(relativePath string, d fs.DirEntry) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, filepath.ToSlash(relativePath))
		return nil
	}, opts...)
	require.NoError(t, err)

	sort.Strings(got)
	return got
}

func TestWalkSelectsByBaseName(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"a.go",
		"b.txt",
		"sub/c.go",
		"sub/deep/d.go",
		"sub/deep/e.md",
	)

	flt := filter.New(wildcard.Sensitive, "*.go")
	got := collectMatches(t, root, flt, nil)

	assert.Equal(t, []string{"a.go", "sub/c.go", "sub/deep/d.go"}, got)
}

func TestWalkMultiplePatterns(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "Foo.java", "Foo.class", "Foo.go")

	flt := filter.New(wildcard.Sensitive, "*.java", "*.class")
	got := collectMatches(t, root, flt, nil)

	assert.Equal(t, []string{"Foo.class", "Foo.java"}, got)
}

func TestWalkEmptyFilterMatchesNothing(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.go", "b.txt")

	got := collectMatches(t, root, filter.New(wildcard.Sensitive), nil)
	assert.Empty(t, got)
}

func TestWalkDirectoriesAreNotSelected(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "match/inner.txt")

	// The directory "match" satisfies the pattern but only files are
	// selected; the walker still descends into it.
	flt := filter.New(wildcard.Sensitive, "match", "*.txt")
	got := collectMatches(t, root, flt, nil)

	assert.Equal(t, []string{"match/inner.txt"}, got)
}

func TestWalkExclusionRules(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"a.go",
		".git/objects/b.go",
		".hidden/c.go",
		"vendor/d.go",
	)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("vendor/\n"), 0o644))

	excl, err := ignore.New(root)
	require.NoError(t, err)

	flt := filter.New(wildcard.Sensitive, "*.go")
	got := collectMatches(t, root, flt, excl)

	// .git and vendor/ are pruned; .hidden stays (hidden skipping is
	// off by default).
	assert.Equal(t, []string{".hidden/c.go", "a.go"}, got)
}

func TestWalkSkipHidden(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.go", ".hidden/c.go", ".b.go")

	excl, err := ignore.New(root, ignore.WithSkipHidden(true))
	require.NoError(t, err)

	got := collectMatches(t, root, filter.New(wildcard.Sensitive, "*.go"), excl)
	assert.Equal(t, []string{"a.go"}, got)
}

func TestWalkConcurrentMatchesSequential(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"one.log", "two.log", "three.txt",
		"a/four.log", "a/b/five.log", "a/b/c/six.txt",
	)

	flt := filter.New(wildcard.Sensitive, "*.log")

	sequential := collectMatches(t, root, flt, nil)
	concurrent := collectMatches(t, root, flt, nil,
		WithConcurrency(true), WithMaxWorkers(4))

	assert.Equal(t, sequential, concurrent)
	assert.Equal(t, []string{"a/b/five.log", "a/four.log", "one.log", "two.log"}, sequential)
}

func TestWalkCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a.go")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Walk(root, filter.New(wildcard.Sensitive, "*"), nil,
		func(relativePath string, d fs.DirEntry) error { return nil },
		WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWalkCaseInsensitiveSelection(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "README.MD", "notes.md", "other.txt")

	flt := filter.New(wildcard.Insensitive, "*.md")
	got := collectMatches(t, root, flt, nil)

	assert.Equal(t, []string{"README.MD", "notes.md"}, got)
}
