// Package ignore holds the walker's exclusion rules: hidden entries,
// .git directories and repository .gitignore files.
//
// Exclusion is a traversal concern, separate from pattern selection:
// the walker prunes excluded subtrees before the wildcard filter ever
// sees their entries. The package uses the functional options pattern
// for configuration.
package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/wildfind/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Matcher decides whether a file or directory should be excluded from a
// walk. Build one with New; the zero value is not usable.
type Matcher struct {
	repoIgnore gitignore.GitIgnore

	rootDir    string
	skipHidden bool
	skipGit    bool
	logger     utils.Logger
	disabled   bool
}

// New creates a Matcher rooted at rootDir and loads the repository's
// .gitignore rules unless the matcher is disabled.
func New(rootDir string, opts ...Option) (*Matcher, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	m := &Matcher{
		rootDir:    absRootDir,
		skipHidden: false,
		skipGit:    true,
		logger:     &utils.NoopLogger{},
	}

	for _, opt := range opts {
		opt(m)
	}

	if err := m.init(); err != nil {
		return nil, err
	}

	return m, nil
}

// init loads the gitignore engine for the root directory.
func (m *Matcher) init() error {
	m.logger.Debug("ignore.New: initializing for root: %s (hidden=%v git=%v)",
		m.rootDir, m.skipHidden, m.skipGit)

	if m.disabled {
		m.logger.Debug("ignore.New: matcher disabled, skipping gitignore load")
		return nil
	}

	// The repository loader picks up .gitignore files in nested
	// directories too, which matches git's own behavior.
	repoMatcher, repoErr := gitignore.NewRepository(m.rootDir)
	if repoErr != nil {
		if repoMatcher == nil {
			m.logger.Warn("ignore.New: no .gitignore rules loaded for '%s': %v. Continuing without repo rules.",
				m.rootDir, repoErr)
			repoMatcher = gitignore.New(nil, "", nil)
		} else {
			return fmt.Errorf("ignore: failed to load repository ignores: %w", repoErr)
		}
	}
	m.repoIgnore = repoMatcher

	return nil
}

// Disabled reports whether the matcher excludes nothing.
func (m *Matcher) Disabled() bool {
	return m == nil || m.disabled
}
