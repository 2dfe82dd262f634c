package ignore

import "github.com/bethropolis/wildfind/internal/utils"

// Option configures a Matcher during New.
type Option func(*Matcher)

// WithSkipHidden excludes dot-prefixed files and directories.
func WithSkipHidden(skip bool) Option {
	return func(m *Matcher) {
		m.skipHidden = skip
	}
}

// WithSkipGit excludes .git directories and their contents.
func WithSkipGit(skip bool) Option {
	return func(m *Matcher) {
		m.skipGit = skip
	}
}

// WithLogger sets the logger used during rule loading and checks.
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDisabled turns the matcher into one that excludes nothing.
func WithDisabled(disabled bool) Option {
	return func(m *Matcher) {
		m.disabled = disabled
	}
}
