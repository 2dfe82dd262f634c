package ignore

import (
	"path/filepath"
	"strings"
)

// Excluded reports whether the entry at relativePath should be left out
// of the walk. The root itself ("" or ".") is never excluded.
func (m *Matcher) Excluded(relativePath string, isDir bool) bool {
	if m == nil || m.disabled {
		return false
	}
	if relativePath == "" || relativePath == "." {
		return false
	}

	if m.skipHidden && hasHiddenComponent(relativePath) {
		m.logger.Debug("ignore: excluded %q (hidden rule)", relativePath)
		return true
	}

	if m.skipGit && inGitDir(relativePath, isDir) {
		m.logger.Debug("ignore: excluded %q (.git rule)", relativePath)
		return true
	}

	if m.repoIgnore != nil {
		unixPath := filepath.ToSlash(relativePath)
		if m.repoIgnore.Ignore(unixPath) {
			// A later negation rule (!keep.log) wins over the ignore.
			if m.repoIgnore.Include(unixPath) {
				m.logger.Debug("ignore: %q re-included by negation rule", relativePath)
				return false
			}
			m.logger.Debug("ignore: excluded %q (gitignore rule)", relativePath)
			return true
		}
	}

	return false
}

// hasHiddenComponent reports whether any path component starts with a
// dot.
func hasHiddenComponent(relativePath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relativePath), "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// inGitDir reports whether the path is a .git directory or lies inside
// one.
func inGitDir(relativePath string, isDir bool) bool {
	parts := strings.Split(filepath.ToSlash(relativePath), "/")
	for i, part := range parts {
		if part == ".git" {
			if isDir || i < len(parts)-1 {
				return true
			}
		}
	}
	return false
}
