package git

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// pathFilter applies include/exclude glob patterns to file paths.
type pathFilter struct {
	include []string
	exclude []string
}

// matches checks if a path passes the include/exclude filters.
func (f pathFilter) matches(path string) bool {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	// Check exclude patterns first
	for _, pattern := range f.exclude {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return false
		}
	}

	// If no include patterns, accept all
	if len(f.include) == 0 {
		return true
	}

	// Check include patterns
	for _, pattern := range f.include {
		matched, _ := doublestar.Match(pattern, path)
		if matched {
			return true
		}
	}

	return false
}
