// Package workspace wraps the two filesystem capabilities the locator
// needs from its host: glob search and stat. Keeping them behind an
// interface lets tests substitute a scripted filesystem.
package workspace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Workspace provides filesystem search and stat primitives.
type Workspace interface {
	// SearchFiles returns all files under root matching pattern;
	// directories are never returned. Patterns support '*' segments and
	// brace alternation ({a,b}). An inaccessible root is an error; no
	// matches is an empty result.
	SearchFiles(root, pattern string) ([]string, error)

	// Stat returns file info for path. A path that does not currently
	// exist yields an error satisfying os.IsNotExist semantics.
	Stat(path string) (fs.FileInfo, error)
}

// osWorkspace is the real-filesystem implementation.
type osWorkspace struct{}

// Default returns a Workspace backed by the OS filesystem.
func Default() Workspace {
	return osWorkspace{}
}

func (osWorkspace) SearchFiles(root, pattern string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("search root %s: %w", root, err)
	}

	full := filepath.ToSlash(filepath.Join(root, pattern))
	matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	return matches, nil
}

func (osWorkspace) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}
