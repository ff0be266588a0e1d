package convention

import (
	"io/fs"
	"os"
	"path/filepath"
)

// fakeWorkspace implements workspace.Workspace with canned glob results.
type fakeWorkspace struct {
	matches map[string][]string // pattern -> returned paths
	err     error
}

func (f *fakeWorkspace) SearchFiles(root, pattern string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, m := range f.matches[pattern] {
		out = append(out, filepath.Join(root, filepath.FromSlash(m)))
	}
	return out, nil
}

func (f *fakeWorkspace) Stat(path string) (fs.FileInfo, error) {
	return nil, os.ErrNotExist
}
