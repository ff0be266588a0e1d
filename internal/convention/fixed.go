package convention

import (
	"path/filepath"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
)

// fixedConvention returns a fixed list of root-relative paths. It never
// touches the filesystem; the locator's stat step weeds out paths that
// do not exist. Used for user-configured object locations.
type fixedConvention struct {
	name  model.Toolchain
	paths []string
}

// NewFixed creates a convention that maps each of the given
// root-relative paths into the project root.
func NewFixed(name model.Toolchain, paths []string) Convention {
	return &fixedConvention{name: name, paths: paths}
}

func (c *fixedConvention) Name() model.Toolchain { return c.name }

func (c *fixedConvention) Locations(root string) ([]string, error) {
	locs := make([]string, len(c.paths))
	for i, p := range c.paths {
		locs[i] = filepath.Join(root, filepath.FromSlash(p))
	}
	return locs, nil
}
