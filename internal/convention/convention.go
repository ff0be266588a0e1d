// Package convention implements the per-toolchain search strategies
// used to locate code objects in a project directory. Each toolchain
// lays out its build output differently; a Convention encapsulates one
// layout and nothing else.
package convention

import (
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
)

// Convention is the interface each toolchain's object finder implements.
type Convention interface {
	// Name returns the toolchain identifier ("vexide", "pros", "fixed").
	Name() model.Toolchain

	// Locations returns candidate object paths under the project root.
	// Candidates are not verified to exist; the locator stats them
	// later. A failing search is an error; an empty project is not.
	Locations(root string) ([]string, error)
}
