package convention

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/workspace"
)

// vexidePattern matches cargo build output for any target triple, both
// profiles, top-level binaries and examples alike.
const vexidePattern = "target/*/{debug,release}/{examples/*,*}"

func init() {
	Register(NewVexide(workspace.Default(), log.Default()))
}

// vexideConvention finds program images in a vexide (cargo) project.
// Cargo drops linked executables next to intermediate artifacts in the
// same profile directory; the executables are the entries whose base
// name has no extension and no dash ("my_robot"), while intermediates
// carry one or both ("my-robot.d", "libvexide.rlib"). That naming rule
// is the only discriminator applied here.
type vexideConvention struct {
	ws  workspace.Workspace
	log *log.Logger
}

// NewVexide creates the cargo-layout convention.
func NewVexide(ws workspace.Workspace, logger *log.Logger) Convention {
	return &vexideConvention{ws: ws, log: logger}
}

func (c *vexideConvention) Name() model.Toolchain { return model.ToolchainVexide }

func (c *vexideConvention) Locations(root string) ([]string, error) {
	matches, err := c.ws.SearchFiles(root, vexidePattern)
	if err != nil {
		return nil, fmt.Errorf("vexide: %w", err)
	}
	c.log.Debug("vexide search", "pattern", vexidePattern, "candidates", matches)

	var locs []string
	for _, m := range matches {
		if isLinkedExecutableName(filepath.Base(m)) {
			locs = append(locs, m)
		}
	}
	c.log.Debug("vexide filtered", "kept", locs)
	return locs, nil
}

// isLinkedExecutableName reports whether a cargo output file name looks
// like a final linked executable rather than an intermediate artifact.
func isLinkedExecutableName(base string) bool {
	return !strings.ContainsAny(base, ".-")
}
