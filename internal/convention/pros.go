package convention

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/workspace"
)

// prosPattern matches PROS build output. PROS always links into a flat
// build/ directory with a fixed extension, so the glob alone is enough
// and no name filtering is needed.
const prosPattern = "build/*.elf"

func init() {
	Register(NewPros(workspace.Default(), log.Default()))
}

// prosConvention finds program images in a PROS project.
type prosConvention struct {
	ws  workspace.Workspace
	log *log.Logger
}

// NewPros creates the PROS-layout convention.
func NewPros(ws workspace.Workspace, logger *log.Logger) Convention {
	return &prosConvention{ws: ws, log: logger}
}

func (c *prosConvention) Name() model.Toolchain { return model.ToolchainPros }

func (c *prosConvention) Locations(root string) ([]string, error) {
	matches, err := c.ws.SearchFiles(root, prosPattern)
	if err != nil {
		return nil, fmt.Errorf("pros: %w", err)
	}
	c.log.Debug("pros search", "pattern", prosPattern, "candidates", matches)
	return matches, nil
}
