package locator

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/convention"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/workspace"
)

// TestLocateMixedProject exercises the real glob conventions against an
// on-disk tree mixing vexide and PROS output, with intermediates that
// must be filtered out.
func TestLocateMixedProject(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-2 * time.Hour)

	// vexide layout: a linked executable, an example, and intermediates.
	robot := writeFileAt(t, root, "target/armv7a-vex-v5/debug/my_robot", base.Add(40*time.Minute))
	auton := writeFileAt(t, root, "target/armv7a-vex-v5/release/examples/auton", base.Add(20*time.Minute))
	writeFileAt(t, root, "target/armv7a-vex-v5/debug/my_robot.d", base.Add(50*time.Minute))
	writeFileAt(t, root, "target/armv7a-vex-v5/debug/my-robot", base.Add(55*time.Minute))

	// PROS layout.
	hot := writeFileAt(t, root, "build/hot.elf", base.Add(60*time.Minute))

	ws := workspace.Default()
	l := New(ws, log.Default(),
		convention.NewVexide(ws, log.Default()),
		convention.NewPros(ws, log.Default()))

	objs, err := l.Locate(context.Background(), root)
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}

	want := []struct {
		path      string
		toolchain model.Toolchain
	}{
		{hot, model.ToolchainPros},
		{robot, model.ToolchainVexide},
		{auton, model.ToolchainVexide},
	}

	if len(objs) != len(want) {
		var got []string
		for _, o := range objs {
			got = append(got, o.Path)
		}
		t.Fatalf("Locate() returned %v, want %d objects", got, len(want))
	}
	for i, w := range want {
		if objs[i].Path != w.path {
			t.Errorf("objs[%d].Path = %q, want %q", i, objs[i].Path, w.path)
		}
		if objs[i].Toolchain != w.toolchain {
			t.Errorf("objs[%d].Toolchain = %q, want %q", i, objs[i].Toolchain, w.toolchain)
		}
	}

	// Intermediates never make it through.
	for _, o := range objs {
		base := filepath.Base(o.Path)
		if base == "my_robot.d" || base == "my-robot" {
			t.Errorf("intermediate artifact %q leaked into results", o.Path)
		}
	}
}
