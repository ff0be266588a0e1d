package convention

import (
	"testing"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
)

// stubConvention implements Convention for registry tests.
type stubConvention struct {
	name model.Toolchain
}

func (s *stubConvention) Name() model.Toolchain { return s.name }
func (s *stubConvention) Locations(_ string) ([]string, error) {
	return nil, nil
}

func TestRegisterAndAll(t *testing.T) {
	// Save original registry and restore after test
	original := registry
	t.Cleanup(func() { registry = original })

	registry = nil

	c1 := &stubConvention{name: "toolchain-1"}
	c2 := &stubConvention{name: "toolchain-2"}

	Register(c1)
	Register(c2)

	all := All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d conventions, want 2", len(all))
	}
	if all[0].Name() != "toolchain-1" {
		t.Errorf("All()[0].Name() = %q, want toolchain-1", all[0].Name())
	}
	if all[1].Name() != "toolchain-2" {
		t.Errorf("All()[1].Name() = %q, want toolchain-2", all[1].Name())
	}
}

func TestByName(t *testing.T) {
	original := registry
	t.Cleanup(func() { registry = original })

	registry = nil

	Register(&stubConvention{name: "alpha"})
	Register(&stubConvention{name: "beta"})
	Register(&stubConvention{name: "alpha"})

	tests := []struct {
		name      string
		toolchain model.Toolchain
		wantLen   int
	}{
		{
			name:      "filter to alpha",
			toolchain: "alpha",
			wantLen:   2,
		},
		{
			name:      "filter to beta",
			toolchain: "beta",
			wantLen:   1,
		},
		{
			name:      "empty name returns all",
			toolchain: "",
			wantLen:   3,
		},
		{
			name:      "unknown toolchain",
			toolchain: "gamma",
			wantLen:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByName(tt.toolchain)
			if len(got) != tt.wantLen {
				t.Errorf("ByName(%q) returned %d conventions, want %d", tt.toolchain, len(got), tt.wantLen)
			}
		})
	}
}

func TestDefaultRegistrations(t *testing.T) {
	// The vexide and pros conventions register themselves via init().
	if len(ByName(model.ToolchainVexide)) != 1 {
		t.Error("vexide convention not registered")
	}
	if len(ByName(model.ToolchainPros)) != 1 {
		t.Error("pros convention not registered")
	}
}
