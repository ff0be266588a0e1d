package convention

import (
	"path/filepath"
	"testing"
)

func TestFixedLocations(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  []string
	}{
		{
			name:  "single path joined to root",
			paths: []string{"build/a.elf"},
			want:  []string{filepath.Join("proj", "build", "a.elf")},
		},
		{
			name:  "multiple paths keep order",
			paths: []string{"out/prog.bin", "dist/prog"},
			want: []string{
				filepath.Join("proj", "out", "prog.bin"),
				filepath.Join("proj", "dist", "prog"),
			},
		},
		{
			name:  "empty list",
			paths: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFixed("fixed", tt.paths)
			got, err := c.Locations("proj")
			if err != nil {
				t.Fatalf("Locations() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Locations() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Locations()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFixedName(t *testing.T) {
	c := NewFixed("custom", []string{"a"})
	if c.Name() != "custom" {
		t.Errorf("Name() = %q, want custom", c.Name())
	}
}
