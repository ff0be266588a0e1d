package model

import (
	"path/filepath"
	"testing"
	"time"
)

func TestShortPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "nested path keeps last two components",
			path: filepath.Join("home", "dev", "robot", "build", "hot.elf"),
			want: "build/hot.elf",
		},
		{
			name: "two components unchanged",
			path: filepath.Join("release", "my_robot"),
			want: "release/my_robot",
		},
		{
			name: "bare file name",
			path: "program.elf",
			want: "program.elf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Object{Path: tt.path}
			if got := o.ShortPath(); got != tt.want {
				t.Errorf("ShortPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBase(t *testing.T) {
	o := Object{Path: filepath.Join("target", "debug", "examples", "auton")}
	if got := o.Base(); got != "auton" {
		t.Errorf("Base() = %q, want auton", got)
	}
}

func TestFresh(t *testing.T) {
	recent := Object{ModTime: time.Now().Add(-30 * time.Second)}
	if !recent.Fresh() {
		t.Error("object modified 30s ago should be fresh")
	}

	stale := Object{ModTime: time.Now().Add(-1 * time.Hour)}
	if stale.Fresh() {
		t.Error("object modified 1h ago should not be fresh")
	}
}
