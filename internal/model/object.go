package model

import (
	"path/filepath"
	"time"
)

// Toolchain identifies which build toolchain's layout a code object was
// discovered under.
type Toolchain string

const (
	ToolchainVexide Toolchain = "vexide"
	ToolchainPros   Toolchain = "pros"
	ToolchainFixed  Toolchain = "fixed"
)

// Object is a code object located on disk: a compiled program image
// produced by one of the supported toolchains, verified to exist at
// discovery time.
type Object struct {
	Path      string    `json:"Path"`
	Toolchain Toolchain `json:"Toolchain"`
	ModTime   time.Time `json:"ModTime"`
	Size      int64     `json:"Size"`
}

// Base returns the final path component.
func (o Object) Base() string {
	return filepath.Base(o.Path)
}

// ShortPath returns the last two path components (e.g.,
// "release/my_robot"), or the whole path if it is shorter than that.
func (o Object) ShortPath() string {
	dir, base := filepath.Split(o.Path)
	parent := filepath.Base(filepath.Clean(dir))
	if parent == "." || parent == string(filepath.Separator) || parent == "" {
		return base
	}
	return parent + "/" + base
}

// Age returns how long ago the object was last modified.
func (o Object) Age() time.Duration {
	return time.Since(o.ModTime)
}

// Fresh reports whether the object was built very recently, which
// usually means it is the output of the build the user just ran.
func (o Object) Fresh() bool {
	return o.Age() < 5*time.Minute
}
