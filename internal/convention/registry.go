package convention

import "github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"

var registry []Convention

// Register adds a convention to the global registry.
// Called from each convention's init() function.
func Register(c Convention) {
	registry = append(registry, c)
}

// All returns all registered conventions in registration order.
func All() []Convention {
	return registry
}

// ByName returns conventions matching the given toolchain name, or all
// if empty.
func ByName(name model.Toolchain) []Convention {
	if name == "" {
		return registry
	}
	var filtered []Convention
	for _, c := range registry {
		if c.Name() == name {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
