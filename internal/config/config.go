// Package config loads optional user configuration for v5sym.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppName is the application name, used for the config directory.
const AppName = "v5sym"

// Config holds user-tunable settings. Everything has a working default;
// the config file is optional.
type Config struct {
	// ExtraObjectPaths are root-relative paths searched in addition to
	// the built-in toolchain conventions (e.g. "firmware/out/prog.bin").
	ExtraObjectPaths []string
	// Limit caps result counts when the --limit flag is not given.
	Limit int
	// Verbose enables debug logging by default.
	Verbose bool
}

// Dir returns the v5sym configuration directory
// (e.g. ~/.config/v5sym on Linux).
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// Load reads config.yaml from dir, or from the default config directory
// when dir is empty. A missing file yields defaults, not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.SetDefault("extra_object_paths", []string{})
	v.SetDefault("limit", 0)
	v.SetDefault("verbose", false)

	if dir == "" {
		var err error
		dir, err = Dir()
		if err != nil {
			return nil, err
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		ExtraObjectPaths: v.GetStringSlice("extra_object_paths"),
		Limit:            v.GetInt("limit"),
		Verbose:          v.GetBool("verbose"),
	}, nil
}
