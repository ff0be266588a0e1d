package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/config"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/convention"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/locator"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/output"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/workspace"
)

var (
	flagJSON      bool
	flagToolchain string
	flagSince     string
	flagLimit     int
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:          "v5sym",
	Short:        "Locate VEX V5 code objects across build toolchains",
	Long:         "Find compiled program images in vexide (cargo) and PROS projects, ranked by recency, so the newest build is always at hand to flash, run, or symbolicate.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagToolchain, "toolchain", "", "Filter by toolchain (vexide, pros, fixed)")
	rootCmd.PersistentFlags().StringVar(&flagSince, "since", "", "Only objects modified within duration (e.g., 24h, 7d, 2w)")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 0, "Max results (0 = unlimited)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func getFormat() output.Format {
	if flagJSON {
		return output.FormatJSON
	}
	return output.FormatTable
}

// projectRoot returns the first positional argument, defaulting to the
// current directory.
func projectRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// buildLocator assembles the locator for this invocation: the
// registered toolchain conventions (optionally filtered by --toolchain)
// plus a fixed-path convention for any user-configured extra paths.
func buildLocator() (*locator.Locator, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if flagLimit == 0 {
		flagLimit = cfg.Limit
	}

	convs := convention.ByName(model.Toolchain(flagToolchain))
	if len(cfg.ExtraObjectPaths) > 0 && (flagToolchain == "" || flagToolchain == string(model.ToolchainFixed)) {
		convs = append(convs, convention.NewFixed(model.ToolchainFixed, cfg.ExtraObjectPaths))
	}
	if len(convs) == 0 {
		return nil, fmt.Errorf("unknown toolchain %q", flagToolchain)
	}

	return locator.New(workspace.Default(), log.Default(), convs...), nil
}

// filterObjects applies the --since and --limit flags to a ranked list.
func filterObjects(objs []model.Object) ([]model.Object, error) {
	if flagSince != "" {
		d, err := parseDuration(flagSince)
		if err != nil {
			return nil, fmt.Errorf("invalid --since value: %w", err)
		}
		var kept []model.Object
		for _, o := range objs {
			if o.Age() <= d {
				kept = append(kept, o)
			}
		}
		objs = kept
	}
	if flagLimit > 0 && len(objs) > flagLimit {
		objs = objs[:flagLimit]
	}
	return objs, nil
}

// parseDuration handles Go durations plus "d" (days) and "w" (weeks).
func parseDuration(s string) (time.Duration, error) {
	// Try standard Go duration first
	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	// Handle "Nd" and "Nw"
	var n int
	if _, err := fmt.Sscanf(s, "%dd", &n); err == nil {
		return time.Duration(n) * 24 * time.Hour, nil
	}
	if _, err := fmt.Sscanf(s, "%dw", &n); err == nil {
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	}

	return 0, fmt.Errorf("cannot parse %q (use Go durations, Nd for days, or Nw for weeks)", s)
}
