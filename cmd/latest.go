package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var latestCmd = &cobra.Command{
	Use:   "latest [project-root]",
	Short: "Print the path of the most recently built code object",
	Long:  "Print just the newest object's path, for shell substitution:\n\n  pros upload $(v5sym latest)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLatest,
}

func init() {
	rootCmd.AddCommand(latestCmd)
}

func runLatest(cmd *cobra.Command, args []string) error {
	l, err := buildLocator()
	if err != nil {
		return err
	}

	paths, err := l.FindObjectPaths(cmd.Context(), projectRoot(args))
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no code objects found (searched: %s)", l.Name())
	}

	fmt.Println(paths[0])
	return nil
}
