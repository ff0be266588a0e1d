package cmd

import (
	"github.com/spf13/cobra"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list [project-root]",
	Short: "List code objects, newest first",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	l, err := buildLocator()
	if err != nil {
		return err
	}

	objs, err := l.Locate(cmd.Context(), projectRoot(args))
	if err != nil {
		return err
	}

	objs, err = filterObjects(objs)
	if err != nil {
		return err
	}

	output.RenderObjects(objs, getFormat())
	return nil
}
