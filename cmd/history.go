package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/history"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/output"
)

var flagHistoryClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously picked code objects",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded picks")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path, err := history.DefaultPath()
	if err != nil {
		return err
	}
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Pick history cleared.")
		return nil
	}

	picks, err := store.List(flagLimit)
	if err != nil {
		return err
	}

	output.RenderPicks(picks, getFormat())
	return nil
}
