package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/history"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick [project-root]",
	Short: "Interactively pick a code object",
	Long:  "Browse located code objects and pick one. The chosen path is printed to stdout and recorded in the pick history.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
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

	p := tea.NewProgram(tui.New(objs), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected picker model %T", final)
	}
	sel := m.Selected()
	if sel == nil {
		return nil // user quit without picking
	}

	recordPick(sel)
	fmt.Println(sel.Path)
	return nil
}

// recordPick appends the selection to the pick history. History is a
// convenience; failures are logged, never fatal.
func recordPick(obj *model.Object) {
	path, err := history.DefaultPath()
	if err != nil {
		log.Warn("skipping pick history", "reason", err)
		return
	}
	store, err := history.Open(path)
	if err != nil {
		log.Warn("skipping pick history", "reason", err)
		return
	}
	defer store.Close()

	if err := store.Record(*obj); err != nil {
		log.Warn("recording pick failed", "reason", err)
	}
}
