package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/history"
)

// RenderPicks outputs the pick history in the given format.
func RenderPicks(picks []history.Pick, format Format) {
	switch format {
	case FormatJSON:
		renderJSON(os.Stdout, picks)
	default:
		renderPickTable(os.Stdout, picks)
	}
}

func renderPickTable(w io.Writer, picks []history.Pick) {
	if len(picks) == 0 {
		fmt.Fprintln(w, "No picks recorded.")
		return
	}

	fmt.Fprintf(w, "%-18s %-10s %s\n", "PICKED", "TOOLCHAIN", "PATH")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for _, p := range picks {
		picked := p.PickedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "%-18s %-10s %s\n", picked, p.Toolchain, truncate(p.Path, 50))
	}
}
