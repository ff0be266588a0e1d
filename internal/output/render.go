package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// RenderObjects outputs a ranked object list in the given format.
func RenderObjects(objs []model.Object, format Format) {
	switch format {
	case FormatJSON:
		renderJSON(os.Stdout, objs)
	default:
		renderTable(os.Stdout, objs)
	}
}

func renderTable(w io.Writer, objs []model.Object) {
	if len(objs) == 0 {
		fmt.Fprintln(w, "No code objects found.")
		return
	}

	fmt.Fprintf(w, "%-10s %-50s %-10s %-8s %s\n",
		"TOOLCHAIN", "PATH", "SIZE", "AGO", "STATUS")
	fmt.Fprintln(w, strings.Repeat("-", 88))

	for _, o := range objs {
		status := "-"
		if o.Fresh() {
			status = "FRESH"
		}
		path := truncate(o.Path, 48)
		fmt.Fprintf(w, "%-10s %-50s %-10s %-8s %s\n",
			o.Toolchain, path, FormatSize(o.Size), FormatDuration(o.Age()), status)
	}
}

func renderJSON(w io.Writer, v interface{}) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// truncate shortens long paths from the left so the file name stays
// visible.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return "..." + s[len(s)-maxLen+3:]
}

// FormatDuration returns a human-readable duration like "2h", "3d", "1w".
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	if hours < 1 {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}
	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd", days)
	}
	weeks := days / 7
	return fmt.Sprintf("%dw", weeks)
}

// FormatSize returns a human-readable byte count like "412K" or "1.2M".
func FormatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%dB", n)
	case n < 1024*1024:
		return fmt.Sprintf("%dK", n/1024)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/(1024*1024))
	}
}
