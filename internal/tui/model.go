package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/model"
	"github.com/doinkythederp/symbolizer-for-vex-v5/internal/output"
)

// Column widths (fixed layout).
const (
	colToolchain = 10
	colPath      = 0 // dynamic: fills remaining space
	colSize      = 8
	colTime      = 6
	colStatus    = 6

	// Lines reserved for header + column headers + footer.
	chromeLines = 4
)

// Styles.
var (
	styleSelected = lipgloss.NewStyle().Bold(true).Reverse(true)
	styleFresh    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	styleHeader   = lipgloss.NewStyle().Bold(true)
	styleFooter   = lipgloss.NewStyle().Faint(true)
)

// Model is the Bubble Tea model for the code object picker.
type Model struct {
	objects  []model.Object
	cursor   int
	offset   int // scroll offset for viewport
	width    int
	height   int
	selected *model.Object
	quitting bool
}

// New creates a Model pre-loaded with located objects, newest first.
func New(objects []model.Object) Model {
	return Model{
		objects: objects,
		width:   80,
		height:  24,
	}
}

// Selected returns the object the user picked, or nil if they quit.
func (m Model) Selected() *model.Object {
	return m.selected
}

// Quitting returns true if the user chose to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Init implements tea.Model. Data is pre-loaded, so no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.clampViewport()
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.objects)-1 {
				m.cursor++
				m.clampViewport()
			}
			return m, nil

		case "enter":
			if len(m.objects) == 0 {
				return m, nil
			}
			obj := m.objects[m.cursor]
			m.selected = &obj
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if len(m.objects) == 0 {
		return "No code objects found.\n"
	}

	var b strings.Builder

	// Header: "Code objects (X fresh)"
	freshCount := 0
	for _, o := range m.objects {
		if o.Fresh() {
			freshCount++
		}
	}
	header := fmt.Sprintf("Code objects (%d fresh)", freshCount)
	b.WriteString(styleHeader.Render(header))
	b.WriteByte('\n')

	// Column headers
	pathWidth := m.pathWidth()
	colHeader := fmt.Sprintf("  %-*s %-*s %-*s %-*s %s",
		colToolchain, "TOOLCHAIN",
		pathWidth, "PATH",
		colSize, "SIZE",
		colTime, "AGO",
		"STATUS")
	b.WriteString(styleFooter.Render(colHeader))
	b.WriteByte('\n')

	// Object rows
	visibleRows := m.visibleRows()
	end := m.offset + visibleRows
	if end > len(m.objects) {
		end = len(m.objects)
	}

	for i := m.offset; i < end; i++ {
		row := m.renderRow(i, pathWidth)
		if i == m.cursor {
			row = styleSelected.Render(row)
		}
		b.WriteString(row)
		b.WriteByte('\n')
	}

	// Footer
	footer := "j/k: navigate  enter: pick  q: quit"
	b.WriteString(styleFooter.Render(footer))
	b.WriteByte('\n')

	return b.String()
}

// renderRow formats a single object row.
func (m Model) renderRow(idx, pathWidth int) string {
	o := m.objects[idx]

	toolchain := truncatePad(string(o.Toolchain), colToolchain)
	path := truncatePad(o.ShortPath(), pathWidth)
	size := truncatePad(output.FormatSize(o.Size), colSize)
	ago := truncatePad(output.FormatDuration(time.Since(o.ModTime)), colTime)

	// Status indicator: pad to colStatus visible width for alignment.
	var status string
	if o.Fresh() {
		status = styleFresh.Render("*") + strings.Repeat(" ", colStatus-1)
	} else {
		status = strings.Repeat(" ", colStatus)
	}

	return fmt.Sprintf("  %s %s %s %s %s", toolchain, path, size, ago, status)
}

// pathWidth computes the dynamic path column width.
func (m Model) pathWidth() int {
	// Layout: indent(2) TOOLCHAIN(10) sp PATH(pw) sp SIZE(8) sp AGO(6) sp STATUS
	fixed := 2 + colToolchain + 1 + 1 + colSize + 1 + colTime + 1 + colStatus
	pw := m.width - fixed
	if pw < 10 {
		pw = 10
	}
	return pw
}

// visibleRows returns how many object rows fit in the viewport.
func (m Model) visibleRows() int {
	rows := m.height - chromeLines
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampViewport ensures the cursor is visible within the scrolled viewport.
func (m *Model) clampViewport() {
	visible := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// truncatePad truncates s to maxLen (with "..." suffix) and pads with
// spaces. Byte length is fine — object paths are ASCII.
func truncatePad(s string, maxLen int) string {
	if len(s) > maxLen {
		if maxLen > 3 {
			s = s[:maxLen-3] + "..."
		} else {
			s = s[:maxLen]
		}
	}
	return fmt.Sprintf("%-*s", maxLen, s)
}
