package viewport

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/conterm/contools/internal/term"
)

// statusBarStyle is a fixed background/foreground pair for the status
// line, grounded on internal/ui/components/styles.go's flat
// lipgloss.NewStyle().Foreground/Background bar styles rather than raw
// ANSI escape concatenation.
var statusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("24"))

// Status builds the pager's status line text: "First-Last of Total,
// Percent%", labeled per the distilled spec's End/Awaiting data/More
// states, with an optional search-pattern suffix.
func Status(first, last, total uint64, done bool, searchPattern string) string {
	var label string
	switch {
	case total == 0:
		label = "Awaiting data"
	case done && last >= total:
		label = "End"
	case last < total:
		label = "More"
	default:
		label = "Awaiting data"
	}

	percent := 0
	if total > 0 {
		percent = int(last * 100 / total)
	}

	s := fmt.Sprintf("%d-%d of %d, %d%%  %s", first, last, total, percent, label)
	if searchPattern != "" {
		s += fmt.Sprintf("  Search: %s", searchPattern)
	}
	return s
}

// paintStatus clears the status row, truncates s to fit width (ending it
// with "..." when it is cut; lipgloss's MaxWidth then bounds the styled
// output), and writes it styled on the row immediately below the content
// area — height
// content rows occupy rows 0..height-1, so the status line lives at row
// height.
func paintStatus(t term.Terminal, s string, width, height int) error {
	row := height
	if err := t.SetCursor(0, row); err != nil {
		return err
	}
	if err := t.WriteCells("\x1b[2K"); err != nil {
		return err
	}

	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "...")
	}
	styled := statusBarStyle.MaxWidth(width).Render(s)
	if err := t.SetCursor(0, row); err != nil {
		return err
	}
	return t.WriteCells(styled)
}
