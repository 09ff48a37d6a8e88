package dialog

import "github.com/charmbracelet/lipgloss"

// Trimmed from components/styles.go: the generic title/label/hint/error/
// focus palette carries over, the SSH- and Bitwarden-specific aliases
// (scp progress colors, key-list styling) don't — this package has no
// equivalent concern for them.
var (
	colorPrimary  = lipgloss.Color("#974FD7")
	colorSubText  = lipgloss.Color("#7D7D7D")
	colorError    = lipgloss.Color("#FF5555")
	colorInactive = lipgloss.Color("#4D4D4D")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubText)
	hintStyle  = lipgloss.NewStyle().Foreground(colorInactive)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorError)

	focusedStyle = lipgloss.NewStyle().Foreground(colorPrimary)
	blurredStyle = lipgloss.NewStyle().Foreground(colorInactive)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3)
)
