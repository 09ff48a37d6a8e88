package dialog

import tea "github.com/charmbracelet/bubbletea"

// About is a static informational dialog: any key dismisses it, grounded on
// components.DeleteConfirmation's simple any-input-advances shape without
// the yes/no distinction.
type About struct {
	lines []string
	done  bool
}

func NewAbout(lines []string) *About {
	return &About{lines: lines}
}

func (a *About) Init() tea.Cmd { return nil }

func (a *About) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		a.done = true
	}
	return a, nil
}

func (a *About) View() string {
	body := titleStyle.Render("About")
	for _, l := range a.lines {
		body += "\n" + l
	}
	body += "\n\n" + hintStyle.Render("(press any key to close)")
	return boxStyle.Render(body)
}

func (a *About) Done() bool     { return a.done }
func (a *About) Canceled() bool { return false }
