package dialog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Find is the Find dialog: a single query field plus a match-case toggle,
// grounded on components.ConnectionForm's single-field focus/blur handling
// pared down to one input.
type Find struct {
	input     textinput.Model
	matchCase bool
	done      bool
	canceled  bool
}

// NewFind seeds the query field with the previous search term, if any.
func NewFind(initial string) *Find {
	ti := textinput.New()
	ti.Placeholder = "text to find"
	ti.SetValue(initial)
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40
	return &Find{input: ti}
}

func (f *Find) Init() tea.Cmd { return textinput.Blink }

func (f *Find) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			f.canceled = true
			return f, nil
		case tea.KeyEnter:
			f.done = true
			return f, nil
		case tea.KeyTab:
			f.matchCase = !f.matchCase
			return f, nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f *Find) View() string {
	caseLabel := "match case: off"
	if f.matchCase {
		caseLabel = "match case: on"
	}
	body := fmt.Sprintf("%s\n%s %s\n\n%s",
		titleStyle.Render("Find"),
		labelStyle.Render("Query:  "), f.input.View(),
		hintStyle.Render(caseLabel+"  (Tab toggles, Enter finds, Esc cancels)"))
	return boxStyle.Render(body)
}

func (f *Find) Done() bool     { return f.done }
func (f *Find) Canceled() bool { return f.canceled }

// Query is the text to search for.
func (f *Find) Query() string { return f.input.Value() }

// MatchCase reports whether the search should be case-sensitive.
func (f *Find) MatchCase() bool { return f.matchCase }
