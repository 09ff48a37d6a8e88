package dialog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SaveAs is a single-field path entry dialog, seeded with the buffer's
// current path (if any).
type SaveAs struct {
	input    textinput.Model
	done     bool
	canceled bool
}

func NewSaveAs(initialPath string) *SaveAs {
	ti := textinput.New()
	ti.Placeholder = "path to save as"
	ti.SetValue(initialPath)
	ti.CharLimit = 1024
	ti.Width = 48
	ti.Focus()
	return &SaveAs{input: ti}
}

func (s *SaveAs) Init() tea.Cmd { return textinput.Blink }

func (s *SaveAs) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			s.canceled = true
			return s, nil
		case tea.KeyEnter:
			if s.input.Value() != "" {
				s.done = true
			}
			return s, nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SaveAs) View() string {
	body := fmt.Sprintf("%s\n%s\n\n%s",
		titleStyle.Render("Save As"),
		s.input.View(),
		hintStyle.Render("(Enter confirms, Esc cancels)"))
	return boxStyle.Render(body)
}

func (s *SaveAs) Done() bool     { return s.done }
func (s *SaveAs) Canceled() bool { return s.canceled }

// Path returns the committed destination path.
func (s *SaveAs) Path() string { return s.input.Value() }
