package dialog

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Replace is the Find/Replace dialog: two fields cycled with Tab, grounded
// on components.ConnectionForm's multi-field focus cycling. Enter commits a
// single replace-next; Ctrl+A commits replace-all, mirroring the distinct
// "replace one" vs "replace all" actions spec'd for the editor.
type Replace struct {
	find    textinput.Model
	replace textinput.Model
	focus   int // 0 = find, 1 = replace

	matchCase bool
	done      bool
	all       bool
	canceled  bool
}

func NewReplace(initialFind string) *Replace {
	find := textinput.New()
	find.Placeholder = "find"
	find.SetValue(initialFind)
	find.CharLimit = 256
	find.Width = 40
	find.Focus()

	repl := textinput.New()
	repl.Placeholder = "replace with"
	repl.CharLimit = 256
	repl.Width = 40

	return &Replace{find: find, replace: repl}
}

func (r *Replace) Init() tea.Cmd { return textinput.Blink }

func (r *Replace) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			r.canceled = true
			return r, nil
		case tea.KeyEnter:
			r.done = true
			return r, nil
		case tea.KeyCtrlA:
			r.done = true
			r.all = true
			return r, nil
		case tea.KeyTab:
			r.focus = 1 - r.focus
			r.syncFocus()
			return r, nil
		case tea.KeyCtrlT:
			r.matchCase = !r.matchCase
			return r, nil
		}
	}

	var cmd tea.Cmd
	if r.focus == 0 {
		r.find, cmd = r.find.Update(msg)
	} else {
		r.replace, cmd = r.replace.Update(msg)
	}
	return r, cmd
}

func (r *Replace) syncFocus() {
	if r.focus == 0 {
		r.find.Focus()
		r.replace.Blur()
	} else {
		r.find.Blur()
		r.replace.Focus()
	}
}

func (r *Replace) fieldLabel(text string, focused bool) string {
	if focused {
		return focusedStyle.Render(text)
	}
	return blurredStyle.Render(text)
}

func (r *Replace) View() string {
	caseLabel := "match case: off"
	if r.matchCase {
		caseLabel = "match case: on"
	}
	body := fmt.Sprintf("%s\n%s %s\n%s %s\n\n%s",
		titleStyle.Render("Replace"),
		r.fieldLabel("Find:   ", r.focus == 0), r.find.View(),
		r.fieldLabel("Repl:   ", r.focus == 1), r.replace.View(),
		hintStyle.Render(caseLabel+"  (Tab switches field, Ctrl+T toggles case,\nEnter replaces next, Ctrl+A replaces all, Esc cancels)"))
	return boxStyle.Render(body)
}

func (r *Replace) Done() bool     { return r.done }
func (r *Replace) Canceled() bool { return r.canceled }

func (r *Replace) Query() string       { return r.find.Value() }
func (r *Replace) Replacement() string { return r.replace.Value() }
func (r *Replace) MatchCase() bool     { return r.matchCase }

// All reports whether the commit was a replace-all (Ctrl+A) rather than a
// single replace-next (Enter).
func (r *Replace) All() bool { return r.all }
