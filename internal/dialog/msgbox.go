package dialog

import tea "github.com/charmbracelet/bubbletea"

// MsgBox is a generic message box, either informational (OK only) or a
// confirmation (Yes/No), grounded on components.DeleteConfirmation's y/n/esc
// handling — used for the read-only-target save prompt from §4.7 and for
// surfacing errors such as a failed Open.
type MsgBox struct {
	message   string
	confirm   bool
	confirmed bool
	done      bool
	canceled  bool
}

// NewMsgBox builds an OK-only informational box.
func NewMsgBox(message string) *MsgBox {
	return &MsgBox{message: message}
}

// NewConfirm builds a Yes/No confirmation box.
func NewConfirm(message string) *MsgBox {
	return &MsgBox{message: message, confirm: true}
}

func (m *MsgBox) Init() tea.Cmd { return nil }

func (m *MsgBox) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if !m.confirm {
		m.done = true
		return m, nil
	}
	switch key.String() {
	case "y", "Y":
		m.confirmed = true
		m.done = true
	case "n", "N", "esc":
		m.confirmed = false
		m.canceled = key.String() == "esc"
		m.done = true
	}
	return m, nil
}

func (m *MsgBox) View() string {
	body := errorStyle.Render(m.message)
	if m.confirm {
		body += "\n\n" + hintStyle.Render("(y/n)")
	} else {
		body += "\n\n" + hintStyle.Render("(press any key)")
	}
	return boxStyle.Render(body)
}

func (m *MsgBox) Done() bool     { return m.done }
func (m *MsgBox) Canceled() bool { return m.canceled }

// Confirmed reports the Yes/No answer. Only meaningful for a confirmation
// box once Done reports true.
func (m *MsgBox) Confirmed() bool { return m.confirmed }
