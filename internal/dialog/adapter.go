package dialog

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/conterm/contools/internal/term"
)

// ToMsg turns one core term.Event into the tea.Msg a Dialog's Update
// expects, so dialogs can be built from bubbles/textinput and bubbles/list
// exactly as the teacher's ConnectionForm and DeleteConfirmation do, without
// a tea.Program or its own input reader running underneath. The editor's
// event loop passes ToMsg(ev) to the active dialog's Update once per event
// while a dialog is active, instead of handling that event itself.
func ToMsg(ev term.Event) tea.Msg {
	switch ev.Kind {
	case term.EventKey:
		return toTeaKeyMsg(ev)
	case term.EventMouse:
		return toTeaMouseMsg(ev)
	case term.EventResize:
		return tea.WindowSizeMsg{Width: ev.Cols, Height: ev.Rows}
	default:
		return nil
	}
}

func toTeaKeyMsg(ev term.Event) tea.KeyMsg {
	if ev.Key == "" {
		if ev.Ctrl {
			if t, ok := ctrlKeys[ev.Rune]; ok {
				return tea.KeyMsg{Type: t, Alt: ev.Alt}
			}
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{ev.Rune}, Alt: ev.Alt}
	}

	if t, ok := namedKeys[ev.Key]; ok {
		return tea.KeyMsg{Type: t, Alt: ev.Alt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(ev.Key), Alt: ev.Alt}
}

// ctrlKeys maps the lowercase letter of a Ctrl-chord to bubbletea's named
// KeyType, covering the chords the dialogs actually bind (cancel, line
// editing within a textinput).
var ctrlKeys = map[rune]tea.KeyType{
	'a': tea.KeyCtrlA,
	'c': tea.KeyCtrlC,
	'e': tea.KeyCtrlE,
	'k': tea.KeyCtrlK,
	't': tea.KeyCtrlT,
	'u': tea.KeyCtrlU,
	'w': tea.KeyCtrlW,
}

var namedKeys = map[string]tea.KeyType{
	"Up":      tea.KeyUp,
	"Down":    tea.KeyDown,
	"Left":    tea.KeyLeft,
	"Right":   tea.KeyRight,
	"Home":    tea.KeyHome,
	"End":     tea.KeyEnd,
	"PgUp":    tea.KeyPgUp,
	"PgDown":  tea.KeyPgDown,
	"Delete":  tea.KeyDelete,
	"Enter":   tea.KeyEnter,
	"Esc":     tea.KeyEsc,
	"Tab":     tea.KeyTab,
	"Backspace": tea.KeyBackspace,
	"Space":   tea.KeySpace,
}

func toTeaMouseMsg(ev term.Event) tea.MouseMsg {
	m := tea.MouseMsg{X: ev.MouseX, Y: ev.MouseY, Shift: ev.Shift, Alt: ev.Alt, Ctrl: ev.Ctrl}
	switch ev.MouseAction {
	case term.MousePress:
		m.Action = tea.MouseActionPress
		m.Button = tea.MouseButtonLeft
	case term.MouseRelease:
		m.Action = tea.MouseActionRelease
		m.Button = tea.MouseButtonLeft
	case term.MouseDrag:
		m.Action = tea.MouseActionMotion
		m.Button = tea.MouseButtonLeft
	case term.MouseWheelUp:
		m.Action = tea.MouseActionPress
		m.Button = tea.MouseButtonWheelUp
	case term.MouseWheelDown:
		m.Action = tea.MouseActionPress
		m.Button = tea.MouseButtonWheelDown
	}
	return m
}
