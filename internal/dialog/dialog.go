// Package dialog holds the pager/editor's modeless dialog framework: Find,
// Replace, Go-To-Line, Open, Save-As, About, and message boxes. Grounded on
// the teacher's components.ConnectionForm/DeleteConfirmation pattern — a
// tea.Model driven by synthetic messages rather than a running tea.Program,
// per SPEC_FULL.md §17's explicit scoping of bubbletea away from the core
// event loop.
package dialog

import tea "github.com/charmbracelet/bubbletea"

// Dialog is any modeless overlay the pager/editor event loop can drive.
// Update is called once per input event while a Dialog is active, in place
// of the core's own key table; Done/Canceled report when it should be torn
// down.
type Dialog interface {
	tea.Model
	Done() bool
	Canceled() bool
}
