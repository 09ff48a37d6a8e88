package editor

import (
	"fmt"
	"path/filepath"

	"github.com/conterm/contools/internal/contools"
	"github.com/conterm/contools/internal/dialog"
	"github.com/conterm/contools/internal/editbuffer"
	"github.com/conterm/contools/internal/selection"
	"github.com/conterm/contools/internal/term"
)

// dispatch handles one input event, reporting whether the editor should
// quit.
func (e *Editor) dispatch(ev term.Event) bool {
	if e.active != nil {
		return e.dispatchDialog(ev)
	}

	switch ev.Kind {
	case term.EventKey:
		return e.handleKey(ev)
	case term.EventMouse:
		e.handleMouse(ev)
	case term.EventResize:
		e.resize(ev.Cols, ev.Rows)
	}
	return false
}

func (e *Editor) handleKey(ev term.Event) bool {
	if ev.Ctrl {
		return e.handleCtrlKey(ev)
	}

	if ev.Key == "" {
		e.statusMsg = ""
		e.buf.InsertAtCursor(string(ev.Rune))
		return false
	}

	switch ev.Key {
	case "Esc":
		return e.confirmQuit()
	case "Enter":
		e.buf.InsertNewline()
	case "Tab":
		e.buf.InsertTab()
	case "Backspace":
		e.backspace()
	case "Delete":
		e.delete()
	case "Up":
		e.buf.MoveUp()
	case "Down":
		e.buf.MoveDown()
	case "Left":
		e.buf.MoveLeft()
	case "Right":
		e.buf.MoveRight()
	case "Home":
		e.buf.Cursor.Col = 0
	case "End":
		e.buf.Cursor.Col = len(e.buf.Lines[e.buf.Cursor.Line])
	case "PgUp":
		e.pageMove(-e.editHeight())
	case "PgDown":
		e.pageMove(e.editHeight())
	}
	return false
}

func (e *Editor) pageMove(n int) {
	line := e.buf.Cursor.Line + n
	if line < 0 {
		line = 0
	}
	if line >= len(e.buf.Lines) {
		line = len(e.buf.Lines) - 1
	}
	e.buf.Cursor.Line = line
	e.topLine += n
}

// backspace deletes the selection if one is active, otherwise the
// character immediately before the cursor (joining lines at column 0).
func (e *Editor) backspace() {
	if e.buf.Selection != nil {
		e.buf.DeleteSelection()
		return
	}
	line, col := e.buf.Cursor.Line, e.buf.Cursor.Col
	if col == 0 && line == 0 {
		return
	}
	if col == 0 {
		prevLen := len(e.buf.Lines[line-1])
		e.buf.Selection = &selection.Rect{Top: line - 1, Left: prevLen, Bottom: line, Right: 0}
		e.buf.DeleteSelection()
		return
	}
	e.buf.Selection = &selection.Rect{Top: line, Left: col - 1, Bottom: line, Right: col}
	e.buf.DeleteSelection()
}

// delete removes the selection if active, otherwise the character
// immediately after the cursor.
func (e *Editor) delete() {
	if e.buf.Selection != nil {
		e.buf.DeleteSelection()
		return
	}
	line, col := e.buf.Cursor.Line, e.buf.Cursor.Col
	if col >= len(e.buf.Lines[line]) {
		if line >= len(e.buf.Lines)-1 {
			return
		}
		e.buf.Selection = &selection.Rect{Top: line, Left: col, Bottom: line + 1, Right: 0}
	} else {
		e.buf.Selection = &selection.Rect{Top: line, Left: col, Bottom: line, Right: col + 1}
	}
	e.buf.DeleteSelection()
}

// handleCtrlKey dispatches the Ctrl+letter command table. Ctrl+H and
// Ctrl+I are deliberately absent here: the terminal sends the same bytes
// for them as Backspace (0x08) and Tab (0x09), so term.Event never
// reports them as Ctrl chords — see internal/term/terminal_unix.go's
// keyEventFor.
func (e *Editor) handleCtrlKey(ev term.Event) bool {
	switch ev.Rune {
	case 'q':
		return e.confirmQuit()
	case 's':
		e.save("")
	case 'o':
		e.openOpenDialog()
	case 'a':
		e.openAboutDialog()
	case 'f':
		e.openFindDialog()
	case 'r':
		e.openReplaceDialog()
	case 'g':
		e.openGoToDialog()
	case 'n':
		e.findNext()
	case 'p':
		e.findPrevious()
	case 'z':
		e.buf.Undo()
	case 'y':
		e.buf.Redo()
	case 'c':
		if err := e.buf.Copy(); err != nil {
			e.statusMsg = fmt.Sprintf("copy: %v", err)
		}
	case 'x':
		if err := e.buf.Cut(); err != nil {
			e.statusMsg = fmt.Sprintf("cut: %v", err)
		}
	case 'v':
		if err := e.buf.Paste(); err != nil {
			e.statusMsg = fmt.Sprintf("paste: %v", err)
		}
	}
	return false
}

func (e *Editor) confirmQuit() bool {
	if !e.buf.Modified {
		return true
	}
	e.pending = pendingQuitConfirm
	e.active = dialog.NewConfirm("Discard unsaved changes?")
	return false
}

func (e *Editor) openFindDialog() {
	e.pending = pendingFind
	e.active = dialog.NewFind(e.search.Pattern)
}

func (e *Editor) openReplaceDialog() {
	e.pending = pendingReplace
	e.active = dialog.NewReplace(e.search.Pattern)
}

func (e *Editor) openGoToDialog() {
	e.pending = pendingGoTo
	e.active = dialog.NewGoTo(len(e.buf.Lines))
}

func (e *Editor) openOpenDialog() {
	dir := "."
	if e.buf.Caption != "" {
		dir = filepath.Dir(e.buf.Caption)
	}
	e.pending = pendingOpen
	e.active = dialog.NewOpen(dir, e.width, e.editHeight())
}

func (e *Editor) openSaveAsDialog() {
	e.pending = pendingSaveAs
	e.active = dialog.NewSaveAs(e.buf.Caption)
}

func (e *Editor) openAboutDialog() {
	e.pending = pendingAbout
	e.active = dialog.NewAbout([]string{"edit", "A Go terminal text editor."})
}

// findNext/findPrevious repeat the last committed search, surfacing
// contools.ErrSearchNotFound as a status message rather than a fatal error
// (§7).
func (e *Editor) findNext() {
	if !e.buf.Find(&e.search) {
		e.statusMsg = contools.ErrSearchNotFound.Error()
	}
}

func (e *Editor) findPrevious() {
	if !e.buf.FindPrevious(&e.search) {
		e.statusMsg = contools.ErrSearchNotFound.Error()
	}
}

// save writes the buffer to path (or its loaded path). A read-only target
// reroutes to a confirm dialog per §4.7's "prompt to clear the attribute"
// rule rather than failing silently.
func (e *Editor) save(path string) {
	if e.readOnly {
		e.statusMsg = "opened read-only"
		return
	}
	if err := e.buf.Save(path); err != nil {
		if err == contools.ErrReadOnlyTarget {
			e.pending = pendingConfirmOverwriteReadOnly
			e.active = dialog.NewConfirm("Target is read-only. Overwrite anyway?")
			return
		}
		e.statusMsg = fmt.Sprintf("save: %v", err)
		return
	}
	e.statusMsg = "Saved."
}

// dispatchDialog routes one event to the active dialog and, once it
// reports Done, applies its result and clears it.
func (e *Editor) dispatchDialog(ev term.Event) bool {
	msg := dialog.ToMsg(ev)
	model, _ := e.active.Update(msg)
	e.active = model.(dialog.Dialog)

	canceled := e.active.Canceled()
	if !e.active.Done() && !canceled {
		return false
	}
	pending := e.pending
	d := e.active
	e.active, e.pending = nil, pendingNone

	if canceled {
		return false
	}
	return e.applyDialogResult(pending, d)
}

func (e *Editor) applyDialogResult(pending pendingKind, d dialog.Dialog) bool {
	switch pending {
	case pendingFind:
		f := d.(*dialog.Find)
		e.search.Set(f.Query(), f.MatchCase())
		e.findNext()
		e.reposition()
	case pendingReplace:
		r := d.(*dialog.Replace)
		e.search.Set(r.Query(), r.MatchCase())
		if r.All() {
			n := e.buf.ReplaceAll(&e.search, r.Replacement())
			e.statusMsg = fmt.Sprintf("%d replaced", n)
		} else if e.buf.Find(&e.search) {
			e.buf.Replace(r.Replacement())
			e.reposition()
		} else {
			e.statusMsg = contools.ErrSearchNotFound.Error()
		}
	case pendingGoTo:
		g := d.(*dialog.GoTo)
		e.buf.Cursor.Line = g.Line() - 1
		e.buf.Cursor.Col = 0
	case pendingOpen:
		o := d.(*dialog.Open)
		if o.Err() != nil {
			e.statusMsg = fmt.Sprintf("open: %v", o.Err())
			break
		}
		if err := e.buf.Load(o.Path(), editbuffer.AutoDetect); err != nil {
			e.statusMsg = fmt.Sprintf("open: %v", err)
		}
	case pendingSaveAs:
		s := d.(*dialog.SaveAs)
		e.save(s.Path())
	case pendingConfirmOverwriteReadOnly:
		m := d.(*dialog.MsgBox)
		if m.Confirmed() {
			e.statusMsg = "read-only target: clear the attribute and retry"
		}
	case pendingQuitConfirm:
		m := d.(*dialog.MsgBox)
		return m.Confirmed()
	case pendingAbout:
	}
	return false
}

// reposition applies §4.8's live-repositioning rule after a Find/Replace
// match: if the match would sit behind the next dialog's rows, scroll the
// buffer window so the match lands mid-area instead.
func (e *Editor) reposition() {
	row := e.buf.Cursor.Line - e.topLine
	shift := dialog.RepositionForMatch(row, e.dialogTop(), e.height-statusHeight)
	e.topLine += shift
}

func (e *Editor) handleMouse(ev term.Event) {
	if ev.MouseAction != term.MousePress {
		return
	}
	line := ev.MouseY + e.topLine
	if line < 0 {
		line = 0
	}
	if line >= len(e.buf.Lines) {
		line = len(e.buf.Lines) - 1
	}
	e.buf.Cursor.Line = line
	e.buf.Cursor.Col = byteColForDisplayCol(e.buf.Lines[line], e.buf.TabWidth, ev.MouseX)
	e.buf.Selection = nil
}

// byteColForDisplayCol converts a tab-expanded display column back to a
// byte offset into line, by replaying expandTabs' width accounting
// instead of a separate inverse table.
func byteColForDisplayCol(line string, tabWidth, dispCol int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	col := 0
	for i, r := range line {
		if col >= dispCol {
			return i
		}
		if r == '\t' {
			col += tabWidth - (col % tabWidth)
		} else {
			col++
		}
	}
	return len(line)
}
