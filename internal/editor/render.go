package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// dialogRows is how many terminal rows a modeless dialog occupies at the
// bottom of the edit area. paintDialog draws only these rows, so a dialog
// whose View is taller shows just its first dialogRows lines.
const dialogRows = 3

var statusBarStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("24"))

var selectionStyle = lipgloss.NewStyle().Reverse(true)

// scrollToCursor keeps the cursor's line within [topLine, topLine+editHeight)
// by the minimum adjustment, matching §4.9's "preserve the top of the
// display" resize rule rather than recentering on every move.
func (e *Editor) scrollToCursor() {
	h := e.editHeight()
	if e.buf.Cursor.Line < e.topLine {
		e.topLine = e.buf.Cursor.Line
	}
	if e.buf.Cursor.Line >= e.topLine+h {
		e.topLine = e.buf.Cursor.Line - h + 1
	}
	if e.topLine < 0 {
		e.topLine = 0
	}
}

// paint renders the buffer window, status line, and any active dialog.
func (e *Editor) paint() {
	e.scrollToCursor()
	h := e.editHeight()

	var b strings.Builder
	for row := 0; row < h; row++ {
		lineNo := e.topLine + row
		if err := e.term.SetCursor(0, row); err != nil {
			return
		}
		b.Reset()
		b.WriteString("\x1b[2K")
		if lineNo < len(e.buf.Lines) {
			b.WriteString(e.renderLine(lineNo))
		}
		_ = e.term.WriteCells(b.String())
	}

	e.paintStatus()
	if e.active != nil {
		e.paintDialog()
	}

	cursorRow := e.buf.Cursor.Line - e.topLine
	cursorCol := runewidth.StringWidth(expandTabs(e.buf.Lines[e.buf.Cursor.Line][:e.buf.Cursor.Col], e.buf.TabWidth))
	if e.active == nil {
		_ = e.term.SetCursor(cursorCol, cursorRow)
	}
}

// renderLine expands tabs and overlays the selection (reverse video) onto
// one buffer line, mirroring internal/ui/components/vterm.go's reverse-
// video cursor/selection painting but over plain text instead of a cell
// grid, since the editor has no VT color stream of its own.
func (e *Editor) renderLine(lineNo int) string {
	text := expandTabs(e.buf.Lines[lineNo], e.buf.TabWidth)

	if e.buf.Selection == nil {
		return text
	}
	norm := e.buf.Selection.Normalize()
	r := &norm
	if lineNo < r.Top || lineNo > r.Bottom {
		return text
	}
	left, right := 0, len(e.buf.Lines[lineNo])
	if lineNo == r.Top {
		left = r.Left
	}
	if lineNo == r.Bottom {
		right = r.Right
	}
	if left > len(e.buf.Lines[lineNo]) || right > len(e.buf.Lines[lineNo]) || left >= right {
		return text
	}
	line := e.buf.Lines[lineNo]
	return expandTabs(line[:left], e.buf.TabWidth) +
		selectionStyle.Render(expandTabs(line[left:right], e.buf.TabWidth)) +
		expandTabs(line[right:], e.buf.TabWidth)
}

func expandTabs(s string, width int) string {
	if width <= 0 {
		width = 4
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := width - (col % width)
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

func (e *Editor) paintStatus() {
	row := e.height - statusHeight
	modified := ""
	if e.buf.Modified {
		modified = " [Modified]"
	}
	mode := "modern"
	if e.buf.Traditional {
		mode = "traditional"
	}
	text := fmt.Sprintf("%s%s  Ln %d, Col %d  (%s)", e.buf.Caption, modified, e.buf.Cursor.Line+1, e.buf.Cursor.Col+1, mode)
	if e.statusMsg != "" {
		text = e.statusMsg
	}
	_ = e.term.SetCursor(0, row)
	_ = e.term.WriteCells("\x1b[2K" + statusBarStyle.MaxWidth(e.width).Render(text))
}

func (e *Editor) paintDialog() {
	if e.active == nil {
		return
	}
	top := e.dialogTop()
	view := e.active.View()
	for i, line := range strings.Split(view, "\n") {
		row := top + i
		if row >= e.height-statusHeight {
			break
		}
		_ = e.term.SetCursor(0, row)
		_ = e.term.WriteCells("\x1b[2K" + line)
	}
}

// dialogTop is the first on-screen row the active dialog occupies — the
// last dialogRows rows of the edit area, per §4.8.
func (e *Editor) dialogTop() int {
	return e.height - statusHeight - dialogRows
}
