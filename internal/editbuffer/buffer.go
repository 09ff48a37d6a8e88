// Package editbuffer is the editor's mutable multiline text buffer: cursor
// movement in two navigation modes, auto-indent, tab expansion, undo/redo,
// find/replace, and encoding-aware load/save. Grounded on the teacher's
// internal/ssh/session.go for the "one owner goroutine mutates, event loop
// drives it synchronously" shape — this buffer has no concurrent writers,
// unlike internal/linestore's pager-side ingest/render split, so it carries
// no mutex of its own.
package editbuffer

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/conterm/contools/internal/selection"
)

// Buffer is the editor's in-memory document.
type Buffer struct {
	Lines  []string
	Cursor struct{ Line, Col int }

	Selection *selection.Rect
	Modified  bool
	Caption   string

	TabWidth              int
	AutoIndent, ExpandTab bool
	Traditional           bool // navigation mode: true = traditional, false = modern

	undo, redo []Record

	// provisionalIndent holds the index of a line whose trailing content is
	// an auto-indent the user has not yet typed on; Save skips writing it.
	provisionalIndent *int

	// Persistence state set by Load and reproduced by Save.
	path       string
	encoding   Encoding
	writeBOM   bool
	lineEnding lineEnding
}

// New returns an empty single-line buffer with the given tab width.
func New(tabWidth int) *Buffer {
	return &Buffer{
		Lines:    []string{""},
		TabWidth: tabWidth,
	}
}

func (b *Buffer) clampCursor() {
	if b.Cursor.Line < 0 {
		b.Cursor.Line = 0
	}
	if b.Cursor.Line >= len(b.Lines) {
		b.Cursor.Line = len(b.Lines) - 1
	}
	lineLen := len(b.Lines[b.Cursor.Line])
	if b.Cursor.Col < 0 {
		b.Cursor.Col = 0
	}
	if b.Cursor.Col > lineLen {
		b.Cursor.Col = lineLen
	}
}

// insertAt splices text into the buffer at (line, col), splitting on '\n',
// and returns the position just past the inserted text. It never touches
// the undo stack — InsertAtCursor and Undo/Redo's apply both build on this.
func (b *Buffer) insertAt(line, col int, text string) (endLine, endCol int) {
	parts := strings.Split(text, "\n")
	before := b.Lines[line][:col]
	after := b.Lines[line][col:]

	if len(parts) == 1 {
		b.Lines[line] = before + parts[0] + after
		return line, col + len(parts[0])
	}

	newLines := make([]string, 0, len(b.Lines)+len(parts)-1)
	newLines = append(newLines, b.Lines[:line]...)
	newLines = append(newLines, before+parts[0])
	newLines = append(newLines, parts[1:len(parts)-1]...)
	last := parts[len(parts)-1]
	newLines = append(newLines, last+after)
	newLines = append(newLines, b.Lines[line+1:]...)
	b.Lines = newLines
	return line + len(parts) - 1, len(last)
}

// deleteRange removes the half-open span [(line,col), (endLine,endCol)) and
// returns the removed text. Never touches the undo stack.
func (b *Buffer) deleteRange(line, col, endLine, endCol int) string {
	if line == endLine {
		removed := b.Lines[line][col:endCol]
		b.Lines[line] = b.Lines[line][:col] + b.Lines[line][endCol:]
		return removed
	}

	var sb strings.Builder
	sb.WriteString(b.Lines[line][col:])
	for i := line + 1; i < endLine; i++ {
		sb.WriteString("\n")
		sb.WriteString(b.Lines[i])
	}
	sb.WriteString("\n")
	sb.WriteString(b.Lines[endLine][:endCol])

	merged := b.Lines[line][:col] + b.Lines[endLine][endCol:]
	newLines := make([]string, 0, len(b.Lines)-(endLine-line))
	newLines = append(newLines, b.Lines[:line]...)
	newLines = append(newLines, merged)
	newLines = append(newLines, b.Lines[endLine+1:]...)
	b.Lines = newLines
	return sb.String()
}

// endPos computes where text inserted at (line, col) would end, without
// performing the insertion — used to locate a deleteKind Record's span.
func endPos(line, col int, text string) (endLine, endCol int) {
	parts := strings.Split(text, "\n")
	if len(parts) == 1 {
		return line, col + len(parts[0])
	}
	return line + len(parts) - 1, len(parts[len(parts)-1])
}

// InsertAtCursor inserts text at the cursor, splitting it into lines on '\n'
// and advancing the cursor to just past the inserted text. Each call pushes
// one undo Record and, when the cursor is on the provisionally indented
// line, ends provisional-indent tracking; InsertNewline is what starts it.
func (b *Buffer) InsertAtCursor(text string) {
	if text == "" {
		return
	}
	b.clearProvisionalIfTyped()

	line, col := b.Cursor.Line, b.Cursor.Col
	b.Cursor.Line, b.Cursor.Col = b.insertAt(line, col, text)
	b.pushUndo(Record{Kind: deleteKind, Line: line, Col: col, Text: text})

	b.Modified = true
	b.redo = nil
}

// InsertNewline applies Enter: a line break, plus the previous line's
// whitespace prefix when AutoIndent is set. The indent is provisional until
// the user types a non-empty character on the new line.
func (b *Buffer) InsertNewline() {
	indent := ""
	if b.AutoIndent {
		indent = leadingWhitespace(b.Lines[b.Cursor.Line])
	}
	b.InsertAtCursor("\n" + indent)
	if indent != "" {
		line := b.Cursor.Line
		b.provisionalIndent = &line
	}
}

func (b *Buffer) clearProvisionalIfTyped() {
	if b.provisionalIndent == nil {
		return
	}
	if *b.provisionalIndent == b.Cursor.Line {
		b.provisionalIndent = nil
	}
}

func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}

// InsertTab applies Tab: either spaces to the next tab stop (ExpandTab) or a
// literal tab character.
func (b *Buffer) InsertTab() {
	if !b.ExpandTab {
		b.InsertAtCursor("\t")
		return
	}
	width := b.TabWidth
	if width <= 0 {
		width = 4
	}
	n := width - (b.Cursor.Col % width)
	b.InsertAtCursor(strings.Repeat(" ", n))
}

// DeleteSelection removes the text bounded by Selection and clears it. A nil
// or empty Selection is a no-op.
func (b *Buffer) DeleteSelection() {
	r := b.normalizedSelection()
	if r == nil {
		return
	}
	text := b.deleteRange(r.Top, r.Left, r.Bottom, r.Right)
	b.pushUndo(Record{Kind: insertKind, Line: r.Top, Col: r.Left, Text: text})

	b.Cursor.Line, b.Cursor.Col = r.Top, r.Left
	b.Selection = nil
	b.Modified = true
	b.redo = nil
}

// normalizedSelection returns Selection normalized to buffer-coordinate
// Top<=Bottom (Left/Right are line-local columns, meaningful only relative
// to Top/Bottom on their own line), or nil if there is none.
func (b *Buffer) normalizedSelection() *selection.Rect {
	if b.Selection == nil {
		return nil
	}
	r := b.Selection.Normalize()
	return &r
}

func (b *Buffer) textIn(r selection.Rect) string {
	if r.Top == r.Bottom {
		line := b.Lines[r.Top]
		return line[r.Left:r.Right]
	}
	var sb strings.Builder
	sb.WriteString(b.Lines[r.Top][r.Left:])
	for i := r.Top + 1; i < r.Bottom; i++ {
		sb.WriteString("\n")
		sb.WriteString(b.Lines[i])
	}
	sb.WriteString("\n")
	sb.WriteString(b.Lines[r.Bottom][:r.Right])
	return sb.String()
}

// Copy writes the selected text to the system clipboard, unchanged.
func (b *Buffer) Copy() error {
	r := b.normalizedSelection()
	if r == nil {
		return nil
	}
	return clipboard.WriteAll(b.textIn(*r))
}

// Cut copies the selection then deletes it.
func (b *Buffer) Cut() error {
	if err := b.Copy(); err != nil {
		return err
	}
	b.DeleteSelection()
	return nil
}

// Paste inserts the system clipboard's text at the cursor, replacing any
// active selection first.
func (b *Buffer) Paste() error {
	text, err := clipboard.ReadAll()
	if err != nil {
		return err
	}
	if b.Selection != nil {
		b.DeleteSelection()
	}
	b.InsertAtCursor(text)
	return nil
}

// Clear empties the buffer back to a single blank line.
func (b *Buffer) Clear() {
	b.pushUndo(Record{Kind: insertKind, Line: 0, Col: 0, Text: strings.Join(b.Lines, "\n")})
	b.Lines = []string{""}
	b.Cursor.Line, b.Cursor.Col = 0, 0
	b.Selection = nil
	b.Modified = true
	b.redo = nil
}

// MoveLeft/MoveRight/MoveUp/MoveDown move the cursor by one cell, honoring
// Traditional vs modern line-wrap-at-edge semantics (§4.7).
func (b *Buffer) MoveLeft() {
	if b.Cursor.Col > 0 {
		b.Cursor.Col--
		return
	}
	if b.Traditional || b.Cursor.Line == 0 {
		return
	}
	b.Cursor.Line--
	b.Cursor.Col = len(b.Lines[b.Cursor.Line])
}

func (b *Buffer) MoveRight() {
	if b.Cursor.Col < len(b.Lines[b.Cursor.Line]) {
		b.Cursor.Col++
		return
	}
	if b.Traditional || b.Cursor.Line >= len(b.Lines)-1 {
		return
	}
	b.Cursor.Line++
	b.Cursor.Col = 0
}

func (b *Buffer) MoveUp() {
	if b.Cursor.Line == 0 {
		return
	}
	b.Cursor.Line--
	b.clampCursor()
}

func (b *Buffer) MoveDown() {
	if b.Cursor.Line >= len(b.Lines)-1 {
		return
	}
	b.Cursor.Line++
	b.clampCursor()
}
