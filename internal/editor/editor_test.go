package editor

import (
	"context"
	"testing"
	"time"

	"github.com/conterm/contools/internal/config"
	"github.com/conterm/contools/internal/term"
	"github.com/conterm/contools/internal/vtcolor"
)

// fakeTerminal is the same minimal term.Terminal double internal/pager's
// tests use: fixed size, a discard sink for writes, a pre-seeded Event
// channel for ReadInput.
type fakeTerminal struct {
	cols, rows int
	events     chan term.Event
	clipboard  struct{ plain, rtf, html string }
}

func newFakeTerminal(cols, rows int) *fakeTerminal {
	return &fakeTerminal{cols: cols, rows: rows, events: make(chan term.Event, 16)}
}

func (f *fakeTerminal) Size() (int, int, error)       { return f.cols, f.rows, nil }
func (f *fakeTerminal) WindowRect() (term.Rect, error) { return term.Rect{Right: f.cols, Bottom: f.rows}, nil }
func (f *fakeTerminal) SetWindowRect(term.Rect) error  { return nil }
func (f *fakeTerminal) WriteCells(s string) error      { return nil }
func (f *fakeTerminal) SetCursor(x, y int) error       { return nil }
func (f *fakeTerminal) Fill(r term.Rect, ch rune, attr vtcolor.Attr) error { return nil }
func (f *fakeTerminal) ReadInput(ctx context.Context) (<-chan term.Event, error) {
	return f.events, nil
}
func (f *fakeTerminal) ClipboardGetText() (string, error) { return f.clipboard.plain, nil }
func (f *fakeTerminal) ClipboardSetText(plain, rtf, html string) error {
	f.clipboard.plain, f.clipboard.rtf, f.clipboard.html = plain, rtf, html
	return nil
}
func (f *fakeTerminal) Close() error { return nil }

func typeKey(ft *fakeTerminal, r rune) {
	ft.events <- term.Event{Kind: term.EventKey, Rune: r}
}

func typeNamed(ft *fakeTerminal, key string) {
	ft.events <- term.Event{Kind: term.EventKey, Key: key}
}

func typeCtrl(ft *fakeTerminal, r rune) {
	ft.events <- term.Event{Kind: term.EventKey, Rune: r, Ctrl: true}
}

func TestRunQuitsOnCtrlQWhenUnmodified(t *testing.T) {
	ft := newFakeTerminal(80, 25)
	e := New(ft, config.NewConfig(), false)

	go func() {
		time.Sleep(20 * time.Millisecond)
		typeCtrl(ft, 'q')
	}()

	code, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned err=%v, want nil", err)
	}
	if code != 0 {
		t.Fatalf("Run returned code=%d, want 0", code)
	}
}

func TestRunRejectsWindowTooSmall(t *testing.T) {
	ft := newFakeTerminal(10, 10)
	e := New(ft, config.NewConfig(), false)
	code, err := e.Run(context.Background())
	if err == nil || code == 0 {
		t.Fatalf("Run(code=%d, err=%v), want non-zero code and an error for a too-small window", code, err)
	}
}

func TestTypingInsertsText(t *testing.T) {
	ft := newFakeTerminal(80, 25)
	e := New(ft, config.NewConfig(), false)

	go func() {
		time.Sleep(10 * time.Millisecond)
		typeKey(ft, 'h')
		typeKey(ft, 'i')
		time.Sleep(10 * time.Millisecond)
		typeCtrl(ft, 'q')
		typeKey(ft, 'y') // confirm "Discard unsaved changes?"
	}()

	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.buf.Lines[0]; got != "hi" {
		t.Fatalf("buffer line = %q, want %q", got, "hi")
	}
}

func TestUndoRedoViaCtrlZY(t *testing.T) {
	ft := newFakeTerminal(80, 25)
	e := New(ft, config.NewConfig(), false)

	go func() {
		time.Sleep(10 * time.Millisecond)
		typeKey(ft, 'x')
		time.Sleep(5 * time.Millisecond)
		typeCtrl(ft, 'z')
		time.Sleep(5 * time.Millisecond)
		typeCtrl(ft, 'y')
		time.Sleep(5 * time.Millisecond)
		typeCtrl(ft, 'q')
		typeKey(ft, 'y') // confirm "Discard unsaved changes?"
	}()

	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := e.buf.Lines[0]; got != "x" {
		t.Fatalf("buffer line after undo+redo = %q, want %q", got, "x")
	}
}

func TestFindDialogCommitsSearch(t *testing.T) {
	ft := newFakeTerminal(80, 25)
	e := New(ft, config.NewConfig(), false)
	e.buf.InsertAtCursor("hello world")
	e.buf.Cursor.Line, e.buf.Cursor.Col = 0, 0

	go func() {
		time.Sleep(10 * time.Millisecond)
		typeCtrl(ft, 'f')
		time.Sleep(5 * time.Millisecond)
		typeKey(ft, 'w')
		typeKey(ft, 'o')
		typeKey(ft, 'r')
		typeNamed(ft, "Enter")
		time.Sleep(5 * time.Millisecond)
		typeCtrl(ft, 'q')
		typeKey(ft, 'y') // confirm "Discard unsaved changes?"
	}()

	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if e.search.Pattern != "wor" {
		t.Fatalf("search pattern = %q, want %q", e.search.Pattern, "wor")
	}
	if e.buf.Selection == nil {
		t.Fatal("expected a selection spanning the found match")
	}
}

func TestByteColForDisplayColHandlesTabs(t *testing.T) {
	// "a\tb": 'a' at display col 0, tab expands to col 4, 'b' at display col 4.
	if got := byteColForDisplayCol("a\tb", 4, 0); got != 0 {
		t.Fatalf("byteColForDisplayCol(0) = %d, want 0", got)
	}
	if got := byteColForDisplayCol("a\tb", 4, 4); got != 2 {
		t.Fatalf("byteColForDisplayCol(4) = %d, want 2", got)
	}
}

func TestExpandTabsAlignsToTabWidth(t *testing.T) {
	if got := expandTabs("a\tb", 4); got != "a   b" {
		t.Fatalf("expandTabs = %q, want %q", got, "a   b")
	}
}
