package pager

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/conterm/contools/internal/linestore"
	"github.com/conterm/contools/internal/term"
	"github.com/conterm/contools/internal/vtcolor"
)

// fakeTerminal is a minimal term.Terminal double: fixed size, writes
// collected in written, and a pre-seeded Event channel for ReadInput.
type fakeTerminal struct {
	cols, rows int
	events     chan term.Event
	written    []string
	clipboard  struct{ plain, rtf, html string }
}

func newFakeTerminal(cols, rows int) *fakeTerminal {
	return &fakeTerminal{cols: cols, rows: rows, events: make(chan term.Event, 16)}
}

func (f *fakeTerminal) Size() (int, int, error)       { return f.cols, f.rows, nil }
func (f *fakeTerminal) WindowRect() (term.Rect, error) { return term.Rect{Right: f.cols, Bottom: f.rows}, nil }
func (f *fakeTerminal) SetWindowRect(term.Rect) error  { return nil }
func (f *fakeTerminal) WriteCells(s string) error {
	f.written = append(f.written, s)
	return nil
}
func (f *fakeTerminal) SetCursor(x, y int) error { return nil }
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

func linesDecoder() linestore.Decoder {
	return linestore.DecoderFunc(func(raw []byte) (string, error) { return string(raw), nil })
}

// TestRunQuitsOnQ is the S1-style basic scenario: feed a few lines, send
// 'q', and expect a clean exit with no error.
func TestRunQuitsOnQ(t *testing.T) {
	ft := newFakeTerminal(80, 25)
	p := New(ft)

	r := strings.NewReader("one\ntwo\nthree\n")
	go func() {
		time.Sleep(20 * time.Millisecond)
		ft.events <- term.Event{Kind: term.EventKey, Rune: 'q'}
	}()

	code, err := p.Run(context.Background(), r, linesDecoder())
	if err != nil {
		t.Fatalf("Run returned err=%v, want nil", err)
	}
	if code != 0 {
		t.Fatalf("Run returned code=%d, want 0", code)
	}
}

func TestRunRejectsWindowTooSmall(t *testing.T) {
	ft := newFakeTerminal(10, 10)
	p := New(ft)
	code, err := p.Run(context.Background(), strings.NewReader(""), linesDecoder())
	if err == nil || code == 0 {
		t.Fatalf("Run(code=%d, err=%v), want non-zero code and an error for a too-small window", code, err)
	}
}

func TestWordBoundaryAtFindsSurroundingWord(t *testing.T) {
	start, end := wordBoundaryAt("hello world", 7)
	if "hello world"[start:end] != "world" {
		t.Fatalf("wordBoundaryAt = %q, want %q", "hello world"[start:end], "world")
	}
}

func TestWordBoundaryAtOutsideAnyWord(t *testing.T) {
	start, end := wordBoundaryAt("hi", 50)
	if start != 50 || end != 50 {
		t.Fatalf("wordBoundaryAt out of range = (%d,%d), want (50,50)", start, end)
	}
}

func TestHasSelectionReflectsZeroRect(t *testing.T) {
	p := &Pager{}
	if p.hasSelection() {
		t.Fatal("hasSelection should be false for a zero-value selection")
	}
	p.sel.Right = 1
	if !p.hasSelection() {
		t.Fatal("hasSelection should be true once any bound is set")
	}
}
