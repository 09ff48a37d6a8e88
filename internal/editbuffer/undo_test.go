package editbuffer

import (
	"testing"

	"github.com/conterm/contools/internal/selection"
)

// TestUndoRedoIdentity is §8 property 7 directly: undo then redo is the
// identity, for N undos followed by N redos.
func TestUndoRedoIdentity(t *testing.T) {
	b := New(4)
	b.InsertAtCursor("hello")
	b.Cursor.Col = len(b.Lines[0])
	b.InsertAtCursor(" world")
	if b.Lines[0] != "hello world" {
		t.Fatalf("Lines[0] = %q", b.Lines[0])
	}

	b.Undo()
	if b.Lines[0] != "hello" {
		t.Fatalf("after Undo, Lines[0] = %q, want %q", b.Lines[0], "hello")
	}

	b.Redo()
	if b.Lines[0] != "hello world" {
		t.Fatalf("after Redo, Lines[0] = %q, want %q", b.Lines[0], "hello world")
	}
}

func TestUndoTwiceRedoTwiceIdentity(t *testing.T) {
	b := New(4)
	b.InsertAtCursor("a")
	b.InsertAtCursor("b")
	b.InsertAtCursor("c")
	want := b.Lines[0]

	b.Undo()
	b.Undo()
	b.Redo()
	b.Redo()
	if b.Lines[0] != want {
		t.Fatalf("after 2 undo + 2 redo, Lines[0] = %q, want %q", b.Lines[0], want)
	}
}

func TestUndoPastBeginningIsNoOp(t *testing.T) {
	b := New(4)
	b.InsertAtCursor("x")
	b.Undo()
	b.Undo() // one past the only edit
	b.Undo()
	if b.Lines[0] != "" {
		t.Fatalf("Lines[0] = %q, want empty after undoing the only edit", b.Lines[0])
	}
}

func TestRedoClearedByNewEdit(t *testing.T) {
	b := New(4)
	b.InsertAtCursor("a")
	b.Undo()
	b.InsertAtCursor("b")
	b.Redo() // nothing to redo: the new edit cleared the redo stack
	if b.Lines[0] != "b" {
		t.Fatalf("Lines[0] = %q, want %q", b.Lines[0], "b")
	}
}

func TestUndoDeleteSelection(t *testing.T) {
	b := New(4)
	b.Lines = []string{"hello world"}
	b.Selection = &selection.Rect{Top: 0, Left: 0, Bottom: 0, Right: 6}
	b.DeleteSelection()
	if b.Lines[0] != "world" {
		t.Fatalf("Lines[0] = %q", b.Lines[0])
	}
	b.Undo()
	if b.Lines[0] != "hello world" {
		t.Fatalf("after Undo, Lines[0] = %q, want %q", b.Lines[0], "hello world")
	}
}
