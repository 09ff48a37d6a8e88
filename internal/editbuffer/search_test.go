package editbuffer

import (
	"testing"

	"github.com/conterm/contools/internal/search"
)

func TestFindForward(t *testing.T) {
	b := New(4)
	b.Lines = []string{"the quick", "brown fox", "jumps"}
	s := search.New()
	s.Set("fox", true)

	if !b.Find(s) {
		t.Fatal("Find should locate \"fox\" on line 1")
	}
	if b.Cursor.Line != 1 || b.Cursor.Col != 6 {
		t.Fatalf("Cursor = %+v, want {1 6}", b.Cursor)
	}
}

func TestFindWrapsAround(t *testing.T) {
	b := New(4)
	b.Lines = []string{"fox here", "nothing", "nothing"}
	b.Cursor.Line, b.Cursor.Col = 0, 5 // past the only match
	s := search.New()
	s.Set("fox", true)

	if !b.Find(s) {
		t.Fatal("Find should wrap around to the match at the start of the buffer")
	}
	if b.Cursor.Line != 0 || b.Cursor.Col != 0 {
		t.Fatalf("Cursor = %+v, want {0 0}", b.Cursor)
	}
}

func TestFindNotFound(t *testing.T) {
	b := New(4)
	b.Lines = []string{"no match here"}
	s := search.New()
	s.Set("zzz", true)
	if b.Find(s) {
		t.Fatal("Find should report false for an absent pattern")
	}
}

func TestFindPreviousBackward(t *testing.T) {
	b := New(4)
	b.Lines = []string{"fox", "nothing", "fox again"}
	b.Cursor.Line, b.Cursor.Col = 2, 0
	s := search.New()
	s.Set("fox", true)

	if !b.FindPrevious(s) {
		t.Fatal("FindPrevious should locate the earlier \"fox\"")
	}
	if b.Cursor.Line != 0 {
		t.Fatalf("Cursor.Line = %d, want 0", b.Cursor.Line)
	}
}

func TestReplaceAllCounts(t *testing.T) {
	b := New(4)
	b.Lines = []string{"cat cat", "cat"}
	s := search.New()
	s.Set("cat", true)

	n := b.ReplaceAll(s, "dog")
	if n != 3 {
		t.Fatalf("ReplaceAll returned %d, want 3", n)
	}
	if b.Lines[0] != "dog dog" || b.Lines[1] != "dog" {
		t.Fatalf("Lines = %v", b.Lines)
	}
}

func TestReplaceAllNoMatches(t *testing.T) {
	b := New(4)
	b.Lines = []string{"nothing"}
	s := search.New()
	s.Set("zzz", true)
	if n := b.ReplaceAll(s, "x"); n != 0 {
		t.Fatalf("ReplaceAll returned %d, want 0", n)
	}
}

func TestReplaceCurrentMatch(t *testing.T) {
	b := New(4)
	b.Lines = []string{"cat sat"}
	s := search.New()
	s.Set("cat", true)
	b.Find(s)
	b.Replace("dog")
	if b.Lines[0] != "dog sat" {
		t.Fatalf("Lines[0] = %q, want %q", b.Lines[0], "dog sat")
	}
}
