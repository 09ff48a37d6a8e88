package search

import "testing"

func TestFindCaseSensitive(t *testing.T) {
	s := New()
	s.Set("Error", true)

	off, ln, ok := s.Find("an Error occurred, error again")
	if !ok || off != 3 || ln != 5 {
		t.Fatalf("Find = (%d,%d,%v), want (3,5,true)", off, ln, ok)
	}
}

func TestFindIgnoreCase(t *testing.T) {
	s := New()
	s.Set("error", false)

	off, _, ok := s.Find("an Error occurred")
	if !ok || off != 3 {
		t.Fatalf("Find = (%d,_,%v), want (3,true)", off, ok)
	}
}

func TestFindFromOffset(t *testing.T) {
	s := New()
	s.Set("o", true)

	off, _, ok := s.FindFrom("foo boo", 0)
	if !ok || off != 1 {
		t.Fatalf("first match = %d, want 1", off)
	}
	off, _, ok = s.FindFrom("foo boo", off+1)
	if !ok || off != 2 {
		t.Fatalf("second match = %d, want 2", off)
	}
}

func TestFindEmptyPattern(t *testing.T) {
	s := New()
	if s.Active() {
		t.Fatal("Active() true with no pattern set")
	}
	if _, _, ok := s.Find("anything"); ok {
		t.Fatal("Find with empty pattern should never match")
	}
}

func TestSetDirtyTracking(t *testing.T) {
	s := New()
	s.Dirty = false
	s.Set("x", true)
	if !s.Dirty {
		t.Fatal("Set should mark Dirty on change")
	}
	s.Dirty = false
	s.Set("x", true)
	if s.Dirty {
		t.Fatal("Set with identical pattern should not mark Dirty")
	}
}

func TestClear(t *testing.T) {
	s := New()
	s.Set("x", true)
	s.Clear()
	if s.Active() {
		t.Fatal("Clear should deactivate search")
	}
}
