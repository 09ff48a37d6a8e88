// Package search holds the pager/editor's plain-text find state: a single
// pattern plus a case-sensitivity flag, matched with substring scanning.
// There is no regex engine here by design — see the Non-goals this module
// is grounded on in SPEC_FULL.md §1.
package search

import (
	"strings"

	"github.com/conterm/contools/internal/vtcolor"
)

// State is the find/find-next state shared by the pager's "/" command and
// the editor's Find dialog.
type State struct {
	Pattern   string
	MatchCase bool

	// Color is the highlight attribute the layout engine paints over a
	// match span; it overrides the line's own color for the span's width
	// only, the display color diverging from the user color.
	Color vtcolor.Attr

	// Dirty marks that Pattern/MatchCase changed since the last full-buffer
	// rescan, so cached logical-line counts depending on match width must be
	// recomputed.
	Dirty bool
}

// New returns a State with the standard reverse-video highlight color.
func New() *State {
	return &State{Color: vtcolor.Default | 0x0200}
}

// Set installs a new pattern/case mode and marks the state dirty if either
// changed.
func (s *State) Set(pattern string, matchCase bool) {
	if pattern == s.Pattern && matchCase == s.MatchCase {
		return
	}
	s.Pattern = pattern
	s.MatchCase = matchCase
	s.Dirty = true
}

// Clear empties the pattern, turning match highlighting off everywhere.
func (s *State) Clear() {
	s.Set("", s.MatchCase)
}

// Active reports whether a non-empty pattern is set.
func (s *State) Active() bool { return s.Pattern != "" }

// SearchColor implements the vtlayout engine's optional color-source
// capability, reporting the attribute a match should be painted in.
func (s *State) SearchColor() vtcolor.Attr { return s.Color }

// Find returns the byte offset and length of the first occurrence of the
// pattern in s, and whether one was found. This is the vtlayout.Matcher
// contract: the layout engine calls it with successive suffixes of the
// physical line as it walks forward, so Find only ever looks from the start
// of whatever string it's given. Length is measured in bytes.
func (s *State) Find(str string) (offset, length int, ok bool) {
	if s.Pattern == "" {
		return 0, 0, false
	}
	needle := s.Pattern
	var idx int
	if s.MatchCase {
		idx = strings.Index(str, needle)
	} else {
		idx = strings.Index(strings.ToLower(str), strings.ToLower(needle))
	}
	if idx < 0 {
		return 0, 0, false
	}
	return idx, len(needle), true
}

// FindFrom returns the byte offset and length of the first occurrence of
// the pattern in line at or after start, measured from the start of line —
// the convenience form internal/editbuffer's search and replace use, in
// terms of Find.
func (s *State) FindFrom(line string, start int) (offset, length int, ok bool) {
	if start > len(line) {
		return 0, 0, false
	}
	off, n, ok := s.Find(line[start:])
	if !ok {
		return 0, 0, false
	}
	return start + off, n, true
}

// Contains reports whether the pattern occurs anywhere in line.
func (s *State) Contains(line string) bool {
	_, _, ok := s.Find(line)
	return ok
}
