package editbuffer

import (
	"github.com/conterm/contools/internal/search"
	"github.com/conterm/contools/internal/selection"
)

// Find scans forward from just past the cursor for s's pattern, wrapping
// around to the start of the buffer once if necessary, and moves the
// cursor (and a single-line Selection spanning the match) to the first hit.
// Returns false, leaving the cursor untouched, if the pattern occurs
// nowhere in the buffer — the caller surfaces contools.ErrSearchNotFound.
func (b *Buffer) Find(s *search.State) bool {
	if !s.Active() {
		return false
	}
	if ok := b.scanForward(s, b.Cursor.Line, b.Cursor.Col+1, len(b.Lines)); ok {
		return true
	}
	return b.scanForward(s, 0, 0, b.Cursor.Line+1)
}

func (b *Buffer) scanForward(s *search.State, fromLine, fromCol, toLine int) bool {
	for i := fromLine; i < toLine && i < len(b.Lines); i++ {
		start := 0
		if i == fromLine {
			start = fromCol
		}
		if start > len(b.Lines[i]) {
			continue
		}
		off, n, ok := s.FindFrom(b.Lines[i], start)
		if !ok {
			continue
		}
		b.setMatch(i, off, n)
		return true
	}
	return false
}

// FindPrevious is symmetric with Find, scanning backward from just before
// the cursor and wrapping to the end of the buffer.
func (b *Buffer) FindPrevious(s *search.State) bool {
	if !s.Active() {
		return false
	}
	if ok := b.scanBackward(s, b.Cursor.Line, b.Cursor.Col-1, 0); ok {
		return true
	}
	return b.scanBackward(s, len(b.Lines)-1, -1, b.Cursor.Line)
}

func (b *Buffer) scanBackward(s *search.State, fromLine, fromCol, toLine int) bool {
	for i := fromLine; i >= toLine; i-- {
		limit := len(b.Lines[i])
		if i == fromLine {
			if fromCol < 0 {
				continue
			}
			limit = fromCol
		}
		if limit > len(b.Lines[i]) {
			limit = len(b.Lines[i])
		}
		if off, n, ok := lastMatchBefore(s, b.Lines[i], limit); ok {
			b.setMatch(i, off, n)
			return true
		}
	}
	return false
}

// lastMatchBefore returns the last match of s's pattern starting at or
// before limit in line, scanning forward occurrence-by-occurrence since
// search.State only exposes a forward Find.
func lastMatchBefore(s *search.State, line string, limit int) (offset, length int, ok bool) {
	best := -1
	bestLen := 0
	pos := 0
	for pos <= limit && pos <= len(line) {
		off, n, found := s.FindFrom(line, pos)
		if !found || off > limit {
			break
		}
		best, bestLen = off, n
		pos = off + 1
	}
	if best < 0 {
		return 0, 0, false
	}
	return best, bestLen, true
}

func (b *Buffer) setMatch(line, col, length int) {
	b.Cursor.Line, b.Cursor.Col = line, col
	r := selection.Rect{Top: line, Left: col, Bottom: line, Right: col + length}
	b.Selection = &r
}

// Replace replaces the match at the cursor (from the most recent Find/
// FindPrevious) with replacement and advances past it; a no-op if there is
// no active selection spanning a match.
func (b *Buffer) Replace(replacement string) {
	if b.Selection == nil {
		return
	}
	b.DeleteSelection()
	b.InsertAtCursor(replacement)
}

// ReplaceAll replaces every occurrence of s's pattern in the buffer with
// replacement and returns the count replaced. A bulk replace resets the
// undo/redo stacks rather than pushing one Record per match — nothing in
// SPEC_FULL.md's undo property requires replace-all to be undoable
// match-by-match, only that single edits are.
func (b *Buffer) ReplaceAll(s *search.State, replacement string) int {
	if !s.Active() {
		return 0
	}
	count := 0
	for i := 0; i < len(b.Lines); i++ {
		line := b.Lines[i]
		var out []byte
		pos := 0
		for pos <= len(line) {
			off, n, ok := s.FindFrom(line, pos)
			if !ok {
				out = append(out, line[pos:]...)
				break
			}
			out = append(out, line[pos:off]...)
			out = append(out, replacement...)
			pos = off + n
			count++
		}
		b.Lines[i] = string(out)
	}
	if count > 0 {
		b.Modified = true
		b.undo = nil
		b.redo = nil
	}
	return count
}
