// Package linestore holds the ordered physical-line store shared between
// the pager's ingest goroutine and the event-loop goroutine that reads it. One mutex guards the whole list and
// its tail-color threading state, matching the single-shared-resource
// policy described for the terminal core.
package linestore

import (
	"sync"
	"sync/atomic"

	"github.com/conterm/contools/internal/vtcolor"
)

// Line is one physical line of the source stream. No code here mutates a
// Line after creating it (Replace swaps whole Line values), so any
// LogicalLine still borrowing its Text stays valid.
type Line struct {
	Number       uint64
	Text         string
	InitialColor vtcolor.Attr

	// Dirty marks a line whose cached logical-line count may be stale.
	// Nothing in this module sets or reads it; the editor keeps its text in
	// editbuffer.Buffer, not in a Store.
	Dirty bool
}

// Store is the ordered physical-line list. Physical line numbers are
// 1-based and strictly monotonic in append order.
type Store struct {
	mu        sync.RWMutex
	lines     []*Line
	tailColor vtcolor.Attr

	availMu sync.Mutex
	avail   chan struct{}

	doneOnce sync.Once
	done     chan struct{}

	oom atomic.Bool
}

// New returns an empty Store ready for Append.
func New() *Store {
	return &Store{
		avail: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Append adds a new physical line computed from text and the color state
// threaded from the previous line's trailing escape, and wakes any waiter
// blocked on Available(). The wake is a broadcast-without-losing-updates:
// the current channel is closed and replaced under a dedicated lock, so a
// waiter that observes the close and loops back to Available() always gets
// a channel that is open until the next Append.
func (s *Store) Append(text string, trailingColor func(start vtcolor.Attr, text string) vtcolor.Attr) *Line {
	s.mu.Lock()
	initial := s.tailColor
	line := &Line{
		Number:       uint64(len(s.lines)) + 1,
		Text:         text,
		InitialColor: initial,
	}
	s.lines = append(s.lines, line)
	s.tailColor = trailingColor(initial, text)
	s.mu.Unlock()

	s.wake()
	return line
}

func (s *Store) wake() {
	s.availMu.Lock()
	old := s.avail
	s.avail = make(chan struct{})
	s.availMu.Unlock()
	close(old)
}

// Available returns a channel that is closed the next time a line is
// appended. An Append made before the call closed an earlier channel, not
// this one, so a caller catches such lines only by comparing Len(). Callers
// should re-fetch Available() after each wake to keep waiting for future
// appends.
func (s *Store) Available() <-chan struct{} {
	s.availMu.Lock()
	defer s.availMu.Unlock()
	return s.avail
}

// Done returns a channel closed once ingest completes (EOF or fatal error).
func (s *Store) Done() <-chan struct{} { return s.done }

// MarkDone closes Done(); safe to call more than once.
func (s *Store) MarkDone() { s.doneOnce.Do(func() { close(s.done) }) }

// SetOOM / OOM: an atomic flag rather than a plain bool read cross-goroutine
// without synchronization, resolving the fence ambiguity a non-atomic flag
// would otherwise leave open between the ingest and event-loop goroutines.
func (s *Store) SetOOM()     { s.oom.Store(true) }
func (s *Store) OOM() bool   { return s.oom.Load() }

// Len returns the current number of physical lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// At returns the 0-indexed physical line, or nil if out of range.
func (s *Store) At(i int) *Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i]
}

// ByNumber returns the physical line with the given 1-based Number, or nil
// if it doesn't exist (yet, or anymore). Numbers are append-order and
// contiguous, so this is At(n-1) with the 1-based/0-based translation
// centralized for callers that think in physical line numbers, such as the
// viewport.
func (s *Store) ByNumber(n uint64) *Line {
	if n == 0 {
		return nil
	}
	return s.At(int(n) - 1)
}

// Snapshot returns the current backing slice. Selection export uses this to
// briefly hold the read lock rather than locking per line.
func (s *Store) Snapshot() []*Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Replace swaps the whole line list without mutating any Line, preserving
// the "never mutated" contract for any LogicalLine a viewport slot still
// borrows from the old slice. The next Append threads color from the new
// last line's trailing escape state. No caller in this module uses it.
func (s *Store) Replace(lines []*Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = lines
	var tail vtcolor.Attr
	if n := len(lines); n > 0 {
		tail = vtcolor.ScanTrailingColor(lines[n-1].InitialColor, lines[n-1].Text)
	}
	s.tailColor = tail
}
