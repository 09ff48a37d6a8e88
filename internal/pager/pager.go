// Package pager is the `more`-style paged viewer: an ingest goroutine feeds
// a linestore.Store while the event loop serves terminal input, repaints
// the viewport, and drives selection/search, mirroring the two-goroutine
// shape of internal/ssh/session.go's Start (a SIGWINCH-watching goroutine
// plus stdin/stdout relay loops, synchronized over channels and a done
// signal) generalized to this core's own event set.
package pager

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/conterm/contools/internal/contools"
	"github.com/conterm/contools/internal/linestore"
	"github.com/conterm/contools/internal/search"
	"github.com/conterm/contools/internal/selection"
	"github.com/conterm/contools/internal/term"
	"github.com/conterm/contools/internal/vtlayout"
	"github.com/conterm/contools/internal/viewport"
)

const (
	idleTimeout    = 250 * time.Millisecond
	scrollTimeout  = 100 * time.Millisecond
	periodicScroll = 1
)

// Pager is the paged-viewer core: a line store fed by ingest, a viewport of
// logical lines currently on screen, the terminal it paints to, and the
// search/selection state the event loop mutates on each input event.
type Pager struct {
	store  *linestore.Store
	view   *viewport.Viewport
	term   term.Terminal
	search search.State
	sel    selection.Rect

	selecting              bool
	periodicDX, periodicDY int
	searchMode             bool
	searchBuf              []rune
	reportedLen            uint64
	width, height          int
	lastClickX, lastClickY int
	lastClickAt            time.Time
}

// New returns a Pager bound to t; Run does the rest of the setup once the
// input stream and decoder are known.
func New(t term.Terminal) *Pager {
	return &Pager{term: t, store: linestore.New(), search: *search.New()}
}

// Run ingests r on a separate goroutine and serves the terminal event loop
// until the user quits or the input stream and terminal are both
// exhausted. It returns the process exit code: 0 normally, non-zero if the
// terminal was below the minimum size or ingest ran out of memory.
func (p *Pager) Run(ctx context.Context, r io.Reader, dec linestore.Decoder) (exitCode int, err error) {
	cols, rows, err := p.term.Size()
	if err != nil {
		return 1, err
	}
	p.width, p.height = cols, rows

	view, err := viewport.New(cols, rows-1)
	if err != nil {
		return 1, err
	}
	p.view = view

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ingestErrCh := make(chan error, 1)
	go func() {
		ingestErrCh <- linestore.Ingest(ctx, r, dec, p.store)
	}()

	events, err := p.term.ReadInput(ctx)
	if err != nil {
		return 1, err
	}

	var everIngested bool
	doneCh := p.store.Done()

	for {
		timeout := idleTimeout
		if p.periodicDX != 0 || p.periodicDY != 0 {
			timeout = scrollTimeout
		}

		select {
		case ev, ok := <-events:
			if !ok {
				return 0, nil
			}
			if quit := p.dispatch(ev); quit {
				return 0, nil
			}

		case <-p.store.Available():
			if p.store.OOM() {
				p.paintError(contools.ErrOutOfMemory)
				return 1, contools.ErrOutOfMemory
			}
			everIngested = everIngested || p.store.Len() > 0
			p.view.AddNewLinesToViewport(p.store, p.matcher())
			p.paint()

		case <-doneCh:
			doneCh = nil // disable: ingest completes once, stop waiting on it
			if p.store.OOM() {
				p.paintError(contools.ErrOutOfMemory)
				return 1, contools.ErrOutOfMemory
			}
			if !everIngested && p.store.Len() == 0 {
				if ingestErr := <-ingestErrCh; ingestErr != nil && ingestErr != contools.ErrInputExhausted {
					return 1, ingestErr
				}
				return 0, nil
			}

		case <-time.After(timeout):
			if p.periodicDX != 0 || p.periodicDY != 0 {
				p.scrollPeriodic()
			}
			if cols, rows, sizeErr := p.term.Size(); sizeErr == nil && (cols != p.width || rows != p.height) {
				p.width, p.height = cols, rows
				if err := p.view.Resize(cols, rows-1, p.store, p.matcher()); err != nil {
					p.paintError(err)
					return 1, err
				}
			}
			if uint64(p.store.Len()) != p.reportedLen {
				p.reportedLen = uint64(p.store.Len())
				p.paint()
			}
		}
	}
}

func (p *Pager) matcher() vtlayout.Matcher {
	if !p.search.Active() {
		return nil
	}
	return &p.search
}

func (p *Pager) paint() {
	first, last := p.view.Bounds()
	status := viewport.Status(first, last, uint64(p.store.Len()), !p.store.OOM() && p.ingestDoneQuiet(), p.searchStatusText())
	_ = p.view.Paint(p.term, status)
}

// ingestDoneQuiet reports whether ingest has completed, without the Run
// loop having to thread that bool into every paint call.
func (p *Pager) ingestDoneQuiet() bool {
	select {
	case <-p.store.Done():
		return true
	default:
		return false
	}
}

func (p *Pager) searchStatusText() string {
	if p.searchMode {
		return string(p.searchBuf)
	}
	return p.search.Pattern
}

func (p *Pager) paintError(err error) {
	_ = p.term.SetCursor(0, p.height-1)
	_ = p.term.WriteCells(fmt.Sprintf("\x1b[2K%v", err))
}
