// Package editor is the multiline text editor core: a single-threaded
// event loop owning an editbuffer.Buffer instead of the pager's
// linestore.Store, mirroring internal/pager's event-loop shape (itself
// grounded on internal/ssh/session.go's Start) without the ingest
// goroutine a read-only file doesn't need.
package editor

import (
	"context"
	"fmt"
	"time"

	"github.com/conterm/contools/internal/config"
	"github.com/conterm/contools/internal/contools"
	"github.com/conterm/contools/internal/dialog"
	"github.com/conterm/contools/internal/editbuffer"
	"github.com/conterm/contools/internal/search"
	"github.com/conterm/contools/internal/term"
)

const (
	idleTimeout  = 250 * time.Millisecond
	minWidth     = 60
	minHeight    = 20
	statusHeight = 1
)

// Editor is the multiline editor: a mutable Buffer, the terminal it paints
// to, and the one modeless dialog active at a time (nil when none is).
type Editor struct {
	buf    *editbuffer.Buffer
	term   term.Terminal
	cfg    *config.Config
	search search.State

	readOnly  bool
	width     int
	height    int
	topLine   int // first buffer line shown in the edit area
	statusMsg string

	active  dialog.Dialog
	pending pendingKind
}

// pendingKind records which operation opened the active dialog, so its
// Done() result is applied to that operation (two MsgBox confirms, quit and
// read-only overwrite, share one dialog type).
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingFind
	pendingReplace
	pendingGoTo
	pendingOpen
	pendingSaveAs
	pendingAbout
	pendingConfirmOverwriteReadOnly
	pendingQuitConfirm
)

// New returns an Editor bound to t, applying cfg's persisted defaults to a
// fresh Buffer. readOnly corresponds to the `-r` CLI flag (§6): mutating
// keys are accepted but Save is refused.
func New(t term.Terminal, cfg *config.Config, readOnly bool) *Editor {
	buf := editbuffer.New(cfg.TabWidth)
	buf.AutoIndent = cfg.AutoIndent
	buf.ExpandTab = cfg.ExpandTab
	buf.Traditional = cfg.TraditionalNavigation
	return &Editor{buf: buf, term: t, cfg: cfg, readOnly: readOnly}
}

// Load reads path into the buffer before Run starts, per the `edit
// [filename]` CLI form; enc is AutoDetect unless the `-e` flag overrode it.
func (e *Editor) Load(path string, enc editbuffer.Encoding) error {
	return e.buf.Load(path, enc)
}

// Run serves the terminal event loop until the user quits. It returns the
// process exit code: 0 normally, non-zero if the terminal is below the
// minimum size.
func (e *Editor) Run(ctx context.Context) (exitCode int, err error) {
	cols, rows, err := e.term.Size()
	if err != nil {
		return 1, err
	}
	if cols < minWidth || rows < minHeight {
		return 1, contools.ErrWindowTooSmall
	}
	e.width, e.height = cols, rows

	events, err := e.term.ReadInput(ctx)
	if err != nil {
		return 1, err
	}

	e.paint()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return 0, nil
			}
			if quit := e.dispatch(ev); quit {
				return 0, nil
			}
			e.paint()

		case <-time.After(idleTimeout):
			if cols, rows, sizeErr := e.term.Size(); sizeErr == nil && (cols != e.width || rows != e.height) {
				e.resize(cols, rows)
				e.paint()
			}
		}
	}
}

func (e *Editor) resize(cols, rows int) {
	e.width, e.height = cols, rows
	e.scrollToCursor()
}

// editHeight is the number of rows available for buffer text: the terminal
// height minus the status line, and minus the active dialog's rows when
// one is open (§4.8 dialogs float over the bottom of the edit area).
func (e *Editor) editHeight() int {
	h := e.height - statusHeight
	if e.active != nil {
		h -= dialogRows
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (e *Editor) paintError(err error) {
	e.statusMsg = fmt.Sprintf("%v", err)
}
