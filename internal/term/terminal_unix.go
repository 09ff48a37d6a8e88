//go:build linux || darwin || freebsd || netbsd || openbsd
// +build linux darwin freebsd netbsd openbsd

package term

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/conterm/contools/internal/vtcolor"
)

// unixTerminal implements Terminal over golang.org/x/term raw-mode control
// and direct ANSI writes to os.Stdout, with SIGWINCH-driven resize events —
// the same raw-mode/defer-restore/signal.Notify shape as
// pkg/sshutil/terminal.go's Start(), generalized from PTY-relay I/O copying
// into this module's own key/mouse/resize Event stream.
type unixTerminal struct {
	fd   int
	orig *term.State

	writeMu sync.Mutex
	out     *bufio.Writer
}

// New enables raw mode and mouse/resize tracking on the controlling
// terminal and returns a Terminal. Callers must call Close to restore the
// terminal's original state.
func New() (Terminal, error) {
	fd := int(os.Stdin.Fd())
	orig, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("term: get state: %w", err)
	}
	if _, err := term.MakeRaw(fd); err != nil {
		return nil, fmt.Errorf("term: make raw: %w", err)
	}

	t := &unixTerminal{fd: fd, orig: orig, out: bufio.NewWriter(os.Stdout)}

	// SGR mouse mode (1006) plus basic button tracking (1000) and drag
	// reporting (1002); disable autowrap (DECAWM) so a full-width write
	// never forces an unwanted scroll, matching the spec's "wrap-at-EOL
	// disabled" input-mode requirement.
	t.raw("\x1b[?1000h\x1b[?1002h\x1b[?1006h\x1b[?7l")
	return t, nil
}

func (t *unixTerminal) raw(s string) {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	t.out.WriteString(s)
	t.out.Flush()
}

func (t *unixTerminal) Close() error {
	t.raw("\x1b[?1000l\x1b[?1002l\x1b[?1006l\x1b[?7h")
	return term.Restore(t.fd, t.orig)
}

func (t *unixTerminal) Size() (cols, rows int, err error) {
	return term.GetSize(t.fd)
}

func (t *unixTerminal) WindowRect() (Rect, error) {
	cols, rows, err := t.Size()
	if err != nil {
		return Rect{}, err
	}
	return Rect{Left: 0, Top: 0, Right: cols, Bottom: rows}, nil
}

// SetWindowRect is a no-op on a real terminal: unlike a Windows console
// buffer, a POSIX tty's dimensions are owned by the emulator the user is
// running, not by this process.
func (t *unixTerminal) SetWindowRect(Rect) error { return nil }

func (t *unixTerminal) WriteCells(text string) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if _, err := t.out.WriteString(text); err != nil {
		return err
	}
	return t.out.Flush()
}

func (t *unixTerminal) SetCursor(x, y int) error {
	return t.WriteCells(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

func (t *unixTerminal) Fill(r Rect, ch rune, attr vtcolor.Attr) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	row := make([]rune, r.Width())
	for i := range row {
		row[i] = ch
	}
	line := vtcolor.Render(attr) + string(row) + "\x1b[0m"

	for y := r.Top; y < r.Bottom; y++ {
		fmt.Fprintf(t.out, "\x1b[%d;%dH", y+1, r.Left+1)
		t.out.WriteString(line)
	}
	return t.out.Flush()
}

func (t *unixTerminal) ReadInput(ctx context.Context) (<-chan Event, error) {
	events := make(chan Event, 64)

	resizeCh := make(chan os.Signal, 1)
	signal.Notify(resizeCh, syscall.SIGWINCH)

	go func() {
		defer signal.Stop(resizeCh)
		for {
			select {
			case <-ctx.Done():
				return
			case <-resizeCh:
				cols, rows, err := t.Size()
				if err != nil {
					log.Printf("term: resize: %v", err)
					continue
				}
				select {
				case events <- Event{Kind: EventResize, Cols: cols, Rows: rows}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	go t.readKeys(ctx, events)

	return events, nil
}

// readKeys decodes os.Stdin byte-by-byte into key and SGR-mouse Events. The
// blocking os.Stdin.Read below does not itself observe ctx; on
// cancellation the goroutine is abandoned rather than joined, same
// trade-off the teacher's own io.Copy-based relay goroutines make in
// pkg/sshutil/terminal.go's Start().
func (t *unixTerminal) readKeys(ctx context.Context, events chan<- Event) {
	buf := make([]byte, 0, 64)
	tmp := make([]byte, 32)

	send := func(ev Event) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		n, err := os.Stdin.Read(tmp)
		if err != nil {
			return
		}
		buf = append(buf, tmp[:n]...)

		for len(buf) > 0 {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if buf[0] == 0x1b && len(buf) > 1 {
				ev, consumed, recognized := decodeEscape(buf)
				if recognized {
					if consumed == 0 {
						break // wait for more bytes
					}
					if ev.Kind == EventMouse || ev.Key != "" {
						if !send(ev) {
							return
						}
					}
					buf = buf[consumed:]
					continue
				}
			}

			r, size := decodeRuneByte(buf)
			if size == 0 {
				break // incomplete UTF-8 sequence, wait for more bytes
			}
			if !send(keyEventFor(r)) {
				return
			}
			buf = buf[size:]
		}
	}
}

func keyEventFor(r rune) Event {
	switch r {
	case '\r', '\n':
		return Event{Kind: EventKey, Key: "Enter"}
	case 0x7f, 0x08:
		return Event{Kind: EventKey, Key: "Backspace"}
	case 0x1b:
		return Event{Kind: EventKey, Key: "Esc"}
	case '\t':
		return Event{Kind: EventKey, Key: "Tab"}
	}
	if r < 0x20 {
		return Event{Kind: EventKey, Rune: r + 'a' - 1, Ctrl: true}
	}
	return Event{Kind: EventKey, Rune: r}
}

func (t *unixTerminal) ClipboardGetText() (string, error) {
	return clipboard.ReadAll()
}

// ClipboardSetText writes plain text only: richer RTF/HTML clipboard
// formats are a Windows-only capability (see the build-tagged variant in
// internal/selection), since there is no portable POSIX clipboard format
// registry to target here.
func (t *unixTerminal) ClipboardSetText(plain, rtf, html string) error {
	return clipboard.WriteAll(plain)
}
