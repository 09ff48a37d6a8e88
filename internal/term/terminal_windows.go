//go:build windows
// +build windows

package term

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/conterm/contools/internal/vtcolor"
)

// windowsTerminal implements Terminal the same way unixTerminal does
// (golang.org/x/term raw mode, direct ANSI writes), substituting a resize
// poll for SIGWINCH since Windows has no such signal — console resize is
// instead detected by periodically comparing term.GetSize against its last
// observed value, the approach pkg/sshutil/terminal_windows.go's sibling
// PTY code uses for the same reason.
type windowsTerminal struct {
	fd   int
	orig *term.State

	writeMu sync.Mutex
	out     *bufio.Writer
}

func New() (Terminal, error) {
	fd := int(os.Stdin.Fd())
	orig, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("term: get state: %w", err)
	}
	if _, err := term.MakeRaw(fd); err != nil {
		return nil, fmt.Errorf("term: make raw: %w", err)
	}

	t := &windowsTerminal{fd: fd, orig: orig, out: bufio.NewWriter(os.Stdout)}
	t.raw("\x1b[?1000h\x1b[?1002h\x1b[?1006h\x1b[?7l")
	return t, nil
}

func (t *windowsTerminal) raw(s string) {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	t.out.WriteString(s)
	t.out.Flush()
}

func (t *windowsTerminal) Close() error {
	t.raw("\x1b[?1000l\x1b[?1002l\x1b[?1006l\x1b[?7h")
	return term.Restore(t.fd, t.orig)
}

func (t *windowsTerminal) Size() (cols, rows int, err error) {
	return term.GetSize(t.fd)
}

func (t *windowsTerminal) WindowRect() (Rect, error) {
	cols, rows, err := t.Size()
	if err != nil {
		return Rect{}, err
	}
	return Rect{Left: 0, Top: 0, Right: cols, Bottom: rows}, nil
}

func (t *windowsTerminal) SetWindowRect(Rect) error { return nil }

func (t *windowsTerminal) WriteCells(text string) error {
	t.writeMu.Lock()
	defer t.writeMu.Unlock()
	if _, err := t.out.WriteString(text); err != nil {
		return err
	}
	return t.out.Flush()
}

func (t *windowsTerminal) SetCursor(x, y int) error {
	return t.WriteCells(fmt.Sprintf("\x1b[%d;%dH", y+1, x+1))
}

func (t *windowsTerminal) Fill(r Rect, ch rune, attr vtcolor.Attr) error {
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

func (t *windowsTerminal) ReadInput(ctx context.Context) (<-chan Event, error) {
	events := make(chan Event, 64)

	go func() {
		ticker := time.NewTicker(200 * time.Millisecond)
		defer ticker.Stop()
		lastCols, lastRows, _ := t.Size()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cols, rows, err := t.Size()
				if err != nil || (cols == lastCols && rows == lastRows) {
					continue
				}
				lastCols, lastRows = cols, rows
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

func (t *windowsTerminal) readKeys(ctx context.Context, events chan<- Event) {
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
						break
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
				break
			}
			if !send(keyEventFor(r)) {
				return
			}
			buf = buf[size:]
		}
	}
}

func (t *windowsTerminal) ClipboardGetText() (string, error) {
	return clipboard.ReadAll()
}

// ClipboardSetText writes plain via atotto/clipboard. The rtf and html
// representations are not written to the clipboard.
func (t *windowsTerminal) ClipboardSetText(plain, rtf, html string) error {
	return clipboard.WriteAll(plain)
}
