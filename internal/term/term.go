// Package term is the terminal capability boundary: raw-mode control,
// direct cell writes, input/resize events, and clipboard access, behind one
// interface so the pager and editor event loops never import an OS-specific
// package directly.
package term

import (
	"context"

	"github.com/conterm/contools/internal/vtcolor"
)

// Rect is a window rectangle in character cells.
type Rect struct {
	Left, Top, Right, Bottom int
}

// Width and Height return the rectangle's cell dimensions.
func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

// EventKind discriminates Event's payload.
type EventKind int

const (
	EventKey EventKind = iota
	EventMouse
	EventResize
)

// MouseAction discriminates a mouse Event's button/motion state.
type MouseAction int

const (
	MouseNone MouseAction = iota
	MousePress
	MouseRelease
	MouseDrag
	MouseWheelUp
	MouseWheelDown
)

// MouseButton identifies which button a press/release/drag Event names, per
// the SGR mouse protocol's low two bits (0=left, 1=middle, 2=right).
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
)

// Event is one input event: a key, a mouse action, or a resize. Only the
// fields matching Kind are meaningful.
type Event struct {
	Kind EventKind

	// Key
	Rune  rune
	Key   string // named keys: "Up", "Down", "Enter", "Esc", "PgUp", ...
	Ctrl  bool
	Alt   bool
	Shift bool

	// Mouse
	MouseAction    MouseAction
	MouseButton    MouseButton
	MouseX, MouseY int

	// Resize
	Cols, Rows int
}

// Terminal is the pager/editor's external terminal collaborator.
type Terminal interface {
	Size() (cols, rows int, err error)
	WindowRect() (Rect, error)
	SetWindowRect(Rect) error
	WriteCells(text string) error
	SetCursor(x, y int) error
	Fill(r Rect, ch rune, attr vtcolor.Attr) error
	ReadInput(ctx context.Context) (<-chan Event, error)
	ClipboardGetText() (string, error)
	ClipboardSetText(plain, rtf, html string) error
	Close() error
}
