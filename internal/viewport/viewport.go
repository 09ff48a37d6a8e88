// Package viewport is the on-screen window of logical lines, generalizing
// the scrollback-window shape of internal/ui/components/vterm.go's
// ScrollUp/ScrollDown/IsScrolledBack (a fixed cell-grid scrollback) into a
// logical-line display/staging pair driven by the VT layout engine instead
// of a live cell grid.
package viewport

import (
	"strings"

	"github.com/conterm/contools/internal/contools"
	"github.com/conterm/contools/internal/linestore"
	"github.com/conterm/contools/internal/term"
	"github.com/conterm/contools/internal/vtcolor"
	"github.com/conterm/contools/internal/vtlayout"
)

// MinWidth and MinHeight are the smallest window this core will run in.
const (
	MinWidth  = 60
	MinHeight = 20
)

// Viewport is the window of logical lines currently on screen.
type Viewport struct {
	Display, Staging   []vtlayout.LogicalLine
	Width, Height      int
	LinesInPage        int
	TotalLinesReported uint64
	HScroll            int

	hasBottom  bool
	bottomPhys uint64
	bottomIdx  int

	hasTop  bool
	topPhys uint64
	topIdx  int
}

// New returns an empty Viewport of the given size, or ErrWindowTooSmall if
// it's below the minimum this core supports.
func New(width, height int) (*Viewport, error) {
	if width < MinWidth || height < MinHeight {
		return nil, contools.ErrWindowTooSmall
	}
	return &Viewport{Width: width, Height: height}, nil
}

func (v *Viewport) nextAfterBottom(store *linestore.Store, m vtlayout.Matcher) (*linestore.Line, int, bool) {
	if !v.hasBottom {
		phys := store.At(0)
		if phys == nil {
			return nil, 0, false
		}
		return phys, 0, true
	}
	phys := store.ByNumber(v.bottomPhys)
	if phys == nil {
		return nil, 0, false
	}
	if cnt := vtlayout.Count(phys, v.Width, m); v.bottomIdx+1 < cnt {
		return phys, v.bottomIdx + 1, true
	}
	next := store.ByNumber(v.bottomPhys + 1)
	if next == nil {
		return nil, 0, false
	}
	return next, 0, true
}

func (v *Viewport) appendBottom(ll vtlayout.LogicalLine) {
	v.Display = append(v.Display, ll)
	v.bottomPhys, v.bottomIdx, v.hasBottom = ll.Phys.Number, int(ll.Index), true
	if !v.hasTop {
		v.topPhys, v.topIdx, v.hasTop = ll.Phys.Number, int(ll.Index), true
	}
}

func (v *Viewport) prependTop(ll vtlayout.LogicalLine) {
	v.Display = append([]vtlayout.LogicalLine{ll}, v.Display...)
	v.topPhys, v.topIdx, v.hasTop = ll.Phys.Number, int(ll.Index), true
	if !v.hasBottom {
		v.bottomPhys, v.bottomIdx, v.hasBottom = ll.Phys.Number, int(ll.Index), true
	}
}

func (v *Viewport) dropTop() {
	v.Display = v.Display[1:]
	if len(v.Display) > 0 {
		top := v.Display[0]
		v.topPhys, v.topIdx = top.Phys.Number, int(top.Index)
	}
}

func (v *Viewport) dropBottom() {
	v.Display = v.Display[:len(v.Display)-1]
	if len(v.Display) > 0 {
		bot := v.Display[len(v.Display)-1]
		v.bottomPhys, v.bottomIdx = bot.Phys.Number, int(bot.Index)
	}
}

// AddNewLinesToViewport fills the display up to Height with logical lines
// following the last displayed one, if the page isn't already full.
func (v *Viewport) AddNewLinesToViewport(store *linestore.Store, m vtlayout.Matcher) {
	need := v.Height - v.LinesInPage
	for need > 0 {
		phys, idx, ok := v.nextAfterBottom(store, m)
		if !ok {
			break
		}
		lines := vtlayout.Generate(phys, idx, 1, v.Width, m)
		if len(lines) == 0 {
			break
		}
		v.appendBottom(lines[0])
		v.LinesInPage++
		need--
	}
}

// MoveDown generates up to n logical lines following the current bottom of
// the display; once the display is full, each new line scrolls the oldest
// one off the top.
func (v *Viewport) MoveDown(n int, store *linestore.Store, m vtlayout.Matcher) {
	for i := 0; i < n; i++ {
		phys, idx, ok := v.nextAfterBottom(store, m)
		if !ok {
			break
		}
		lines := vtlayout.Generate(phys, idx, 1, v.Width, m)
		if len(lines) == 0 {
			break
		}
		v.appendBottom(lines[0])
		if len(v.Display) > v.Height {
			v.dropTop()
		} else if v.LinesInPage < v.Height {
			v.LinesInPage++
		}
	}
}

// MoveUp walks backward through physical lines, prepending up to n logical
// lines above the current top of the display.
func (v *Viewport) MoveUp(n int, store *linestore.Store, m vtlayout.Matcher) {
	for i := 0; i < n; i++ {
		if !v.hasTop {
			break
		}

		var ll vtlayout.LogicalLine
		if v.topIdx > 0 {
			phys := store.ByNumber(v.topPhys)
			if phys == nil {
				break
			}
			lines := vtlayout.Generate(phys, v.topIdx-1, 1, v.Width, m)
			if len(lines) == 0 {
				break
			}
			ll = lines[0]
		} else {
			if v.topPhys <= 1 {
				break
			}
			prev := store.ByNumber(v.topPhys - 1)
			if prev == nil {
				break
			}
			cnt := vtlayout.Count(prev, v.Width, m)
			lines := vtlayout.Generate(prev, cnt-1, 1, v.Width, m)
			if len(lines) == 0 {
				break
			}
			ll = lines[0]
		}

		v.prependTop(ll)
		if len(v.Display) > v.Height {
			v.dropBottom()
		} else if v.LinesInPage < v.Height {
			v.LinesInPage++
		}
	}
}

// Regenerate recomputes Height lines starting from firstPhysical — used
// after a resize or a search jump. Physical-line color continuity is
// already threaded through linestore.Line.InitialColor at ingest time, so
// unlike the distilled spec's walker there's no separate "preceding
// logical line" fetch needed here: Generate(phys, 0, ...) already starts
// from the right color.
func (v *Viewport) Regenerate(firstPhysical uint64, store *linestore.Store, m vtlayout.Matcher) {
	v.Display = nil
	v.LinesInPage = 0
	v.hasTop, v.hasBottom = false, false

	physNum, idx := firstPhysical, 0
	for v.LinesInPage < v.Height {
		phys := store.ByNumber(physNum)
		if phys == nil {
			break
		}
		lines := vtlayout.Generate(phys, idx, 1, v.Width, m)
		if len(lines) == 0 {
			break
		}
		v.appendBottom(lines[0])
		v.LinesInPage++

		if cnt := vtlayout.Count(phys, v.Width, m); idx+1 < cnt {
			idx++
		} else {
			physNum++
			idx = 0
		}
	}
}

// MoveLeft and MoveRight adjust the horizontal scroll offset within a wider
// buffer; unlike MoveUp/MoveDown these never regenerate logical lines.
func (v *Viewport) MoveLeft(n int) {
	v.HScroll -= n
	if v.HScroll < 0 {
		v.HScroll = 0
	}
}

func (v *Viewport) MoveRight(n int) {
	v.HScroll += n
}

// Bounds returns the physical line numbers of the first and last lines
// currently on screen, for the status line's "First-Last of Total" text.
// Both are zero if the display is empty (nothing ingested yet).
func (v *Viewport) Bounds() (first, last uint64) {
	return v.topPhys, v.bottomPhys
}

// Paint writes the display buffer plus the status line to t. It builds one
// output string (color-set escape + text + reset + newline, per line) and
// writes it in a single terminal call, falling back to per-line writes if
// that call fails — matching the distilled spec's paint-ordering contract
// verbatim.
func (v *Viewport) Paint(t term.Terminal, status string) error {
	var b strings.Builder
	for _, ll := range v.Display {
		b.WriteString(vtcolor.Render(ll.InitialDisplay))
		b.WriteString(hscrolled(ll.Text(), v.HScroll))
		b.WriteString("\x1b[0m\r\n")
	}

	if err := t.WriteCells(b.String()); err != nil {
		for _, ll := range v.Display {
			line := vtcolor.Render(ll.InitialDisplay) + hscrolled(ll.Text(), v.HScroll) + "\x1b[0m\r\n"
			if werr := t.WriteCells(line); werr != nil {
				return werr
			}
		}
	}

	return paintStatus(t, status, v.Width, v.Height)
}

// hscrolled applies the viewport's horizontal scroll offset to a logical
// line's already-laid-out text. Offsets beyond the line's length yield an
// empty row rather than panicking.
func hscrolled(text string, offset int) string {
	if offset <= 0 {
		return text
	}
	if offset >= len(text) {
		return ""
	}
	return text[offset:]
}
