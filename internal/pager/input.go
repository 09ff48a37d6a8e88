package pager

import (
	"time"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/conterm/contools/internal/selection"
	"github.com/conterm/contools/internal/term"
)

const doubleClickWindow = 400 * time.Millisecond

// dispatch handles one input event, reporting whether the pager should
// quit.
func (p *Pager) dispatch(ev term.Event) bool {
	switch ev.Kind {
	case term.EventKey:
		return p.handleKey(ev)
	case term.EventMouse:
		p.handleMouse(ev)
	case term.EventResize:
		p.width, p.height = ev.Cols, ev.Rows
		if err := p.view.Resize(ev.Cols, ev.Rows-1, p.store, p.matcher()); err == nil {
			p.paint()
		}
	}
	return false
}

func (p *Pager) handleKey(ev term.Event) bool {
	if p.searchMode {
		return p.handleSearchKey(ev)
	}

	if ev.Key == "" {
		switch ev.Rune {
		case 'q', 'Q':
			return true
		case ' ':
			p.pageDown()
		case '/':
			p.searchMode = true
			p.searchBuf = []rune(p.search.Pattern)
			p.paint()
		}
		return false
	}

	switch ev.Key {
	case "Esc":
		return true
	case "PgDown":
		p.pageDown()
	case "PgUp":
		p.view.MoveUp(p.view.Height, p.store, p.matcher())
		p.paint()
	case "Up":
		p.view.MoveUp(1, p.store, p.matcher())
		p.paint()
	case "Down":
		p.view.MoveDown(1, p.store, p.matcher())
		p.paint()
	case "Left":
		p.view.MoveLeft(1)
		p.paint()
	case "Right":
		p.view.MoveRight(1)
		p.paint()
	case "Enter":
		p.onEnter()
	}
	return false
}

func (p *Pager) pageDown() {
	p.sel = selection.Rect{}
	p.view.LinesInPage = 0
	p.view.MoveDown(p.view.Height, p.store, p.matcher())
	p.paint()
}

func (p *Pager) onEnter() {
	if p.hasSelection() {
		p.copySelection()
		p.sel = selection.Rect{}
	} else if p.search.Active() {
		p.advanceSearchMatch()
	}
	p.paint()
}

func (p *Pager) hasSelection() bool {
	return p.sel != (selection.Rect{})
}

// advanceSearchMatch scrolls the viewport so the next physical line
// containing the active pattern, after the line currently at the bottom of
// the display, becomes the new top of the page.
func (p *Pager) advanceSearchMatch() {
	_, last := p.view.Bounds()
	n := uint64(p.store.Len())
	for ln := last + 1; ln <= n; ln++ {
		line := p.store.ByNumber(ln)
		if line == nil {
			continue
		}
		if p.search.Contains(line.Text) {
			p.view.Regenerate(ln, p.store, p.matcher())
			return
		}
	}
}

func (p *Pager) handleSearchKey(ev term.Event) bool {
	if ev.Key == "Esc" {
		p.searchMode = false
		p.searchBuf = nil
		p.paint()
		return false
	}
	if ev.Key == "Enter" {
		p.commitSearch()
		return false
	}
	if ev.Key == "Backspace" {
		if len(p.searchBuf) > 0 {
			p.searchBuf = p.searchBuf[:len(p.searchBuf)-1]
		}
		p.paint()
		return false
	}
	if ev.Key == "" && ev.Rune >= 0x20 {
		p.searchBuf = append(p.searchBuf, ev.Rune)
		p.paint()
	}
	return false
}

// commitSearch installs the typed pattern and, when it is non-empty,
// re-lays out the page from its top physical line so matches are
// highlighted. It does not scroll to a match.
func (p *Pager) commitSearch() {
	p.searchMode = false
	p.search.Set(string(p.searchBuf), p.search.MatchCase)
	first, _ := p.view.Bounds()
	if p.search.Active() {
		p.view.Regenerate(first, p.store, p.matcher())
	}
	p.paint()
}

func (p *Pager) copySelection() {
	spans := selection.Export(p.view, p.sel.Normalize(), p.matcher())
	palette := selection.DefaultPalette()
	_ = p.term.ClipboardSetText(spans.Plain(), spans.RTF(palette), spans.HTML(palette))
}

func (p *Pager) handleMouse(ev term.Event) {
	switch ev.MouseAction {
	case term.MousePress:
		p.handleMousePress(ev)
	case term.MouseDrag:
		p.extendSelection(ev)
	case term.MouseRelease:
		p.periodicDX, p.periodicDY = 0, 0
		p.selecting = false
	}
}

func (p *Pager) handleMousePress(ev term.Event) {
	if ev.MouseButton == term.MouseRight {
		if p.hasSelection() {
			p.copySelection()
			p.sel = selection.Rect{}
			p.paint()
		}
		return
	}

	now := p.clickTime()
	if ev.MouseX == p.lastClickX && ev.MouseY == p.lastClickY && now.Sub(p.lastClickAt) < doubleClickWindow {
		p.selectWordAt(ev.MouseY, ev.MouseX)
		p.lastClickAt = time.Time{}
		p.paint()
		return
	}

	p.lastClickX, p.lastClickY = ev.MouseX, ev.MouseY
	p.lastClickAt = now

	p.selecting = true
	p.sel = selection.Rect{Top: ev.MouseY, Left: ev.MouseX, Bottom: ev.MouseY, Right: ev.MouseX}
	p.paint()
}

// clickTime returns the wall-clock time used for double-click detection.
// It is a plain method, so tests cannot substitute another clock.
func (p *Pager) clickTime() time.Time {
	return time.Now()
}

func (p *Pager) extendSelection(ev term.Event) {
	if !p.selecting {
		return
	}
	p.sel.Bottom, p.sel.Right = ev.MouseY, ev.MouseX

	p.periodicDX, p.periodicDY = 0, 0
	if ev.MouseX < 0 {
		p.periodicDX = -periodicScroll
	} else if ev.MouseX >= p.width {
		p.periodicDX = periodicScroll
	}
	if ev.MouseY < 0 {
		p.periodicDY = -periodicScroll
	} else if ev.MouseY >= p.view.Height {
		p.periodicDY = periodicScroll
	}
	p.paint()
}

func (p *Pager) scrollPeriodic() {
	if p.periodicDY > 0 {
		p.view.MoveDown(p.periodicDY, p.store, p.matcher())
	} else if p.periodicDY < 0 {
		p.view.MoveUp(-p.periodicDY, p.store, p.matcher())
	}
	if p.periodicDX > 0 {
		p.view.MoveRight(p.periodicDX)
	} else if p.periodicDX < 0 {
		p.view.MoveLeft(-p.periodicDX)
	}
	p.sel.Bottom += p.periodicDY
	p.paint()
}

// selectWordAt expands the selection to the word under the display row/col
// the double click landed on, using Unicode word-boundary segmentation
// instead of a hand-rolled break-character scan.
func (p *Pager) selectWordAt(row, col int) {
	if row < 0 || row >= len(p.view.Display) {
		return
	}
	line := p.view.Display[row].Text()
	start, end := wordBoundaryAt(line, col)
	p.sel = selection.Rect{Top: row, Left: start, Bottom: row, Right: end}
}

func wordBoundaryAt(line string, col int) (start, end int) {
	data := []byte(line)
	seg := words.NewSegmenter(data)
	for seg.Next() {
		tok := seg.Value()
		s := seg.Start()
		e := s + len(tok)
		if col >= s && col < e {
			return s, e
		}
	}
	return col, col
}
