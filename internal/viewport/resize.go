package viewport

import (
	"github.com/conterm/contools/internal/contools"
	"github.com/conterm/contools/internal/linestore"
	"github.com/conterm/contools/internal/vtlayout"
)

// Resize applies a new terminal size. A height-only change grows or
// shrinks the display in place, preserving the top of the page; a width
// change always calls Regenerate from the captured top physical line,
// since every logical line's wrap boundaries depend on width. Returns
// ErrWindowTooSmall (leaving the viewport unchanged) if the new size is
// below the minimum.
func (v *Viewport) Resize(width, height int, store *linestore.Store, m vtlayout.Matcher) error {
	if width < MinWidth || height < MinHeight {
		return contools.ErrWindowTooSmall
	}

	widthChanged := width != v.Width
	v.Width = width

	if widthChanged {
		top := v.topPhys
		if !v.hasTop {
			top = 1
		}
		v.Height = height
		v.Regenerate(top, store, m)
		return nil
	}

	switch {
	case height > v.Height:
		v.Height = height
		v.AddNewLinesToViewport(store, m)
	case height < v.Height:
		v.Height = height
		for len(v.Display) > v.Height {
			v.dropBottom()
		}
		if v.LinesInPage > v.Height {
			v.LinesInPage = v.Height
		}
	}
	return nil
}
