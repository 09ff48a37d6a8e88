// Package selection carves a rectangular on-screen selection into VT-
// colored spans and renders them as plain text, VT escapes, RTF, or HTML
// for the clipboard. Grounded on internal/ui/components/vterm.go's
// StartSelection/UpdateSelection/CopySelection, generalized from raw
// cell-grid coordinates to the viewport's logical-line rows.
package selection

import (
	"github.com/conterm/contools/internal/vtcolor"
	"github.com/conterm/contools/internal/vtlayout"
	"github.com/conterm/contools/internal/viewport"
)

// Rect is a selection in on-screen row/column coordinates: Top/Bottom are
// indices into the viewport's current Display, Left/Right are display
// cell columns.
type Rect struct{ Top, Left, Bottom, Right int }

// Normalize returns r with Top<=Bottom (and, for a single row, Left<=Right)
// — the form every other function in this package expects.
func (r Rect) Normalize() Rect {
	if r.Top > r.Bottom || (r.Top == r.Bottom && r.Left > r.Right) {
		r.Top, r.Bottom = r.Bottom, r.Top
		r.Left, r.Right = r.Right, r.Left
	}
	return r
}

// Span is one selected row: its carved text (VT escapes still embedded,
// since multiple colors can appear within one row) and the color state in
// effect at its first character.
type Span struct {
	Text                  string
	InitialColor          vtcolor.Attr
	CharsRemainingInMatch int
}

// Spans is an ordered top-to-bottom selection export.
type Spans []Span

// Export carves the rows of r out of v's current display. Mouse
// coordinates are always on-screen row/column pairs, so — unlike a
// scrollback selection — every selected row is already present in
// v.Display; there is no need to regenerate off-screen rows.
func Export(v *viewport.Viewport, r Rect, m vtlayout.Matcher) Spans {
	r = r.Normalize()
	var spans Spans

	for row := r.Top; row <= r.Bottom; row++ {
		if row < 0 || row >= len(v.Display) {
			continue
		}
		ll := v.Display[row]
		text := ll.Text()

		left := 0
		if row == r.Top {
			left = r.Left
		}
		right := v.Width - 1
		if row == r.Bottom {
			right = r.Right
		}
		if right < left {
			spans = append(spans, Span{})
			continue
		}

		state := vtlayout.State{
			Display:               ll.InitialDisplay,
			User:                  ll.InitialUser,
			CharsRemainingInMatch: ll.CharsRemainingInMatch,
		}

		skip, afterSkip := vtlayout.Measure(text, left, state, m, true)
		carved, end := vtlayout.Measure(text[skip:], right-left+1, afterSkip.Final, m, true)

		spans = append(spans, Span{
			Text:                  text[skip : skip+carved],
			InitialColor:          afterSkip.Final.Display,
			CharsRemainingInMatch: end.Final.CharsRemainingInMatch,
		})
	}

	return spans
}
