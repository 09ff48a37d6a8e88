// Package vtlayout is the VT layout engine: it walks a physical line's raw
// bytes (text plus embedded CSI color escapes) and derives the logical
// lines a viewport of a given width would wrap it into, overlaying search
// highlight escapes where a match is active. It is the one package in this
// module allowed to know about both vtcolor and linestore, since producing
// a LogicalLine means reading a *linestore.Line and folding vtcolor state
// across it.
package vtlayout

import (
	"unicode/utf8"

	"github.com/conterm/contools/internal/vtcolor"
	"github.com/mattn/go-runewidth"
)

// State is the color/match bookkeeping threaded from one logical line to
// the next (and, via linestore, from one physical line to the next).
type State struct {
	Display, User         vtcolor.Attr
	CharsRemainingInMatch int
}

// EndCtx is what a Measure call reports about where it stopped.
type EndCtx struct {
	Final                   State
	CharsNeededInAllocation int
	RequiresGeneration      bool
}

// Matcher is the search-state collaborator: given a suffix of the physical
// line, it reports the next match's offset and length, or ok == false.
// internal/search.State implements this directly (plain substring scanning,
// no regular expressions).
type Matcher interface {
	Find(s string) (offset, length int, ok bool)
}

// colorSource is an optional capability a Matcher can implement to report
// the attribute a match should be painted in. Kept separate from Matcher so
// the interface the layout engine requires stays exactly the shape a plain
// matcher needs to implement.
type colorSource interface {
	SearchColor() vtcolor.Attr
}

func searchColorOf(m Matcher) vtcolor.Attr {
	if cs, ok := m.(colorSource); ok {
		return cs.SearchColor()
	}
	return vtcolor.Default
}

const esc = 0x1b

// Measure computes how many bytes of src the next logical line consumes
// under a maxCells display budget, starting from state in, optionally
// overlaid by m's search matches. When wantEnd is false the returned
// EndCtx.CharsNeededInAllocation is left at zero (callers doing a pure
// Count walk don't need it); Final and RequiresGeneration are always
// populated since every caller needs them to propagate to the next call.
func Measure(src string, maxCells int, in State, m Matcher, wantEnd bool) (consumed int, end EndCtx) {
	if maxCells <= 0 {
		return 0, EndCtx{Final: in}
	}

	display, user := in.Display, in.User
	remain := in.CharsRemainingInMatch
	searchColor := searchColorOf(m)

	cells := 0
	needed := 0
	requiresGeneration := false
	i := 0

	for i < len(src) {
		if cells >= maxCells {
			break
		}

		if src[i] == esc && i+1 < len(src) && src[i+1] == '[' {
			j := i + 2
			for j < len(src) && (src[j] == ';' || (src[j] >= '0' && src[j] <= '9')) {
				j++
			}
			if j >= len(src) {
				// Unterminated CSI: consumed to end of line, matching the
				// source console's tolerance for a split escape.
				needed += len(src) - i
				i = len(src)
				break
			}
			seqLen := j + 1 - i
			if src[j] == 'm' {
				user = vtcolor.FoldSGR(user, vtcolor.ParseCSIParams(src[i+2:j]))
				if remain == 0 {
					display = user
				}
			}
			needed += seqLen
			i = j + 1
			continue
		}

		if remain == 0 && m != nil {
			if off, length, ok := m.Find(src[i:]); ok && off == 0 && length > 0 {
				remain = length
				display = searchColor
				requiresGeneration = true
				needed += len(vtcolor.Render(searchColor))
			}
		}

		r, size := utf8.DecodeRuneInString(src[i:])
		w := runewidth.RuneWidth(r)
		if cells+w > maxCells {
			break
		}

		needed += size
		cells += w
		i += size

		if remain > 0 {
			remain--
			if remain == 0 {
				display = user
				requiresGeneration = true
				needed += len(vtcolor.Render(user))
			}
		}
	}

	consumed = i
	finalState := State{Display: display, User: user, CharsRemainingInMatch: remain}
	end = EndCtx{Final: finalState, RequiresGeneration: requiresGeneration}
	if wantEnd {
		end.CharsNeededInAllocation = needed
	}
	return consumed, end
}
