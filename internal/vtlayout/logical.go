package vtlayout

import (
	"github.com/conterm/contools/internal/linestore"
	"github.com/conterm/contools/internal/vtcolor"
)

// LogicalLine is one wrap-segment of a physical line: either a zero-copy
// slice of its Phys.Text, or — once a search-highlight escape had to be
// injected — an owned buffer holding the materialized bytes. owned == ""
// means borrowed; a materialized segment is never empty, since it always
// contains at least the injected escape sequence.
type LogicalLine struct {
	Phys                        *linestore.Line
	PhysOffset                  int
	Index                       uint32
	InitialDisplay, InitialUser vtcolor.Attr
	CharsRemainingInMatch       int

	owned       string
	borrowedEnd int
}

// Text returns this logical line's bytes: the owned buffer if materialized,
// otherwise the borrowed slice of the physical line.
func (l LogicalLine) Text() string {
	if l.owned != "" {
		return l.owned
	}
	if l.Phys == nil {
		return ""
	}
	return l.Phys.Text[l.PhysOffset:l.borrowedEnd]
}

// IsOwned reports whether Text returns a materialized buffer rather than a
// borrowed slice of Phys.Text.
func (l LogicalLine) IsOwned() bool { return l.owned != "" }
