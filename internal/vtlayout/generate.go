package vtlayout

import (
	"strings"
	"unicode/utf8"

	"github.com/conterm/contools/internal/linestore"
	"github.com/conterm/contools/internal/vtcolor"
)

// Generate produces count consecutive logical lines of phys starting at
// logical index firstIndex, under the given viewport width and search
// matcher. Earlier logical lines (0..firstIndex) are walked to propagate
// color/match state but their output is discarded, matching the source
// console's generate() algorithm.
func Generate(phys *linestore.Line, firstIndex, count, width int, m Matcher) []LogicalLine {
	if phys == nil || count <= 0 {
		return nil
	}

	state := State{Display: phys.InitialColor, User: phys.InitialColor}
	offset := 0

	for idx := 0; idx < firstIndex; idx++ {
		if offset >= len(phys.Text) {
			break
		}
		consumed, end := Measure(phys.Text[offset:], width, state, m, false)
		state = end.Final
		offset += consumed
		if consumed == 0 {
			break
		}
	}

	out := make([]LogicalLine, 0, count)
	for i := 0; i < count; i++ {
		consumed, end := Measure(phys.Text[offset:], width, state, m, true)

		ll := LogicalLine{
			Phys:                  phys,
			PhysOffset:            offset,
			Index:                 uint32(firstIndex + i),
			InitialDisplay:        state.Display,
			InitialUser:           state.User,
			CharsRemainingInMatch: state.CharsRemainingInMatch,
		}
		if end.RequiresGeneration {
			ll.owned = materialize(phys.Text[offset:], consumed, state, m)
		} else {
			ll.borrowedEnd = offset + consumed
		}
		out = append(out, ll)

		offset += consumed
		state = end.Final
		if offset >= len(phys.Text) || consumed == 0 {
			break
		}
	}
	return out
}

// Count returns the number of logical lines phys yields at the given
// viewport width and search state. Always at least 1, even for an empty
// physical line.
func Count(phys *linestore.Line, width int, m Matcher) int {
	if phys == nil {
		return 1
	}
	state := State{Display: phys.InitialColor, User: phys.InitialColor}
	offset := 0
	count := 0
	for {
		consumed, end := Measure(phys.Text[offset:], width, state, m, false)
		count++
		offset += consumed
		state = end.Final
		if offset >= len(phys.Text) || consumed == 0 {
			break
		}
	}
	return count
}

// materialize replays the same walk Measure already bounded to consumed
// bytes, this time writing the actual output bytes plus any injected
// search-highlight escapes, producing the buffer a LogicalLine owns when it
// can no longer borrow a plain slice of src.
func materialize(src string, consumed int, in State, m Matcher) string {
	var b strings.Builder
	user := in.User
	remain := in.CharsRemainingInMatch
	searchColor := searchColorOf(m)

	i := 0
	for i < consumed {
		if src[i] == esc && i+1 < len(src) && src[i+1] == '[' {
			j := i + 2
			for j < len(src) && (src[j] == ';' || (src[j] >= '0' && src[j] <= '9')) {
				j++
			}
			if j >= len(src) {
				b.WriteString(src[i:])
				break
			}
			if src[j] == 'm' {
				user = vtcolor.FoldSGR(user, vtcolor.ParseCSIParams(src[i+2:j]))
			}
			b.WriteString(src[i : j+1])
			i = j + 1
			continue
		}

		if remain == 0 && m != nil {
			if off, length, ok := m.Find(src[i:]); ok && off == 0 && length > 0 {
				remain = length
				b.WriteString(vtcolor.Render(searchColor))
			}
		}

		_, size := utf8.DecodeRuneInString(src[i:])
		b.WriteString(src[i : i+size])
		i += size

		if remain > 0 {
			remain--
			if remain == 0 {
				b.WriteString(vtcolor.Render(user))
			}
		}
	}
	return b.String()
}
