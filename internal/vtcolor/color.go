// Package vtcolor models the Windows-console-style 16-bit color attribute
// threaded through the VT layout engine, and folds SGR parameter lists into
// it. It is a pure, allocation-free package: every function here is total
// and side-effect free, so the layout engine can call it freely while
// measuring without ever mutating shared state.
package vtcolor

import (
	"fmt"
	"strconv"
	"strings"
)

// Attr is a 16-bit Windows-console-style color attribute: 4 bits
// foreground, 4 bits background, plus intensity/reverse bits in the high
// byte. Two parallel Attr values are threaded through the layout engine at
// all times: the "user" color the input stream requested, and the
// "display" color actually painted (they diverge under a search overlay).
type Attr uint16

const (
	fgMask  Attr = 0x000F
	bgMask  Attr = 0x00F0
	bgShift      = 4
	// Bold/intensity and reverse-video live above the color nibbles so they
	// survive independently of fg/bg changes.
	boldBit    Attr = 0x0100
	reverseBit Attr = 0x0200
)

// Default is the attribute an unstyled stream starts with: light gray on
// black, matching the default Windows console palette.
const Default Attr = 7

// FG and BG extract the foreground/background nibble.
func (a Attr) FG() int { return int(a & fgMask) }
func (a Attr) BG() int { return int((a & bgMask) >> bgShift) }
func (a Attr) Bold() bool    { return a&boldBit != 0 }
func (a Attr) Reverse() bool { return a&reverseBit != 0 }

func withFG(a Attr, fg int) Attr {
	return (a &^ fgMask) | Attr(fg&0xF)
}

func withBG(a Attr, bg int) Attr {
	return (a &^ bgMask) | Attr((bg&0xF)<<bgShift)
}

// ParseCSIParams splits a CSI parameter string on ';' and parses each run of
// digits into an int; an empty field (including the whole string) yields a
// single 0, matching the "ESC[m" == "ESC[0m" convention. Malformed fields
// parse as 0 rather than erroring — the layout engine must never fail on
// malformed input, it just ignores what it can't use.
func ParseCSIParams(params string) []int {
	if params == "" {
		return []int{0}
	}
	parts := strings.Split(params, ";")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			out = append(out, 0)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			out = append(out, 0)
			continue
		}
		out = append(out, n)
	}
	return out
}

// FoldSGR applies a parsed SGR (Select Graphic Rendition) parameter list to
// a running attribute. Parameters this console dialect doesn't represent
// (italic, underline, blink, 24-bit RGB, strikethrough) are consumed and
// ignored rather than rejected, so a CSI sequence the input stream emits
// for a richer terminal never corrupts color state here.
func FoldSGR(prev Attr, params []int) Attr {
	a := prev
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			a = Default
		case p == 1:
			a |= boldBit
		case p == 22:
			a &^= boldBit
		case p == 7:
			a |= reverseBit
		case p == 27:
			a &^= reverseBit
		case p >= 30 && p <= 37:
			a = withFG(a, p-30)
		case p == 39:
			a = withFG(a, Default.FG())
		case p >= 40 && p <= 47:
			a = withBG(a, p-40)
		case p == 49:
			a = withBG(a, Default.BG())
		case p >= 90 && p <= 97:
			a = withFG(a, p-90+8)
		case p >= 100 && p <= 107:
			a = withBG(a, p-100+8)
		case p == 38 || p == 48:
			// Extended color: "38;5;N" (256-color) or "38;2;R;G;B" (RGB).
			// Neither maps cleanly onto a 4-bit nibble; skip the whole
			// clause rather than misinterpret trailing params as unrelated
			// SGR codes.
			if i+1 < len(params) {
				switch params[i+1] {
				case 5:
					i += 2 // palette index
				case 2:
					i += 4 // R, G, B
				default:
					i++
				}
			}
		default:
			// Italic (3), underline (4), blink (5/6), conceal (8),
			// strikethrough (9) and their "not-X" counterparts: no
			// representable bit, ignored.
		}
	}
	return a
}

// ScanTrailingColor replays every complete CSI SGR escape in text starting
// from start, returning the color state in effect after the last character.
// It has no cell budget and no match-overlay concept — it exists only to
// thread initial_color from one physical line to the next during ingest,
// before any viewport exists to bound the walk. Non-SGR CSI sequences and
// incomplete trailing escapes are skipped without affecting the result,
// matching the VT layout engine's own tolerance for malformed input.
func ScanTrailingColor(start Attr, text string) Attr {
	a := start
	i := 0
	for i < len(text) {
		if text[i] != 0x1b || i+1 >= len(text) || text[i+1] != '[' {
			i++
			continue
		}
		j := i + 2
		for j < len(text) && (text[j] == ';' || (text[j] >= '0' && text[j] <= '9')) {
			j++
		}
		if j >= len(text) {
			// Incomplete sequence at end of line: matches the layout
			// engine's rule that it is consumed but left unresolved.
			break
		}
		final := text[j]
		if final == 'm' {
			a = FoldSGR(a, ParseCSIParams(text[i+2:j]))
		}
		i = j + 1
	}
	return a
}

// Render produces the minimal SGR escape sequence that transitions the
// display from Default to a. Used when materializing an owned logical-line
// buffer and when painting the viewport.
func Render(a Attr) string {
	if a == Default {
		return "\x1b[0m"
	}
	var b strings.Builder
	b.WriteString("\x1b[0")
	if a.Bold() {
		b.WriteString(";1")
	}
	if a.Reverse() {
		b.WriteString(";7")
	}
	if fg := a.FG(); fg >= 8 {
		fmt.Fprintf(&b, ";%d", 90+fg-8)
	} else {
		fmt.Fprintf(&b, ";%d", 30+fg)
	}
	if bg := a.BG(); bg >= 8 {
		fmt.Fprintf(&b, ";%d", 100+bg-8)
	} else {
		fmt.Fprintf(&b, ";%d", 40+bg)
	}
	b.WriteString("m")
	return b.String()
}
