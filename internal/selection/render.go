package selection

import (
	"fmt"
	"html"
	"strings"

	"github.com/conterm/contools/internal/vtcolor"
)

// run is a maximal substring of a Span's text painted in one attribute.
type run struct {
	attr vtcolor.Attr
	text string
}

// runsOf folds embedded SGR escapes in text into a sequence of
// single-attribute runs, starting from initial. Used by every
// non-VT export format, which all need to know where a color changes
// within a row rather than just its starting color.
func runsOf(initial vtcolor.Attr, text string) []run {
	var runs []run
	attr := initial
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			runs = append(runs, run{attr: attr, text: cur.String()})
			cur.Reset()
		}
	}

	i := 0
	for i < len(text) {
		if text[i] == 0x1b && i+1 < len(text) && text[i+1] == '[' {
			j := i + 2
			for j < len(text) && (text[j] == ';' || (text[j] >= '0' && text[j] <= '9')) {
				j++
			}
			if j >= len(text) {
				break
			}
			if text[j] == 'm' {
				flush()
				attr = vtcolor.FoldSGR(attr, vtcolor.ParseCSIParams(text[i+2:j]))
			}
			i = j + 1
			continue
		}
		cur.WriteByte(text[i])
		i++
	}
	flush()
	return runs
}

// VT renders the selection as-is: each span's initial color plus its text
// plus a reset, one per line.
func (s Spans) VT() string {
	var b strings.Builder
	for i, span := range s {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString(vtcolor.Render(span.InitialColor))
		b.WriteString(span.Text)
		b.WriteString("\x1b[0m")
	}
	return b.String()
}

// Plain strips every VT escape, joining rows with the Windows-console
// clipboard convention "\r\n" and trimming the trailing newline.
func (s Spans) Plain() string {
	var b strings.Builder
	for i, span := range s {
		if i > 0 {
			b.WriteString("\r\n")
		}
		for _, r := range runsOf(span.InitialColor, span.Text) {
			b.WriteString(r.text)
		}
	}
	return strings.TrimRight(b.String(), "\r\n")
}

// RTF renders the selection as a minimal RTF document with a color table
// built from palette, one \cf/\highlight pair per run.
func (s Spans) RTF(palette Palette) string {
	var b strings.Builder
	b.WriteString(`{\rtf1\ansi\deff0{\fonttbl{\f0\fmodern Courier New;}}`)
	b.WriteString(`{\colortbl;`)
	for _, c := range palette {
		fmt.Fprintf(&b, `\red%d\green%d\blue%d;`, c.R, c.G, c.B)
	}
	b.WriteString(`}`)
	b.WriteString(`\f0\fs20 `)

	for i, span := range s {
		if i > 0 {
			b.WriteString(`\line `)
		}
		for _, r := range runsOf(span.InitialColor, span.Text) {
			fg := paletteIndex(palette, palette.fg(r.attr)) + 1
			bg := paletteIndex(palette, palette.bg(r.attr)) + 1
			fmt.Fprintf(&b, `\cf%d\highlight%d `, fg, bg)
			b.WriteString(rtfEscape(r.text))
		}
	}
	b.WriteString(`}`)
	return b.String()
}

func paletteIndex(p Palette, c RGB) int {
	for i, v := range p {
		if v == c {
			return i
		}
	}
	return 0
}

func rtfEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `{`, `\{`)
	s = strings.ReplaceAll(s, `}`, `\}`)
	return s
}

// HTML renders the selection as a <pre> block, one <span> per color run
// and a <br> between rows.
func (s Spans) HTML(palette Palette) string {
	var b strings.Builder
	b.WriteString(`<pre style="font-family:monospace">`)
	for i, span := range s {
		if i > 0 {
			b.WriteString("<br>")
		}
		for _, r := range runsOf(span.InitialColor, span.Text) {
			fg := palette.fg(r.attr)
			bg := palette.bg(r.attr)
			fmt.Fprintf(&b, `<span style="color:#%02x%02x%02x;background:#%02x%02x%02x">%s</span>`,
				fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, html.EscapeString(r.text))
		}
	}
	b.WriteString(`</pre>`)
	return b.String()
}
