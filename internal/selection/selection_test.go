package selection

import (
	"strings"
	"testing"

	"github.com/conterm/contools/internal/linestore"
	"github.com/conterm/contools/internal/vtcolor"
	"github.com/conterm/contools/internal/viewport"
)

func TestRectNormalize(t *testing.T) {
	r := Rect{Top: 5, Left: 10, Bottom: 1, Right: 2}.Normalize()
	if r.Top != 1 || r.Bottom != 5 || r.Left != 2 || r.Right != 10 {
		t.Fatalf("Normalize() = %+v", r)
	}

	single := Rect{Top: 3, Bottom: 3, Left: 8, Right: 2}.Normalize()
	if single.Left != 2 || single.Right != 8 {
		t.Fatalf("single-row Normalize() = %+v", single)
	}

	already := Rect{Top: 1, Bottom: 2, Left: 0, Right: 5}
	if already.Normalize() != already {
		t.Fatalf("already-normal rect should be unchanged, got %+v", already.Normalize())
	}
}

func fillViewport(t *testing.T, rows int, width int, lineText string) *viewport.Viewport {
	t.Helper()
	store := linestore.New()
	for i := 0; i < rows; i++ {
		store.Append(lineText, vtcolor.ScanTrailingColor)
	}
	v, err := viewport.New(width, viewport.MinHeight)
	if err != nil {
		t.Fatal(err)
	}
	v.AddNewLinesToViewport(store, nil)
	return v
}

func TestExportSingleRowCarvesColumnRange(t *testing.T) {
	v := fillViewport(t, 5, viewport.MinWidth, "0123456789abcdefghij")
	spans := Export(v, Rect{Top: 0, Bottom: 0, Left: 2, Right: 5}, nil)
	if len(spans) != 1 {
		t.Fatalf("len(spans) = %d, want 1", len(spans))
	}
	if spans[0].Text != "2345" {
		t.Fatalf("Text = %q, want %q", spans[0].Text, "2345")
	}
}

func TestExportMultiRowFirstAndLastClipped(t *testing.T) {
	v := fillViewport(t, 5, viewport.MinWidth, "abcdefghij")
	spans := Export(v, Rect{Top: 0, Left: 5, Bottom: 2, Right: 3}, nil)
	if len(spans) != 3 {
		t.Fatalf("len(spans) = %d, want 3", len(spans))
	}
	if spans[0].Text != "fghij" {
		t.Fatalf("first row Text = %q, want %q (from column 5 to end)", spans[0].Text, "fghij")
	}
	if spans[1].Text != "abcdefghij" {
		t.Fatalf("middle row Text = %q, want full row", spans[1].Text)
	}
	if spans[2].Text != "abcd" {
		t.Fatalf("last row Text = %q, want %q (up to column 3)", spans[2].Text, "abcd")
	}
}

func TestExportOutOfRangeRowsSkipped(t *testing.T) {
	v := fillViewport(t, 3, viewport.MinWidth, "line")
	spans := Export(v, Rect{Top: -1, Left: 0, Bottom: 100, Right: 3}, nil)
	if len(spans) != len(v.Display) {
		t.Fatalf("len(spans) = %d, want %d (clamped to on-screen rows)", len(spans), len(v.Display))
	}
}

func TestRunsOfFoldsSGRIntoRuns(t *testing.T) {
	text := "red\x1b[32mgreen\x1b[0mplain"
	runs := runsOf(vtcolor.Default, text)
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3: %+v", len(runs), runs)
	}
	if runs[0].text != "red" || runs[1].text != "green" || runs[2].text != "plain" {
		t.Fatalf("run texts = %q, %q, %q", runs[0].text, runs[1].text, runs[2].text)
	}
	if runs[0].attr != vtcolor.Default {
		t.Fatalf("first run attr = %v, want the initial attr unchanged", runs[0].attr)
	}
	if runs[1].attr == runs[0].attr {
		t.Fatal("green run should have a different attr than the red run")
	}
}

func TestRunsOfNoEscapesIsOneRun(t *testing.T) {
	runs := runsOf(vtcolor.Default, "no escapes here")
	if len(runs) != 1 || runs[0].text != "no escapes here" {
		t.Fatalf("runs = %+v", runs)
	}
}

func TestPlainStripsEscapesAndTrimsTrailingNewline(t *testing.T) {
	spans := Spans{
		{Text: "\x1b[31mone\x1b[0m", InitialColor: vtcolor.Default},
		{Text: "two", InitialColor: vtcolor.Default},
	}
	got := spans.Plain()
	if got != "one\r\ntwo" {
		t.Fatalf("Plain() = %q, want %q", got, "one\r\ntwo")
	}
}

func TestVTRendersInitialColorAndReset(t *testing.T) {
	spans := Spans{{Text: "hi", InitialColor: vtcolor.Default}}
	got := spans.VT()
	if !strings.Contains(got, "hi") || !strings.HasSuffix(got, "\x1b[0m") {
		t.Fatalf("VT() = %q", got)
	}
}

func TestRTFContainsColorTableAndEscapedBraces(t *testing.T) {
	spans := Spans{{Text: `a{b}c\d`, InitialColor: vtcolor.Default}}
	got := spans.RTF(DefaultPalette())
	if !strings.HasPrefix(got, `{\rtf1`) {
		t.Fatalf("RTF() missing header: %q", got)
	}
	if !strings.Contains(got, `\colortbl`) {
		t.Fatal("RTF() missing color table")
	}
	if !strings.Contains(got, `a\{b\}c\\d`) {
		t.Fatalf("RTF() did not escape braces/backslash: %q", got)
	}
}

func TestHTMLEscapesAndWrapsSpans(t *testing.T) {
	spans := Spans{{Text: "<tag> & stuff", InitialColor: vtcolor.Default}}
	got := spans.HTML(DefaultPalette())
	if !strings.HasPrefix(got, "<pre") || !strings.HasSuffix(got, "</pre>") {
		t.Fatalf("HTML() = %q", got)
	}
	if strings.Contains(got, "<tag>") {
		t.Fatal("HTML() should escape angle brackets in selected text")
	}
	if !strings.Contains(got, "&lt;tag&gt;") {
		t.Fatalf("HTML() = %q, want escaped tag", got)
	}
}

func TestHTMLMultiRowHasBreak(t *testing.T) {
	spans := Spans{
		{Text: "one", InitialColor: vtcolor.Default},
		{Text: "two", InitialColor: vtcolor.Default},
	}
	got := spans.HTML(DefaultPalette())
	if !strings.Contains(got, "<br>") {
		t.Fatalf("HTML() = %q, want a <br> between rows", got)
	}
}

func TestPaletteIndexRoundTrips(t *testing.T) {
	p := DefaultPalette()
	for i, c := range p {
		if got := paletteIndex(p, c); got != i {
			t.Fatalf("paletteIndex(%v) = %d, want %d", c, got, i)
		}
	}
}
