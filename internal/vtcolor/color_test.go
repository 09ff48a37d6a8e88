package vtcolor

import "testing"

func TestFoldSGRNeverPanics(t *testing.T) {
	cases := [][]int{
		nil,
		{},
		{0},
		{-5},
		{999},
		{38, 5, 200},
		{38, 2, 1, 2, 3},
		{48},
		{1, 31, 44, 7, 0},
	}
	for _, params := range cases {
		_ = FoldSGR(Default, params)
	}
}

func TestFoldSGRBasic(t *testing.T) {
	a := FoldSGR(Default, ParseCSIParams("31;44"))
	if a.FG() != 1 {
		t.Fatalf("fg = %d, want 1", a.FG())
	}
	if a.BG() != 4 {
		t.Fatalf("bg = %d, want 4", a.BG())
	}

	a = FoldSGR(a, ParseCSIParams("0"))
	if a != Default {
		t.Fatalf("reset = %v, want Default", a)
	}
}

func TestParseCSIParamsEmpty(t *testing.T) {
	got := ParseCSIParams("")
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("ParseCSIParams(\"\") = %v, want [0]", got)
	}
}

func TestBoldReversePreservedAcrossColorChange(t *testing.T) {
	a := FoldSGR(Default, ParseCSIParams("1;7"))
	a = FoldSGR(a, ParseCSIParams("32"))
	if !a.Bold() || !a.Reverse() {
		t.Fatalf("bold/reverse lost across fg change: %v", a)
	}
}

func TestRenderBrightColorsUseNinetyRange(t *testing.T) {
	a := FoldSGR(Default, ParseCSIParams("92;103"))
	got := Render(a)
	want := "\x1b[0;92;103m"
	if got != want {
		t.Fatalf("Render(bright fg/bg) = %q, want %q", got, want)
	}
}

func TestRenderNonBrightColorsUseThirtyRange(t *testing.T) {
	a := FoldSGR(Default, ParseCSIParams("31;44"))
	got := Render(a)
	want := "\x1b[0;31;44m"
	if got != want {
		t.Fatalf("Render(fg/bg) = %q, want %q", got, want)
	}
}
