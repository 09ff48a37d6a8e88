package selection

import "github.com/conterm/contools/internal/vtcolor"

// RGB is one palette entry.
type RGB struct{ R, G, B uint8 }

// Palette maps the 16 console color indices (0-7 normal, 8-15 bright via
// the bold bit) to RGB, for RTF/HTML export.
type Palette [16]RGB

// DefaultPalette is the standard 16-color Windows console palette.
func DefaultPalette() Palette {
	return Palette{
		{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
		{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xC0, 0xC0, 0xC0},
		{0x80, 0x80, 0x80}, {0xFF, 0x00, 0x00}, {0x00, 0xFF, 0x00}, {0xFF, 0xFF, 0x00},
		{0x00, 0x00, 0xFF}, {0xFF, 0x00, 0xFF}, {0x00, 0xFF, 0xFF}, {0xFF, 0xFF, 0xFF},
	}
}

func (p Palette) fg(a vtcolor.Attr) RGB {
	idx := a.FG()
	if a.Bold() {
		idx += 8
	}
	return p[idx&0xF]
}

func (p Palette) bg(a vtcolor.Attr) RGB {
	return p[a.BG()&0xF]
}
