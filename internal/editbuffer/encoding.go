package editbuffer

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the buffer's on-disk text encoding. It is a Go enum, not a
// magic sentinel value reused from another range — per the Design Notes,
// AutoDetect gets its own named member rather than, say, -1.
type Encoding int

const (
	AutoDetect Encoding = iota
	UTF8
	UTF16LE
	ANSI  // Windows-1252
	ASCII // 7-bit; decodes/encodes identically to UTF8 for this buffer's purposes
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// lineEnding is the line-break style detected on Load and reproduced on
// Save.
type lineEnding int

const (
	lineEndingLF lineEnding = iota
	lineEndingCRLF
	lineEndingCR
)

func (le lineEnding) bytes() []byte {
	switch le {
	case lineEndingCRLF:
		return []byte("\r\n")
	case lineEndingCR:
		return []byte("\r")
	default:
		return []byte("\n")
	}
}

// detectBOM inspects the leading bytes of data, returning the encoding it
// implies and the number of bytes to strip. No BOM is not an error — it
// just means the AutoDetect caller should fall back to UTF-8.
func detectBOM(data []byte) (enc Encoding, skip int, found bool) {
	if bytes.HasPrefix(data, bomUTF8) {
		return UTF8, len(bomUTF8), true
	}
	if bytes.HasPrefix(data, bomUTF16LE) {
		return UTF16LE, len(bomUTF16LE), true
	}
	return AutoDetect, 0, false
}

// detectLineEnding returns the style of the first line break found in data,
// defaulting to LF if none is present (a single-line file).
func detectLineEnding(data []byte) lineEnding {
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				return lineEndingCRLF
			}
			return lineEndingCR
		case '\n':
			return lineEndingLF
		}
	}
	return lineEndingLF
}

// decoder returns the golang.org/x/text encoding.Encoding for enc, or nil
// for UTF8/ASCII/AutoDetect, which need no transcoding — Go source text is
// already UTF-8.
func decoder(enc Encoding) encoding.Encoding {
	switch enc {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case ANSI:
		return charmap.Windows1252
	default:
		return nil
	}
}
