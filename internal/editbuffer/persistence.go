package editbuffer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conterm/contools/internal/contools"
)

// Load reads path, sniffing a BOM when enc == AutoDetect (falling back to
// UTF-8 when none is present), decoding the remaining bytes via enc's
// golang.org/x/text codec, recording the first detected line-ending style
// for Save, splitting on every CRLF, CR, or LF, and replacing the buffer's
// contents. The modify flag and undo/redo
// stacks are cleared on success.
func (b *Buffer) Load(path string, enc Encoding) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("editbuffer: load %s: %w", path, err)
	}

	writeBOM := false
	if enc == AutoDetect {
		if detected, skip, found := detectBOM(raw); found {
			enc, raw, writeBOM = detected, raw[skip:], true
		} else {
			enc = UTF8
		}
	}

	le := detectLineEnding(raw)

	text := string(raw)
	if dec := decoder(enc); dec != nil {
		decoded, err := dec.NewDecoder().String(string(raw))
		if err != nil {
			return fmt.Errorf("editbuffer: decode %s: %w", path, err)
		}
		text = decoded
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}

	b.Lines = lines
	b.Cursor.Line, b.Cursor.Col = 0, 0
	b.Selection = nil
	b.Modified = false
	b.undo, b.redo = nil, nil
	b.provisionalIndent = nil
	b.path = path
	b.encoding = enc
	b.writeBOM = writeBOM
	b.lineEnding = le
	b.Caption = filepath.Base(path)
	return nil
}

// Save writes the buffer to its loaded path (or path, if non-empty)
// atomically: it builds the full output in memory, writes it to a sibling
// temp file, and replaces the target only once that write succeeds, so a
// failure at any point leaves the existing file untouched (§8 S3). A
// read-only target aborts with contools.ErrReadOnlyTarget before any bytes
// are written.
func (b *Buffer) Save(path string) error {
	if path == "" {
		path = b.path
	}
	if path == "" {
		return fmt.Errorf("editbuffer: save: no path set")
	}

	if info, err := os.Stat(path); err == nil && info.Mode().Perm()&0200 == 0 {
		return contools.ErrReadOnlyTarget
	}

	data, err := b.encodedBytes()
	if err != nil {
		return fmt.Errorf("editbuffer: encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("editbuffer: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("editbuffer: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("editbuffer: close temp file: %w", err)
	}

	if err := atomicReplace(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("editbuffer: replace %s: %w", path, err)
	}

	b.Modified = false
	b.path = path
	return nil
}

// encodedBytes builds the full save payload: optional BOM, every line
// joined by the detected line ending (skipping a provisional auto-indent
// line's content, per §4.7), encoded via b.encoding's codec.
func (b *Buffer) encodedBytes() ([]byte, error) {
	var sb strings.Builder
	sep := string(b.lineEnding.bytes())
	for i, line := range b.Lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		if b.provisionalIndent != nil && *b.provisionalIndent == i {
			continue
		}
		sb.WriteString(line)
	}

	text := sb.String()
	var out []byte
	if dec := decoder(b.encoding); dec != nil {
		encoded, err := dec.NewEncoder().String(text)
		if err != nil {
			return nil, err
		}
		out = []byte(encoded)
	} else {
		out = []byte(text)
	}

	if b.writeBOM {
		var bom []byte
		switch b.encoding {
		case UTF16LE:
			bom = bomUTF16LE
		default:
			bom = bomUTF8
		}
		out = append(append([]byte{}, bom...), out...)
	}
	return out, nil
}
