package editbuffer

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPlainUTF8(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree"), 0644); err != nil {
		t.Fatal(err)
	}

	b := New(4)
	if err := b.Load(path, AutoDetect); err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) != 3 || b.Lines[0] != "one" || b.Lines[2] != "three" {
		t.Fatalf("Lines = %v", b.Lines)
	}
	if b.Modified {
		t.Fatal("Modified should be false right after Load")
	}
	if b.writeBOM {
		t.Fatal("writeBOM should be false for a BOM-less file")
	}
	if b.lineEnding != lineEndingLF {
		t.Fatalf("lineEnding = %v, want LF", b.lineEnding)
	}
}

// TestLoadBOMDetect is §8 S4: a UTF-8 BOM followed by "hi\n" loads as one
// line "hi", sets the write-BOM flag, and detects LF.
func TestLoadBOMDetect(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.txt")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("hi\n")...)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	b := New(4)
	if err := b.Load(path, AutoDetect); err != nil {
		t.Fatal(err)
	}
	if len(b.Lines) != 2 || b.Lines[0] != "hi" {
		t.Fatalf("Lines = %v, want first line %q", b.Lines, "hi")
	}
	if b.encoding != UTF8 {
		t.Fatalf("encoding = %v, want UTF8", b.encoding)
	}
	if !b.writeBOM {
		t.Fatal("writeBOM should be true after detecting a BOM")
	}
	if b.lineEnding != lineEndingLF {
		t.Fatalf("lineEnding = %v, want LF", b.lineEnding)
	}
}

func TestLoadCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.txt")
	if err := os.WriteFile(path, []byte("a\r\nb\r\n"), 0644); err != nil {
		t.Fatal(err)
	}
	b := New(4)
	if err := b.Load(path, AutoDetect); err != nil {
		t.Fatal(err)
	}
	if b.lineEnding != lineEndingCRLF {
		t.Fatalf("lineEnding = %v, want CRLF", b.lineEnding)
	}
}

// TestSaveRoundTrip is §8 property 6: load, make no edits, save, and the
// bytes come back unchanged.
func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roundtrip.txt")
	original := []byte("alpha\r\nbeta\r\ngamma")
	if err := os.WriteFile(path, original, 0644); err != nil {
		t.Fatal(err)
	}

	b := New(4)
	if err := b.Load(path, AutoDetect); err != nil {
		t.Fatal(err)
	}
	if err := b.Save(""); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(original) {
		t.Fatalf("round-trip bytes = %q, want %q", got, original)
	}
	if b.Modified {
		t.Fatal("Modified should be false after a successful Save")
	}
}

// TestSaveReadOnlyAborts is §8 S3's read-only half: Save refuses to touch a
// read-only target and leaves its contents untouched.
func TestSaveReadOnlyAborts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readonly.txt")
	if err := os.WriteFile(path, []byte("old"), 0444); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(path, 0644)

	b := New(4)
	b.Lines = []string{"new"}
	b.path = path
	if err := b.Save(""); err == nil {
		t.Fatal("Save should fail against a read-only target")
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "old" {
		t.Fatalf("file contents = %q, want unchanged %q", got, "old")
	}
}

func TestSaveSkipsProvisionalIndent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "indent.txt")

	b := New(4)
	b.Lines = []string{"a", "  "}
	b.lineEnding = lineEndingLF
	line := 1
	b.provisionalIndent = &line
	b.path = path
	if err := b.Save(""); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a\n" {
		t.Fatalf("saved bytes = %q, want %q (provisional indent line blanked)", got, "a\n")
	}
}
