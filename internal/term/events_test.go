package term

import "testing"

func TestDecodeEscapeArrowKeys(t *testing.T) {
	cases := map[string]string{
		"\x1b[A": "Up",
		"\x1b[B": "Down",
		"\x1b[C": "Right",
		"\x1b[D": "Left",
		"\x1b[H": "Home",
		"\x1b[F": "End",
	}
	for seq, want := range cases {
		ev, consumed, recognized := decodeEscape([]byte(seq))
		if !recognized || consumed != len(seq) {
			t.Fatalf("%q: recognized=%v consumed=%d, want true/%d", seq, recognized, consumed, len(seq))
		}
		if ev.Key != want {
			t.Fatalf("%q: key = %q, want %q", seq, ev.Key, want)
		}
	}
}

func TestDecodeEscapeTildeKeys(t *testing.T) {
	cases := map[string]string{
		"\x1b[5~": "PgUp",
		"\x1b[6~": "PgDown",
		"\x1b[3~": "Delete",
	}
	for seq, want := range cases {
		ev, consumed, recognized := decodeEscape([]byte(seq))
		if !recognized || consumed != len(seq) || ev.Key != want {
			t.Fatalf("%q: got (%q,%d,%v), want (%q,%d,true)", seq, ev.Key, consumed, recognized, want, len(seq))
		}
	}
}

func TestDecodeEscapeIncompleteWaitsForMore(t *testing.T) {
	_, consumed, recognized := decodeEscape([]byte("\x1b[5"))
	if !recognized || consumed != 0 {
		t.Fatalf("incomplete sequence: got consumed=%d recognized=%v, want 0/true", consumed, recognized)
	}
}

func TestDecodeSGRMousePress(t *testing.T) {
	seq := "\x1b[<0;10;20M"
	ev, consumed, recognized := decodeEscape([]byte(seq))
	if !recognized || consumed != len(seq) {
		t.Fatalf("recognized=%v consumed=%d, want true/%d", recognized, consumed, len(seq))
	}
	if ev.Kind != EventMouse || ev.MouseAction != MousePress {
		t.Fatalf("got kind=%v action=%v, want mouse press", ev.Kind, ev.MouseAction)
	}
	if ev.MouseX != 9 || ev.MouseY != 19 {
		t.Fatalf("got (%d,%d), want (9,19) — SGR coords are 1-based", ev.MouseX, ev.MouseY)
	}
	if ev.MouseButton != MouseLeft {
		t.Fatalf("button 0: got %v, want MouseLeft", ev.MouseButton)
	}
}

func TestDecodeSGRMouseRightButton(t *testing.T) {
	ev, _, recognized := decodeEscape([]byte("\x1b[<2;10;20M"))
	if !recognized || ev.MouseButton != MouseRight {
		t.Fatalf("got recognized=%v button=%v, want true/MouseRight", recognized, ev.MouseButton)
	}
}

func TestDecodeSGRMouseRelease(t *testing.T) {
	ev, _, recognized := decodeEscape([]byte("\x1b[<0;1;1m"))
	if !recognized || ev.MouseAction != MouseRelease {
		t.Fatalf("got action=%v, want release", ev.MouseAction)
	}
}

func TestDecodeSGRMouseWheel(t *testing.T) {
	ev, _, _ := decodeEscape([]byte("\x1b[<64;5;5M"))
	if ev.MouseAction != MouseWheelUp {
		t.Fatalf("button 64: got %v, want MouseWheelUp", ev.MouseAction)
	}
	ev, _, _ = decodeEscape([]byte("\x1b[<65;5;5M"))
	if ev.MouseAction != MouseWheelDown {
		t.Fatalf("button 65: got %v, want MouseWheelDown", ev.MouseAction)
	}
}

func TestDecodeRuneByteIncomplete(t *testing.T) {
	// 0xE2 begins a 3-byte UTF-8 sequence; with only one byte present the
	// decoder must wait rather than emitting U+FFFD.
	_, size := decodeRuneByte([]byte{0xE2})
	if size != 0 {
		t.Fatalf("size = %d, want 0 (incomplete rune)", size)
	}
}

func TestDecodeRuneByteComplete(t *testing.T) {
	r, size := decodeRuneByte([]byte("中"))
	if r != '中' || size != 3 {
		t.Fatalf("got (%q,%d), want ('中',3)", r, size)
	}
}
