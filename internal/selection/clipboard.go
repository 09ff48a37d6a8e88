package selection

import "github.com/atotto/clipboard"

// Copy writes the selection's plain-text representation to the system
// clipboard, grounded on internal/ui/components/vterm.go's CopySelection
// (same atotto/clipboard.WriteAll call, generalized from a single flat
// string to a Spans export that also has RTF/HTML forms available to
// callers on platforms that support richer clipboard formats).
func (s Spans) Copy() error {
	return clipboard.WriteAll(s.Plain())
}

// Paste reads plain text from the system clipboard.
func Paste() (string, error) {
	return clipboard.ReadAll()
}
