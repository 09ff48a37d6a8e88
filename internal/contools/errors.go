// Package contools holds error taxonomy shared by the pager and editor
// cores.
package contools

import "errors"

// Sentinel error kinds. Use errors.Is against these; IO failures keep their
// underlying *os.PathError wrapped with %w rather than being flattened into
// one of these, so callers can still unwrap to the OS error.
var (
	// ErrOutOfMemory is fatal: the event loop clears the status line, prints
	// one message, and exits.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrInputExhausted marks benign ingest EOF.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrReadOnlyTarget means a save was refused before writing because the
	// target file is read-only. Save does not clear the attribute.
	ErrReadOnlyTarget = errors.New("target file is read-only")

	// ErrWindowTooSmall means the terminal is below the 60x20 minimum.
	ErrWindowTooSmall = errors.New("window too small")

	// ErrSearchNotFound means a find/find-next scan reached the end of the
	// buffer without a match.
	ErrSearchNotFound = errors.New("pattern not found")

	// ErrUnrecognizedInput marks an input event the core doesn't understand.
	// Nothing returns it: both the pager and the editor silently ignore
	// events they do not handle.
	ErrUnrecognizedInput = errors.New("unrecognized input")
)
