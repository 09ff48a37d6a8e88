//go:build windows
// +build windows

package selection

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	cfText = 1 // CF_TEXT
)

// CopyRich writes plain text, RTF, and HTML representations of the
// selection to the clipboard simultaneously, so a paste target picks
// whichever format it understands best. Non-Windows builds only ever get
// the plain-text Copy from clipboard.go — there is no portable clipboard
// format registry for RTF/HTML outside Win32's RegisterClipboardFormat,
// and the example pack carries no cross-platform library that fills that
// gap, so this capability is necessarily platform-specific.
func (s Spans) CopyRich(palette Palette) error {
	if err := windows.OpenClipboard(0); err != nil {
		return fmt.Errorf("selection: open clipboard: %w", err)
	}
	defer windows.CloseClipboard()

	if err := windows.EmptyClipboard(); err != nil {
		return fmt.Errorf("selection: empty clipboard: %w", err)
	}

	if err := setClipboardText(cfText, s.Plain()); err != nil {
		return err
	}

	if rtfFmt, err := registerFormat("Rich Text Format"); err == nil {
		_ = setClipboardText(rtfFmt, s.RTF(palette))
	}
	if htmlFmt, err := registerFormat("HTML Format"); err == nil {
		_ = setClipboardText(htmlFmt, htmlClipboardFragment(s.HTML(palette)))
	}

	return nil
}

func registerFormat(name string) (uint32, error) {
	ptr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}
	fmtID, err := windows.RegisterClipboardFormat(ptr)
	if err != nil {
		return 0, err
	}
	return fmtID, nil
}

// setClipboardText allocates a moveable global memory block holding text
// as a NUL-terminated byte string and hands ownership to the clipboard via
// SetClipboardData, per the standard Win32 clipboard-writer contract.
func setClipboardText(format uint32, text string) error {
	data := append([]byte(text), 0)
	h, err := windows.GlobalAlloc(windows.GMEM_MOVEABLE, uint32(len(data)))
	if err != nil {
		return fmt.Errorf("selection: global alloc: %w", err)
	}
	ptr, err := windows.GlobalLock(h)
	if err != nil {
		windows.GlobalFree(h)
		return fmt.Errorf("selection: global lock: %w", err)
	}
	dst := unsafe.Slice((*byte)(ptr), len(data))
	copy(dst, data)
	windows.GlobalUnlock(h)

	if _, err := windows.SetClipboardData(format, windows.Handle(h)); err != nil {
		windows.GlobalFree(h)
		return fmt.Errorf("selection: set clipboard data: %w", err)
	}
	return nil
}

// htmlClipboardFragment wraps an HTML string in the CF_HTML header Windows
// requires (byte offsets to the fragment boundaries).
func htmlClipboardFragment(body string) string {
	const tmpl = "Version:0.9\r\nStartHTML:%08d\r\nEndHTML:%08d\r\nStartFragment:%08d\r\nEndFragment:%08d\r\n<html><body><!--StartFragment-->%s<!--EndFragment--></body></html>"
	header := fmt.Sprintf(tmpl, 0, 0, 0, 0, body)
	startHTML := len(header) - len("<html><body><!--StartFragment-->"+body+"<!--EndFragment--></body></html>")
	startFragment := startHTML + len("<html><body><!--StartFragment-->")
	endFragment := startFragment + len(body)
	endHTML := endFragment + len("<!--EndFragment--></body></html>")
	return fmt.Sprintf(tmpl, startHTML, endHTML, startFragment, endFragment, body)
}
