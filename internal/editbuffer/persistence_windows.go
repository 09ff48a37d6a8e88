//go:build windows

package editbuffer

import "golang.org/x/sys/windows"

// atomicReplace uses MoveFileEx with MOVEFILE_REPLACE_EXISTING, the
// platform atomic-replace operation §4.7 calls for in preference to a
// plain rename-with-replace fallback on Windows.
func atomicReplace(tmpPath, targetPath string) error {
	from, err := windows.UTF16PtrFromString(tmpPath)
	if err != nil {
		return err
	}
	to, err := windows.UTF16PtrFromString(targetPath)
	if err != nil {
		return err
	}
	return windows.MoveFileEx(from, to, windows.MOVEFILE_REPLACE_EXISTING)
}
