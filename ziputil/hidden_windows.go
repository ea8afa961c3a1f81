//go:build windows

package ziputil

import (
	"golang.org/x/sys/windows"
)

// isHidden reports whether the entry at path carries the hidden attribute.
func isHidden(path string) (bool, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false, err
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return false, err
	}
	return attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0, nil
}
