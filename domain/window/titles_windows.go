//go:build windows

package window

import (
	"strings"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	procEnumWindows     = modUser32.NewProc("EnumWindows")
	procGetWindowTextW  = modUser32.NewProc("GetWindowTextW")
	procIsWindowVisible = modUser32.NewProc("IsWindowVisible")
)

// ListTitles returns the titles of visible top-level windows, first
// occurrence wins on duplicates. The provider resolves its target by
// exact title, so a repeated title would be ambiguous anyway.
func ListTitles() ([]string, error) {
	var titles []string
	seen := make(map[string]bool)
	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		if vis, _, _ := procIsWindowVisible.Call(hwnd); vis == 0 {
			return 1 // continue enumeration
		}
		buf := make([]uint16, 256)
		if r, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf))); r == 0 {
			return 1
		}
		title := strings.TrimSpace(windows.UTF16ToString(buf))
		if title == "" || seen[title] {
			return 1
		}
		seen[title] = true
		titles = append(titles, title)
		return 1
	})

	if r, _, callErr := procEnumWindows.Call(cb, 0); r == 0 {
		return nil, callErr
	}
	return titles, nil
}
