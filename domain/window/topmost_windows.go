//go:build windows

package window

import (
	"github.com/soocke/game-overlay-go/domain/overlay"
)

// Windows constants for extended window styles and z-order placement.
const (
	_GWL_EXSTYLE       int32 = -20
	_WS_EX_TRANSPARENT int32 = 0x00000020
	_WS_EX_TOOLWINDOW  int32 = 0x00000080
	_WS_EX_LAYERED     int32 = 0x00080000
	_WS_EX_NOACTIVATE  int32 = 0x08000000

	_SWP_NOSIZE     uintptr = 0x0001
	_SWP_NOMOVE     uintptr = 0x0002
	_SWP_NOACTIVATE uintptr = 0x0010
)

// hwndTopmost is (HWND)-1, the insert-after handle for the topmost band.
var hwndTopmost = ^uintptr(0)

var (
	procGetWindowLongW = modUser32.NewProc("GetWindowLongW")
	procSetWindowLongW = modUser32.NewProc("SetWindowLongW")
	procSetWindowPos   = modUser32.NewProc("SetWindowPos")
)

// Enforcer pushes the overlay window into the topmost band and re-asserts
// the click-through extended styles that Tk cannot express itself. The
// toplevel is recreated on every show, so the handle is resolved fresh on
// each call rather than cached.
type Enforcer struct {
	overlayTitle string
}

func NewEnforcer(overlayTitle string) *Enforcer {
	return &Enforcer{overlayTitle: overlayTitle}
}

func (e *Enforcer) Enforce() error {
	hwnd := findWindowByTitle(e.overlayTitle)
	if hwnd == 0 {
		return ErrWindowNotFound
	}

	style, _, _ := procGetWindowLongW.Call(hwnd, uintptr(_GWL_EXSTYLE))
	want := int32(style) | _WS_EX_LAYERED | _WS_EX_TRANSPARENT | _WS_EX_TOOLWINDOW | _WS_EX_NOACTIVATE
	if int32(style) != want {
		procSetWindowLongW.Call(hwnd, uintptr(_GWL_EXSTYLE), uintptr(want))
	}
	if r, _, _ := procSetWindowPos.Call(hwnd, hwndTopmost, 0, 0, 0, 0, _SWP_NOMOVE|_SWP_NOSIZE|_SWP_NOACTIVATE); r == 0 {
		return ErrTopmostDenied
	}
	return nil
}

var _ overlay.TopmostEnforcer = (*Enforcer)(nil)
