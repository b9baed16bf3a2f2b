//go:build windows

package window

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/soocke/game-overlay-go/domain/overlay"
)

var (
	modUser32         = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW   = modUser32.NewProc("FindWindowW")
	procIsIconic      = modUser32.NewProc("IsIconic")
	procGetWindowRect = modUser32.NewProc("GetWindowRect")
)

type rect32 struct {
	Left, Top, Right, Bottom int32
}

// TitleProvider resolves the target window by its exact title.
// Windows implementation using the Win32 API. No handle is cached: if
// the game restarts under the same title, the next query picks up the
// new window. The title field is owned by the UI thread.
type TitleProvider struct {
	title string
}

func NewTitleProvider(title string) *TitleProvider {
	return &TitleProvider{title: title}
}

// Title returns the tracked window title.
func (p *TitleProvider) Title() string { return p.title }

// SetTitle retargets the provider to another window title.
func (p *TitleProvider) SetTitle(title string) { p.title = title }

// FindWindow reports whether a window with the configured title exists.
func (p *TitleProvider) FindWindow() bool {
	return findWindowByTitle(p.title) != 0
}

// WindowRect returns the target's screen rectangle. A minimized window
// counts as a miss: its reported geometry is an off-screen placeholder.
func (p *TitleProvider) WindowRect() (overlay.Rect, error) {
	hwnd := findWindowByTitle(p.title)
	if hwnd == 0 {
		return overlay.Rect{}, ErrWindowNotFound
	}
	if r, _, _ := procIsIconic.Call(hwnd); r != 0 {
		return overlay.Rect{}, ErrWindowMinimized
	}
	var rc rect32
	if r, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rc))); r == 0 {
		return overlay.Rect{}, ErrRectQueryFailed
	}
	w := int(rc.Right - rc.Left)
	h := int(rc.Bottom - rc.Top)
	if w <= 0 || h <= 0 {
		return overlay.Rect{}, ErrRectQueryFailed
	}
	return overlay.Rect{X: int(rc.Left), Y: int(rc.Top), Width: w, Height: h}, nil
}

func findWindowByTitle(title string) uintptr {
	p, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(p)))
	return hwnd
}

var _ overlay.WindowProvider = (*TitleProvider)(nil)
