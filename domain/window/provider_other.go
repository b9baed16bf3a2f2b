//go:build !windows

package window

import "github.com/soocke/game-overlay-go/domain/overlay"

// TitleProvider is a stub on non-Windows platforms. FindWindow always
// fails, which keeps the overlay inactive instead of floating over
// nothing. Use the simulated provider for development runs.
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

func (p *TitleProvider) FindWindow() bool { return false }

func (p *TitleProvider) WindowRect() (overlay.Rect, error) {
	return overlay.Rect{}, ErrUnsupported
}

var _ overlay.WindowProvider = (*TitleProvider)(nil)
