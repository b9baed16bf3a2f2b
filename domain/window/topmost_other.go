//go:build !windows

package window

import "github.com/soocke/game-overlay-go/domain/overlay"

// Enforcer is a no-op on non-Windows platforms. The Tk topmost attribute
// set by the surface is all the enforcement available there.
type Enforcer struct {
	overlayTitle string
}

func NewEnforcer(overlayTitle string) *Enforcer {
	return &Enforcer{overlayTitle: overlayTitle}
}

func (e *Enforcer) Enforce() error { return nil }

var _ overlay.TopmostEnforcer = (*Enforcer)(nil)
