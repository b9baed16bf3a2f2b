package window

import (
	"image"

	"github.com/soocke/game-overlay-go/domain/overlay"
)

// SimProvider fakes a tracked window drifting inside the desktop bounds.
// It backs demo and development runs where no real target exists. The
// walk is deterministic: it depends only on the number of queries made.
type SimProvider struct {
	bounds image.Rectangle
	rect   overlay.Rect
	dx, dy int
	misses int
}

func NewSimProvider(bounds image.Rectangle) *SimProvider {
	if bounds.Empty() {
		bounds = fallbackBounds
	}
	w := bounds.Dx() / 2
	h := bounds.Dy() / 2
	return &SimProvider{
		bounds: bounds,
		rect: overlay.Rect{
			X:      bounds.Min.X + w/2,
			Y:      bounds.Min.Y + h/2,
			Width:  w,
			Height: h,
		},
		dx: 4,
		dy: 3,
	}
}

// MissNext makes the following n rect queries fail, simulating a target
// that briefly disappears.
func (s *SimProvider) MissNext(n int) { s.misses = n }

func (s *SimProvider) FindWindow() bool { return true }

func (s *SimProvider) WindowRect() (overlay.Rect, error) {
	if s.misses > 0 {
		s.misses--
		return overlay.Rect{}, ErrWindowNotFound
	}
	s.advance()
	return s.rect, nil
}

// advance walks the rectangle one step, bouncing off the desktop edges.
func (s *SimProvider) advance() {
	s.rect.X += s.dx
	s.rect.Y += s.dy
	if s.rect.X <= s.bounds.Min.X || s.rect.X+s.rect.Width >= s.bounds.Max.X {
		s.dx = -s.dx
		s.rect.X += 2 * s.dx
	}
	if s.rect.Y <= s.bounds.Min.Y || s.rect.Y+s.rect.Height >= s.bounds.Max.Y {
		s.dy = -s.dy
		s.rect.Y += 2 * s.dy
	}
}

var _ overlay.WindowProvider = (*SimProvider)(nil)
