package presenter

import (
	"image"
	"time"

	"github.com/soocke/game-overlay-go/domain/overlay"
)

// previewDivider refreshes the preview every Nth UI tick.
const previewDivider = 5

// PreviewSource exposes the overlay geometry the preview mirrors.
type PreviewSource interface {
	Active() bool
	KnownRect() (overlay.Rect, bool)
}

// PreviewView receives the rendered frame.
type PreviewView interface {
	UpdatePreview(img image.Image)
}

// PreviewPresenter re-renders the marker canvas into the control window
// preview while the overlay is live.
type PreviewPresenter struct {
	src    PreviewSource
	view   PreviewView
	render func(w, h int) image.Image
	ticks  int
}

func NewPreviewPresenter(src PreviewSource, view PreviewView, render func(w, h int) image.Image) *PreviewPresenter {
	return &PreviewPresenter{src: src, view: view, render: render}
}

func (p *PreviewPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.view == nil || p.render == nil {
		return
	}
	p.ticks++
	if p.ticks%previewDivider != 0 {
		return
	}
	if !p.src.Active() {
		return
	}
	rect, ok := p.src.KnownRect()
	if !ok {
		return
	}
	frame := p.render(rect.Width, rect.Height)
	if frame != nil {
		p.view.UpdatePreview(frame)
	}
}
