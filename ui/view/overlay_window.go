package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/game-overlay-go/domain/overlay"
	"github.com/soocke/game-overlay-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// OverlayWindow is the click-through marker surface: a key-colored Tk
// toplevel holding a single label with the rasterized marker canvas.
// Pixels painted in the key color become holes, so only marker strokes
// sit over the game. The toplevel is destroyed on hide and rebuilt on
// show so no stale native window lingers while inactive.
type OverlayWindow struct {
	logger *slog.Logger
	title  string
	render func(w, h int) image.Image

	win       *ToplevelWidget
	canvas    *LabelWidget
	prevPhoto *Img // last Tk photo instance, disposed before each swap
	rect      overlay.Rect
}

// NewOverlayWindow creates the surface. render is invoked on every
// repaint with the current surface size and must return a finished frame.
func NewOverlayWindow(title string, render func(w, h int) image.Image, logger *slog.Logger) *OverlayWindow {
	return &OverlayWindow{logger: logger, title: title, render: render}
}

func (v *OverlayWindow) Show() {
	if v == nil || v.win != nil {
		return
	}
	win := App.Toplevel(Background(images.KeyColorHex))
	win.WmTitle(v.title)
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmAttributes(win.Window, "-transparentcolor", images.KeyColorHex)
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	v.win = win
	v.canvas = win.Label(Background(images.KeyColorHex), Borderwidth(0))
	Grid(v.canvas, Row(0), Column(0), Sticky("nsew"))
	if !v.rect.Empty() {
		v.applyGeometry(v.rect)
	}
	v.Repaint()
}

func (v *OverlayWindow) Hide() {
	if v == nil || v.win == nil {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
		v.prevPhoto = nil
	}
	Destroy(v.win)
	v.win = nil
	v.canvas = nil
}

func (v *OverlayWindow) Visible() bool { return v != nil && v.win != nil }

// SetGeometry remembers the rectangle and applies it when the window is
// up. The remembered value seeds the next Show.
func (v *OverlayWindow) SetGeometry(r overlay.Rect) {
	if v == nil {
		return
	}
	v.rect = r
	if v.win != nil {
		v.applyGeometry(r)
	}
}

func (v *OverlayWindow) applyGeometry(r overlay.Rect) {
	WmGeometry(v.win.Window, fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y))
}

func (v *OverlayWindow) RaiseToTop() {
	if v == nil || v.win == nil {
		return
	}
	WmAttributes(v.win.Window, "-topmost", 1)
}

// Repaint re-renders the marker canvas into the label. A no-op while
// hidden; degenerate geometry falls back to a 1x1 frame.
func (v *OverlayWindow) Repaint() {
	if v == nil || v.win == nil || v.canvas == nil || v.render == nil {
		return
	}
	w, h := v.rect.Width, v.rect.Height
	if w < 1 || h < 1 {
		w, h = 1, 1
	}
	frame := v.render(w, h)
	if frame == nil {
		return
	}
	pngBytes := images.EncodePNG(frame)
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.canvas.Configure(Image(photo))
}

var _ overlay.Surface = (*OverlayWindow)(nil)
