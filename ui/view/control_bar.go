package view

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/game-overlay-go/domain/overlay"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

const (
	controlBarW      = 240
	controlBarH      = 96
	controlBarMargin = 16
)

// ControlBar is a compact always-on-top toolbar docked to the top-right
// screen corner: the overlay master switch, one toggle per detection
// strategy and a one-line status readout. Destroyed on hide and rebuilt
// on show, mirroring the overlay surface lifecycle.
type ControlBar struct {
	logger *slog.Logger
	bounds image.Rectangle

	onToggleOverlay func()
	onStrategy      func(s overlay.Strategy, visible bool)

	win     *ToplevelWidget
	buttons map[overlay.Strategy]*ButtonWidget
	visible map[overlay.Strategy]bool
	status  *LabelWidget
}

func NewControlBar(bounds image.Rectangle, onToggleOverlay func(), onStrategy func(overlay.Strategy, bool), logger *slog.Logger) *ControlBar {
	return &ControlBar{
		logger:          logger,
		bounds:          bounds,
		onToggleOverlay: onToggleOverlay,
		onStrategy:      onStrategy,
	}
}

// Show builds the bar, seeding the toggle marks from the given
// visibility map.
func (v *ControlBar) Show(visible map[overlay.Strategy]bool) {
	if v == nil || v.win != nil {
		return
	}
	v.visible = make(map[overlay.Strategy]bool, len(visible))
	for s, vis := range visible {
		v.visible[s] = vis
	}

	win := App.Toplevel()
	win.WmTitle("Overlay Controls")
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	x := v.bounds.Max.X - controlBarW - controlBarMargin
	y := v.bounds.Min.Y + controlBarMargin
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", controlBarW, controlBarH, x, y))
	v.win = win

	toggle := win.Button(Txt("Show/Hide Overlay"), Command(func() {
		if v.onToggleOverlay != nil {
			v.onToggleOverlay()
		}
	}))
	Grid(toggle, Row(0), Column(0), Columnspan(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	v.buttons = make(map[overlay.Strategy]*ButtonWidget)
	for i, s := range overlay.Strategies() {
		s := s
		btn := win.Button(Txt(v.buttonText(s)), Command(func() { v.toggleStrategy(s) }))
		Grid(btn, Row(1), Column(i), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		v.buttons[s] = btn
	}

	v.status = win.Label(Txt("markers: 0"))
	Grid(v.status, Row(2), Column(0), Columnspan(3), Sticky("w"), Padx("0.2m"), Pady("0.2m"))
}

func (v *ControlBar) Hide() {
	if v == nil || v.win == nil {
		return
	}
	Destroy(v.win)
	v.win = nil
	v.buttons = nil
	v.status = nil
}

func (v *ControlBar) Visible() bool { return v != nil && v.win != nil }

// SetStatus updates the readout line. No-op while hidden.
func (v *ControlBar) SetStatus(text string) {
	if v == nil || v.status == nil {
		return
	}
	v.status.Configure(Txt(text))
}

func (v *ControlBar) toggleStrategy(s overlay.Strategy) {
	next := !v.visible[s]
	v.visible[s] = next
	if btn := v.buttons[s]; btn != nil {
		btn.Configure(Txt(v.buttonText(s)))
	}
	if v.onStrategy != nil {
		v.onStrategy(s, next)
	}
}

func (v *ControlBar) buttonText(s overlay.Strategy) string {
	mark := "[ ]"
	if v.visible[s] {
		mark = "[x]"
	}
	return fmt.Sprintf("%s %s", mark, s)
}
