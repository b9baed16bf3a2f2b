package view

import (
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/game-overlay-go/config"
	"github.com/soocke/game-overlay-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the control window layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for
// presenters. All methods run on the Tk event loop thread.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Status   StatusPanel
	Settings SettingsPanel
	Preview  OverlayPreview

	// Widgets
	StateLabel      *LabelWidget
	ConfidenceLabel *LabelWidget
	WindowSelect    *TComboboxWidget
	previewRow      int
}

// UI abstracts the subset of view operations needed by presenters,
// decoupling them from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetConfidenceDisplay(v float64)
	SetUptime(current, total time.Duration)
	SetMarkerCount(n int)
	UpdatePreview(img image.Image)
	SetSettingsEditable(enabled bool)
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. titles: window titles for the target
// dropdown. Handlers are invoked on user actions.
func (rv *RootView) Build(titles []string, onToggleOverlay func(), onToggleControlBar func(), onExit func(), onWindowChanged func(title string), onSettingsApplied func()) {
	if rv == nil {
		return
	}
	// Row 0: state label, confidence readout, buttons frame
	rv.StateLabel = Label(Txt("Overlay: hidden"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.ConfidenceLabel = Label(Txt("min conf: -"), Borderwidth(1), Relief("ridge"))
	Grid(rv.ConfidenceLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	overlayBtn := Button(Txt("Toggle Overlay"), Command(onToggleOverlay))
	Grid(overlayBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	barBtn := Button(Txt("Control Bar"), Command(onToggleControlBar))
	Grid(barBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	if len(titles) == 0 {
		titles = []string{"<none>"}
	}
	rv.WindowSelect = TCombobox(Values(titles), Width(26))
	Grid(rv.WindowSelect, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.WindowSelect.Current(0)
	Bind(rv.WindowSelect, "<<ComboboxSelected>>", Command(func() {
		if rv.WindowSelect == nil {
			return
		}
		idxStr := rv.WindowSelect.Current(nil)
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 0 || idx >= len(titles) {
			if rv.logger != nil {
				rv.logger.Error("window selection parse error", "error", err)
			}
			return
		}
		onWindowChanged(titles[idx])
	}))
	darkBtn := Button(Txt("Dark Mode"), Command(func() { theme.ToggleDark() }))
	Grid(darkBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(onExit))
	Grid(exitBtn, In(btnFrame), Row(4), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Settings rows
	rv.Settings = NewSettingsPanel(rv.cfg, rv.cfgPath, onSettingsApplied, rv.logger)
	endRow := rv.Settings.Build(1)

	// Uptime and marker readouts
	rv.Status = NewStatusPanel(endRow, 0)
	endRow++

	// Overlay preview placement
	rv.previewRow = endRow
	rv.Preview = NewOverlayPreview(rv.previewRow)
}

// SetStateLabel updates the tracking state readout.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetConfidenceDisplay echoes the effective confidence threshold.
func (rv *RootView) SetConfidenceDisplay(v float64) {
	if rv != nil && rv.ConfidenceLabel != nil {
		rv.ConfidenceLabel.Configure(Txt(fmt.Sprintf("min conf: %.2f", v)))
	}
}

// SetUptime proxies to the status panel.
func (rv *RootView) SetUptime(current, total time.Duration) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetUptime(current, total)
	}
}

// SetMarkerCount proxies to the status panel.
func (rv *RootView) SetMarkerCount(n int) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetMarkerCount(n)
	}
}

// UpdatePreview proxies to the preview subview.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Update(img)
	}
}

// SetSettingsEditable toggles the settings form.
func (rv *RootView) SetSettingsEditable(enabled bool) {
	if rv != nil && rv.Settings != nil {
		rv.Settings.SetEditable(enabled)
	}
}

var _ UI = (*RootView)(nil)
