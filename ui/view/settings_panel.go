package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/game-overlay-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// SettingsPanel encapsulates the tracking settings form and apply logic.
// It owns its widgets; ApplyChanges writes the parsed values back into the
// bound *config.Config and persists them.
type SettingsPanel interface {
	Build(startRow int) (endRow int) // grid rows startRow..endRow-1
	SetEditable(enabled bool)
	ApplyChanges()
	Refresh() // re-reads the bound config into the widgets
}

type settingsPanel struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	onApplied func() // notified after a successful save
	applyBtn  *ButtonWidget
	widgets   map[string]*TextWidget // keyed by internal field id
}

// NewSettingsPanel creates the view bound to cfg.
func NewSettingsPanel(cfg *config.Config, cfgPath string, onApplied func(), logger *slog.Logger) SettingsPanel {
	return &settingsPanel{cfg: cfg, cfgPath: cfgPath, onApplied: onApplied, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *settingsPanel) Build(startRow int) (row int) {
	row = startRow
	makeRow := func(id, label string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		v.widgets[id] = w
		row++
	}
	makeRow("windowTitle", "Window Title")
	makeRow("pollIntervalMs", "Poll Interval (ms)")
	makeRow("maxFailures", "Max Consecutive Failures")
	makeRow("lossTimeoutMs", "Loss Timeout (ms)")
	makeRow("minConfidence", "Min Confidence (0-1)")
	v.Refresh()
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

// Refresh pushes the bound config values into the form widgets.
func (v *settingsPanel) Refresh() {
	c := v.cfg
	if c == nil {
		return
	}
	v.setText("windowTitle", c.WindowTitle)
	v.setText("pollIntervalMs", fmt.Sprintf("%d", c.PollIntervalMs))
	v.setText("maxFailures", fmt.Sprintf("%d", c.MaxConsecutiveFailures))
	v.setText("lossTimeoutMs", fmt.Sprintf("%d", c.TrackingLossTimeoutMs))
	v.setText("minConfidence", fmt.Sprintf("%.2f", c.MinConfidence))
}

func (v *settingsPanel) setText(id, value string) {
	w := v.widgets[id]
	if w == nil {
		return
	}
	w.Delete("1.0", END)
	w.Insert("1.0", value)
}

func (v *settingsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *settingsPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *settingsPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignInt := func(id string, dst *int) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if i, ok := parseIntField(strings.TrimSpace(v.text(w))); ok {
			*dst = i
		}
	}
	assignInt("pollIntervalMs", &cfg.PollIntervalMs)
	assignInt("maxFailures", &cfg.MaxConsecutiveFailures)
	assignInt("lossTimeoutMs", &cfg.TrackingLossTimeoutMs)
	if w := v.widgets["minConfidence"]; w != nil {
		if f, ok := parseFloatField(strings.TrimSpace(v.text(w))); ok {
			cfg.MinConfidence = f
		}
	}
	if w := v.widgets["windowTitle"]; w != nil {
		cfg.WindowTitle = strings.TrimSpace(v.text(w))
	}
	_ = cfg.Validate()
	*v.cfg = cfg
	// Echo the clamped values so the form shows what actually applies.
	v.Refresh()
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApplied != nil {
		v.onApplied()
	}
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
