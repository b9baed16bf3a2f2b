package app

import (
	"image"
	"log/slog"

	"github.com/soocke/game-overlay-go/config"
	"github.com/soocke/game-overlay-go/domain/overlay"
	"github.com/soocke/game-overlay-go/domain/window"
	"github.com/soocke/game-overlay-go/ui/images"
	"github.com/soocke/game-overlay-go/ui/model"
	"github.com/soocke/game-overlay-go/ui/presenter"
	"github.com/soocke/game-overlay-go/ui/view"
)

// overlayTitle names the overlay toplevel. The native topmost enforcer
// resolves the window by this title, so the surface and the enforcer must
// agree on it.
const overlayTitle = "Marker Overlay Surface"

// AppContainer assembles the overlay controller, views and presenters.
type AppContainer struct {
	Config     *config.Config
	ConfigPath string
	Logger     *slog.Logger
	Provider   overlay.WindowProvider
	Surface    *view.OverlayWindow
	Control    overlay.OverlayContract
	Bar        *view.ControlBar
	Uptime     *model.UptimeModel
	RootView   *view.RootView
	UI         view.UI
	Render     func(w, h int) image.Image

	// Presenters
	Status  *presenter.StatusPresenter
	Preview *presenter.PreviewPresenter
	Feed    *DemoFeed
	Loop    *presenter.Loop
}

// BuildContainer constructs all components. Views and presenters are wired
// to Tk widgets later, by the app wrapper, once the root window is built.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, ConfigPath: cfgPath, Logger: logger}

	if cfg.SimWindow {
		c.Provider = window.NewSimProvider(window.ScreenBounds())
	} else {
		c.Provider = window.NewTitleProvider(cfg.WindowTitle)
	}

	// The render closure reads c.Control, assigned below. Repaint can only
	// run after ShowOverGame, so the controller exists by then.
	c.Render = func(w, h int) image.Image {
		return images.RenderMarkers(w, h, c.Control.MarkerSnapshot())
	}
	c.Surface = view.NewOverlayWindow(overlayTitle, c.Render, logger)

	c.Bar = view.NewControlBar(window.ScreenBounds(),
		func() { c.Control.ToggleVisibility() },
		func(s overlay.Strategy, visible bool) { c.Control.SetStrategyVisibility(s, visible) },
		logger,
	)

	hidden := make([]overlay.Strategy, 0, len(cfg.HiddenStrategies))
	for _, raw := range cfg.HiddenStrategies {
		if s := overlay.Strategy(raw); overlay.KnownStrategy(s) {
			hidden = append(hidden, s)
		}
	}

	c.Control = overlay.NewController(c.Provider, c.Surface, window.NewEnforcer(overlayTitle), TkScheduler{},
		overlay.Options{
			PollInterval:           cfg.PollInterval(),
			MaxConsecutiveFailures: cfg.MaxConsecutiveFailures,
			TrackingLossTimeout:    cfg.TrackingLossTimeout(),
			MinConfidence:          cfg.MinConfidence,
			HiddenStrategies:       hidden,
		},
		overlay.Hooks{
			ControlBar: func(visible bool) {
				if visible {
					c.Bar.Show(c.Control.VisibleStrategies())
				} else {
					c.Bar.Hide()
				}
			},
			ConfidenceEcho: func(v float64) {
				c.RootView.SetConfidenceDisplay(v)
			},
		},
		logger,
	)

	c.Uptime = model.NewUptimeModel()
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	// UI built externally after window list retrieval.
	c.UI = c.RootView

	if cfg.DemoFeed {
		c.Feed = NewDemoFeed(c.Control, c.Control)
	}
	return c
}
