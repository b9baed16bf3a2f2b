package app

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/game-overlay-go/domain/window"
	"github.com/soocke/game-overlay-go/ui/presenter"
	"github.com/soocke/game-overlay-go/ui/theme"
)

const (
	tick = 100 * time.Millisecond
)

type app struct {
	c       *AppContainer
	width   int
	height  int
	afterID string
}

func NewApp(title string, width, height int, c *AppContainer) *app {
	a := &app{c: c, width: width, height: height}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

func (a *app) Start() {
	theme.InitStyles()

	titles, err := window.ListTitles()
	if err != nil && a.c.Logger != nil {
		a.c.Logger.Warn("window enumeration failed", "error", err)
	}

	a.c.RootView.Build(titles,
		a.toggleOverlay,
		a.toggleControlBar,
		a.exitHandler,
		a.windowChanged,
		a.settingsApplied,
	)
	a.c.UI.SetConfidenceDisplay(a.c.Control.MinConfidence())

	// Presenters touch widgets, so they are wired only after Build.
	a.c.Status = presenter.NewStatusPresenter(a.c.Control, a.c.Uptime, a.c.UI, a.c.Logger)
	a.c.Preview = presenter.NewPreviewPresenter(a.c.Control, a.c.UI, a.c.Render)
	var feed func(time.Time)
	if a.c.Feed != nil {
		feed = a.c.Feed.Tick
	}
	a.c.Loop = presenter.NewLoop(a.c.Status, a.c.Preview, feed, a.scheduleUpdate)

	if a.c.Config.ControlBar {
		a.c.Control.ToggleControlBar()
	}

	// Kick off update loop.
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) update() {
	a.c.Loop.Tick()
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.c.Control.HideOverlay()
	a.c.Bar.Hide()
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) toggleOverlay() {
	if !a.c.Control.ToggleVisibility() {
		// Hidden (or show failed): drop the stale preview frame.
		a.c.RootView.Preview.Reset()
	}
}

func (a *app) toggleControlBar() {
	a.c.Control.ToggleControlBar()
}

// windowChanged retargets tracking when the user picks a window from the
// dropdown. The running poll chain picks the new title up on its next
// query; no restart is needed.
func (a *app) windowChanged(title string) {
	if title == "" || title == "<none>" {
		return
	}
	if p, ok := a.c.Provider.(interface{ SetTitle(string) }); ok {
		p.SetTitle(title)
	}
	a.c.Config.WindowTitle = title
	a.c.RootView.Settings.Refresh()
	if err := a.c.Config.Save(a.c.ConfigPath); err != nil {
		if a.c.Logger != nil {
			a.c.Logger.Error("config save failed", "error", err)
		}
	} else if a.c.Logger != nil {
		a.c.Logger.Info("target window changed", "title", title)
	}
}

// settingsApplied pushes freshly saved config values into the live
// controller. The overlay keeps running under the new cadence.
func (a *app) settingsApplied() {
	cfg := a.c.Config
	a.c.Control.ConfigureTracking(cfg.PollInterval(), cfg.MaxConsecutiveFailures, cfg.TrackingLossTimeout())
	a.c.Control.SetMinConfidence(cfg.MinConfidence)
	if p, ok := a.c.Provider.(interface{ SetTitle(string) }); ok {
		p.SetTitle(cfg.WindowTitle)
	}
}
