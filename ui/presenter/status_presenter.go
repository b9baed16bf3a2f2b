package presenter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/game-overlay-go/ui/model"
)

// statsLogEvery spaces the periodic status log at roughly five seconds
// given the 100ms UI tick.
const statsLogEvery = 50

// OverlayStatusSource provides the controller subset the presenter reads.
type OverlayStatusSource interface {
	Active() bool
	MarkerCount() int
	TrackingFailures() int
}

// StatusView displays the tracking state, uptime and marker count.
type StatusView interface {
	SetStateLabel(text string)
	SetUptime(current, total time.Duration)
	SetMarkerCount(n int)
}

// StatusPresenter folds controller state into the status widgets once per
// UI tick. The state label is only rewritten when its text changes.
type StatusPresenter struct {
	src    OverlayStatusSource
	uptime *model.UptimeModel
	view   StatusView
	logger *slog.Logger

	lastLabel string
	ticks     int
}

func NewStatusPresenter(src OverlayStatusSource, uptime *model.UptimeModel, view StatusView, logger *slog.Logger) *StatusPresenter {
	return &StatusPresenter{src: src, uptime: uptime, view: view, logger: logger}
}

// Tick advances the uptime model and pushes fresh values to the view.
func (p *StatusPresenter) Tick(now time.Time) {
	if p == nil || p.src == nil || p.view == nil {
		return
	}
	active := p.src.Active()
	if p.uptime != nil {
		p.uptime.OnTick(active, now)
		current, total := p.uptime.Values()
		p.view.SetUptime(current, total)
	}
	markers := p.src.MarkerCount()
	p.view.SetMarkerCount(markers)

	label := "Overlay: hidden"
	if active {
		label = "Overlay: tracking"
		if f := p.src.TrackingFailures(); f > 0 {
			label = fmt.Sprintf("Overlay: tracking (misses %d)", f)
		}
	}
	if label != p.lastLabel {
		p.lastLabel = label
		p.view.SetStateLabel(label)
	}

	p.ticks++
	if p.logger != nil && p.ticks%statsLogEvery == 0 {
		p.logger.Debug("overlay status",
			"active", active,
			"markers", markers,
			"failures", p.src.TrackingFailures(),
		)
	}
}
