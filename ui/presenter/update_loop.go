package presenter

import "time"

// Loop aggregates the feature presenters and drives periodic updates.
//
// It runs the demo feed first so status and preview reflect the freshest
// marker state, then invokes a scheduler callback to arm the next tick.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Status   *StatusPresenter
	Preview  *PreviewPresenter
	Feed     func(now time.Time)
	Schedule func()
}

func NewLoop(status *StatusPresenter, preview *PreviewPresenter, feed func(time.Time), schedule func()) *Loop {
	return &Loop{Status: status, Preview: preview, Feed: feed, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Feed != nil {
		l.Feed(now)
	}
	if l.Status != nil {
		l.Status.Tick(now)
	}
	if l.Preview != nil {
		l.Preview.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
