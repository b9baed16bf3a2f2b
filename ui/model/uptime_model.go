package model

import (
	"time"
)

// UptimeModel tracks how long the overlay has been shown in the current
// stretch and the accumulated shown time across the run. It is decoupled
// from the UI; presenters poll Values() and update views. The zero value
// is ready to use.
type UptimeModel struct {
	shown       bool
	shownSince  time.Time
	lastStretch time.Duration
	accumulated time.Duration
}

// NewUptimeModel returns a pointer to a ready-to-use UptimeModel.
func NewUptimeModel() *UptimeModel { return &UptimeModel{} }

// OnTick folds the current shown state into the bookkeeping.
// Call periodically (for example, from a presenter tick).
func (m *UptimeModel) OnTick(shown bool, now time.Time) {
	if m == nil {
		return
	}
	if shown {
		if !m.shown { // transition hidden -> shown
			m.shown = true
			m.shownSince = now
			m.lastStretch = 0
		}
		m.lastStretch = now.Sub(m.shownSince)
	} else if m.shown { // transition shown -> hidden
		m.lastStretch = now.Sub(m.shownSince)
		m.accumulated += m.lastStretch
		m.shown = false
	}
}

// Values returns the current stretch duration and the total shown time.
// The total includes the ongoing stretch while shown.
func (m *UptimeModel) Values() (current, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	current = m.lastStretch
	total = m.accumulated
	if m.shown {
		total += current
	}
	return
}
