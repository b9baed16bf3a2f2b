package overlay

import "log/slog"

// recoveryLogLimit bounds how many consecutive unsuccessful recovery
// attempts are reported before the warning is suppressed.
const recoveryLogLimit = 3

// Recovery forces the surface back on screen when it is supposed to be
// visible but the window manager hid or demoted it. Best-effort: it may
// run repeatedly without harm and never panics outward.
type Recovery struct {
	state    *State
	surface  Surface
	enforcer TopmostEnforcer
	logger   *slog.Logger

	attempts int // consecutive attempts that left the surface hidden
}

func NewRecovery(state *State, surface Surface, enforcer TopmostEnforcer, logger *slog.Logger) *Recovery {
	if enforcer == nil {
		enforcer = NopEnforcer{}
	}
	return &Recovery{state: state, surface: surface, enforcer: enforcer, logger: logger}
}

// Run executes the recovery procedure: re-show the surface, re-assert the
// aggressive window attributes, re-apply the last known geometry, repaint,
// and finally invoke the native enforcer as a last resort. A no-op while
// the overlay is inactive.
func (r *Recovery) Run() {
	if r == nil || !r.state.Active() {
		return
	}
	defer recoverLog(r.logger, "overlay recovery panic")

	r.surface.Hide()
	r.surface.Show()
	r.surface.RaiseToTop()
	if rect, ok := r.state.KnownRect(); ok {
		r.surface.SetGeometry(rect)
	}
	r.surface.Repaint()
	if err := r.enforcer.Enforce(); err != nil && r.logger != nil {
		r.logger.Debug("native topmost enforcement failed", "error", err)
	}

	if r.surface.Visible() {
		if r.attempts > 0 && r.logger != nil {
			r.logger.Info("overlay surface recovered", "attempts", r.attempts+1)
		}
		r.attempts = 0
		return
	}
	r.attempts++
	if r.logger == nil {
		return
	}
	switch {
	case r.attempts < recoveryLogLimit:
		r.logger.Debug("overlay surface still hidden", "attempt", r.attempts)
	case r.attempts == recoveryLogLimit:
		r.logger.Warn("overlay surface not recovering", "attempts", r.attempts)
	}
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r)
		}
	}
}
