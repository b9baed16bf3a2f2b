package overlay

import (
	"errors"
	"log/slog"
	"time"
)

const defaultRecoveryDelay = 100 * time.Millisecond

// Options tunes a Controller at construction. Zero values fall back to
// the package defaults.
type Options struct {
	PollInterval           time.Duration
	MaxConsecutiveFailures int
	TrackingLossTimeout    time.Duration
	MinConfidence          float64
	RecoveryDelay          time.Duration
	HiddenStrategies       []Strategy
}

// Hooks externalize optional UI reactions (control bar window, bound
// confidence display). Nil hooks are skipped.
type Hooks struct {
	ControlBar     func(visible bool)
	ConfidenceEcho func(v float64)
}

// Controller owns the overlay's Hidden/Shown state machine, the filtering
// knobs and the independent control-bar flag, and wires the window sync,
// marker pipeline and recovery procedure together.
type Controller struct {
	state    *State
	provider WindowProvider
	surface  Surface
	sched    Scheduler
	logger   *slog.Logger
	hooks    Hooks

	pipeline *MarkerPipeline
	sync     *WindowSync
	recovery *Recovery

	recoveryDelay time.Duration
	cancelCheck   func()
	controlBar    bool
}

// NewController assembles the overlay component around the injected
// provider, surface, enforcer and scheduler.
func NewController(provider WindowProvider, surface Surface, enforcer TopmostEnforcer, sched Scheduler, opts Options, hooks Hooks, logger *slog.Logger) *Controller {
	state := NewState(opts.MinConfidence)
	for _, s := range opts.HiddenStrategies {
		state.SetStrategyVisible(s, false)
	}
	c := &Controller{
		state:         state,
		provider:      provider,
		surface:       surface,
		sched:         sched,
		logger:        logger,
		hooks:         hooks,
		pipeline:      NewMarkerPipeline(state, surface, sched, logger),
		sync:          NewWindowSync(state, provider, surface, sched, logger),
		recovery:      NewRecovery(state, surface, enforcer, logger),
		recoveryDelay: opts.RecoveryDelay,
	}
	if c.recoveryDelay <= 0 {
		c.recoveryDelay = defaultRecoveryDelay
	}
	c.sync.Configure(opts.PollInterval, opts.MaxConsecutiveFailures, opts.TrackingLossTimeout)
	c.sync.OnLoss(c.trackingLost)
	c.sync.OnDesync(c.recovery.Run)
	return c
}

// ShowOverGame places the overlay over the tracked window. It requires one
// successful rectangle from the provider; on failure it returns false and
// the overlay stays hidden, for the caller to surface.
func (c *Controller) ShowOverGame() bool {
	if !safeProbe(c.provider, c.logger) {
		if c.logger != nil {
			c.logger.Warn("overlay show failed", "error", "target window not found")
		}
		return false
	}
	rect, err := safeWindowRect(c.provider, c.logger)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("overlay show failed", "error", err)
		}
		return false
	}
	c.surface.SetGeometry(rect)
	c.state.SetKnownRect(rect)
	c.surface.Show()
	c.state.SetActive(true)
	c.state.MarkSuccess(time.Now())
	c.sync.Start()
	c.scheduleRecoveryCheck()
	if c.logger != nil {
		c.logger.Info("overlay shown",
			"x", rect.X, "y", rect.Y,
			"width", rect.Width, "height", rect.Height,
		)
	}
	return true
}

// HideOverlay deactivates the overlay, stops the poll chain and releases
// the surface. Idempotent. In-flight marker batches are left alone; they
// stop mattering because nothing is drawn while hidden.
func (c *Controller) HideOverlay() {
	if c.cancelCheck != nil {
		c.cancelCheck()
		c.cancelCheck = nil
	}
	c.sync.Stop()
	c.state.SetActive(false)
	c.surface.Hide()
	if c.logger != nil {
		c.logger.Debug("overlay hidden")
	}
}

// ToggleVisibility hides the overlay when shown, shows it otherwise, and
// returns the resulting activation value.
func (c *Controller) ToggleVisibility() bool {
	if c.state.Active() {
		c.HideOverlay()
	} else {
		c.ShowOverGame()
	}
	return c.state.Active()
}

// ToggleControlBar flips the control-bar flag independently of the
// overlay's Hidden/Shown state.
func (c *Controller) ToggleControlBar() {
	c.controlBar = !c.controlBar
	if c.hooks.ControlBar != nil {
		c.hooks.ControlBar(c.controlBar)
	}
}

// SetStrategyVisibility updates a strategy's show flag. Already-inserted
// markers are not re-filtered; the next SetDetectionResults call for that
// strategy respects the new flag. Unknown strategies are a no-op.
func (c *Controller) SetStrategyVisibility(s Strategy, visible bool) {
	if !c.state.SetStrategyVisible(s, visible) {
		if c.logger != nil {
			c.logger.Debug("ignoring unknown strategy", "strategy", string(s))
		}
		return
	}
	if c.logger != nil {
		c.logger.Debug("strategy visibility changed", "strategy", string(s), "visible", visible)
	}
}

// SetMinConfidence clamps v into [0,1], stores it, echoes the clamped
// value to any bound display, and returns it.
func (c *Controller) SetMinConfidence(v float64) float64 {
	clamped := c.state.SetMinConfidence(v)
	if c.hooks.ConfidenceEcho != nil {
		c.hooks.ConfidenceEcho(clamped)
	}
	return clamped
}

// SetDetectionResults replaces the markers of one strategy with the given
// raw results, filtered by the current visibility and confidence gates.
func (c *Controller) SetDetectionResults(results []Detection, s Strategy) {
	c.pipeline.Submit(results, s)
}

// ConfigureTracking adjusts the poll cadence and loss thresholds at runtime.
func (c *Controller) ConfigureTracking(interval time.Duration, maxFailures int, lossTimeout time.Duration) {
	c.sync.Configure(interval, maxFailures, lossTimeout)
}

// Read accessors used by tests and status displays.

func (c *Controller) Active() bool { return c.state.Active() }
func (c *Controller) MinConfidence() float64 { return c.state.MinConfidence() }
func (c *Controller) VisibleStrategies() map[Strategy]bool { return c.state.VisibleStrategies() }
func (c *Controller) MarkerCount() int { return c.pipeline.Total() }
func (c *Controller) MarkerCountFor(s Strategy) int { return c.pipeline.CountFor(s) }
func (c *Controller) MarkerSnapshot() []Marker { return c.pipeline.Snapshot() }
func (c *Controller) TrackingFailures() int { return c.state.Failures() }
func (c *Controller) ControlBarVisible() bool { return c.controlBar }
func (c *Controller) KnownRect() (Rect, bool) { return c.state.KnownRect() }

// trackingLost is invoked by the window sync when the miss threshold or
// the loss timeout trips; the overlay deactivates without user action.
func (c *Controller) trackingLost() {
	if c.logger != nil {
		c.logger.Info("overlay deactivated after tracking loss")
	}
	c.HideOverlay()
}

func (c *Controller) scheduleRecoveryCheck() {
	if c.cancelCheck != nil {
		c.cancelCheck()
	}
	c.cancelCheck = c.sched.After(c.recoveryDelay, func() {
		c.cancelCheck = nil
		c.recovery.Run()
	})
}

// safeProbe calls FindWindow, converting a provider panic into a miss.
func safeProbe(p WindowProvider, logger *slog.Logger) (found bool) {
	defer func() {
		if r := recover(); r != nil {
			found = false
			if logger != nil {
				logger.Error("window probe panic", "error", r)
			}
		}
	}()
	return p.FindWindow()
}

// safeWindowRect queries the provider, converting a panic into an error.
func safeWindowRect(p WindowProvider, logger *slog.Logger) (rect Rect, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("window query panicked")
			if logger != nil {
				logger.Error("window provider panic", "error", r)
			}
		}
	}()
	return p.WindowRect()
}

// Ensure contract satisfaction
var _ OverlayContract = (*Controller)(nil)
