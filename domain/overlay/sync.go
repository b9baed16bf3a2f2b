package overlay

import (
	"errors"
	"log/slog"
	"time"
)

const (
	defaultPollInterval = 100 * time.Millisecond
	defaultMaxFailures  = 5
	defaultLossTimeout  = 2 * time.Second
)

// WindowSync keeps the overlay geometry equal to the tracked window's
// rectangle and decides when tracking has been lost. Polls run as
// scheduled callbacks on the UI thread; Stop cancels the chain through
// the scheduler handle rather than relying on flag checks alone.
type WindowSync struct {
	state    *State
	provider WindowProvider
	surface  Surface
	sched    Scheduler
	logger   *slog.Logger

	interval    time.Duration
	maxFailures int
	lossTimeout time.Duration

	onLoss  func() // invoked when tracking is declared lost
	recover func() // invoked on a surface visibility desync

	running bool
	cancel  func()
}

func NewWindowSync(state *State, provider WindowProvider, surface Surface, sched Scheduler, logger *slog.Logger) *WindowSync {
	return &WindowSync{
		state:       state,
		provider:    provider,
		surface:     surface,
		sched:       sched,
		logger:      logger,
		interval:    defaultPollInterval,
		maxFailures: defaultMaxFailures,
		lossTimeout: defaultLossTimeout,
	}
}

// Configure adjusts the polling cadence and loss thresholds. Zero or
// negative values keep the current setting. Takes effect from the next poll.
func (s *WindowSync) Configure(interval time.Duration, maxFailures int, lossTimeout time.Duration) {
	if s == nil {
		return
	}
	if interval > 0 {
		s.interval = interval
	}
	if maxFailures > 0 {
		s.maxFailures = maxFailures
	}
	if lossTimeout > 0 {
		s.lossTimeout = lossTimeout
	}
}

// OnLoss registers the callback fired when tracking is declared lost.
func (s *WindowSync) OnLoss(fn func()) { s.onLoss = fn }

// OnDesync registers the recovery hook fired when the surface visibility
// disagrees with the activation flag.
func (s *WindowSync) OnDesync(fn func()) { s.recover = fn }

// Start begins the poll chain. Idempotent.
func (s *WindowSync) Start() {
	if s == nil || s.running {
		return
	}
	s.running = true
	s.schedule()
}

// Stop cancels the pending poll deterministically. Idempotent.
func (s *WindowSync) Stop() {
	if s == nil || !s.running {
		return
	}
	s.running = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Running reports whether the poll chain is active.
func (s *WindowSync) Running() bool { return s != nil && s.running }

func (s *WindowSync) schedule() {
	s.cancel = s.sched.After(s.interval, func() {
		s.Poll(time.Now())
		if s.running {
			s.schedule()
		}
	})
}

// Poll performs one tracking tick. It is a no-op while the overlay is
// inactive. A query or geometry-apply panic counts as a miss for this
// tick instead of propagating.
func (s *WindowSync) Poll(now time.Time) {
	if s == nil || !s.state.Active() {
		return
	}
	rect, err := safeWindowRect(s.provider, s.logger)
	if err == nil {
		err = s.applyTick(rect)
	}
	if err != nil {
		s.miss(now, err)
		return
	}
	s.state.MarkSuccess(now)
}

// applyTick applies the fresh rectangle when it moved materially, then
// always re-asserts the top-most stacking: geometry before z-order.
func (s *WindowSync) applyTick(rect Rect) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("geometry apply panicked")
			if s.logger != nil {
				s.logger.Error("overlay geometry panic", "error", r)
			}
		}
	}()
	last, have := s.state.KnownRect()
	if !have || rect.DiffExceeds(last, 1) {
		s.surface.SetGeometry(rect)
		s.state.SetKnownRect(rect)
		s.surface.Repaint()
	}
	s.surface.RaiseToTop()
	if s.surface.Visible() != s.state.Active() && s.recover != nil {
		s.recover()
	}
	return nil
}

func (s *WindowSync) miss(now time.Time, cause error) {
	failures := s.state.MarkFailure()
	last := s.state.LastSuccess()
	timedOut := !last.IsZero() && now.Sub(last) > s.lossTimeout
	if failures >= s.maxFailures || timedOut {
		if s.logger != nil {
			s.logger.Warn("window tracking lost",
				"failures", failures,
				"since_success", now.Sub(last),
				"error", cause,
			)
		}
		if s.onLoss != nil {
			s.onLoss()
		}
		return
	}
	if s.logger != nil {
		s.logger.Debug("window query miss", "failures", failures, "error", cause)
	}
}
