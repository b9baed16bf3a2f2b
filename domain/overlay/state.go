package overlay

import "time"

// State is the overlay's bookkeeping: activation, marker filtering knobs,
// performance tier and tracking-loss counters. It is owned exclusively by
// the overlay component. No synchronization needed: updates occur on the
// UI thread tick.
type State struct {
	active        bool
	minConfidence float64
	visible       map[Strategy]bool

	tier Tier

	consecutiveFailures int
	lastSuccess         time.Time

	lastRect Rect
	haveRect bool
}

// NewState returns a State with all known strategies visible and the
// performance tier computed for an empty marker set.
func NewState(minConfidence float64) *State {
	visible := make(map[Strategy]bool, len(Strategies()))
	for _, s := range Strategies() {
		visible[s] = true
	}
	return &State{
		minConfidence: clampConfidence(minConfidence),
		visible:       visible,
		tier:          TierFor(0),
	}
}

// Active reports whether the overlay should be drawn at all.
func (s *State) Active() bool { return s != nil && s.active }

// SetActive flips the activation flag.
func (s *State) SetActive(v bool) {
	if s == nil {
		return
	}
	s.active = v
}

// MinConfidence returns the stored (already clamped) threshold.
func (s *State) MinConfidence() float64 {
	if s == nil {
		return 0
	}
	return s.minConfidence
}

// SetMinConfidence clamps v into [0,1], stores it and returns the value
// actually stored.
func (s *State) SetMinConfidence(v float64) float64 {
	if s == nil {
		return 0
	}
	s.minConfidence = clampConfidence(v)
	return s.minConfidence
}

// StrategyVisible reports the show flag for s. Unknown strategies are
// never visible.
func (s *State) StrategyVisible(strategy Strategy) bool {
	if s == nil {
		return false
	}
	return s.visible[strategy]
}

// SetStrategyVisible updates the show flag for a known strategy and
// reports whether the strategy was known. Unknown strategies are a no-op.
func (s *State) SetStrategyVisible(strategy Strategy, visible bool) bool {
	if s == nil || !KnownStrategy(strategy) {
		return false
	}
	s.visible[strategy] = visible
	return true
}

// VisibleStrategies returns a copy of the per-strategy show flags.
func (s *State) VisibleStrategies() map[Strategy]bool {
	out := make(map[Strategy]bool, len(s.visible))
	for k, v := range s.visible {
		out[k] = v
	}
	return out
}

// Tier returns the current performance tier.
func (s *State) Tier() Tier { return s.tier }

// SetTier stores the performance tier computed for the current marker volume.
func (s *State) SetTier(t Tier) {
	if s == nil {
		return
	}
	s.tier = t
}

// MarkSuccess resets the tracking-loss counters after a successful
// geometry read.
func (s *State) MarkSuccess(now time.Time) {
	if s == nil {
		return
	}
	s.consecutiveFailures = 0
	s.lastSuccess = now
}

// MarkFailure increments the consecutive-miss counter and returns it.
func (s *State) MarkFailure() int {
	if s == nil {
		return 0
	}
	s.consecutiveFailures++
	return s.consecutiveFailures
}

// Failures returns the current consecutive-miss count.
func (s *State) Failures() int {
	if s == nil {
		return 0
	}
	return s.consecutiveFailures
}

// LastSuccess returns the timestamp of the last successful geometry read.
func (s *State) LastSuccess() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.lastSuccess
}

// SetKnownRect records the last rectangle applied to the surface.
func (s *State) SetKnownRect(r Rect) {
	if s == nil {
		return
	}
	s.lastRect = r
	s.haveRect = true
}

// KnownRect returns the last applied rectangle, if any.
func (s *State) KnownRect() (Rect, bool) {
	if s == nil || !s.haveRect {
		return Rect{}, false
	}
	return s.lastRect, true
}

// Tier holds the adaptive batching parameters for marker insertion.
type Tier struct {
	BatchSize int
	Throttle  time.Duration
}

// TierFor selects the performance tier for a total marker count. Low
// volumes render promptly (large batch, small throttle); high volumes
// avoid starving the UI thread (small batch, larger throttle).
func TierFor(n int) Tier {
	switch {
	case n < 50:
		return Tier{BatchSize: 10, Throttle: 100 * time.Millisecond}
	case n < 100:
		return Tier{BatchSize: 5, Throttle: 200 * time.Millisecond}
	default:
		return Tier{BatchSize: 3, Throttle: 300 * time.Millisecond}
	}
}

// clampConfidence forces v into [0,1].
func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
