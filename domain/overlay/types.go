package overlay

import "time"

// Strategy identifies the detection engine that produced a result.
type Strategy string

const (
	StrategyTemplate Strategy = "template"
	StrategyOCR      Strategy = "ocr"
	StrategyYOLO     Strategy = "yolo"
)

// Strategies returns the known strategies in canonical paint order.
func Strategies() []Strategy {
	return []Strategy{StrategyTemplate, StrategyOCR, StrategyYOLO}
}

// KnownStrategy reports whether s is one of the built-in strategies.
func KnownStrategy(s Strategy) bool {
	switch s {
	case StrategyTemplate, StrategyOCR, StrategyYOLO:
		return true
	}
	return false
}

// Rect is a window rectangle in virtual-screen pixel coordinates.
// It is a value: read fresh on every query and never mutated in place.
type Rect struct {
	X, Y, Width, Height int
}

// Empty reports whether the rectangle has no drawable area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// DiffExceeds reports whether any component of r differs from o by more
// than tol pixels.
func (r Rect) DiffExceeds(o Rect, tol int) bool {
	return absInt(r.X-o.X) > tol || absInt(r.Y-o.Y) > tol ||
		absInt(r.Width-o.Width) > tol || absInt(r.Height-o.Height) > tol
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Detection is one raw result pushed by an external detection engine.
// The producing strategy travels as the SetDetectionResults argument.
type Detection struct {
	X, Y, Width, Height int
	Confidence          float64
	Label               string
	Selected            bool
}

// Marker is the render model for one detection. Markers are owned by the
// current frame: a resubmission for the same strategy replaces them wholesale.
type Marker struct {
	X, Y, Width, Height int
	Label               string
	Confidence          float64
	Strategy            Strategy
	Selected            bool
}

// newMarker builds a Marker from a raw detection. Confidence outside [0,1]
// is clamped, not rejected.
func newMarker(d Detection, s Strategy) Marker {
	return Marker{
		X: d.X, Y: d.Y, Width: d.Width, Height: d.Height,
		Label:      d.Label,
		Confidence: clampConfidence(d.Confidence),
		Strategy:   s,
		Selected:   d.Selected,
	}
}

// WindowProvider locates the tracked window and reports its rectangle.
// Implementations must be safe to call at 10 Hz or faster.
type WindowProvider interface {
	FindWindow() bool
	WindowRect() (Rect, error)
}

// Surface is the top-most, click-through drawing window the markers are
// painted on. Implementations are only touched from the UI thread.
type Surface interface {
	Show()
	Hide()
	Visible() bool
	SetGeometry(Rect)
	RaiseToTop()
	Repaint()
}

// TopmostEnforcer re-asserts native z-order and click-through attributes
// when the toolkit's declarative flags are not enough.
type TopmostEnforcer interface {
	Enforce() error
}

// NopEnforcer is the default enforcer on platforms without a native
// window-order API.
type NopEnforcer struct{}

func (NopEnforcer) Enforce() error { return nil }

// Scheduler runs fn on the UI thread after d and returns a handle that
// cancels the pending call.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Interface slices for consumers (views, presenters).
type OverlayStatus interface {
	Active() bool
	MinConfidence() float64
	VisibleStrategies() map[Strategy]bool
	MarkerCount() int
	MarkerCountFor(s Strategy) int
	MarkerSnapshot() []Marker
	TrackingFailures() int
	ControlBarVisible() bool
	KnownRect() (Rect, bool)
}
type VisibilityOps interface {
	ShowOverGame() bool
	HideOverlay()
	ToggleVisibility() bool
	ToggleControlBar()
}
type FilterOps interface {
	SetStrategyVisibility(s Strategy, visible bool)
	SetMinConfidence(v float64) float64
}
type TrackingOps interface {
	ConfigureTracking(interval time.Duration, maxFailures int, lossTimeout time.Duration)
}
type DetectionSink interface {
	SetDetectionResults(results []Detection, s Strategy)
}

// OverlayContract aggregate for DI.
type OverlayContract interface {
	OverlayStatus
	VisibilityOps
	FilterOps
	TrackingOps
	DetectionSink
}
