package overlay

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// fakeProvider returns scripted rectangles or errors.
type fakeProvider struct {
	rect    Rect
	err     error
	found   bool
	queries int
	rectFn  func() (Rect, error) // optional override
}

func (p *fakeProvider) FindWindow() bool { return p.found }

func (p *fakeProvider) WindowRect() (Rect, error) {
	p.queries++
	if p.rectFn != nil {
		return p.rectFn()
	}
	if p.err != nil {
		return Rect{}, p.err
	}
	return p.rect, nil
}

var _ WindowProvider = (*fakeProvider)(nil)

// fakeSurface records operations for order and count assertions.
type fakeSurface struct {
	ops       []string
	visible   bool
	lieHidden bool // report hidden even after Show, to provoke recovery
	geometry  Rect
	geoms     []Rect
	repaints  int
	raises    int
}

func (s *fakeSurface) Show() { s.visible = true; s.ops = append(s.ops, "show") }
func (s *fakeSurface) Hide() { s.visible = false; s.ops = append(s.ops, "hide") }

func (s *fakeSurface) Visible() bool { return s.visible && !s.lieHidden }

func (s *fakeSurface) SetGeometry(r Rect) {
	s.geometry = r
	s.geoms = append(s.geoms, r)
	s.ops = append(s.ops, "geometry")
}

func (s *fakeSurface) RaiseToTop() { s.raises++; s.ops = append(s.ops, "raise") }
func (s *fakeSurface) Repaint() { s.repaints++; s.ops = append(s.ops, "repaint") }

var _ Surface = (*fakeSurface)(nil)

// fakeScheduler queues callbacks for manual, deterministic execution.
type fakeScheduler struct {
	tasks []*fakeTask
}

type fakeTask struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	done      bool
}

func (s *fakeScheduler) After(d time.Duration, fn func()) func() {
	t := &fakeTask{delay: d, fn: fn}
	s.tasks = append(s.tasks, t)
	return func() { t.cancelled = true }
}

// runNext executes the oldest pending task and reports whether one ran.
func (s *fakeScheduler) runNext() bool {
	for _, t := range s.tasks {
		if t.done || t.cancelled {
			continue
		}
		t.done = true
		t.fn()
		return true
	}
	return false
}

// runAll drains the queue, including tasks scheduled while draining.
func (s *fakeScheduler) runAll() int {
	ran := 0
	for ran < 1000 && s.runNext() {
		ran++
	}
	return ran
}

func (s *fakeScheduler) pendingCount() int {
	n := 0
	for _, t := range s.tasks {
		if !t.done && !t.cancelled {
			n++
		}
	}
	return n
}

var _ Scheduler = (*fakeScheduler)(nil)

type fakeEnforcer struct {
	calls int
	err   error
}

func (e *fakeEnforcer) Enforce() error { e.calls++; return e.err }

func newTestController(p WindowProvider, s Surface, sched Scheduler, opts Options, hooks Hooks) *Controller {
	return NewController(p, s, NopEnforcer{}, sched, opts, hooks, discardLogger)
}

func TestController_ShowFailsWithoutWindow(t *testing.T) {
	provider := &fakeProvider{found: false}
	surface := &fakeSurface{}
	c := newTestController(provider, surface, &fakeScheduler{}, Options{}, Hooks{})

	if c.ShowOverGame() {
		t.Fatalf("show succeeded with no target window")
	}
	if c.Active() {
		t.Fatalf("overlay active after failed show")
	}
	if len(surface.ops) != 0 {
		t.Fatalf("surface touched during failed show: %v", surface.ops)
	}

	// A found window whose rect query errors must fail the same way.
	provider.found = true
	provider.err = errors.New("window vanished")
	if c.ShowOverGame() {
		t.Fatalf("show succeeded with failing rect query")
	}
	if c.Active() {
		t.Fatalf("overlay active after failed show")
	}
}

func TestController_ShowHideShowGeometryRoundTrip(t *testing.T) {
	rect := Rect{X: 40, Y: 60, Width: 800, Height: 600}
	provider := &fakeProvider{found: true, rect: rect}
	surface := &fakeSurface{}
	c := newTestController(provider, surface, &fakeScheduler{}, Options{}, Hooks{})

	if !c.ShowOverGame() {
		t.Fatalf("first show failed")
	}
	if surface.geometry != rect {
		t.Fatalf("geometry after first show: got %+v want %+v", surface.geometry, rect)
	}
	c.HideOverlay()
	if c.Active() || surface.visible {
		t.Fatalf("overlay still up after hide: active=%v visible=%v", c.Active(), surface.visible)
	}
	if !c.ShowOverGame() {
		t.Fatalf("second show failed")
	}
	if surface.geometry != rect {
		t.Fatalf("geometry after second show: got %+v want %+v", surface.geometry, rect)
	}
	if !c.Active() || !surface.visible {
		t.Fatalf("overlay not up after second show: active=%v visible=%v", c.Active(), surface.visible)
	}
}

func TestController_HideIdempotent(t *testing.T) {
	surface := &fakeSurface{}
	c := newTestController(&fakeProvider{}, surface, &fakeScheduler{}, Options{}, Hooks{})

	c.HideOverlay()
	if c.Active() {
		t.Fatalf("active after first hide")
	}
	c.HideOverlay()
	if c.Active() {
		t.Fatalf("active after second hide")
	}
}

func TestController_ToggleVisibility(t *testing.T) {
	provider := &fakeProvider{found: true, rect: Rect{Width: 100, Height: 100}}
	c := newTestController(provider, &fakeSurface{}, &fakeScheduler{}, Options{}, Hooks{})

	if !c.ToggleVisibility() {
		t.Fatalf("first toggle should show and report active")
	}
	if c.ToggleVisibility() {
		t.Fatalf("second toggle should hide and report inactive")
	}
}

func TestController_ControlBarIndependent(t *testing.T) {
	var barStates []bool
	c := newTestController(&fakeProvider{}, &fakeSurface{}, &fakeScheduler{}, Options{}, Hooks{
		ControlBar: func(v bool) { barStates = append(barStates, v) },
	})

	c.ToggleControlBar()
	if !c.ControlBarVisible() || c.Active() {
		t.Fatalf("control bar toggle affected overlay state: bar=%v active=%v", c.ControlBarVisible(), c.Active())
	}
	c.ToggleControlBar()
	if c.ControlBarVisible() {
		t.Fatalf("control bar still visible after second toggle")
	}
	if len(barStates) != 2 || !barStates[0] || barStates[1] {
		t.Fatalf("unexpected hook sequence: %v", barStates)
	}
}

func TestController_MinConfidenceClampAndEcho(t *testing.T) {
	var echoed []float64
	c := newTestController(&fakeProvider{}, &fakeSurface{}, &fakeScheduler{}, Options{}, Hooks{
		ConfidenceEcho: func(v float64) { echoed = append(echoed, v) },
	})

	if got := c.SetMinConfidence(1.5); got != 1.0 {
		t.Fatalf("clamp above: got %v", got)
	}
	if got := c.MinConfidence(); got != 1.0 {
		t.Fatalf("readback after clamp above: got %v", got)
	}
	if got := c.SetMinConfidence(-0.2); got != 0.0 {
		t.Fatalf("clamp below: got %v", got)
	}
	if len(echoed) != 2 || echoed[0] != 1.0 || echoed[1] != 0.0 {
		t.Fatalf("echo received raw values: %v", echoed)
	}
}

func TestController_UnknownStrategyVisibilityNoOp(t *testing.T) {
	c := newTestController(&fakeProvider{}, &fakeSurface{}, &fakeScheduler{}, Options{}, Hooks{})

	c.SetStrategyVisibility(Strategy("depth"), false)
	visible := c.VisibleStrategies()
	if len(visible) != 3 {
		t.Fatalf("strategy map grew after unknown toggle: %v", visible)
	}
	for s, v := range visible {
		if !v {
			t.Fatalf("strategy %q flipped by unknown toggle", s)
		}
	}
}

func TestController_HiddenStrategiesOption(t *testing.T) {
	c := newTestController(&fakeProvider{}, &fakeSurface{}, &fakeScheduler{}, Options{
		HiddenStrategies: []Strategy{StrategyYOLO},
	}, Hooks{})

	visible := c.VisibleStrategies()
	if visible[StrategyYOLO] {
		t.Fatalf("yolo should start hidden")
	}
	if !visible[StrategyTemplate] || !visible[StrategyOCR] {
		t.Fatalf("other strategies affected: %v", visible)
	}
}

func TestController_TrackingLossAutoHides(t *testing.T) {
	provider := &fakeProvider{found: true, rect: Rect{X: 1, Y: 2, Width: 300, Height: 200}}
	surface := &fakeSurface{}
	sched := &fakeScheduler{}
	c := newTestController(provider, surface, sched, Options{}, Hooks{})

	if !c.ShowOverGame() {
		t.Fatalf("show failed")
	}
	provider.err = errors.New("window gone")

	// Drain the scheduled chain: the recovery check plus polls that miss
	// until the failure threshold deactivates the overlay.
	sched.runAll()

	if c.Active() {
		t.Fatalf("overlay still active after repeated misses")
	}
	if surface.visible {
		t.Fatalf("surface still visible after tracking loss")
	}
	if n := sched.pendingCount(); n != 0 {
		t.Fatalf("poll chain not cancelled, %d pending tasks", n)
	}
}
