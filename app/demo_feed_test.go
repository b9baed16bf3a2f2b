package app

import (
	"testing"
	"time"

	"github.com/soocke/game-overlay-go/domain/overlay"
)

type recordingSink struct {
	batches    [][]overlay.Detection
	strategies []overlay.Strategy
}

func (r *recordingSink) SetDetectionResults(results []overlay.Detection, s overlay.Strategy) {
	r.batches = append(r.batches, results)
	r.strategies = append(r.strategies, s)
}

type staticStatus struct {
	active bool
	rect   overlay.Rect
	known  bool
}

func (s *staticStatus) Active() bool { return s.active }
func (s *staticStatus) KnownRect() (overlay.Rect, bool) { return s.rect, s.known }

func newTestFeed() (*DemoFeed, *recordingSink, *staticStatus) {
	sink := &recordingSink{}
	status := &staticStatus{
		active: true,
		rect:   overlay.Rect{X: 100, Y: 100, Width: 800, Height: 600},
		known:  true,
	}
	return NewDemoFeed(sink, status), sink, status
}

func TestDemoFeed_ThrottledByInterval(t *testing.T) {
	feed, sink, _ := newTestFeed()
	base := time.Unix(0, 0)

	feed.Tick(base)
	if len(sink.batches) != 1 {
		t.Fatalf("first tick did not submit: %d batches", len(sink.batches))
	}
	feed.Tick(base.Add(100 * time.Millisecond))
	feed.Tick(base.Add(600 * time.Millisecond))
	if len(sink.batches) != 1 {
		t.Fatalf("submitted before interval elapsed: %d batches", len(sink.batches))
	}
	feed.Tick(base.Add(demoFeedInterval))
	if len(sink.batches) != 2 {
		t.Fatalf("no submit after interval: %d batches", len(sink.batches))
	}
}

func TestDemoFeed_GatedOnOverlayState(t *testing.T) {
	feed, sink, status := newTestFeed()
	base := time.Unix(0, 0)

	status.active = false
	feed.Tick(base)
	status.active = true
	status.known = false
	feed.Tick(base.Add(time.Second))
	if len(sink.batches) != 0 {
		t.Fatalf("submitted while gated: %d batches", len(sink.batches))
	}

	status.known = true
	feed.Tick(base.Add(2 * time.Second))
	if len(sink.batches) != 1 {
		t.Fatalf("did not submit once ungated: %d batches", len(sink.batches))
	}
}

func TestDemoFeed_RotatesStrategies(t *testing.T) {
	feed, sink, _ := newTestFeed()
	base := time.Unix(0, 0)

	for i := 0; i < 3; i++ {
		feed.Tick(base.Add(time.Duration(i) * demoFeedInterval))
	}
	if len(sink.strategies) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(sink.strategies))
	}
	seen := map[overlay.Strategy]bool{}
	for _, s := range sink.strategies {
		seen[s] = true
	}
	if len(seen) != 3 {
		t.Fatalf("strategies did not rotate: %v", sink.strategies)
	}
}

func TestDemoFeed_BoxesInsideWindow(t *testing.T) {
	feed, sink, status := newTestFeed()
	base := time.Unix(0, 0)

	for i := 0; i < 12; i++ {
		feed.Tick(base.Add(time.Duration(i) * demoFeedInterval))
	}
	for _, batch := range sink.batches {
		for _, d := range batch {
			if d.X < 0 || d.Y < 0 || d.X+d.Width > status.rect.Width || d.Y+d.Height > status.rect.Height {
				t.Fatalf("box escapes window: %+v in %dx%d", d, status.rect.Width, status.rect.Height)
			}
		}
	}
}

func TestDemoFeed_DenseBatchAppears(t *testing.T) {
	feed, sink, _ := newTestFeed()
	base := time.Unix(0, 0)

	for i := 0; i < 20; i++ {
		feed.Tick(base.Add(time.Duration(i) * demoFeedInterval))
	}
	dense := 0
	for _, batch := range sink.batches {
		if len(batch) >= 100 {
			dense++
		}
	}
	if dense == 0 {
		t.Fatalf("no dense batch in 20 steps; sizes: %v", batchSizes(sink.batches))
	}
}

func batchSizes(batches [][]overlay.Detection) []int {
	sizes := make([]int, len(batches))
	for i, b := range batches {
		sizes[i] = len(b)
	}
	return sizes
}
