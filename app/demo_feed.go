package app

import (
	"fmt"
	"time"

	"github.com/soocke/game-overlay-go/domain/overlay"
)

const (
	// demoFeedInterval spaces synthetic batches so individual paints are
	// observable instead of blurring together at the UI tick rate.
	demoFeedInterval = 700 * time.Millisecond
	// demoDenseEvery marks the step multiple whose template batch is large
	// enough to force chunked painting.
	demoDenseEvery = 9
)

// DemoStatus is the controller subset the feed reads.
type DemoStatus interface {
	Active() bool
	KnownRect() (overlay.Rect, bool)
}

// DemoFeed synthesizes detection batches so the overlay can be exercised
// without a detector process attached. Batches are derived arithmetically
// from a step counter, so a run is reproducible.
type DemoFeed struct {
	sink     overlay.DetectionSink
	status   DemoStatus
	interval time.Duration

	step int
	last time.Time
}

func NewDemoFeed(sink overlay.DetectionSink, status DemoStatus) *DemoFeed {
	return &DemoFeed{sink: sink, status: status, interval: demoFeedInterval}
}

// Tick submits the next batch when the interval has elapsed, the overlay
// is live and the window rectangle is known.
func (f *DemoFeed) Tick(now time.Time) {
	if f == nil || f.sink == nil || f.status == nil {
		return
	}
	if !f.status.Active() {
		return
	}
	if !f.last.IsZero() && now.Sub(f.last) < f.interval {
		return
	}
	rect, ok := f.status.KnownRect()
	if !ok || rect.Empty() {
		return
	}
	f.last = now
	f.step++

	strategies := overlay.Strategies()
	s := strategies[f.step%len(strategies)]
	f.sink.SetDetectionResults(f.batch(s, rect), s)
}

// batch builds boxes inside the window rectangle. Confidence sweeps past
// 1.0 so both the threshold filter and the clamp see traffic. Every
// demoDenseEvery-th step lands on the template strategy and balloons the
// batch to push the pipeline into its chunked paint tiers.
func (f *DemoFeed) batch(s overlay.Strategy, rect overlay.Rect) []overlay.Detection {
	n := 3 + f.step%4
	if s == overlay.StrategyTemplate && f.step%demoDenseEvery == 0 {
		n = 120
	}
	out := make([]overlay.Detection, 0, n)
	for i := 0; i < n; i++ {
		seed := f.step*31 + i*17
		w := 40 + seed%48
		h := 24 + seed%32
		spanW := rect.Width - w
		if spanW < 1 {
			spanW = 1
		}
		spanH := rect.Height - h
		if spanH < 1 {
			spanH = 1
		}
		out = append(out, overlay.Detection{
			X:          (seed * 13) % spanW,
			Y:          (seed * 7) % spanH,
			Width:      w,
			Height:     h,
			Confidence: float64(seed%100) / 100 * 1.2,
			Label:      demoLabel(s, i),
			Selected:   i == 0 && f.step%5 == 0,
		})
	}
	return out
}

func demoLabel(s overlay.Strategy, i int) string {
	switch s {
	case overlay.StrategyTemplate:
		return fmt.Sprintf("match %d", i)
	case overlay.StrategyOCR:
		return fmt.Sprintf("text %d", i)
	case overlay.StrategyYOLO:
		return fmt.Sprintf("obj %d", i)
	}
	return fmt.Sprintf("det %d", i)
}
