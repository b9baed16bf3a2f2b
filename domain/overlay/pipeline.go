package overlay

import "log/slog"

// MarkerPipeline turns raw detection results into the marker set actually
// drawn. Inserts are chunked through the scheduler so a burst of hundreds
// of results never stalls the UI thread in one frame.
type MarkerPipeline struct {
	state   *State
	surface Surface
	sched   Scheduler
	logger  *slog.Logger

	markers *MarkerSet
	pending map[Strategy]func() // cancel handle of the strategy's batch chain
}

func NewMarkerPipeline(state *State, surface Surface, sched Scheduler, logger *slog.Logger) *MarkerPipeline {
	return &MarkerPipeline{
		state:   state,
		surface: surface,
		sched:   sched,
		logger:  logger,
		markers: NewMarkerSet(),
		pending: make(map[Strategy]func()),
	}
}

// Submit replaces the markers of one strategy with the filtered results.
//
// Replacement happens before the tier recompute, which happens before the
// first batch. A second Submit for the same strategy supersedes the first:
// its not-yet-inserted chunks are cancelled and discarded. The first chunk
// is inserted synchronously; the full set is inserted within
// ceil(kept/batch) * throttle of the call.
func (p *MarkerPipeline) Submit(results []Detection, strategy Strategy) {
	if p == nil {
		return
	}
	p.cancelPending(strategy)
	p.markers.Clear(strategy)

	kept := p.filter(results, strategy)
	tier := TierFor(p.markers.Total() + len(kept))
	p.state.SetTier(tier)
	if p.logger != nil {
		p.logger.Debug("detection results submitted",
			"strategy", string(strategy),
			"received", len(results),
			"kept", len(kept),
			"batch_size", tier.BatchSize,
			"throttle", tier.Throttle,
		)
	}

	if len(kept) == 0 {
		// Old markers were cleared; erase them from the screen.
		p.surface.Repaint()
		return
	}
	first := kept
	if len(first) > tier.BatchSize {
		first = kept[:tier.BatchSize]
	}
	p.markers.Append(strategy, first)
	p.surface.Repaint()
	if rest := kept[len(first):]; len(rest) > 0 {
		p.scheduleChunk(strategy, rest, tier)
	}
}

// filter builds candidate markers, keeping only those that pass both
// independent gates: the strategy's show flag and the confidence threshold.
func (p *MarkerPipeline) filter(results []Detection, strategy Strategy) []Marker {
	if !p.state.StrategyVisible(strategy) {
		return nil
	}
	min := p.state.MinConfidence()
	kept := make([]Marker, 0, len(results))
	for _, d := range results {
		m := newMarker(d, strategy)
		if m.Confidence < min {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

func (p *MarkerPipeline) scheduleChunk(strategy Strategy, rest []Marker, tier Tier) {
	cancel := p.sched.After(tier.Throttle, func() {
		delete(p.pending, strategy)
		chunk := rest
		if len(chunk) > tier.BatchSize {
			chunk = rest[:tier.BatchSize]
		}
		p.markers.Append(strategy, chunk)
		p.surface.Repaint()
		if remaining := rest[len(chunk):]; len(remaining) > 0 {
			p.scheduleChunk(strategy, remaining, tier)
		}
	})
	p.pending[strategy] = cancel
}

func (p *MarkerPipeline) cancelPending(strategy Strategy) {
	if cancel := p.pending[strategy]; cancel != nil {
		cancel()
		delete(p.pending, strategy)
	}
}

// Total returns the number of markers inserted so far.
func (p *MarkerPipeline) Total() int {
	if p == nil {
		return 0
	}
	return p.markers.Total()
}

// CountFor returns the number of inserted markers for one strategy.
func (p *MarkerPipeline) CountFor(s Strategy) int {
	if p == nil {
		return 0
	}
	return p.markers.CountFor(s)
}

// Snapshot returns the inserted markers in paint order.
func (p *MarkerPipeline) Snapshot() []Marker {
	if p == nil {
		return nil
	}
	return p.markers.Snapshot()
}
