package overlay

// MarkerSet stores the inserted markers keyed by strategy, making the
// "replace this strategy's markers, leave others" contract a structural
// invariant instead of a filtering pass over a flat list.
// No synchronization needed: updates occur on the UI thread tick.
type MarkerSet struct {
	byStrategy map[Strategy][]Marker
}

func NewMarkerSet() *MarkerSet {
	return &MarkerSet{byStrategy: make(map[Strategy][]Marker)}
}

// Clear discards all markers belonging to s.
func (m *MarkerSet) Clear(s Strategy) {
	if m == nil {
		return
	}
	delete(m.byStrategy, s)
}

// Append inserts markers at the end of s's list, preserving submission order.
func (m *MarkerSet) Append(s Strategy, markers []Marker) {
	if m == nil || len(markers) == 0 {
		return
	}
	m.byStrategy[s] = append(m.byStrategy[s], markers...)
}

// CountFor returns the number of inserted markers for s.
func (m *MarkerSet) CountFor(s Strategy) int {
	if m == nil {
		return 0
	}
	return len(m.byStrategy[s])
}

// Total returns the number of inserted markers across all strategies.
func (m *MarkerSet) Total() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, markers := range m.byStrategy {
		n += len(markers)
	}
	return n
}

// Snapshot returns the markers in canonical strategy order, insertion
// order within each strategy. The returned slice is the caller's to keep.
func (m *MarkerSet) Snapshot() []Marker {
	if m == nil {
		return nil
	}
	out := make([]Marker, 0, m.Total())
	for _, s := range Strategies() {
		out = append(out, m.byStrategy[s]...)
	}
	return out
}
